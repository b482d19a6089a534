package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/Sheesh1006/service-backend/core/config"
)

// Config contains all configuration for the relay service
type Config struct {
	Log       config.LogConfig  `yaml:"log"`
	Server    ServerConfig      `yaml:"server"`
	Upstream  UpstreamConfig    `yaml:"upstream"`
	Streaming StreamingConfig   `yaml:"streaming"`
	Render    RenderConfig      `yaml:"render"`
	Metrics   MetricsConfig     `yaml:"metrics"`
	Auth      config.AuthConfig `yaml:"auth"`
}

// ServerConfig is where the relay accepts GetNotes calls
type ServerConfig struct {
	Host string `yaml:"host" env:"SERVER_HOST" default:"0.0.0.0"`
	Port int    `yaml:"port" env:"SERVER_PORT" default:"50051"`
}

// UpstreamConfig points at the generator service
type UpstreamConfig struct {
	Endpoint string        `yaml:"endpoint" env:"UPSTREAM_ENDPOINT" default:"http://localhost:50052"`
	Timeout  time.Duration `yaml:"timeout" env:"UPSTREAM_TIMEOUT" default:"5m"`
}

// StreamingConfig bounds the chunked byte streams in both directions
type StreamingConfig struct {
	// UpstreamChunkBytes is the video bound per request unit sent to the generator.
	UpstreamChunkBytes config.ByteSize `yaml:"upstream_chunk_bytes" env:"UPSTREAM_CHUNK_BYTES" default:"2MiB"`
	// OutputChunkBytes is the document bound per response unit sent to the caller.
	OutputChunkBytes config.ByteSize `yaml:"output_chunk_bytes" env:"OUTPUT_CHUNK_BYTES" default:"4MiB"`
	// MaxMessageBytes is the transport limit on any single message.
	MaxMessageBytes config.ByteSize `yaml:"max_message_bytes" env:"MAX_MESSAGE_BYTES" default:"16MiB"`
	// MaxVideoBytes caps a reassembled video. Zero means unlimited.
	MaxVideoBytes config.ByteSize `yaml:"max_video_bytes" env:"MAX_VIDEO_BYTES" default:"0"`
}

// RenderConfig configures PDF output
type RenderConfig struct {
	// FontPath is a TrueType font with Cyrillic coverage. Empty uses the
	// embedded Go Regular font.
	FontPath string `yaml:"font_path" env:"RENDER_FONT_PATH"`
}

// MetricsConfig toggles the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool `yaml:"enabled" env:"METRICS_ENABLED" default:"true"`
}

// Load loads the relay configuration from multiple sources
func Load(configFile, envFile string) (*Config, error) {
	cfg := &Config{}

	loader := config.NewConfigLoader(config.LoaderConfig{
		ConfigFile:      configFile,
		EnvironmentFile: envFile,
		ServiceName:     "relay",
	})

	if err := loader.Load(cfg); err != nil {
		return nil, fmt.Errorf("failed to load relay configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("relay configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535")
	}

	if c.Upstream.Endpoint == "" {
		return fmt.Errorf("upstream endpoint is required")
	}
	if u, err := url.Parse(c.Upstream.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("upstream endpoint must be an absolute URL: %q", c.Upstream.Endpoint)
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("upstream timeout must be positive")
	}

	s := c.Streaming
	if s.UpstreamChunkBytes <= 0 {
		return fmt.Errorf("upstream chunk size must be positive")
	}
	if s.OutputChunkBytes <= 0 {
		return fmt.Errorf("output chunk size must be positive")
	}
	if s.MaxMessageBytes <= 0 {
		return fmt.Errorf("max message size must be positive")
	}
	// The presentation rides whole on the first upstream unit, so a request
	// is accepted only if max_message_bytes - upstream_chunk_bytes covers it.
	// The upstream client checks that per request.
	if s.UpstreamChunkBytes > s.MaxMessageBytes {
		return fmt.Errorf("upstream chunk size %s exceeds max message size %s", s.UpstreamChunkBytes, s.MaxMessageBytes)
	}
	if s.OutputChunkBytes > s.MaxMessageBytes {
		return fmt.Errorf("output chunk size %s exceeds max message size %s", s.OutputChunkBytes, s.MaxMessageBytes)
	}
	if s.MaxVideoBytes < 0 {
		return fmt.Errorf("max video size must not be negative")
	}

	return nil
}

// GetListenAddress returns the address the relay should listen on
func (c *Config) GetListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
