package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/Sheesh1006/service-backend/core/config"
)

// Config contains all configuration for the upload front end
type Config struct {
	Log    config.LogConfig  `yaml:"log"`
	Server ServerConfig      `yaml:"server"`
	Relay  RelayConfig       `yaml:"relay"`
	Upload UploadConfig      `yaml:"upload"`
	Auth   config.AuthConfig `yaml:"auth"`
}

// ServerConfig is where browsers reach the front end
type ServerConfig struct {
	Host string `yaml:"host" env:"SERVER_HOST" default:"0.0.0.0"`
	Port int    `yaml:"port" env:"SERVER_PORT" default:"8000"`
	// StaticDir, when set, is served at the site root.
	StaticDir string `yaml:"static_dir" env:"STATIC_DIR"`
}

// RelayConfig points at the notes relay
type RelayConfig struct {
	Endpoint        string          `yaml:"endpoint" env:"RELAY_ENDPOINT" default:"http://localhost:50051"`
	FragmentBytes   config.ByteSize `yaml:"fragment_bytes" env:"RELAY_FRAGMENT_BYTES" default:"1MiB"`
	MaxMessageBytes config.ByteSize `yaml:"max_message_bytes" env:"RELAY_MAX_MESSAGE_BYTES" default:"16MiB"`
	Timeout         time.Duration   `yaml:"timeout" env:"RELAY_TIMEOUT" default:"10m"`
}

// UploadConfig limits what a browser may post
type UploadConfig struct {
	MaxBytes config.ByteSize `yaml:"max_bytes" env:"UPLOAD_MAX_BYTES" default:"2GiB"`
	// MemoryBytes is how much of a form is kept in memory before parts
	// spill to temporary files.
	MemoryBytes config.ByteSize `yaml:"memory_bytes" env:"UPLOAD_MEMORY_BYTES" default:"32MiB"`
}

// Load loads the front end configuration from multiple sources
func Load(configFile, envFile string) (*Config, error) {
	cfg := &Config{}

	loader := config.NewConfigLoader(config.LoaderConfig{
		ConfigFile:      configFile,
		EnvironmentFile: envFile,
		ServiceName:     "frontend",
	})

	if err := loader.Load(cfg); err != nil {
		return nil, fmt.Errorf("failed to load frontend configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("frontend configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535")
	}
	if u, err := url.Parse(c.Relay.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("relay endpoint must be an absolute URL: %q", c.Relay.Endpoint)
	}
	if c.Relay.FragmentBytes <= 0 {
		return fmt.Errorf("relay fragment size must be positive")
	}
	// A fragment carries up to fragment_bytes of video and as much again of
	// the presentation.
	if c.Relay.MaxMessageBytes > 0 && 2*c.Relay.FragmentBytes > c.Relay.MaxMessageBytes {
		return fmt.Errorf("relay fragment size %s must be at most half the max message size %s", c.Relay.FragmentBytes, c.Relay.MaxMessageBytes)
	}
	if c.Relay.Timeout <= 0 {
		return fmt.Errorf("relay timeout must be positive")
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload max size must be positive")
	}
	if c.Upload.MemoryBytes <= 0 {
		return fmt.Errorf("upload memory size must be positive")
	}
	return nil
}

// GetListenAddress returns the address the front end should listen on
func (c *Config) GetListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
