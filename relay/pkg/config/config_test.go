package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreconfig "github.com/Sheesh1006/service-backend/core/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:50051", cfg.GetListenAddress())
	assert.Equal(t, "http://localhost:50052", cfg.Upstream.Endpoint)
	assert.Equal(t, 5*time.Minute, cfg.Upstream.Timeout)
	assert.Equal(t, coreconfig.ByteSize(2<<20), cfg.Streaming.UpstreamChunkBytes)
	assert.Equal(t, coreconfig.ByteSize(4<<20), cfg.Streaming.OutputChunkBytes)
	assert.Equal(t, coreconfig.ByteSize(16<<20), cfg.Streaming.MaxMessageBytes)
	assert.Zero(t, cfg.Streaming.MaxVideoBytes)
	assert.Empty(t, cfg.Render.FontPath)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "relay.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
log:
  level: debug
  format: console
server:
  port: 6000
upstream:
  endpoint: http://generator:50052
  timeout: 90s
streaming:
  upstream_chunk_bytes: 1MiB
  output_chunk_bytes: 512 KiB
  max_video_bytes: 1GiB
render:
  font_path: /usr/share/fonts/DejaVuSans.ttf
metrics:
  enabled: false
`), 0644))

	envFile := filepath.Join(dir, "relay.env")
	require.NoError(t, os.WriteFile(envFile, []byte("RELAY_SERVER_PORT=7000\nJWT_SECRET_KEY=s3cret\n"), 0644))
	t.Cleanup(func() {
		os.Unsetenv("RELAY_SERVER_PORT")
		os.Unsetenv("JWT_SECRET_KEY")
	})

	cfg, err := Load(configFile, envFile)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "http://generator:50052", cfg.Upstream.Endpoint)
	assert.Equal(t, 90*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, coreconfig.ByteSize(1<<20), cfg.Streaming.UpstreamChunkBytes)
	assert.Equal(t, coreconfig.ByteSize(512<<10), cfg.Streaming.OutputChunkBytes)
	assert.Equal(t, coreconfig.ByteSize(1<<30), cfg.Streaming.MaxVideoBytes)
	assert.Equal(t, "/usr/share/fonts/DejaVuSans.ttf", cfg.Render.FontPath)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecretKey)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("UPSTREAM_ENDPOINT", "http://generic:1")
	t.Setenv("RELAY_UPSTREAM_ENDPOINT", "http://specific:2")
	t.Setenv("OUTPUT_CHUNK_BYTES", "1048576")

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, "http://specific:2", cfg.Upstream.Endpoint)
	assert.Equal(t, coreconfig.ByteSize(1<<20), cfg.Streaming.OutputChunkBytes)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load("", "")
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server port"},
		{"no endpoint", func(c *Config) { c.Upstream.Endpoint = "" }, "upstream endpoint is required"},
		{"relative endpoint", func(c *Config) { c.Upstream.Endpoint = "generator:50052" }, "absolute URL"},
		{"zero timeout", func(c *Config) { c.Upstream.Timeout = 0 }, "timeout"},
		{"zero chunk", func(c *Config) { c.Streaming.UpstreamChunkBytes = 0 }, "upstream chunk size must be positive"},
		{"chunk above message limit", func(c *Config) { c.Streaming.UpstreamChunkBytes = 32 << 20 }, "exceeds max message size"},
		{"output above message limit", func(c *Config) { c.Streaming.OutputChunkBytes = 17 << 20 }, "exceeds max message size"},
		{"negative video cap", func(c *Config) { c.Streaming.MaxVideoBytes = -1 }, "max video size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	assert.NoError(t, valid().Validate())
}
