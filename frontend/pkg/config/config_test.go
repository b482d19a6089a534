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

	assert.Equal(t, "0.0.0.0:8000", cfg.GetListenAddress())
	assert.Equal(t, "http://localhost:50051", cfg.Relay.Endpoint)
	assert.Equal(t, coreconfig.ByteSize(1<<20), cfg.Relay.FragmentBytes)
	assert.Equal(t, 10*time.Minute, cfg.Relay.Timeout)
	assert.Equal(t, coreconfig.ByteSize(2<<30), cfg.Upload.MaxBytes)
	assert.Empty(t, cfg.Server.StaticDir)
}

func TestLoadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "frontend.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
server:
  port: 8080
  static_dir: ./static
relay:
  endpoint: http://relay:50051
  fragment_bytes: 256KiB
upload:
  max_bytes: 100MB
`), 0644))
	t.Setenv("FRONTEND_RELAY_TIMEOUT", "30s")

	cfg, err := Load(file, "")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "./static", cfg.Server.StaticDir)
	assert.Equal(t, "http://relay:50051", cfg.Relay.Endpoint)
	assert.Equal(t, coreconfig.ByteSize(256<<10), cfg.Relay.FragmentBytes)
	assert.Equal(t, coreconfig.ByteSize(100_000_000), cfg.Upload.MaxBytes)
	assert.Equal(t, 30*time.Second, cfg.Relay.Timeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port", func(c *Config) { c.Server.Port = 70000 }},
		{"endpoint", func(c *Config) { c.Relay.Endpoint = "relay" }},
		{"fragment", func(c *Config) { c.Relay.FragmentBytes = 0 }},
		{"fragment above limit", func(c *Config) { c.Relay.FragmentBytes = 32 << 20 }},
		{"fragment above half the limit", func(c *Config) { c.Relay.FragmentBytes = 9 << 20 }},
		{"timeout", func(c *Config) { c.Relay.Timeout = 0 }},
		{"upload", func(c *Config) { c.Upload.MaxBytes = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("", "")
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
