package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	coreconfig "github.com/Sheesh1006/service-backend/core/config"
)

type Config struct {
	Relay  RelayConfig  `mapstructure:"relay"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Render RenderConfig `mapstructure:"render"`
}

type RelayConfig struct {
	Endpoint      string        `mapstructure:"endpoint"`
	Timeout       time.Duration `mapstructure:"timeout"`
	FragmentBytes string        `mapstructure:"fragment_bytes"`
}

// FragmentSize parses FragmentBytes ("1MiB", "262144", ...).
func (c RelayConfig) FragmentSize() (int, error) {
	size, err := coreconfig.ParseByteSize(c.FragmentBytes)
	if err != nil {
		return 0, fmt.Errorf("relay.fragment_bytes: %w", err)
	}
	if size <= 0 {
		return 0, fmt.Errorf("relay.fragment_bytes must be positive")
	}
	return size.Int(), nil
}

type AuthConfig struct {
	Token string `mapstructure:"token"`
}

type RenderConfig struct {
	FontPath string `mapstructure:"font_path"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.notes-cli")
	viper.AddConfigPath("/etc/notes-cli/")

	// NOTES_RELAY_ENDPOINT, NOTES_AUTH_TOKEN, ...
	viper.SetEnvPrefix("NOTES")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.BindEnv("relay.endpoint")
	viper.BindEnv("relay.timeout")
	viper.BindEnv("relay.fragment_bytes")
	viper.BindEnv("auth.token")
	viper.BindEnv("render.font_path")

	viper.SetDefault("relay.endpoint", "http://localhost:50051")
	viper.SetDefault("relay.timeout", "10m")
	viper.SetDefault("relay.fragment_bytes", "1MiB")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// Save writes the relay endpoint and token to $HOME/.notes-cli/config.yaml.
func (c *Config) Save() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".notes-cli")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.yaml")
	viper.SetConfigFile(configFile)

	viper.Set("relay.endpoint", c.Relay.Endpoint)
	viper.Set("relay.timeout", c.Relay.Timeout.String())
	viper.Set("relay.fragment_bytes", c.Relay.FragmentBytes)
	viper.Set("auth.token", c.Auth.Token)
	viper.Set("render.font_path", c.Render.FontPath)

	return viper.WriteConfig()
}
