package config

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogConfig configures the global zerolog logger.
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" default:"json"`
	Debug  bool   `yaml:"debug" env:"DEBUG" default:"false"`
}

// ConfigureZerolog applies the level and output format to the global logger.
func (c *LogConfig) ConfigureZerolog() {
	zerolog.SetGlobalLevel(c.ZerologLevel())

	switch strings.ToLower(c.Format) {
	case "console", "text", "pretty":
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	default:
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}

// ZerologLevel maps the configured level name to a zerolog level.
// Debug forces the debug level regardless of Level.
func (c *LogConfig) ZerologLevel() zerolog.Level {
	if c.Debug {
		return zerolog.DebugLevel
	}
	name := strings.ToLower(c.Level)
	if name == "warning" {
		name = "warn"
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel || level == zerolog.Disabled {
		return zerolog.InfoLevel
	}
	return level
}

// AuthConfig holds the shared service token secret. It is only read from
// the environment; an empty secret disables token checks.
type AuthConfig struct {
	JWTSecretKey string `yaml:"-" env:"JWT_SECRET_KEY"`
}
