package config

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the .env file, if any, and the environment.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}
	if cfg.Turso.PrimaryURL != "" && cfg.Turso.AuthToken == "" {
		return Config{}, fmt.Errorf("TURSO_AUTH_TOKEN is required when TURSO_PRIMARY_URL is set")
	}
	return cfg, nil
}

// Level returns the configured log level, falling back to info.
func (c Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warn("Unknown log level, using info", "level", c.LogLevel)
		return log.InfoLevel
	}
	return level
}
