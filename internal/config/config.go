package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds everything the server needs at startup. Values come from the
// environment, optionally seeded by a .env file in the working directory.
type Config struct {
	ServerPort   string `mapstructure:"SERVER_PORT"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	ClientOrigin string `mapstructure:"CLIENT_ORIGIN"`
}

// LoadConfig reads configuration from path/.env and the process environment.
// A missing .env file is fine; a missing DATABASE_URL is not.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "3000")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("CLIENT_ORIGIN", "http://localhost:5173")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config.LoadConfig: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("config.LoadConfig: DATABASE_URL is required")
	}
	return cfg, nil
}
