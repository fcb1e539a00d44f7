package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	API APIConfig
	Log LogConfig
}

type APIConfig struct {
	// BaseURL of the Polly API server
	BaseURL string
	// Timeout applied to every request
	Timeout time.Duration
	// UserAgent sent with every request
	UserAgent string
}

type LogConfig struct {
	Level  string
	Format string
}

// New creates a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.polly")
	v.AddConfigPath(".")

	v.SetEnvPrefix("POLLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("api.user_agent", "polly-client/1.0")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	return v
}

// Load reads configuration from file and environment into a Config.
func Load(v *viper.Viper) (*Config, error) {
	// A .env file is optional and only used for local development
	_ = godotenv.Load()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL:   v.GetString("api.base_url"),
			Timeout:   v.GetDuration("api.timeout"),
			UserAgent: v.GetString("api.user_agent"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("api base URL not set")
	}
	if _, err := url.Parse(cfg.API.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid api base URL: %w", err)
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = 30 * time.Second
	}

	return cfg, nil
}
