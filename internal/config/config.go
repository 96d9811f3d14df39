package config

import (
	"time"

	"github.com/spf13/viper"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

// Config holds the main configuration for the application.
type Config struct {
	Server   Server         `mapstructure:"server"`
	Provider Provider       `mapstructure:"provider"`
	Retry    retry.Strategy `mapstructure:"retry"`
	Workers  struct {
		Count int `mapstructure:"count"` // number of dispatch worker goroutines
	} `mapstructure:"workers"`
}

// Server holds HTTP server-related configuration.
type Server struct {
	HTTPPort string `mapstructure:"http_port"` // HTTP port to listen on
}

// Provider holds configuration for the downstream notification provider.
//
// Retry.Delay is the minimum wait between delivery attempts and Retry.Backoff
// the multiplier; MaxRetryWait caps the grown delay because retry.Strategy
// carries no upper bound of its own.
type Provider struct {
	BaseURL      string        `mapstructure:"base_url"`
	APIKey       string        `mapstructure:"api_key"`
	Timeout      time.Duration `mapstructure:"timeout"` // per-call timeout
	MaxRetryWait time.Duration `mapstructure:"max_retry_wait"`
}

// mustBindEnv binds critical environment variables to Viper keys.
//
// It panics if any environment variable cannot be bound.
func mustBindEnv() {
	bindings := map[string]string{
		"server.http_port": "HTTP_PORT",

		"provider.base_url":       "PROVIDER_URL",
		"provider.api_key":        "PROVIDER_API_KEY",
		"provider.timeout":        "PROVIDER_TIMEOUT",
		"provider.max_retry_wait": "PROVIDER_RETRY_MAX_WAIT",

		"retry.attempts": "PROVIDER_RETRY_ATTEMPTS",
		"retry.delay":    "PROVIDER_RETRY_MIN_WAIT",
		"retry.backoff":  "PROVIDER_RETRY_BACKOFF",

		"workers.count": "WORKERS_COUNT",
	}

	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			zlog.Logger.Panic().Err(err).Msgf("failed to bind env %s", env)
		}
	}
}

// Must loads and validates the configuration from file and environment variables.
//
// It panics if configuration cannot be read or unmarshalled.
func Must() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		zlog.Logger.Panic().Err(err).Msg("failed to read config")
	}

	mustBindEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		zlog.Logger.Panic().Err(err).Msgf("failed to unmarshal config: %v", err)
	}

	return &cfg
}
