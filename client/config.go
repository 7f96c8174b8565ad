package client

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds client settings read from the environment.
// Environment variables are parsed from the RWGPS_ prefix.
type Config struct {
	BaseURL     string        `envconfig:"BASE_URL" default:"https://ridewithgps.com"`
	APIKey      string        `envconfig:"API_KEY" required:"true"`
	AuthToken   string        `envconfig:"AUTH_TOKEN"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"DEBUG" default:"false"`
}

// LoadConfig reads Config from RWGPS_* environment variables.
// Example: RWGPS_API_KEY, RWGPS_AUTH_TOKEN, RWGPS_HTTP_TIMEOUT=10s
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("RWGPS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return &cfg, nil
}

// Options converts cfg into construction options. Explicit options passed to
// New after these take precedence.
func (cfg *Config) Options() []Option {
	opts := []Option{WithHTTPTimeout(cfg.HTTPTimeout), WithDebugLogging(cfg.Debug)}
	if cfg.AuthToken != "" {
		opts = append(opts, WithAuthToken(cfg.AuthToken))
	}
	return opts
}

// NewFromConfig constructs a Client from cfg.
func NewFromConfig(cfg *Config, opts ...Option) (*Client, error) {
	return New(cfg.BaseURL, cfg.APIKey, append(cfg.Options(), opts...)...)
}

// NewFromEnv constructs a Client from RWGPS_* environment variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}
