// Package config loads settings for the hibp command from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/insanitybit/haveibeenpwnd/client"
)

// EnvPrefix is prepended to every variable, e.g. HIBP_USER_AGENT.
const EnvPrefix = "HIBP"

// Config holds CLI configuration. Flags override these values.
type Config struct {
	UserAgent string        `envconfig:"USER_AGENT" default:"haveibeenpwnd-cli"`
	BaseURL   string        `envconfig:"BASE_URL" default:"https://haveibeenpwned.com/api/v2"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"30s"`
	LogLevel  string        `envconfig:"LOG_LEVEL" default:"info"`
	Debug     bool          `envconfig:"DEBUG" default:"false"`
	Output    string        `envconfig:"OUTPUT" default:"text"`
}

// Load parses HIBP_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return &cfg, nil
}

// Validate checks values that envconfig cannot.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0, got %s", c.Timeout)
	}
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported output %q (want text or json)", c.Output)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the configured log level; Debug forces debug.
func (c *Config) Level() zerolog.Level {
	if c.Debug {
		return zerolog.DebugLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// NewClient builds an SDK client from the configuration.
func (c *Config) NewClient() (*client.Client, error) {
	log.Debug().
		Str("user_agent", c.UserAgent).
		Str("base_url", c.BaseURL).
		Dur("timeout", c.Timeout).
		Bool("debug", c.Debug).
		Msg("creating client")

	return client.New(c.UserAgent,
		client.WithBaseURL(c.BaseURL),
		client.WithHTTPTimeout(c.Timeout),
		client.WithDebugLogging(c.Debug),
	)
}
