// Package config loads process settings from defaults, an optional .env
// file, the environment and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/jp903/scout/core"
	"github.com/jp903/scout/internal/logging"
)

var ErrDatabaseURLRequired = errors.New("DATABASE_URL is required")

// Config holds runtime settings for the server.
type Config struct {
	Addr        string
	DatabaseURL string
	// Production enables secure cookies and JSON logs.
	Production    bool
	SessionMaxAge time.Duration
	BasePath      string
	// PasswordHasher is "argon2id" or "bcrypt".
	PasswordHasher string
	// GoogleClientID enables signature checks on Google ID tokens when
	// GoogleVerifySignature is also set.
	GoogleClientID        string
	GoogleVerifySignature bool
	GeminiAPIKey          string
	GeminiModel           string
	LogLevel              string
}

func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.SessionMaxAge = core.DefaultSessionMaxAge
	c.BasePath = "/api"
	c.PasswordHasher = "argon2id"
	c.GoogleVerifySignature = true
	c.LogLevel = "info"
}

// VerifyGoogleSignature reports whether Google tokens must be verified
// against the published keys.
func (c *Config) VerifyGoogleSignature() bool {
	return c.GoogleClientID != "" && c.GoogleVerifySignature
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrDatabaseURLRequired
	}
	if c.SessionMaxAge <= 0 {
		return fmt.Errorf("session max age must be positive, got %s", c.SessionMaxAge)
	}
	switch c.PasswordHasher {
	case "argon2id", "bcrypt":
	default:
		return fmt.Errorf("unknown password hasher %q", c.PasswordHasher)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Load builds a Config from defaults, envFile (skipped when missing), the
// process environment and args, then validates it.
func Load(envFile string, args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotEnv(envFile); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, osLookup); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
