package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var osLookup = os.LookupEnv

// loadDotEnv copies variables from path into the environment without
// overriding ones already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// parseEnv overlays environment variables onto config.
//
//	APP_ENV                  "production" turns on Production
//	ADDR / PORT              listen address; PORT=3000 means ":3000"
//	DATABASE_URL             PostgreSQL DSN
//	SESSION_MAX_AGE          Go duration, e.g. "168h"
//	BASE_PATH                route prefix
//	PASSWORD_HASHER          argon2id | bcrypt
//	GOOGLE_CLIENT_ID         OAuth client id
//	GOOGLE_VERIFY_SIGNATURE  bool
//	GEMINI_API_KEY           enables the Gemini narrator
//	GEMINI_MODEL             model name
//	LOG_LEVEL                debug | info | warn | error
func parseEnv(config *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup("APP_ENV"); ok {
		config.Production = strings.EqualFold(strings.TrimSpace(v), "production")
	}
	if v, ok := lookup("PORT"); ok && v != "" {
		config.Addr = ":" + strings.TrimPrefix(v, ":")
	}
	str("ADDR", &config.Addr)
	str("DATABASE_URL", &config.DatabaseURL)
	str("BASE_PATH", &config.BasePath)
	str("PASSWORD_HASHER", &config.PasswordHasher)
	str("GOOGLE_CLIENT_ID", &config.GoogleClientID)
	str("GEMINI_API_KEY", &config.GeminiAPIKey)
	str("GEMINI_MODEL", &config.GeminiModel)
	str("LOG_LEVEL", &config.LogLevel)

	if v, ok := lookup("SESSION_MAX_AGE"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SESSION_MAX_AGE: %w", err)
		}
		config.SessionMaxAge = d
	}
	if v, ok := lookup("GOOGLE_VERIFY_SIGNATURE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("GOOGLE_VERIFY_SIGNATURE: %w", err)
		}
		config.GoogleVerifySignature = b
	}

	return nil
}
