package config

import (
	"flag"
	"io"
)

// parseFlags overlays command-line flags onto config.
//
//	-a string   listen address (e.g. ":8080")
//	-d string   PostgreSQL DSN
//	-l string   log level
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("scout", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.DatabaseURL, "d", config.DatabaseURL, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	return fs.Parse(args)
}
