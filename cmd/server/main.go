package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"github.com/jp903/scout"
	fiberadapter "github.com/jp903/scout/adapters/fiber"
	genaiadapter "github.com/jp903/scout/adapters/genai"
	pgxadapter "github.com/jp903/scout/adapters/pgx"
	"github.com/jp903/scout/internal/config"
	"github.com/jp903/scout/internal/logging"
	"github.com/jp903/scout/pkg/identity"
)

const shutdownTimeout = 10 * time.Second

func logFormat() string {
	format := []string{
		// Timestamp & Request ID
		"${time}|${requestid}",

		// Response metadata
		"${status}|${latency}",

		// Client info
		"${ip}",

		// Request details; bodies and headers carry credentials and stay out
		"${method}|${path}",

		"${error}",
	}
	return strings.Join(format, "|") + "\n"
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(".env", args)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logging.New(os.Stdout, level, cfg.Production)
	slog.SetDefault(log.Slog())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxadapter.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	db := pgxadapter.New(pool)
	if err := db.Migrate(ctx); err != nil {
		return err
	}

	passwords, err := scout.NewPasswordHandler(cfg.PasswordHasher)
	if err != nil {
		return err
	}

	var verifier scout.IdentityVerifier
	if cfg.VerifyGoogleSignature() {
		jwks := identity.NewJWKSVerifier(cfg.GoogleClientID)
		defer jwks.Close()
		verifier = jwks
	} else {
		log.Warn(ctx, "google identity tokens are decoded without signature verification")
		verifier = identity.NewDecoder()
	}

	var narrator scout.Narrator
	if cfg.GeminiAPIKey != "" {
		n, err := genaiadapter.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return err
		}
		narrator = n
	}

	app := fiber.New()
	app.Use(recoverer.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format:     logFormat(),
		TimeFormat: "2006/01/02 15:04:05",
		TimeZone:   "Local",
	}))

	if _, err := scout.New(scout.Config{
		Database:         db,
		HTTP:             fiberadapter.New(app, log, cfg.Production),
		SessionConfig:    &scout.SessionConfig{MaxAge: cfg.SessionMaxAge},
		PasswordHasher:   passwords,
		IdentityVerifier: verifier,
		Narrator:         narrator,
		Logger:           log,
		BasePath:         cfg.BasePath,
	}); err != nil {
		return fmt.Errorf("could not create scout instance: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", cfg.Addr, "base_path", cfg.BasePath)
		errCh <- app.Listen(cfg.Addr, fiber.ListenConfig{DisableStartupMessage: true})
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
