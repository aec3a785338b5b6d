// Package main is the entry point for gridsnake.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/gridsnake/internal/game"
	"github.com/samdwyer/gridsnake/internal/logging"
	"github.com/samdwyer/gridsnake/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	logOpts := logging.DefaultOptions()
	if v := os.Getenv("GRIDSNAKE_LOG_FILE"); v != "" {
		logOpts.File = v
	}
	if v := os.Getenv("GRIDSNAKE_LOG_LEVEL"); v != "" {
		logOpts.Level = v
	}
	logger, closeLog, err := logging.New(logOpts)
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	telemetry.SetErrorHandler(func(err error) {
		logger.Debugw("otel error", "error", err)
	})
	if telemetry.Configured() {
		// Telemetry failure is not fatal; the game still works without it
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warnw("telemetry setup failed, running without tracing", "error", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Warnw("telemetry shutdown failed", "error", err)
				}
			}()
		}
	}

	cfg, err := game.DefaultConfig()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	cfg, err = cfg.ApplyEnv(os.LookupEnv)
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	g, err := game.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		logger.Errorw("game error", "error", err)
		g.Close()
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// Explicit OTEL_* settings win.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_GRIDSNAKE_API_KEY")
	if apiKey == "" {
		return
	}

	dataset := os.Getenv("HONEYCOMB_GRIDSNAKE_DATASET")
	if dataset == "" {
		dataset = "gridsnake"
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
