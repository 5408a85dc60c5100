package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	_ "github.com/osse101/WishEval_Go/docs"
	"github.com/osse101/WishEval_Go/internal/bootstrap"
	"github.com/osse101/WishEval_Go/internal/config"
)

// @title WishEval API
// @version 1.0
// @description Wish evaluator: classifies a wish, scores its chance of coming true and lets friends add luck.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile := bootstrap.SetupLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return fmt.Errorf("validate environment: %w", err)
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	comps, err := bootstrap.InitializeComponents(ctx, cfg)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := comps.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})

	if comps.PolicyWatcher != nil {
		g.Go(func() error {
			if err := comps.PolicyWatcher.Run(gctx); err != nil {
				// Reloading is a convenience; keep serving the loaded policy
				slog.Warn("Policy watcher stopped", "error", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.NewShutdownComponents(comps, logFile))
		return nil
	})

	return g.Wait()
}
