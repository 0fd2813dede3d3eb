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
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mmynk/tripwiser/internal/auth"
	"github.com/mmynk/tripwiser/internal/config"
	"github.com/mmynk/tripwiser/internal/metrics"
	"github.com/mmynk/tripwiser/internal/randutil"
	"github.com/mmynk/tripwiser/internal/server"
	"github.com/mmynk/tripwiser/internal/storage/sqlite"
	"github.com/mmynk/tripwiser/internal/telemetry"
	"github.com/mmynk/tripwiser/pkg/logging"
)

const shutdownTimeout = 5 * time.Second

// ServeCmd runs the API server.
type ServeCmd struct {
	Addr string `kong:"help='Listen address (default :TRIPWISER_PORT)'"`
	Seed *int64 `kong:"help='Deterministic RNG seed for pairings (optional)'"`
}

func (c *ServeCmd) Run(cfg *config.Config) error {
	logger := logging.SetupWithLevel(cfg.SlogLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, "tripwiser", cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer store.Close()
	logger.Info("Storage initialized", "database", cfg.DBPath)

	src := randutil.NewCryptoSource()
	if c.Seed != nil {
		logger.Info("Using deterministic seed", "seed", *c.Seed)
		src = randutil.NewSource(*c.Seed)
	}

	addr := c.Addr
	if addr == "" {
		addr = cfg.Addr()
	}

	httpServer := &http.Server{
		Addr: addr,
		Handler: server.NewHandler(server.Deps{
			Store:   store,
			JWT:     auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL),
			Rand:    src,
			Metrics: metrics.New(),
			Logger:  logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Connect server starting", "address", addr, "tracing", cfg.OTelEndpoint != "")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
