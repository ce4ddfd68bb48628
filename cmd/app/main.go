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

	"github.com/osse101/GardenBot_Go/internal/bootstrap"
	"github.com/osse101/GardenBot_Go/internal/config"
	"github.com/osse101/GardenBot_Go/internal/garden"
	"github.com/osse101/GardenBot_Go/internal/scheduler"
	"github.com/osse101/GardenBot_Go/internal/server"
	"github.com/osse101/GardenBot_Go/internal/sse"
	"github.com/osse101/GardenBot_Go/internal/worker"
)

func main() {
	initEarlyLogger()

	if err := run(); err != nil {
		slog.Error("GardenBot exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	if !cfg.IsDev() {
		warnings, err := config.ValidateEnvWithWarnings()
		if err != nil {
			return fmt.Errorf("environment check failed: %w", err)
		}
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := bootstrap.OpenGardenStore(ctx, cfg)
	if err != nil {
		return err
	}

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		closeStore()
		return err
	}

	pool := worker.NewPoolWithTimeout(cfg.WorkerCount, cfg.WorkerQueueSize, cfg.JobTimeout)
	pool.Start()

	hub := sse.NewHub()
	hub.Start()

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: eventBus,
		SSEHub:   hub,
		Queue:    pool,
		Config:   cfg,
	}); err != nil {
		hub.Stop()
		pool.Stop()
		closeStore()
		return err
	}

	gardenService := garden.NewService(store, publisher, garden.Config{
		CacheSize:    cfg.SessionCacheSize,
		CacheTTL:     cfg.SessionCacheTTL,
		PersistRetry: cfg.PersistRetry,
	})

	if _, err := bootstrap.WarmSessions(ctx, store, gardenService, bootstrap.DefaultWarmupSessionsLimit); err != nil {
		slog.Warn("Session warmup failed", "error", err)
	}

	sched := scheduler.New(pool)
	sched.Schedule("garden-tick", cfg.TickInterval, garden.NewTickJob(gardenService))
	slog.Info("Garden tick scheduled", "interval", cfg.TickInterval)

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, gardenService, store, hub)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err, ok := <-serverErr:
		if ok {
			runErr = fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		GardenService:      gardenService,
		ResilientPublisher: publisher,
		CloseStore:         closeStore,
	})

	return runErr
}
