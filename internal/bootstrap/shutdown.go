package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/GardenBot_Go/internal/garden"
)

// Stoppable components
type (
	httpServer interface {
		Stop(ctx context.Context) error
	}
	stopper interface {
		Stop()
	}
	publisherShutdown interface {
		Shutdown(ctx context.Context) error
	}
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             httpServer
	Scheduler          stopper
	WorkerPool         stopper
	GardenService      garden.Service
	ResilientPublisher publisherShutdown
	CloseStore         func()
}

// GracefulShutdown stops the application in dependency order:
//  1. HTTP server (stop accepting new requests, close event streams)
//  2. Scheduler (no new ticks)
//  3. Worker pool (cancel in-flight jobs, wait for the workers)
//  4. Garden service (write every cached session)
//  5. Event publisher (flush pending retries)
//  6. Garden store
//
// Errors are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		components.Scheduler.Stop()
	}

	if components.WorkerPool != nil {
		slog.Info(LogMsgStoppingWorkerPool)
		components.WorkerPool.Stop()
	}

	if components.GardenService != nil {
		slog.Info(LogMsgFlushingGardens)
		// Sessions must be written even when the deadline has passed
		if err := components.GardenService.Shutdown(context.WithoutCancel(ctx)); err != nil {
			slog.Error(LogMsgGardenShutdownFailed, "error", err)
		}
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.CloseStore != nil {
		components.CloseStore()
	}

	slog.Info(LogMsgServerStopped)
}
