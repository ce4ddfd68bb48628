package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/GardenBot_Go/internal/garden"
	"github.com/osse101/GardenBot_Go/internal/repository"
)

// WarmSessions opens the most recently saved gardens so the first tick after
// a restart covers them. Returns how many sessions were loaded. Gardens that
// fail to load are logged and skipped.
func WarmSessions(ctx context.Context, store repository.GardenStore, svc garden.Service, limit int) (int, error) {
	lister, ok := store.(repository.SessionLister)
	if !ok {
		slog.Info(LogMsgStoreNotListable)
		return 0, nil
	}

	ids, err := lister.ListSessions(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedListSessions, err)
	}

	warmed := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return warmed, ctx.Err()
		}
		if _, err := svc.Open(ctx, id); err != nil {
			slog.Warn(LogMsgWarmupSessionFailed, "session_id", id, "error", err)
			continue
		}
		warmed++
	}

	slog.Info(LogMsgWarmupComplete, "listed", len(ids), "warmed", warmed)
	return warmed, nil
}
