package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GardenBot_Go/internal/config"
	"github.com/osse101/GardenBot_Go/internal/database"
	"github.com/osse101/GardenBot_Go/internal/database/filestore"
	"github.com/osse101/GardenBot_Go/internal/database/postgres"
	"github.com/osse101/GardenBot_Go/internal/database/redisstore"
	"github.com/osse101/GardenBot_Go/internal/repository"
)

// OpenGardenStore opens the snapshot store selected by STORE_BACKEND. The
// returned close func releases its connections and is safe to call once.
func OpenGardenStore(ctx context.Context, cfg *config.Config) (repository.GardenStore, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		pool, err := OpenPostgresPool(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgStoreOpened, "backend", cfg.StoreBackend, "host", cfg.DBHost, "database", cfg.DBName)
		return postgres.NewGardenStore(pool), pool.Close, nil

	case config.StoreBackendRedis:
		store, err := redisstore.New(ctx, cfg.RedisURL,
			redisstore.WithKeyPrefix(cfg.RedisKeyPrefix),
			redisstore.WithTTL(cfg.RedisSessionTTL))
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		slog.Info(LogMsgStoreOpened, "backend", cfg.StoreBackend, "prefix", cfg.RedisKeyPrefix, "ttl", cfg.RedisSessionTTL)
		return store, func() {
			if err := store.Close(); err != nil {
				slog.Error(LogMsgStoreCloseFailed, "error", err)
			}
		}, nil

	case config.StoreBackendFile:
		store, err := filestore.New(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenFileStore, err)
		}
		slog.Info(LogMsgStoreOpened, "backend", cfg.StoreBackend, "dir", cfg.DataDir)
		return store, func() {}, nil
	}

	return nil, nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreBackend, cfg.StoreBackend)
}

// OpenPostgresPool connects with the DB_* settings
func OpenPostgresPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}
	return pool, nil
}
