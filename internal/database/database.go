package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig sizes the snapshot store's connection pool. Zero values keep
// the pgxpool defaults.
type PoolConfig struct {
	ConnString      string
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration
}

// NewPool connects to PostgreSQL and pings once so a bad DSN fails at startup
// rather than on the first save.
func NewPool(ctx context.Context, pc PoolConfig) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(pc.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	if pc.MaxConns > 0 {
		cfg.MaxConns = int32(min(pc.MaxConns, math.MaxInt32))
	}
	cfg.MinConns = min(DefaultMinConnections, cfg.MaxConns)
	if pc.MaxConnIdleTime > 0 {
		cfg.MaxConnIdleTime = pc.MaxConnIdleTime
	}
	if pc.MaxConnLifetime > 0 {
		cfg.MaxConnLifetime = pc.MaxConnLifetime
	}
	if _, ok := cfg.ConnConfig.RuntimeParams[RuntimeParamAppName]; !ok {
		cfg.ConnConfig.RuntimeParams[RuntimeParamAppName] = ApplicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Info(LogMsgSuccessfullyConnectedToDatabase,
		"host", cfg.ConnConfig.Host,
		"database", cfg.ConnConfig.Database,
		"max_conns", cfg.MaxConns)
	return pool, nil
}
