package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/GardenBot_Go/internal/bootstrap"
	"github.com/osse101/GardenBot_Go/internal/config"
	"github.com/osse101/GardenBot_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply or inspect the garden snapshot schema (up, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return errors.New("subcommand required: up, status")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.StoreBackend != config.StoreBackendPostgres {
		PrintWarning("STORE_BACKEND is %q; migrations only apply to postgres", cfg.StoreBackend)
		return nil
	}

	ctx := context.Background()
	pool, err := bootstrap.OpenPostgresPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch args[0] {
	case "up":
		PrintHeader("Applying migrations")
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
	case "status":
	default:
		return fmt.Errorf("unknown subcommand %q: want up or status", args[0])
	}

	version, err := database.SchemaVersion(ctx, pool)
	if err != nil {
		return err
	}
	PrintSuccess("Schema version: %d", version)
	return nil
}
