package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/osse101/GardenBot_Go/internal/bootstrap"
	"github.com/osse101/GardenBot_Go/internal/config"
	"github.com/osse101/GardenBot_Go/internal/garden"
	"github.com/osse101/GardenBot_Go/internal/repository"
	"github.com/osse101/GardenBot_Go/internal/utils"
)

const defaultListLimit = 50

type storeOpener func(ctx context.Context) (repository.GardenStore, func(), error)

// openConfiguredStore opens the store named by STORE_BACKEND in the environment
func openConfiguredStore(ctx context.Context) (repository.GardenStore, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return bootstrap.OpenGardenStore(ctx, cfg)
}

func (o storeOpener) orDefault() storeOpener {
	if o == nil {
		return openConfiguredStore
	}
	return o
}

// ListSessionsCommand prints saved gardens, newest first
type ListSessionsCommand struct {
	open storeOpener
	out  io.Writer
}

func (c *ListSessionsCommand) Name() string {
	return "list-sessions"
}

func (c *ListSessionsCommand) Description() string {
	return "List saved gardens, most recently saved first [limit]"
}

func (c *ListSessionsCommand) Run(args []string) error {
	limit := defaultListLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid limit %q", args[0])
		}
		limit = n
	}

	ctx := context.Background()
	store, closeStore, err := c.open.orDefault()(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	lister, ok := store.(repository.SessionLister)
	if !ok {
		return errors.New("configured store cannot list sessions")
	}
	ids, err := lister.ListSessions(ctx, limit)
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Saved gardens (%d)", len(ids)))
	for _, id := range ids {
		fmt.Fprintln(writerOrStdout(c.out), id)
	}
	return nil
}

// ResetSessionCommand deletes one saved garden after confirmation
type ResetSessionCommand struct {
	open    storeOpener
	confirm io.Reader
}

func (c *ResetSessionCommand) Name() string {
	return "reset-session"
}

func (c *ResetSessionCommand) Description() string {
	return "Delete a saved garden <session-id> [--yes]"
}

func (c *ResetSessionCommand) Run(args []string) error {
	if len(args) < 1 {
		return errors.New("session id required")
	}
	sessionID := args[0]
	if err := garden.ValidateSessionID(sessionID); err != nil {
		return err
	}

	skipPrompt := len(args) > 1 && args[1] == "--yes"
	if !skipPrompt {
		fmt.Printf("Type %q to delete garden %s: ", confirmYes, sessionID)
		line, _ := bufio.NewReader(c.confirm).ReadString('\n')
		if strings.TrimSpace(line) != confirmYes {
			PrintWarning("Aborted")
			return nil
		}
	}

	ctx := context.Background()
	store, closeStore, err := c.open.orDefault()(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := store.DeleteSnapshot(ctx, sessionID); err != nil {
		return err
	}
	PrintSuccess("Garden %s deleted", sessionID)
	return nil
}

// ExportSessionCommand writes a saved garden as indented JSON
type ExportSessionCommand struct {
	open storeOpener
}

func (c *ExportSessionCommand) Name() string {
	return "export-session"
}

func (c *ExportSessionCommand) Description() string {
	return "Write a saved garden to a JSON file <session-id> [path]"
}

func (c *ExportSessionCommand) Run(args []string) error {
	if len(args) < 1 {
		return errors.New("session id required")
	}
	sessionID := args[0]
	if err := garden.ValidateSessionID(sessionID); err != nil {
		return err
	}
	path := sessionID + ".json"
	if len(args) > 1 {
		path = args[1]
	}

	ctx := context.Background()
	store, closeStore, err := c.open.orDefault()(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	data, err := store.LoadSnapshot(ctx, sessionID)
	if err != nil {
		return err
	}
	// Decoding fills defaults, so the export is always a complete document
	state, err := garden.DecodeSnapshot(data, time.Now())
	if err != nil {
		return err
	}
	if err := utils.SaveJSON(path, state); err != nil {
		return err
	}
	PrintSuccess("Garden %s exported to %s", sessionID, path)
	return nil
}
