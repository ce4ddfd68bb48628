package main

import (
	"cmp"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/osse101/GardenBot_Go/internal/bootstrap"
	"github.com/osse101/GardenBot_Go/internal/config"
	"github.com/osse101/GardenBot_Go/internal/event"
)

// DeadLettersCommand prints events the publisher gave up on
type DeadLettersCommand struct {
	out io.Writer
}

func (c *DeadLettersCommand) Name() string {
	return "dead-letters"
}

func (c *DeadLettersCommand) Description() string {
	return "Show undelivered events from the dead-letter file [path]"
}

func (c *DeadLettersCommand) Run(args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	} else {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		path = cfg.EventDeadLetterPath
	}
	path = cmp.Or(path, bootstrap.EventDefaultDeadLetterPath)

	entries, skipped, err := event.ReadDeadLetters(path)
	if err != nil {
		return err
	}
	if skipped > 0 {
		PrintWarning("%d unreadable lines in %s", skipped, path)
	}
	if len(entries) == 0 {
		PrintSuccess("No dead-lettered events in %s", path)
		return nil
	}

	tw := tabwriter.NewWriter(writerOrStdout(c.out), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tTYPE\tSESSION\tATTEMPTS\tERROR")
	for _, e := range entries {
		session, _ := e.Event.GetMetadataValue(event.MetadataKeySessionID).(string)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			e.Timestamp.Local().Format(time.DateTime), e.Event.Type, session, e.Attempts, e.LastError)
	}
	return tw.Flush()
}
