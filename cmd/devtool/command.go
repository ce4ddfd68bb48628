package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"
)

const (
	appName    = "gardenbot"
	confirmYes = "yes"
)

// Command is one devtool subcommand
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// Registry dispatches os.Args to the registered commands
type Registry struct {
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds cmd, replacing any command with the same name
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns the commands ordered by name
func (r *Registry) List() []Command {
	names := slices.Sorted(maps.Keys(r.commands))
	cmds := make([]Command, len(names))
	for i, name := range names {
		cmds[i] = r.commands[name]
	}
	return cmds
}

// Dispatch runs the command named by args[0] and returns the process exit code
func (r *Registry) Dispatch(args []string, out io.Writer) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		r.WriteHelp(out)
		if len(args) == 0 {
			return 1
		}
		return 0
	}

	cmd, ok := r.Get(args[0])
	if !ok {
		fmt.Fprintf(out, "Unknown command: %s\n\n", args[0])
		r.WriteHelp(out)
		return 1
	}

	if err := cmd.Run(args[1:]); err != nil {
		PrintError("%s failed: %v", cmd.Name(), err)
		return 1
	}
	return 0
}

// WriteHelp prints usage with the command table
func (r *Registry) WriteHelp(out io.Writer) {
	fmt.Fprintf(out, "Usage: %s-devtool <command> [args...]\n\nCommands:\n", appName)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, cmd := range r.List() {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Name(), strings.TrimSpace(cmd.Description()))
	}
	_ = tw.Flush()
}
