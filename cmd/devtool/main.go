package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	registry := NewRegistry()
	registry.Register(&MigrateCommand{})
	registry.Register(&ListSessionsCommand{})
	registry.Register(&ResetSessionCommand{confirm: os.Stdin})
	registry.Register(&ExportSessionCommand{})
	registry.Register(&HealthCheckCommand{})
	registry.Register(&DeadLettersCommand{})

	os.Exit(registry.Dispatch(os.Args[1:], os.Stdout))
}
