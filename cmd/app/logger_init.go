package main

import (
	"github.com/osse101/GardenBot_Go/internal/logger"
)

// initEarlyLogger installs a stdout logger so configuration errors are
// structured. bootstrap.SetupLogger replaces it once config is loaded.
func initEarlyLogger() {
	logger.InitLogger(logger.DefaultConfig())
}
