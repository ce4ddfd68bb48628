package domain

// GardenSchemaVersion tags persisted snapshots
const GardenSchemaVersion = "1"

// Event type constants published on the event bus
const (
	EventTypeGardenNotification = "garden.notification"
	EventTypeGardenUpdated      = "garden.updated"
	EventTypeGardenReset        = "garden.reset"
)

// Grid bounds
const (
	InitialGridSize = 3
	MaxGridSize     = 6
)

// Starting balances for a new garden
const (
	StartingMoney = 500
	StartingXP    = 0
)
