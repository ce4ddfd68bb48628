package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Classes
	ErrMsgPrecondition = "precondition not met"
	ErrMsgValidation   = "validation failed"

	// Session errors
	ErrMsgGardenNotFound = "garden not found"
	ErrMsgInvalidSession = "invalid session id"

	// Plot and plant errors
	ErrMsgPlotNotFound  = "plot not found"
	ErrMsgPlotOccupied  = "plot already has a plant"
	ErrMsgPlotEmpty     = "plot is empty"
	ErrMsgPlantNotReady = "plant is not ready to harvest"
	ErrMsgSeedNotOwned  = "seed not in inventory"
	ErrMsgSeedNotInShop = "seed listing not found"
	ErrMsgGearNotInShop = "gear listing not found"
	ErrMsgUnknownAction = "unknown garden action"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInsufficientXP    = "insufficient xp"
	ErrMsgInvalidAmount     = "amount must be positive"
	ErrMsgAlreadyOwned      = "gear already owned"
	ErrMsgGridAtMaximum     = "garden is already at maximum size"

	// Storage errors
	ErrMsgSnapshotCorrupt = "garden snapshot is corrupt"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrPrecondition marks actions that were not applicable to the current state
	ErrPrecondition = errors.New(ErrMsgPrecondition)
	// ErrValidation marks user-correctable failures such as missing funds
	ErrValidation = errors.New(ErrMsgValidation)

	ErrGardenNotFound = errors.New(ErrMsgGardenNotFound)
	ErrInvalidSession = classed(ErrValidation, ErrMsgInvalidSession)

	ErrPlotNotFound  = classed(ErrPrecondition, ErrMsgPlotNotFound)
	ErrPlotOccupied  = classed(ErrPrecondition, ErrMsgPlotOccupied)
	ErrPlotEmpty     = classed(ErrPrecondition, ErrMsgPlotEmpty)
	ErrPlantNotReady = classed(ErrPrecondition, ErrMsgPlantNotReady)
	ErrSeedNotOwned  = classed(ErrPrecondition, ErrMsgSeedNotOwned)
	ErrSeedNotInShop = classed(ErrPrecondition, ErrMsgSeedNotInShop)
	ErrGearNotInShop = classed(ErrPrecondition, ErrMsgGearNotInShop)
	ErrUnknownAction = classed(ErrPrecondition, ErrMsgUnknownAction)

	ErrInsufficientFunds = classed(ErrValidation, ErrMsgInsufficientFunds)
	ErrInsufficientXP    = classed(ErrValidation, ErrMsgInsufficientXP)
	ErrInvalidAmount     = classed(ErrValidation, ErrMsgInvalidAmount)
	ErrAlreadyOwned      = classed(ErrValidation, ErrMsgAlreadyOwned)
	ErrGridAtMaximum     = classed(ErrValidation, ErrMsgGridAtMaximum)

	ErrSnapshotCorrupt = errors.New(ErrMsgSnapshotCorrupt)
)

// classedError is a named error that also matches its class with errors.Is
type classedError struct {
	class error
	msg   string
}

func classed(class error, msg string) error {
	return &classedError{class: class, msg: msg}
}

func (e *classedError) Error() string { return e.msg }

func (e *classedError) Unwrap() error { return e.class }
