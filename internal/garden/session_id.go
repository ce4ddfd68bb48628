package garden

import (
	"fmt"
	"regexp"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

// MaxSessionIDLength bounds session ids; they double as file names and cache keys
const MaxSessionIDLength = 64

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_.:-]+$`)

// ValidateSessionID rejects ids that are empty, too long, or unsafe as a
// storage key.
func ValidateSessionID(sessionID string) error {
	if sessionID == "" || len(sessionID) > MaxSessionIDLength {
		return fmt.Errorf("%w: length must be 1-%d", domain.ErrInvalidSession, MaxSessionIDLength)
	}
	if !sessionIDPattern.MatchString(sessionID) || sessionID == "." || sessionID == ".." {
		return fmt.Errorf("%w: %q", domain.ErrInvalidSession, sessionID)
	}
	return nil
}
