package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Validator Tests - Demonstrating 5-Case Testing Model
// =============================================================================

func TestValidator_SessionIDValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name      string
		sessionID string
		wantErr   bool
	}{
		// CASE 1: Best Case
		{"simple", "alice", false},
		{"discord style", "discord:123456789", false},
		{"uuid", "6f1c9a52-2b1e-4b59-a2b4-2f5f3c1d9e10", false},

		// CASE 2: Boundary Case
		{"one char", "a", false},
		{"exactly max length", strings.Repeat("a", 64), false},
		{"over max length", strings.Repeat("a", 65), true},

		// CASE 3: Edge Case
		{"dots only", "..", true},
		{"single dot", ".", true},

		// CASE 4: Invalid Case
		{"empty", "", true},
		{"path traversal", "../secrets", true},
		{"space", "a b", true},
		{"newline", "alice\n", true},
		{"null byte", "al\x00ice", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(PlotRequest{SessionID: tt.sessionID, PlotID: "plot-0"})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_IDLength(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		plotID  string
		wantErr bool
	}{
		{"typical", "plot-8", false},
		{"exactly max length", strings.Repeat("p", MaxIDLength), false},
		{"over max length", strings.Repeat("p", MaxIDLength+1), true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(PlotRequest{SessionID: "alice", PlotID: tt.plotID})

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidator_CreditAmount(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		amount  int
		wantErr bool
	}{
		// CASE 1: Best Case
		{"valid amount", 10, false},

		// CASE 2: Boundary Case
		{"negative (beyond lower)", -1, true},
		{"zero (on lower boundary)", 0, true},
		{"one (at min)", MinCreditXP, false},
		{"max allowed", MaxCreditXP, false},
		{"over max (beyond upper)", MaxCreditXP + 1, true},

		// CASE 5: Worst Case - extremes
		{"very negative", -999999, true},
		{"very large", 999999, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(CreditXPRequest{SessionID: "alice", Amount: tt.amount})

			if tt.wantErr {
				assert.Error(t, err, "Expected validation error for amount=%d", tt.amount)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ExchangeAmount(t *testing.T) {
	InitValidator()
	v := GetValidator()

	// Non-positive amounts reach the garden so it can report them itself
	assert.NoError(t, v.ValidateStruct(ExchangeRequest{SessionID: "alice", Amount: 0}))
	assert.NoError(t, v.ValidateStruct(ExchangeRequest{SessionID: "alice", Amount: -5}))
	assert.NoError(t, v.ValidateStruct(ExchangeRequest{SessionID: "alice", Amount: MaxExchangeXP}))
	assert.Error(t, v.ValidateStruct(ExchangeRequest{SessionID: "alice", Amount: MaxExchangeXP + 1}))
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()
	v := GetValidator()

	t.Run("uses json field names", func(t *testing.T) {
		err := v.ValidateStruct(PlantRequest{SessionID: "bad id", PlotID: strings.Repeat("x", MaxIDLength+1)})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, "Must be 1-64 letters, digits, '_', '-', '.' or ':'", fields["session_id"])
		assert.Equal(t, "Must be at most 100 characters", fields["plot_id"])
		assert.Equal(t, "This field is required", fields["seed_id"])
	})

	t.Run("numeric bounds", func(t *testing.T) {
		err := v.ValidateStruct(CreditXPRequest{SessionID: "alice", Amount: 0})
		require.Error(t, err)
		assert.Equal(t, map[string]string{"amount": "Must be at least 1"}, FormatValidationError(err))
	})

	t.Run("non validation error", func(t *testing.T) {
		fields := FormatValidationError(errors.New("boom"))
		assert.Equal(t, "Invalid request format", fields["error"])
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}
