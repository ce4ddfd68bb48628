package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestGetEnvAsInt tests the getEnvAsInt helper function
func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name     string
		value    *string
		expected int
	}{
		{"returns default value when env var not set", nil, 42},
		{"parses valid integer from env var", strPtr("100"), 100},
		{"returns default for invalid integer", strPtr("not-a-number"), 42},
		{"parses negative integers", strPtr("-10"), -10},
		{"parses zero", strPtr("0"), 0},
		{"returns default for float values", strPtr("42.5"), 42},
		{"returns default for empty string", strPtr(""), 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, "TEST_INT_VAR", tt.value)
			assert.Equal(t, tt.expected, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

// TestGetEnvAsDuration tests the getEnvAsDuration helper function
func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    *string
		expected time.Duration
	}{
		{"returns default value when env var not set", nil, 5 * time.Minute},
		{"parses seconds", strPtr("30s"), 30 * time.Second},
		{"parses milliseconds", strPtr("250ms"), 250 * time.Millisecond},
		{"parses compound duration", strPtr("1h30m"), 90 * time.Minute},
		{"parses zero", strPtr("0s"), 0},
		{"parses negative", strPtr("-1s"), -time.Second},
		{"returns default for bare number", strPtr("30"), 5 * time.Minute},
		{"returns default for garbage", strPtr("soon"), 5 * time.Minute},
		{"returns default for empty string", strPtr(""), 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, "TEST_DURATION_VAR", tt.value)
			assert.Equal(t, tt.expected, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
		})
	}
}

// TestGetEnvAsList tests the getEnvAsList helper function
func TestGetEnvAsList(t *testing.T) {
	tests := []struct {
		name     string
		value    *string
		expected []string
	}{
		{"unset", nil, nil},
		{"empty", strPtr(""), nil},
		{"single", strPtr("harvest"), []string{"harvest"}},
		{"trims and drops blanks", strPtr(" harvest , ,wilt,"), []string{"harvest", "wilt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, "TEST_LIST_VAR", tt.value)
			assert.Equal(t, tt.expected, getEnvAsList("TEST_LIST_VAR"))
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Run("set but empty wins over default", func(t *testing.T) {
		t.Setenv("TEST_STR_VAR", "")
		assert.Equal(t, "", getEnv("TEST_STR_VAR", "fallback"))
	})

	t.Run("unset uses default", func(t *testing.T) {
		setOrUnset(t, "TEST_STR_VAR", nil)
		assert.Equal(t, "fallback", getEnv("TEST_STR_VAR", "fallback"))
	})
}

func strPtr(s string) *string { return &s }

func setOrUnset(t *testing.T, key string, value *string) {
	t.Helper()
	t.Setenv(key, "")
	if value == nil {
		os.Unsetenv(key)
		return
	}
	t.Setenv(key, *value)
}
