package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureJSON(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{
		Level:       level,
		Format:      LogFormatJSON,
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: EnvironmentTest,
	}, &buf)
	return &buf
}

func TestJSONLogging(t *testing.T) {
	buf := captureJSON(t, LogLevelInfo)

	Info("test message", "key", "value", "number", 42)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, EnvironmentTest, entry["environment"])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, float64(42), entry["number"])
}

func TestLevelFiltering(t *testing.T) {
	buf := captureJSON(t, LogLevelWarn)

	Debug("hidden")
	Info("hidden")
	assert.Empty(t, buf.String())

	Warn("shown")
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")

	assert.Equal(t, "test-req-123", GetRequestID(ctx))
	assert.Empty(t, GetRequestID(context.Background()))
	assert.NotNil(t, FromContext(ctx))
}

func TestFromContext_AddsAttributes(t *testing.T) {
	buf := captureJSON(t, LogLevelInfo)

	ctx := WithSessionID(WithRequestID(context.Background(), "req-1"), "learner-42")
	FromContext(ctx).Info("planted")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry[AttrKeyRequestID])
	assert.Equal(t, "learner-42", entry[AttrKeySessionID])
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{Level: tt.in}.LogLevel())
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, DefaultServiceName, config.ServiceName)
	assert.NotEmpty(t, config.Level)
	assert.NotEmpty(t, config.Format)
}

func TestProductionConfig(t *testing.T) {
	config := ProductionConfig()

	assert.True(t, config.IsJSON())
	assert.Equal(t, LogLevelInfo, config.Level)
	assert.Equal(t, EnvironmentProduction, config.Environment)
	assert.False(t, config.AddSource)
}

func TestDevelopmentConfig(t *testing.T) {
	config := DevelopmentConfig()

	assert.False(t, config.IsJSON())
	assert.Equal(t, LogLevelDebug, config.Level)
	assert.True(t, config.AddSource)
}
