package utils

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoggerRenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Error("advance failed", "error", errors.New("boom"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "err=boom")
	assert.NotContains(t, out, "error=boom")
	assert.Contains(t, out, "app=go-life")
}

func TestLoggerRoundsDurations(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, slog.LevelDebug)

	logger.Debug("advanced generation", "elapsed", 1234567*time.Nanosecond)
	assert.Contains(t, buf.String(), "elapsed=1.235ms")
}

func TestNopLogger(t *testing.T) {
	assert.NotPanics(t, func() { NewNopLogger().Info("dropped") })
}

func TestNewLoggerWritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, slog.LevelWarn).Warn("slow generation")
	assert.Contains(t, buf.String(), "msg=\"slow generation\"")
}
