//go:build unit
// +build unit

package logger

import (
	"bytes"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/config"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer

	// Create logger with custom output for testing
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	handler := slog.NewTextHandler(&buf, opts)
	logger := &ConsoleLogger{logger: slog.New(handler)}

	// Log messages at different levels
	logger.Info("tenant mercado-central resolved")
	logger.Warn("stock below threshold")
	logger.Error("payment rejected")

	// Verify output contains all messages
	output := buf.String()
	assert.Contains(t, output, "tenant mercado-central resolved")
	assert.Contains(t, output, "stock below threshold")
	assert.Contains(t, output, "payment rejected")
}

func TestNewConsoleLogger(t *testing.T) {
	logger := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, logger)

	// Verify it satisfies the Logger interface and doesn't panic
	require.NotPanics(t, func() {
		logger.Info("cart created")
		logger.Warn("cart expired")
		logger.Error("cart missing")
	})
}
