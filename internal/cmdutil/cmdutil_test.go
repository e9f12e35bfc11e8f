package cmdutil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, LogLevel(false, false))
	assert.Equal(t, slog.LevelDebug, LogLevel(false, true))
	assert.Equal(t, slog.LevelError, LogLevel(true, true))
}

func TestNewLoggerJSONCarriesRunAttrs(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(&buf, slog.LevelInfo, LogFormatJSON)
	require.NoError(t, err)

	log.Info("hello", "reads", 3)
	log.Debug("hidden")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, serviceName, rec[attrService])
	assert.NotEmpty(t, rec[attrRunID])
	assert.EqualValues(t, 3, rec["reads"])
}

func TestNewLoggerRejectsUnknownFormat(t *testing.T) {
	_, err := NewLogger(io.Discard, slog.LevelInfo, "xml")
	assert.Error(t, err)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
		msg  string
	}{
		{"ok", nil, ExitOK, ""},
		{"broken pipe", fmt.Errorf("write: %w", syscall.EPIPE), ExitOK, ""},
		{"canceled", fmt.Errorf("ingest: %w", context.Canceled), ExitInterrupted, "interrupted"},
		{"usage", Usagef("need one input"), ExitUsage, "need one input"},
		{"failure", errors.New("boom"), ExitFailure, "Error: boom"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stderr bytes.Buffer
			assert.Equal(t, tc.want, ExitCode(tc.err, &stderr))
			if tc.msg == "" {
				assert.Empty(t, stderr.String())
			} else {
				assert.Contains(t, stderr.String(), tc.msg)
			}
		})
	}
}
