package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	charm "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/testprune/errors"
	"github.com/cloudposse/testprune/pkg/schema"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		hasError bool
	}{
		{"Trace", LogLevelTrace, false},
		{"Debug", LogLevelDebug, false},
		{"Info", LogLevelInfo, false},
		{"Warning", LogLevelWarning, false},
		{"Off", LogLevelOff, false},
		{"", LogLevelInfo, false},
		{"trace", "", true},
		{"Debug!", "", true},
		{"Invalid", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLogLevel(tt.input)
			if tt.hasError {
				assert.ErrorIs(t, err, errUtils.ErrInvalidLogLevel)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLogLevel_CharmLevel(t *testing.T) {
	assert.Equal(t, TraceLevel, LogLevelTrace.CharmLevel())
	assert.Equal(t, charm.DebugLevel, LogLevelDebug.CharmLevel())
	assert.Equal(t, charm.InfoLevel, LogLevelInfo.CharmLevel())
	assert.Equal(t, charm.WarnLevel, LogLevelWarning.CharmLevel())
	assert.Greater(t, int(LogLevelOff.CharmLevel()), int(charm.FatalLevel))
}

func TestTraceLevel_RelativeToDebug(t *testing.T) {
	assert.Equal(t, charm.DebugLevel-1, TraceLevel)
}

func TestNewLoggerFromCliConfig_File(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "testprune.log")
	cfg := &schema.Configuration{Logs: schema.Logs{Level: "Debug", File: logFile}}

	l, err := NewLoggerFromCliConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, charm.DebugLevel, l.GetLevel())

	l.Debug("resolving impact", "changed", 2)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "resolving impact")
}

func TestNewLoggerFromCliConfig_InvalidLevel(t *testing.T) {
	_, err := NewLoggerFromCliConfig(&schema.Configuration{Logs: schema.Logs{Level: "Loud"}})
	assert.ErrorIs(t, err, errUtils.ErrInvalidLogLevel)
}

func TestLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)

	l.SetLevel(DebugLevel)
	l.Trace("hidden trace")
	assert.Empty(t, buf.String())

	l.SetLevel(TraceLevel)
	l.Trace("visible trace", "node", "Root")
	assert.Contains(t, buf.String(), "visible trace")
	assert.Equal(t, "trace", l.GetLevelString())
}

func TestPackageLevelFunctions(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetLevel(TraceLevel)
	SetDefault(l)

	Trace("package trace")
	Info("package info", "kept", 3)
	assert.Contains(t, buf.String(), "package trace")
	assert.Contains(t, buf.String(), "package info")

	SetDefault(nil)
	assert.Same(t, l, Default())
}

func TestOffLevelSilencesErrors(t *testing.T) {
	l, err := NewLogger(LogLevelOff.CharmLevel(), devNull)
	require.NoError(t, err)

	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.Error("should not appear")
	assert.Empty(t, buf.String())
}
