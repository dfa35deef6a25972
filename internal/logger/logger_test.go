package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{"trace", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"fatal", FatalLevel},
		{"", InfoLevel},
		{"nonsense", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "FATAL", FatalLevel.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestWriterLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf, InfoLevel)

	log.Debug("hidden %d", 1)
	log.Info("shown %d", 2)
	log.Warn("warned")

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, "level=warning")

	buf.Reset()
	log.SetLevel(DebugLevel)
	log.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "split.log")

	log, err := NewLogger(LogConfig{Output: "file", Level: "debug", FilePath: path})
	require.NoError(t, err)

	log.Debug("written to %s", "file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestNewLogger_EnvFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv("LOG_OUTPUT", "file")
	t.Setenv("LOG_FILE_PATH", path)
	t.Setenv("LOG_LEVEL", "error")

	log, err := NewLogger(LogConfig{})
	require.NoError(t, err)

	log.Info("dropped")
	log.Error("kept")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}

func TestNewLogger_InvalidOutput(t *testing.T) {
	_, err := NewLogger(LogConfig{Output: "syslog"})
	assert.Error(t, err)
}

func TestNoOpLogger(t *testing.T) {
	log := NewNoOpLogger()
	log.Info("nothing")
	log.Error("nothing")
}
