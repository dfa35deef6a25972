package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Level represents the logging level
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

func (l Level) logrusLevel() logrus.Level {
	switch l {
	case DebugLevel:
		return logrus.DebugLevel
	case WarnLevel:
		return logrus.WarnLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case FatalLevel:
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}

// Logger is the interface for logging operations
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
	Fatal(format string, v ...any)
	SetLevel(level Level)
}

// LogConfig holds configuration for the logger
type LogConfig struct {
	// Output destination: "file" or "stderr"
	Output string
	// Log level: "debug", "info", "warn", "error", "fatal"
	Level string
	// FilePath for file output (only used when Output is "file")
	FilePath string
}

type logrusLogger struct {
	base *logrus.Logger
}

// NewLogger creates a new logger based on the provided configuration.
// Empty fields fall back to LOG_OUTPUT, LOG_LEVEL and LOG_FILE_PATH.
func NewLogger(config LogConfig) (Logger, error) {
	writer, err := openOutput(config)
	if err != nil {
		return nil, err
	}

	levelStr := config.Level
	if levelStr == "" {
		levelStr = os.Getenv("LOG_LEVEL")
	}
	if levelStr == "" {
		levelStr = "info"
	}

	return newWithWriter(writer, parseLevel(levelStr)), nil
}

// NewNoOpLogger creates a logger that discards all output (useful for tests)
func NewNoOpLogger() Logger {
	return newWithWriter(io.Discard, FatalLevel)
}

// NewWriterLogger creates a logger that writes to w at the given level
func NewWriterLogger(w io.Writer, level Level) Logger {
	return newWithWriter(w, level)
}

func newWithWriter(w io.Writer, level Level) *logrusLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	l.SetLevel(level.logrusLevel())
	return &logrusLogger{base: l}
}

func openOutput(config LogConfig) (io.Writer, error) {
	output := config.Output
	if output == "" {
		output = os.Getenv("LOG_OUTPUT")
	}
	if output == "" {
		output = "stderr"
	}

	switch output {
	case "stderr":
		return os.Stderr, nil
	case "file":
		filePath := config.FilePath
		if filePath == "" {
			filePath = os.Getenv("LOG_FILE_PATH")
		}
		if filePath == "" {
			// Default to <user cache dir>/guide-splitter/split-guide.log
			cacheDir, err := os.UserCacheDir()
			if err != nil {
				return nil, fmt.Errorf("failed to get user cache directory: %w", err)
			}
			filePath = filepath.Join(cacheDir, "guide-splitter", "split-guide.log")
		}
		if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return file, nil
	default:
		return nil, fmt.Errorf("invalid log output: %s (expected 'file' or 'stderr')", output)
	}
}

// parseLevel converts a string to a Level, defaulting to InfoLevel
func parseLevel(level string) Level {
	if strings.EqualFold(level, "warning") {
		return WarnLevel
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return InfoLevel
	}
	switch parsed {
	case logrus.TraceLevel, logrus.DebugLevel:
		return DebugLevel
	case logrus.WarnLevel:
		return WarnLevel
	case logrus.ErrorLevel:
		return ErrorLevel
	case logrus.FatalLevel, logrus.PanicLevel:
		return FatalLevel
	default:
		return InfoLevel
	}
}

// SetLevel sets the minimum log level
func (l *logrusLogger) SetLevel(level Level) {
	l.base.SetLevel(level.logrusLevel())
}

func (l *logrusLogger) Debug(format string, v ...any) {
	l.base.Debugf(format, v...)
}

func (l *logrusLogger) Info(format string, v ...any) {
	l.base.Infof(format, v...)
}

func (l *logrusLogger) Warn(format string, v ...any) {
	l.base.Warnf(format, v...)
}

func (l *logrusLogger) Error(format string, v ...any) {
	l.base.Errorf(format, v...)
}

// Fatal logs a fatal message and exits with status 1
func (l *logrusLogger) Fatal(format string, v ...any) {
	l.base.Fatalf(format, v...)
}
