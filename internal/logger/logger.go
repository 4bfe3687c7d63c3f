package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps the zap logger with additional functionality
type Logger struct {
	*zap.Logger
}

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// NewLogger creates a new logger instance with production configuration at info level.
func NewLogger() (*Logger, error) {
	return NewLoggerWithLevel("info")
}

// NewLoggerWithLevel creates a production logger that writes JSON to stdout at the given level
// (debug, info, warn or error).
func NewLoggerWithLevel(level string) (*Logger, error) {
	return newLogger(level, "stdout")
}

// NewStderrLogger creates a production logger that writes to stderr, leaving stdout to
// command output.
func NewStderrLogger(level string) (*Logger, error) {
	return newLogger(level, "stderr")
}

func newLogger(level string, output string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	config := zap.NewProductionConfig()

	config.OutputPaths = []string{output}

	// Set the error output to stderr
	config.ErrorOutputPaths = []string{"stderr"}

	config.Level = zap.NewAtomicLevelAt(lvl)

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{
		Logger: zapLogger,
	}, nil
}

// NewNopLogger returns a logger that discards everything. Used by tests and benchmarks.
func NewNopLogger() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Default returns a process-wide info logger, falling back to a no-op logger when
// the production config cannot be built.
func Default() *Logger {
	defaultOnce.Do(func() {
		l, err := NewLogger()
		if err != nil {
			l = NewNopLogger()
		}

		defaultLogger = l
	})

	return defaultLogger
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	if l.Logger != nil {
		return l.Logger.Sync()
	}

	return nil
}
