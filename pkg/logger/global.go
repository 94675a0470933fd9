package logger

import (
	"os"
	"sync/atomic"

	charm "github.com/charmbracelet/log"
)

var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(New())
}

// Default returns the process-wide logger.
func Default() *Logger {
	return defaultLogger.Load().(*Logger)
}

// SetDefault replaces the process-wide logger. Nil is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// New returns an info-level logger on stderr.
func New() *Logger {
	l := charm.NewWithOptions(os.Stderr, charm.Options{Level: InfoLevel})
	l.SetStyles(levelStyles())
	return &Logger{Logger: l}
}

func Trace(msg any, keyvals ...any) { Default().Trace(msg, keyvals...) }
func Debug(msg any, keyvals ...any) { Default().Debug(msg, keyvals...) }
func Info(msg any, keyvals ...any)  { Default().Info(msg, keyvals...) }
func Warn(msg any, keyvals ...any)  { Default().Warn(msg, keyvals...) }
func Error(msg any, keyvals ...any) { Default().Error(msg, keyvals...) }
