package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	charm "github.com/charmbracelet/log"

	errUtils "github.com/cloudposse/testprune/errors"
	"github.com/cloudposse/testprune/pkg/schema"
)

// LogLevel is the level name accepted in configuration and on the command line.
type LogLevel string

const (
	LogLevelOff     LogLevel = "Off"
	LogLevelTrace   LogLevel = "Trace"
	LogLevelDebug   LogLevel = "Debug"
	LogLevelInfo    LogLevel = "Info"
	LogLevelWarning LogLevel = "Warning"
)

const (
	// TraceLevel sits one step below charm's debug level.
	TraceLevel = charm.DebugLevel - 1
	DebugLevel = charm.DebugLevel
	InfoLevel  = charm.InfoLevel
	WarnLevel  = charm.WarnLevel
	ErrorLevel = charm.ErrorLevel

	// offLevel is above every level charm emits.
	offLevel = charm.FatalLevel + 1
)

const (
	devStdout = "/dev/stdout"
	devStderr = "/dev/stderr"
	devNull   = "/dev/null"
)

// Logger wraps a charm logger and owns the log file it writes to, if any.
type Logger struct {
	*charm.Logger
	closer io.Closer
}

// NewLogger builds a Logger for level writing to file.
// An empty file means stderr.
func NewLogger(level charm.Level, file string) (*Logger, error) {
	out, closer, err := openLogOutput(file)
	if err != nil {
		return nil, err
	}

	l := charm.NewWithOptions(out, charm.Options{
		Level:           level,
		ReportTimestamp: false,
	})
	l.SetStyles(levelStyles())

	return &Logger{Logger: l, closer: closer}, nil
}

// NewLoggerFromCliConfig builds a Logger from the logs section of the configuration.
func NewLoggerFromCliConfig(cfg *schema.Configuration) (*Logger, error) {
	level, err := ParseLogLevel(cfg.Logs.Level)
	if err != nil {
		return nil, err
	}
	return NewLogger(level.CharmLevel(), cfg.Logs.File)
}

// Close releases the log file opened for this logger.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Trace logs msg below debug level.
func (l *Logger) Trace(msg any, keyvals ...any) {
	l.Log(TraceLevel, msg, keyvals...)
}

// GetLevelString returns the configured level name, reporting "trace" for TraceLevel.
func (l *Logger) GetLevelString() string {
	if l.GetLevel() == TraceLevel {
		return "trace"
	}
	return l.GetLevel().String()
}

// ParseLogLevel validates a configured level name. Empty means Info.
func ParseLogLevel(level string) (LogLevel, error) {
	if level == "" {
		return LogLevelInfo, nil
	}

	switch LogLevel(level) {
	case LogLevelOff, LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarning:
		return LogLevel(level), nil
	default:
		return "", fmt.Errorf("%w: '%s'. Supported log levels are Trace, Debug, Info, Warning, Off", errUtils.ErrInvalidLogLevel, level)
	}
}

// CharmLevel maps the level name to the charm logger level.
func (l LogLevel) CharmLevel() charm.Level {
	switch l {
	case LogLevelTrace:
		return TraceLevel
	case LogLevelDebug:
		return DebugLevel
	case LogLevelWarning:
		return WarnLevel
	case LogLevelOff:
		return offLevel
	default:
		return InfoLevel
	}
}

func openLogOutput(file string) (io.Writer, io.Closer, error) {
	switch file {
	case "", devStderr:
		return os.Stderr, nil, nil
	case devStdout:
		return os.Stdout, nil, nil
	case devNull:
		return io.Discard, nil, nil
	}

	f, err := os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", file, err)
	}
	return f, f, nil
}

func levelStyles() *charm.Styles {
	styles := charm.DefaultStyles()
	styles.Levels[TraceLevel] = lipgloss.NewStyle().
		SetString("TRCE").
		Bold(true).
		MaxWidth(4).
		Foreground(lipgloss.Color("63"))
	styles.Levels[DebugLevel] = styles.Levels[DebugLevel].SetString("DEBU")
	styles.Levels[InfoLevel] = styles.Levels[InfoLevel].SetString("INFO")
	styles.Levels[WarnLevel] = styles.Levels[WarnLevel].SetString("WARN")
	styles.Levels[ErrorLevel] = styles.Levels[ErrorLevel].SetString("EROR")
	return styles
}
