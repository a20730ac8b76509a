package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the component-keyed logging surface used across the application.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

type Options struct {
	Level string
	JSON  bool
	Out   io.Writer
}

// New builds the application logger. Console output is the default, JSON when requested.
func New(opts Options) *ZerologAdapter {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	level := ParseLevel(opts.Level)
	if opts.JSON {
		return NewZerolog(out, level)
	}
	return NewZerolog(zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}, level)
}

// ParseLevel maps a config string to a zerolog level, falling back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NoOpLogger discards everything. Used by tests.
type NoOpLogger struct{}

func (NoOpLogger) Debug(component, message string, fields map[string]interface{})   {}
func (NoOpLogger) Info(component, message string, fields map[string]interface{})    {}
func (NoOpLogger) Warning(component, message string, fields map[string]interface{}) {}
func (NoOpLogger) Error(component string, err error, fields map[string]interface{}) {}
