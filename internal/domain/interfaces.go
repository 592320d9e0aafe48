package domain

import (
	"io"
)

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set writes a configuration value and reports whether the key
	// already had one.
	Set(key, value string) (updated bool, err error)

	// Unset removes a configuration value and reports whether it was set.
	Unset(key string) (removed bool, err error)
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Command styles the command word of a help line.
	Command(text string) string

	// Enumeration styles a word listing alternatives (a|b|c).
	Enumeration(text string) string

	// Placeholder styles a bracketed argument placeholder.
	Placeholder(text string) string

	// Success styles text as success.
	Success(text string) string

	// Error styles text as error.
	Error(text string) string

	// Muted styles text as muted.
	Muted(text string) string
}

// Application represents the main application context with all dependencies.
type Application struct {
	Config  ConfigProvider
	Logger  Logger
	Output  OutputWriter
	Styler  Styler
	RunID   string
	LogPath string
}
