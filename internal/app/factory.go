package app

import (
	"io"
	"os"

	"github.com/da-tools/da/internal/config"
	"github.com/da-tools/da/internal/domain"
	"github.com/da-tools/da/internal/log"
	"github.com/da-tools/da/internal/paths"
	"github.com/da-tools/da/internal/ui"
	"github.com/da-tools/da/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Log options
	LogEnabled bool
	LogLevel   log.Level
	LogPath    string

	// Style options: Color is the `color` config value (auto, always, never).
	Color      string
	IsTerminal bool

	// Output defaults to stdout when nil.
	Output io.Writer
}

// DefaultOptions reads the options from the user's config and terminal.
func DefaultOptions() Options {
	logEnabled, _ := config.Get("enable_log")
	logLevel, _ := config.Get("log_level")
	color, _ := config.Get("color")

	return Options{
		LogEnabled: logEnabled == "true",
		LogLevel:   log.ParseLevel(logLevel),
		LogPath:    paths.LogFilePath(),
		Color:      color,
		IsTerminal: ui.IsTerminal(os.Stdout),
	}
}

// New creates a new Application with all dependencies wired up.
// The file logger also becomes the process-wide default logger.
func New(opts Options) *domain.Application {
	runID := log.NewRunID()

	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled && opts.LogPath != "" {
		l, err := log.New(opts.LogPath, opts.LogLevel, log.WithRunID(runID))
		if err == nil {
			log.SetDefault(l)
			logger = l
		}
	}

	style.Init(style.ShouldEnable(opts.Color, opts.IsTerminal))

	output := ui.NewWriter()
	if opts.Output != nil {
		output = ui.NewWriterTo(opts.Output)
	}

	return &domain.Application{
		Config:  config.NewProvider(),
		Logger:  logger,
		Output:  output,
		Styler:  style.NewStyler(),
		RunID:   runID,
		LogPath: opts.LogPath,
	}
}

// NewForTesting creates an Application suitable for testing.
// Uses NopLogger, no styling, discards output and has no log file.
func NewForTesting() *domain.Application {
	return &domain.Application{
		Config: config.NewProvider(),
		Logger: log.NopLogger{},
		Output: ui.NewWriterTo(io.Discard),
		Styler: style.NopStyler{},
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	log.SetDefault(nil)
	return nil
}
