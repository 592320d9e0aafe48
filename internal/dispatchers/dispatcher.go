package dispatchers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/da-tools/da/internal/domain"
	"github.com/da-tools/da/internal/log"
	"github.com/da-tools/da/internal/pattern"
	"github.com/da-tools/da/internal/ui/style"
	"github.com/da-tools/da/internal/usage"
)

// HelpPattern is the help entry Finalize adds to the list of patterns.
const HelpPattern = "help|--help|-h [search]"

var helpTriggers = []string{"-h", "help", "--help"}

// Dispatcher routes one invocation to the first pattern that matches it.
//
// Call TryPattern once per command branch, in order. The first successful
// call wins; every later call returns false without compiling its pattern.
// Finalize reports an unrecognized command when nothing won.
//
// A Dispatcher holds the state of a single parse and is not reusable;
// create a new one for each invocation.
type Dispatcher struct {
	invocation    []string
	found         bool
	helpRequested bool
	captured      pattern.Captures
	seen          []string

	out    io.Writer
	errOut io.Writer
	exit   func(int)
	logger domain.Logger
	styler domain.Styler
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithOutput sets where help lines are written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(d *Dispatcher) {
		d.out = w
	}
}

// WithErrOutput sets where MustFinalize reports failures. Defaults to stderr.
func WithErrOutput(w io.Writer) Option {
	return func(d *Dispatcher) {
		d.errOut = w
	}
}

// WithExit replaces os.Exit in MustFinalize.
func WithExit(fn func(int)) Option {
	return func(d *Dispatcher) {
		d.exit = fn
	}
}

// WithLogger sets the logger used to trace dispatch decisions.
func WithLogger(l domain.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// WithStyler sets the styler used for help output.
func WithStyler(s domain.Styler) Option {
	return func(d *Dispatcher) {
		d.styler = s
	}
}

// New creates a Dispatcher for args, the process arguments without the
// program name. Help mode is on when the first argument is -h, help or --help.
func New(args []string, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		invocation: slices.Clone(args),
		out:        os.Stdout,
		errOut:     os.Stderr,
		exit:       os.Exit,
		logger:     log.NopLogger{},
		styler:     style.NopStyler{},
	}
	if d.invocation == nil {
		d.invocation = []string{}
	}
	if len(args) > 0 && slices.Contains(helpTriggers, args[0]) {
		d.helpRequested = true
	}

	for _, opt := range opts {
		opt(d)
	}
	return d
}

// TryPattern offers one command branch. In help mode the pattern is rendered
// first, unless a search term was given and the pattern text does not
// contain it. It returns true only for the first pattern that matches the
// invocation. A malformed pattern panics.
func (d *Dispatcher) TryPattern(raw, description string) bool {
	d.seen = append(d.seen, raw)

	if d.helpRequested && matchesFilter(raw, d.search()) {
		RenderHelp(d.out, d.styler, raw, description)
	}

	if d.found {
		return false
	}

	captures, ok := pattern.MustCompile(raw).Evaluate(d.invocation)
	if !ok {
		return false
	}

	d.captured = captures
	d.found = true
	d.logger.Debug("dispatch: %q matched %q", raw, d.invocation)
	return true
}

func (d *Dispatcher) search() string {
	if len(d.invocation) < 2 {
		return ""
	}
	return d.invocation[1]
}

// Values returns the captures of the winning pattern, or nil before any
// pattern matched.
func (d *Dispatcher) Values() pattern.Captures {
	return d.captured
}

// Found reports whether a pattern has matched.
func (d *Dispatcher) Found() bool {
	return d.found
}

// HelpRequested reports whether the dispatcher is in help mode.
func (d *Dispatcher) HelpRequested() bool {
	return d.helpRequested
}

// Invocation returns a copy of the arguments being dispatched.
func (d *Dispatcher) Invocation() []string {
	return slices.Clone(d.invocation)
}

// Finalize offers HelpPattern and returns an unrecognized-command error
// when neither a pattern matched nor help was requested.
func (d *Dispatcher) Finalize() error {
	d.TryPattern(HelpPattern, "")

	if d.found || d.helpRequested {
		return nil
	}

	d.logger.Warn("dispatch: unrecognized command %q", d.invocation)
	suggestions := FindSimilarPatterns(d.invocation, d.seen[:len(d.seen)-1], defaultSuggestionsCount)
	return usage.UnrecognizedCommand(d.invocation, suggestions...)
}

// MustFinalize calls Finalize and, on failure, prints the error and exits
// with its exit code.
func (d *Dispatcher) MustFinalize() {
	err := d.Finalize()
	if err == nil {
		return
	}

	code := 1
	var usageErr *usage.Error
	if errors.As(err, &usageErr) {
		code = usageErr.GetExitCode()
	}

	fmt.Fprintln(d.errOut, d.styler.Error(err.Error()))
	d.exit(code)
}
