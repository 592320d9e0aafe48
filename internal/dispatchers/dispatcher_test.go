package dispatchers

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/da-tools/da/internal/pattern"
	"github.com/da-tools/da/internal/usage"
	"github.com/stretchr/testify/require"
)

// recordingLogger keeps formatted lines per level.
type recordingLogger struct {
	lines map[string][]string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{lines: make(map[string][]string)}
}

func (l *recordingLogger) add(level, format string, args ...any) {
	l.lines[level] = append(l.lines[level], fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Debug(format string, args ...any) { l.add("debug", format, args...) }
func (l *recordingLogger) Info(format string, args ...any)  { l.add("info", format, args...) }
func (l *recordingLogger) Warn(format string, args ...any)  { l.add("warn", format, args...) }
func (l *recordingLogger) Error(format string, args ...any) { l.add("error", format, args...) }
func (l *recordingLogger) Close() error                     { return nil }

func newTestDispatcher(args []string, opts ...Option) (*Dispatcher, *bytes.Buffer) {
	var out bytes.Buffer
	opts = append([]Option{WithOutput(&out), WithErrOutput(&out)}, opts...)
	return New(args, opts...), &out
}

func TestNew_HelpTriggers(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"-h"}, true},
		{[]string{"help"}, true},
		{[]string{"--help"}, true},
		{[]string{"help", "config"}, true},
		{[]string{"config", "help"}, false},
		{[]string{"HELP"}, false},
		{[]string{}, false},
		{nil, false},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			d, _ := newTestDispatcher(tt.args)
			require.Equal(t, tt.want, d.HelpRequested())
			require.False(t, d.Found())
		})
	}
}

func TestNew_CopiesInvocation(t *testing.T) {
	args := []string{"config", "get", "color"}
	d, _ := newTestDispatcher(args)

	args[2] = "changed"
	require.Equal(t, []string{"config", "get", "color"}, d.Invocation())

	got := d.Invocation()
	got[0] = "changed"
	require.Equal(t, "config", d.Invocation()[0])
}

func TestTryPattern_FirstMatchWins(t *testing.T) {
	d, _ := newTestDispatcher([]string{"sh", "bin/upgrade"})

	require.False(t, d.TryPattern("version", ""))
	require.True(t, d.TryPattern("sh <bin/upgrade|sh/upgrade>", ""))
	require.Equal(t, "bin/upgrade", d.Values().String(0))

	// Later calls never win, even when their pattern would match.
	require.False(t, d.TryPattern("sh <cmd>", ""))
	require.False(t, d.TryPattern("[...args]", ""))
	require.True(t, d.Found())
	require.Equal(t, "bin/upgrade", d.Values().String(0))
}

func TestTryPattern_StickyDoesNotCompile(t *testing.T) {
	d, _ := newTestDispatcher([]string{"version"})
	require.True(t, d.TryPattern("version", ""))

	require.NotPanics(t, func() {
		require.False(t, d.TryPattern("[...args] trailing", ""))
	})
}

func TestTryPattern_MalformedPatternPanics(t *testing.T) {
	d, _ := newTestDispatcher([]string{"x"})

	require.Panics(t, func() {
		d.TryPattern("<...args> x", "")
	})
}

func TestTryPattern_NoMatchLeavesStateUntouched(t *testing.T) {
	d, _ := newTestDispatcher([]string{"config", "get"})

	require.False(t, d.TryPattern("config get <key>", ""))
	require.False(t, d.Found())
	require.Nil(t, d.Values())
}

func TestTryPattern_VariadicCapture(t *testing.T) {
	d, _ := newTestDispatcher([]string{"keep", "alive", "this:", "a", "b", "c"})

	require.True(t, d.TryPattern("keep alive this: <...args>", ""))
	values := d.Values()
	require.Len(t, values, 1)
	require.True(t, values[0].IsVector())
	require.Equal(t, []string{"a", "b", "c"}, values.Strings(0))
}

func TestTryPattern_HelpModeRendersEveryPattern(t *testing.T) {
	d, out := newTestDispatcher([]string{"help"})

	require.False(t, d.TryPattern("version", "Print the version."))
	require.False(t, d.TryPattern("config get <key>", "Print a value."))

	require.Equal(t, " version\n  Print the version.\n config get <key>\n  Print a value.\n", out.String())
}

func TestTryPattern_HelpModeRendersAfterMatch(t *testing.T) {
	d, out := newTestDispatcher([]string{"-h"})

	require.True(t, d.TryPattern("-h", "first"))
	require.False(t, d.TryPattern("version", "second"))

	require.Contains(t, out.String(), "first")
	require.Contains(t, out.String(), "second")
}

func TestTryPattern_HelpFilter(t *testing.T) {
	d, out := newTestDispatcher([]string{"--help", "CONFIG"})

	d.TryPattern("version", "Print the version.")
	d.TryPattern("config get <key>", "Print a value.")
	d.TryPattern("config set <key> <value>", "Write a value.")

	require.NotContains(t, out.String(), "version")
	require.Contains(t, out.String(), " config get <key>\n")
	require.Contains(t, out.String(), " config set <key> <value>\n")
}

func TestTryPattern_HelpRenderingDoesNotChangeOutcome(t *testing.T) {
	args := []string{"help", "config"}
	patterns := []string{"version", "help <topic>", "help config", "[...args]"}

	d, _ := newTestDispatcher(args)
	var got []bool
	for _, p := range patterns {
		got = append(got, d.TryPattern(p, "described"))
	}

	var want []bool
	found := false
	for _, p := range patterns {
		ok := !found && pattern.MustCompile(p).Matches(args)
		found = found || ok
		want = append(want, ok)
	}

	require.Equal(t, want, got)
	require.Equal(t, []bool{false, true, false, false}, got)
}

func TestTryPattern_OutputUnaffectedWithoutHelp(t *testing.T) {
	d, out := newTestDispatcher([]string{"version"})

	d.TryPattern("version", "Print the version.")
	require.NoError(t, d.Finalize())
	require.Empty(t, out.String())
}

func TestFinalize(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		try     []string
		wantErr bool
	}{
		{name: "matched", args: []string{"version"}, try: []string{"version"}},
		{name: "help", args: []string{"help"}, try: []string{"version"}},
		{name: "help with search", args: []string{"-h", "conf"}, try: []string{"version"}},
		{name: "help with too many words", args: []string{"--help", "a", "b"}, try: []string{"version"}},
		{name: "unrecognized", args: []string{"nope"}, try: []string{"version"}, wantErr: true},
		{name: "empty invocation", args: []string{}, try: []string{"version"}, wantErr: true},
		{name: "empty invocation with optional route", args: []string{}, try: []string{"[...args]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newTestDispatcher(tt.args)
			for _, p := range tt.try {
				d.TryPattern(p, "")
			}

			err := d.Finalize()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			var usageErr *usage.Error
			require.True(t, errors.As(err, &usageErr))
			require.Equal(t, usage.ErrUnrecognizedCommand, usageErr.Kind)
			require.Equal(t, 1, usageErr.GetExitCode())
		})
	}
}

func TestFinalize_MessageQuotesInvocationAndSuggests(t *testing.T) {
	d, _ := newTestDispatcher([]string{"confg", "get", "two words"})
	d.TryPattern("version", "")
	d.TryPattern("config get <key>", "")

	err := d.Finalize()
	require.Error(t, err)
	require.Contains(t, err.Error(), `Command not recognized: "confg" "get" "two words"`)
	require.Contains(t, err.Error(), "\n\tconfig get <key>")
	require.NotContains(t, err.Error(), HelpPattern)
}

func TestFinalize_RendersHelpPatternInHelpMode(t *testing.T) {
	d, out := newTestDispatcher([]string{"help"})

	require.NoError(t, d.Finalize())
	require.Equal(t, " help|--help|-h [search]\n", out.String())
}

func TestMustFinalize(t *testing.T) {
	t.Run("exits with the error code", func(t *testing.T) {
		code := -1
		d, out := newTestDispatcher([]string{"nope"}, WithExit(func(c int) { code = c }))

		d.MustFinalize()

		require.Equal(t, 1, code)
		require.Contains(t, out.String(), `Command not recognized: "nope"`)
	})

	t.Run("returns when matched", func(t *testing.T) {
		called := false
		d, out := newTestDispatcher([]string{"version"}, WithExit(func(int) { called = true }))
		d.TryPattern("version", "")

		d.MustFinalize()

		require.False(t, called)
		require.Empty(t, out.String())
	})
}

func TestDispatcher_Logging(t *testing.T) {
	logger := newRecordingLogger()
	d, _ := newTestDispatcher([]string{"version"}, WithLogger(logger))
	d.TryPattern("version", "")
	require.Len(t, logger.lines["debug"], 1)
	require.Contains(t, logger.lines["debug"][0], `"version"`)

	logger = newRecordingLogger()
	d, _ = newTestDispatcher([]string{"nope"}, WithLogger(logger))
	require.Error(t, d.Finalize())
	require.Len(t, logger.lines["warn"], 1)
	require.Contains(t, logger.lines["warn"][0], `"nope"`)
}

func TestDispatcher_IndependentParses(t *testing.T) {
	first, _ := newTestDispatcher([]string{"version"})
	second, _ := newTestDispatcher([]string{"other"})

	require.True(t, first.TryPattern("version", ""))
	require.False(t, second.TryPattern("version", ""))
	require.True(t, second.TryPattern("other", ""))
}
