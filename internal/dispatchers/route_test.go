package dispatchers

import (
	"errors"
	"testing"

	"github.com/da-tools/da/internal/pattern"
	"github.com/da-tools/da/internal/usage"
	"github.com/stretchr/testify/require"
)

type call struct {
	route  string
	values pattern.Captures
}

func testRoutes(calls *[]call) []Route {
	record := func(name string) ActionFunc {
		return func(values pattern.Captures) error {
			*calls = append(*calls, call{route: name, values: values})
			return nil
		}
	}
	return []Route{
		{Pattern: "version", Description: "Print the version.", Action: record("version")},
		{Pattern: "config get <key>", Description: "Print a value.", Action: record("config get")},
		{Pattern: "config <key>", Description: "Shadowed by config get.", Action: record("config key")},
		{Pattern: "config list [*plain|json]", Description: "List values.", Action: record("config list")},
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantRoute string
		wantValue []string
	}{
		{"literal", []string{"version"}, "version", []string{}},
		{"first match wins", []string{"config", "get"}, "config key", []string{"get"}},
		{"positional", []string{"config", "get", "color"}, "config get", []string{"color"}},
		{"menu default", []string{"config", "list"}, "config list", []string{"plain"}},
		{"menu option", []string{"config", "list", "json"}, "config list", []string{"json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []call
			d, out := newTestDispatcher(tt.args)

			require.NoError(t, Run(d, testRoutes(&calls)))
			require.Empty(t, out.String())
			require.Len(t, calls, 1)
			require.Equal(t, tt.wantRoute, calls[0].route)

			got := []string{}
			for i := range calls[0].values {
				got = append(got, calls[0].values.String(i))
			}
			require.Equal(t, tt.wantValue, got)
		})
	}
}

func TestRun_HelpListsRoutesWithoutRunning(t *testing.T) {
	var calls []call
	d, out := newTestDispatcher([]string{"help"})

	require.NoError(t, Run(d, testRoutes(&calls)))
	require.Empty(t, calls)

	want := " version\n  Print the version.\n" +
		" config get <key>\n  Print a value.\n" +
		" config <key>\n  Shadowed by config get.\n" +
		" config list [*plain|json]\n  List values.\n" +
		" help|--help|-h [search]\n"
	require.Equal(t, want, out.String())
}

func TestRun_HelpFilter(t *testing.T) {
	var calls []call
	d, out := newTestDispatcher([]string{"help", "list"})

	require.NoError(t, Run(d, testRoutes(&calls)))
	require.Equal(t, " config list [*plain|json]\n  List values.\n", out.String())
}

func TestRun_Unrecognized(t *testing.T) {
	var calls []call
	d, _ := newTestDispatcher([]string{"versoin"})

	err := Run(d, testRoutes(&calls))
	require.Empty(t, calls)

	var usageErr *usage.Error
	require.True(t, errors.As(err, &usageErr))
	require.Equal(t, usage.ErrUnrecognizedCommand, usageErr.Kind)
	require.Contains(t, err.Error(), "\n\tversion")
}

func TestRun_ActionErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	routes := []Route{{Pattern: "fail", Action: func(pattern.Captures) error { return boom }}}
	d, _ := newTestDispatcher([]string{"fail"})

	require.ErrorIs(t, Run(d, routes), boom)
}

func TestRun_NilAction(t *testing.T) {
	d, _ := newTestDispatcher([]string{"noop"})
	require.NoError(t, Run(d, []Route{{Pattern: "noop"}}))
	require.True(t, d.Found())
}
