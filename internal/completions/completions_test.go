package completions

import (
	"bytes"
	"strings"
	"testing"

	"github.com/da-tools/da/internal/dispatchers"
	"github.com/stretchr/testify/require"
)

var testRoutes = []dispatchers.Route{
	{Pattern: "version"},
	{Pattern: "<--version|-v>"},
	{Pattern: "config get <key>"},
	{Pattern: "config set <key> <value>"},
	{Pattern: "config list [*plain|json]"},
	{Pattern: "completions script <bash|zsh|fish>"},
	{Pattern: "broken [...args] x"},
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  []string
	}{
		{"top level", nil, []string{"--version", "-v", "completions", "config", "version"}},
		{"group", []string{"config"}, []string{"get", "list", "set"}},
		{"menu", []string{"config", "list"}, []string{"json", "plain"}},
		{"shells", []string{"completions", "script"}, []string{"bash", "fish", "zsh"}},
		{"positional", []string{"config", "get"}, nil},
		{"unknown", []string{"nope"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Candidates(testRoutes, tt.words))
		})
	}
}

func TestShell_Valid(t *testing.T) {
	for _, s := range Shells {
		require.True(t, s.Valid())
	}
	require.False(t, Shell("powershell").Valid())
	require.False(t, Shell("").Valid())
}

func TestRunningShell(t *testing.T) {
	tests := []struct {
		env  string
		want Shell
	}{
		{"/bin/bash", ShellBash},
		{"/usr/bin/zsh", ShellZsh},
		{"/opt/homebrew/bin/fish", ShellFish},
		{"/bin/tcsh", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("SHELL", tt.env)
			require.Equal(t, tt.want, RunningShell())
		})
	}
}

func TestScript(t *testing.T) {
	tests := []struct {
		shell  Shell
		checks []string
	}{
		{ShellBash, []string{"# da bash completion script", "_da_completions()", "complete -F _da_completions da", "'/usr/bin/da' completions complete"}},
		{ShellZsh, []string{"#compdef da", "compdef _da da", "'/usr/bin/da' completions complete"}},
		{ShellFish, []string{"complete -c da -f -a", `'("/usr/bin/da" completions complete (commandline -opc)[2..-1]`}},
	}

	for _, tt := range tests {
		t.Run(string(tt.shell), func(t *testing.T) {
			script := Script(tt.shell, "da", "/usr/bin/da")
			for _, check := range tt.checks {
				require.Contains(t, script, check)
			}
		})
	}

	require.Empty(t, Script("powershell", "da", "da"))
}

func TestScript_QuotesBinaryPath(t *testing.T) {
	tests := []struct {
		shell Shell
		path  string
		want  string
	}{
		{ShellBash, "/opt/my tools/da", `'/opt/my tools/da' completions complete`},
		{ShellZsh, "/opt/my tools/da", `'/opt/my tools/da' completions complete`},
		{ShellBash, "/opt/bob's/da", `'/opt/bob'\''s/da' completions complete`},
		{ShellFish, "/opt/my tools/da", `-a '("/opt/my tools/da" completions complete`},
		{ShellFish, "/opt/bob's/da", `-a '("/opt/bob\'s/da" completions complete`},
		{ShellFish, "/opt/$HOME/da", `-a '("/opt/\\$HOME/da" completions complete`},
	}

	for _, tt := range tests {
		t.Run(string(tt.shell)+" "+tt.path, func(t *testing.T) {
			require.Contains(t, Script(tt.shell, "da", tt.path), tt.want)
		})
	}
}

func TestScript_SanitizesFunctionName(t *testing.T) {
	script := Script(ShellBash, "da-dev", "/tmp/da-dev")

	require.Contains(t, script, "_da_dev_completions()")
	require.Contains(t, script, "complete -F _da_dev_completions da-dev")
}

func TestPrintScript(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintScript(&buf, ShellFish))
	require.True(t, strings.HasPrefix(buf.String(), "# "))

	require.Error(t, PrintScript(&buf, "powershell"))
}

func TestInstallHelpers(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.Contains(t, SourceInstructions(ShellBash), "completions script bash")
	require.Contains(t, SourceInstructions(ShellFish), "completions script fish | source")
	require.Empty(t, SourceInstructions("powershell"))

	require.Equal(t, "~/.zshrc", RcFile(ShellZsh))
	require.Empty(t, RcFile("powershell"))

	require.True(t, strings.HasPrefix(AutoInstallPath(ShellFish), home))
	require.Empty(t, AutoInstallPath(ShellZsh))
}
