package config

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/da-tools/da/internal/ui/style"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, m configModel, keys ...string) (configModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, c := m.Update(msg)
		m = next.(configModel)
		cmd = c
	}
	return m, cmd
}

func editorFor(cfg *memoryConfig) configModel {
	style.Init(false)
	current := map[string]string{"color": "auto", "enable_log": "true", "log_level": "warn"}
	for k, v := range cfg.values {
		current[k] = v
	}
	return newConfigModel(cfg, current)
}

func requireQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestConfigModel_Navigation(t *testing.T) {
	m := editorFor(newMemoryConfig(nil))

	m, _ = press(t, m, "k")
	require.Equal(t, len(m.keys)-1, m.cursor, "up from the top wraps")

	m, _ = press(t, m, "j")
	require.Equal(t, 0, m.cursor, "down from the bottom wraps")

	m, _ = press(t, m, "down", "down", "up")
	require.Equal(t, 1, m.cursor)
}

func TestConfigModel_CycleAllowedValues(t *testing.T) {
	cfg := newMemoryConfig(nil)
	m := editorFor(cfg)

	m, _ = press(t, m, "tab")
	require.Equal(t, "always", cfg.values["color"])
	require.Equal(t, "always", m.values["color"])
	require.True(t, m.changed)

	m, _ = press(t, m, "tab", "tab")
	require.Equal(t, "auto", cfg.values["color"], "cycle wraps")
	require.Equal(t, 3, cfg.writes)
}

func TestConfigModel_EditAndSave(t *testing.T) {
	cfg := newMemoryConfig(nil)
	m := editorFor(cfg)

	m, _ = press(t, m, "down", "down", "enter")
	require.True(t, m.editing)
	require.Equal(t, "warn", m.input.Value(), "edit starts from the current value")

	m.input.SetValue("debug")
	m, _ = press(t, m, "enter")

	require.False(t, m.editing)
	require.Equal(t, "debug", cfg.values["log_level"])
	require.False(t, m.isError)
	require.Equal(t, "saved log_level=debug", m.message)
}

func TestConfigModel_EditRejectsInvalidValue(t *testing.T) {
	cfg := newMemoryConfig(nil)
	m := editorFor(cfg)

	m, _ = press(t, m, "enter")
	m.input.SetValue("purple")
	m, _ = press(t, m, "enter")

	require.True(t, m.isError)
	require.Contains(t, m.message, "expected one of auto, always, never")
	require.Zero(t, cfg.writes)
	require.Equal(t, "auto", m.values["color"])
}

func TestConfigModel_EditCancel(t *testing.T) {
	cfg := newMemoryConfig(nil)
	m := editorFor(cfg)

	m, cmd := press(t, m, "enter", "esc")

	require.False(t, m.editing)
	require.Nil(t, cmd, "esc while editing does not quit")
	require.Zero(t, cfg.writes)
}

func TestConfigModel_ResetToDefault(t *testing.T) {
	cfg := newMemoryConfig(map[string]string{"color": "never"})
	m := editorFor(cfg)

	m, _ = press(t, m, "d")
	require.Equal(t, "auto", m.values["color"])
	require.NotContains(t, cfg.values, "color")
	require.Equal(t, "reset color to auto", m.message)

	m, _ = press(t, m, "d")
	require.Equal(t, "color already uses the default", m.message)
	require.Equal(t, 1, cfg.writes)
}

func TestConfigModel_ProviderError(t *testing.T) {
	cfg := newMemoryConfig(nil)
	cfg.err = errors.New("config: lock timeout")
	m := editorFor(cfg)

	m, _ = press(t, m, "tab")

	require.True(t, m.isError)
	require.Equal(t, "config: lock timeout", m.message)
	require.False(t, m.changed)
}

func TestConfigModel_Quit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		t.Run(k, func(t *testing.T) {
			_, cmd := press(t, editorFor(newMemoryConfig(nil)), k)
			requireQuit(t, cmd)
		})
	}
}

func TestConfigModel_View(t *testing.T) {
	m := editorFor(newMemoryConfig(map[string]string{"log_level": "debug"}))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(configModel)

	view := m.View()
	require.Contains(t, view, "da config (3 settings)")
	require.Contains(t, view, "> color        auto (default)")
	require.Contains(t, view, "log_level    debug")
	require.Contains(t, view, "allowed: auto, always, never")
	require.Contains(t, view, "enter edit")

	m, _ = press(t, m, "enter")
	require.Contains(t, m.View(), "esc cancel")
}

func TestInteractive(t *testing.T) {
	t.Run("requires a terminal", func(t *testing.T) {
		deps, _ := testDeps(newMemoryConfig(nil))
		deps.IsInteractive = func() bool { return false }
		deps.RunProgram = func(tea.Model) (tea.Model, error) {
			t.Fatal("program must not start")
			return nil, nil
		}

		require.EqualError(t, interactive(nil, deps), "config editor requires an interactive terminal")
	})

	t.Run("reports changes", func(t *testing.T) {
		deps, out := testDeps(newMemoryConfig(nil))
		deps.IsInteractive = func() bool { return true }
		deps.RunProgram = func(m tea.Model) (tea.Model, error) {
			cm := m.(configModel)
			cm.changed = true
			return cm, nil
		}

		require.NoError(t, interactive(nil, deps))
		require.Equal(t, []string{"settings updated\n"}, out.lines)
	})

	t.Run("silent without changes", func(t *testing.T) {
		deps, out := testDeps(newMemoryConfig(nil))
		deps.IsInteractive = func() bool { return true }
		deps.RunProgram = func(m tea.Model) (tea.Model, error) { return m, nil }

		require.NoError(t, interactive(nil, deps))
		require.Empty(t, out.lines)
	})

	t.Run("program error", func(t *testing.T) {
		deps, _ := testDeps(newMemoryConfig(nil))
		deps.IsInteractive = func() bool { return true }
		deps.RunProgram = func(m tea.Model) (tea.Model, error) { return m, errors.New("tty lost") }

		require.EqualError(t, interactive(nil, deps), "tty lost")
	})
}
