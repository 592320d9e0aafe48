package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/da-tools/da/internal/domain"
	"github.com/da-tools/da/internal/ui"
	"github.com/da-tools/da/internal/ui/style"
)

type configKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Cycle  key.Binding
	Reset  key.Binding
	Quit   key.Binding
	Save   key.Binding
	Cancel key.Binding
}

func newConfigKeyMap() configKeyMap {
	return configKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Edit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Cycle:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next value")),
		Reset:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "default")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Save:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// configModel edits one key at a time. Every change is written through
// the provider immediately.
type configModel struct {
	keys   []domain.ConfigKey
	values map[string]string
	config domain.ConfigProvider

	cursor  int
	editing bool
	input   textinput.Model

	message string
	isError bool
	changed bool

	width  int
	height int

	keymap configKeyMap
	help   help.Model
}

func newConfigModel(provider domain.ConfigProvider, values map[string]string) configModel {
	return configModel{
		keys:   domain.VisibleConfigKeys(),
		values: values,
		config: provider,
		input:  ui.NewInput("value"),
		keymap: newConfigKeyMap(),
		help:   ui.NewHelp(),
	}
}

func (m configModel) Init() tea.Cmd {
	return nil
}

func (m configModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m configModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Quit) {
		return m, tea.Quit
	}
	if len(m.keys) == 0 {
		return m, nil
	}

	current := m.keys[m.cursor]

	switch {
	case key.Matches(msg, m.keymap.Up):
		m.cursor = (m.cursor - 1 + len(m.keys)) % len(m.keys)
		m.message = ""

	case key.Matches(msg, m.keymap.Down):
		m.cursor = (m.cursor + 1) % len(m.keys)
		m.message = ""

	case key.Matches(msg, m.keymap.Edit):
		m.editing = true
		m.message = ""
		m.input.SetValue(m.valueOf(current))
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keymap.Cycle):
		if len(current.Allowed) > 0 {
			m.save(current.Name, nextAllowed(current, m.valueOf(current)))
		}

	case key.Matches(msg, m.keymap.Reset):
		m.reset(current)
	}

	return m, nil
}

func (m configModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Save):
		m.save(m.keys[m.cursor].Name, strings.TrimSpace(m.input.Value()))
		m.stopEditing()
		return m, nil

	case key.Matches(msg, m.keymap.Cancel):
		m.stopEditing()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *configModel) stopEditing() {
	m.editing = false
	m.input.Reset()
	m.input.Blur()
}

func (m *configModel) save(name, value string) {
	if err := validate(name, value); err != nil {
		m.fail(err)
		return
	}
	if _, err := m.config.Set(name, value); err != nil {
		m.fail(err)
		return
	}

	m.values[name] = value
	m.changed = true
	m.message = fmt.Sprintf("saved %s=%s", name, value)
	m.isError = false
}

func (m *configModel) reset(k domain.ConfigKey) {
	removed, err := m.config.Unset(k.Name)
	if err != nil {
		m.fail(err)
		return
	}

	m.isError = false
	if !removed {
		m.message = k.Name + " already uses the default"
		return
	}

	m.values[k.Name] = k.Default
	m.changed = true
	m.message = fmt.Sprintf("reset %s to %s", k.Name, k.Default)
}

func (m *configModel) fail(err error) {
	m.message = err.Error()
	m.isError = true
}

func (m configModel) valueOf(k domain.ConfigKey) string {
	if v, ok := m.values[k.Name]; ok {
		return v
	}
	return k.Default
}

// nextAllowed returns the allowed value after current, wrapping around.
// A current value outside the list starts the cycle over.
func nextAllowed(k domain.ConfigKey, current string) string {
	i := slices.Index(k.Allowed, current)
	return k.Allowed[(i+1)%len(k.Allowed)]
}

func (m configModel) View() string {
	if len(m.keys) == 0 {
		return "No settings available"
	}

	lines := []string{
		style.Command("da config") + style.Muted(fmt.Sprintf(" (%d settings)", len(m.keys))),
		"",
	}

	section := ""
	for i, k := range m.keys {
		if k.Section != section {
			section = k.Section
			lines = append(lines, style.Info(section))
		}

		value := m.valueOf(k)
		row := fmt.Sprintf("%-12s %s", k.Name, value)
		if value == k.Default {
			row += style.Muted(" (default)")
		}

		if i == m.cursor {
			lines = append(lines, style.Selected("> "+row))
		} else {
			lines = append(lines, "  "+row)
		}
	}

	current := m.keys[m.cursor]
	lines = append(lines, "", style.Muted(current.Description))
	if len(current.Allowed) > 0 {
		lines = append(lines, style.Muted("allowed: "+strings.Join(current.Allowed, ", ")))
	}

	if m.editing {
		lines = append(lines, "", m.input.View())
	}

	if m.message != "" {
		if m.isError {
			lines = append(lines, "", style.Error(m.message))
		} else {
			lines = append(lines, "", style.Success(m.message))
		}
	}

	lines = append(lines, "", m.help.ShortHelpView(m.bindings()))

	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(lines, "\n"))
}

func (m configModel) bindings() []key.Binding {
	if m.editing {
		return []key.Binding{m.keymap.Save, m.keymap.Cancel}
	}
	return []key.Binding{
		m.keymap.Up,
		m.keymap.Down,
		m.keymap.Edit,
		m.keymap.Cycle,
		m.keymap.Reset,
		m.keymap.Quit,
	}
}
