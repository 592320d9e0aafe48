package logs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/da-tools/da/internal/ui/style"
)

// header, blank line, status line and footer
const chromeHeight = 4

// View implements tea.Model
func (m logsModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	parts := []string{m.renderHeader(), ""}
	parts = append(parts, m.renderLines()...)
	parts = append(parts, m.renderStatus(), m.help.ShortHelpView(m.bindings()))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m logsModel) bodyHeight() int {
	return max(1, m.height-chromeHeight)
}

func (m logsModel) renderHeader() string {
	visible := m.visible()

	header := style.Command("da logs")

	position := 0
	if len(visible) > 0 {
		position = m.cursor + 1
	}
	header += style.Muted(fmt.Sprintf(" | %d/%d", position, len(visible)))

	if m.paused {
		header += style.Warning(" [PAUSED]")
	}
	if m.follow {
		header += style.Success(" [FOLLOW]")
	}
	if m.level != "" {
		header += style.Muted(" | level ") + colorizeLevel(m.level, m.level)
	}
	if q := m.query(); q != "" && !m.searching {
		header += style.Muted(" | search ") + q
	}

	return header
}

// renderLines returns exactly bodyHeight rows so the footer stays put.
func (m logsModel) renderLines() []string {
	rows := m.bodyHeight()
	visible := m.visible()
	out := make([]string, 0, rows)

	if len(visible) == 0 {
		if m.filtering() {
			out = append(out, style.Muted("No matching log lines"))
		} else {
			out = append(out, style.Muted("No log lines yet..."))
		}
	}

	for i := m.scroll; i < len(visible) && len(out) < rows; i++ {
		text := truncate(formatLogLine(visible[i]), m.width-2)
		if i == m.cursor {
			out = append(out, style.Selected("> "+text))
			continue
		}
		out = append(out, "  "+colorizeLevel(visible[i].entry.Level, text))
	}

	for len(out) < rows {
		out = append(out, "")
	}
	return out
}

func (m logsModel) renderStatus() string {
	switch {
	case m.searching:
		return m.search.View()
	case m.readErr != nil:
		return style.Error(m.readErr.Error())
	default:
		return ""
	}
}

func (m logsModel) bindings() []key.Binding {
	if m.searching {
		return []key.Binding{m.keymap.Apply, m.keymap.Cancel}
	}

	bindings := []key.Binding{
		m.keymap.Up,
		m.keymap.Down,
		m.keymap.Bottom,
		m.keymap.Pause,
		m.keymap.Level,
		m.keymap.Search,
	}
	if m.filtering() {
		bindings = append(bindings, m.keymap.Clear)
	}
	return append(bindings, m.keymap.Quit)
}

// formatLogLine shows the time of day instead of the full timestamp.
// Lines outside the log format are shown as they are.
func formatLogLine(l logLine) string {
	e := l.entry
	if e.Level == "" {
		return l.text
	}

	ts := e.Timestamp
	if i := strings.LastIndexByte(ts, ' '); i >= 0 {
		ts = ts[i+1:]
	}
	return fmt.Sprintf("%s %-5s %s", ts, e.Level, e.Message)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return string(r[:1])
	}
	return string(r[:width-1]) + "…"
}
