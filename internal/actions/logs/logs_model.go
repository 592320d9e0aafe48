package logs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/da-tools/da/internal/ui"
)

const (
	maxLogLines     = 1000
	pollIntervalLog = 500 * time.Millisecond
)

// levelCycle is the order the level filter steps through; "" shows all.
var levelCycle = []string{"", "ERROR", "WARN", "INFO", "DEBUG"}

type openFunc func(string, int, os.FileMode) (*os.File, error)

// logLine keeps the raw text next to its parsed form for searching.
type logLine struct {
	text  string
	entry Entry
}

// Messages

type logTickMsg time.Time

// linesMsg carries the lines read starting at from. reset means the file
// shrank and the buffer starts over.
type linesMsg struct {
	lines  []logLine
	from   int64
	offset int64
	reset  bool
}

type readErrMsg struct{ err error }

type logsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Pause  key.Binding
	Level  key.Binding
	Search key.Binding
	Clear  key.Binding
	Quit   key.Binding
	Apply  key.Binding
	Cancel key.Binding
}

func newLogsKeyMap() logsKeyMap {
	return logsKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "follow")),
		Pause:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Level:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "level")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:  key.NewBinding(key.WithKeys("c", "esc"), key.WithHelp("c", "clear")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Apply:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// logsModel is the Bubble Tea model for the interactive log viewer.
type logsModel struct {
	// File state
	logPath string
	open    openFunc
	offset  int64
	readErr error

	// Newest last, capped at maxLogLines
	lines []logLine

	// Position within the filtered lines
	cursor int
	scroll int
	follow bool
	paused bool

	level     string
	search    textinput.Model
	searching bool

	width  int
	height int

	keymap logsKeyMap
	help   help.Model
}

func newLogsModel(logPath string, open openFunc) logsModel {
	return logsModel{
		logPath: logPath,
		open:    open,
		lines:   make([]logLine, 0, maxLogLines),
		follow:  true,
		search:  ui.NewInput("search"),
		keymap:  newLogsKeyMap(),
		help:    ui.NewHelp(),
	}
}

// Init implements tea.Model
func (m logsModel) Init() tea.Cmd {
	return tea.Batch(m.readCmd(), logTickCmd())
}

func logTickCmd() tea.Cmd {
	return tea.Tick(pollIntervalLog, func(t time.Time) tea.Msg {
		return logTickMsg(t)
	})
}

// Update implements tea.Model
func (m logsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case logTickMsg:
		if m.paused {
			return m, logTickCmd()
		}
		cmd = tea.Batch(m.readCmd(), logTickCmd())

	case linesMsg:
		m.addLines(msg)

	case readErrMsg:
		m.readErr = msg.err

	case tea.KeyMsg:
		if m.searching {
			m, cmd = m.updateSearching(msg)
		} else {
			m, cmd = m.updateBrowsing(msg)
		}
	}

	m.scrollToCursor()
	return m, cmd
}

func (m logsModel) updateBrowsing(msg tea.KeyMsg) (logsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Clear):
		if !m.filtering() {
			if msg.Type == tea.KeyEsc {
				return m, tea.Quit
			}
			return m, nil
		}
		m.level = ""
		m.search.Reset()
		m.clampCursor()

	case key.Matches(msg, m.keymap.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keymap.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keymap.Top):
		m.cursor = 0
		m.follow = false

	case key.Matches(msg, m.keymap.Bottom):
		m.follow = true
		m.clampCursor()

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keymap.Level):
		m.level = nextLevel(m.level)
		m.clampCursor()

	case key.Matches(msg, m.keymap.Search):
		m.searching = true
		return m, m.search.Focus()
	}

	return m, nil
}

func (m logsModel) updateSearching(msg tea.KeyMsg) (logsModel, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Apply):
		m.searching = false
		m.search.Blur()
		return m, nil

	case key.Matches(msg, m.keymap.Cancel):
		m.searching = false
		m.search.Reset()
		m.search.Blur()
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.clampCursor()
	return m, cmd
}

func (m *logsModel) moveCursor(delta int) {
	visible := m.visible()
	if len(visible) == 0 {
		return
	}

	m.cursor = max(0, min(m.cursor+delta, len(visible)-1))
	// Reaching the last line resumes following
	m.follow = m.cursor == len(visible)-1
}

// clampCursor keeps the cursor on a visible line after the filtered set
// changed. Following pins it to the newest line.
func (m *logsModel) clampCursor() {
	n := len(m.visible())
	if m.follow || m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *logsModel) scrollToCursor() {
	rows := m.bodyHeight()
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+rows {
		m.scroll = m.cursor - rows + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m *logsModel) addLines(msg linesMsg) {
	// A read that started before the last one landed would duplicate lines
	if msg.from != m.offset {
		return
	}

	if msg.reset {
		m.lines = m.lines[:0]
		m.cursor = 0
		m.scroll = 0
	}

	m.lines = append(m.lines, msg.lines...)
	if over := len(m.lines) - maxLogLines; over > 0 {
		m.lines = m.lines[over:]
		m.cursor = max(0, m.cursor-over)
	}

	m.offset = msg.offset
	m.readErr = nil
	m.clampCursor()
}

func (m logsModel) filtering() bool {
	return m.level != "" || m.query() != ""
}

func (m logsModel) query() string {
	return strings.ToLower(strings.TrimSpace(m.search.Value()))
}

// visible returns the lines passing the level and search filters.
func (m logsModel) visible() []logLine {
	if !m.filtering() {
		return m.lines
	}

	query := m.query()
	var out []logLine
	for _, l := range m.lines {
		if m.level != "" && l.entry.Level != m.level {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(l.text), query) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func nextLevel(current string) string {
	for i, level := range levelCycle {
		if level == current {
			return levelCycle[(i+1)%len(levelCycle)]
		}
	}
	return ""
}

func (m logsModel) readCmd() tea.Cmd {
	path, from, open := m.logPath, m.offset, m.open
	return func() tea.Msg {
		lines, offset, reset, err := readLines(open, path, from)
		if err != nil {
			return readErrMsg{err: err}
		}
		if len(lines) == 0 && !reset {
			return nil
		}
		return linesMsg{lines: lines, from: from, offset: offset, reset: reset}
	}
}

// readLines reads the complete lines of path past offset. A trailing line
// without a newline is left for the next read. A file shorter than offset
// was truncated and is read again from the start.
func readLines(open openFunc, path string, offset int64) ([]logLine, int64, bool, error) {
	file, err := open(path, os.O_RDONLY, 0)
	if os.IsNotExist(err) {
		return nil, 0, offset > 0, nil
	}
	if err != nil {
		return nil, offset, false, fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, offset, false, fmt.Errorf("stat log file: %w", err)
	}

	reset := false
	if info.Size() < offset {
		offset = 0
		reset = true
	}

	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return nil, offset, reset, fmt.Errorf("seek log file: %w", err)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, offset, reset, fmt.Errorf("read log file: %w", err)
	}

	end := bytes.LastIndexByte(data, '\n')
	if end < 0 {
		return nil, offset, reset, nil
	}

	var lines []logLine
	for _, text := range strings.Split(string(data[:end]), "\n") {
		text = strings.TrimSuffix(text, "\r")
		if text == "" {
			continue
		}
		lines = append(lines, logLine{text: text, entry: ParseLine(text)})
	}

	return lines, offset + int64(end) + 1, reset, nil
}
