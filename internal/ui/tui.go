package ui

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/da-tools/da/internal/ui/style"
	"golang.org/x/term"
)

// IsInteractive reports whether both stdin and stdout are terminals, the
// precondition for every full-screen view.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// RunProgram runs m full screen and returns the final model.
func RunProgram(m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	return p.Run()
}

// NewHelp returns a key help bar in the current palette.
func NewHelp() help.Model {
	h := help.New()
	h.Styles = style.HelpStyles()
	return h
}

// NewInput returns a single-line text input in the current palette.
func NewInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "> "
	in.PromptStyle = style.InputPrompt()
	in.CharLimit = 256
	return in
}
