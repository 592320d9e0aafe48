// Package style provides semantic terminal styling using lipgloss.
//
// Colors live only here. All styling is semantic (Command, Placeholder,
// Error, etc.) rather than visual; full-screen views lay out with lipgloss
// but take their colors from this package.
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette holds one ANSI color (0-255) per semantic role.
type Palette struct {
	Command     string
	Enumeration string
	Placeholder string
	Success     string
	Warning     string
	Error       string
	Info        string
	Muted       string
}

// DefaultPalette uses the basic 16 colors so the terminal theme decides
// the exact shades.
var DefaultPalette = Palette{
	Command:     "4", // blue, bold
	Enumeration: "3", // yellow
	Placeholder: "2", // green
	Success:     "2",
	Warning:     "3",
	Error:       "1",
	Info:        "6",
	Muted:       "8",
}

var (
	enabled bool

	commandStyle     lipgloss.Style
	enumerationStyle lipgloss.Style
	placeholderStyle lipgloss.Style
	successStyle     lipgloss.Style
	warningStyle     lipgloss.Style
	errorStyle       lipgloss.Style
	infoStyle        lipgloss.Style
	mutedStyle       lipgloss.Style
)

// Init enables or disables styling. NO_COLOR and DA_NO_COLOR, when set to
// any non-empty value, disable it regardless of enable.
//
// Call once from main before any output.
func Init(enable bool) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("DA_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if enabled {
		initStyles(DefaultPalette)
	}
}

// ShouldEnable resolves the `color` config value against whether stdout
// is a terminal.
func ShouldEnable(mode string, isTerminal bool) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal
	}
}

func initStyles(p Palette) {
	// Force ANSI256 regardless of TTY detection; the caller already decided.
	lipgloss.SetColorProfile(termenv.ANSI256)

	commandStyle = makeStyle(p.Command).Bold(true)
	enumerationStyle = makeStyle(p.Enumeration)
	placeholderStyle = makeStyle(p.Placeholder)
	successStyle = makeStyle(p.Success)
	warningStyle = makeStyle(p.Warning)
	errorStyle = makeStyle(p.Error).Bold(true)
	infoStyle = makeStyle(p.Info)
	mutedStyle = makeStyle(p.Muted)
}

func makeStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Command styles the command word that starts a help line.
func Command(text string) string {
	if !enabled {
		return text
	}
	return commandStyle.Render(text)
}

// Enumeration styles a word listing alternatives.
func Enumeration(text string) string {
	if !enabled {
		return text
	}
	return enumerationStyle.Render(text)
}

// Placeholder styles a bracketed argument.
func Placeholder(text string) string {
	if !enabled {
		return text
	}
	return placeholderStyle.Render(text)
}

// Success styles text for successful operations.
func Success(text string) string {
	if !enabled {
		return text
	}
	return successStyle.Render(text)
}

// Warning styles text for warnings.
func Warning(text string) string {
	if !enabled {
		return text
	}
	return warningStyle.Render(text)
}

// Error styles text for error messages.
func Error(text string) string {
	if !enabled {
		return text
	}
	return errorStyle.Render(text)
}

// Info styles informational text.
func Info(text string) string {
	if !enabled {
		return text
	}
	return infoStyle.Render(text)
}

// Muted styles text for less important or secondary information.
func Muted(text string) string {
	if !enabled {
		return text
	}
	return mutedStyle.Render(text)
}

// Selected styles the highlighted row of a full-screen list.
func Selected(text string) string {
	if !enabled {
		return text
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(DefaultPalette.Info)).
		Render(text)
}

// HelpStyles returns bubbles/help styles following the palette. Keys and
// descriptions render plain when styling is disabled.
func HelpStyles() help.Styles {
	if !enabled {
		plain := lipgloss.NewStyle()
		return help.Styles{
			Ellipsis:       plain,
			ShortKey:       plain,
			ShortDesc:      plain,
			ShortSeparator: plain,
			FullKey:        plain,
			FullDesc:       plain,
			FullSeparator:  plain,
		}
	}

	key := makeStyle(DefaultPalette.Info).Bold(true)
	desc := makeStyle(DefaultPalette.Muted)
	return help.Styles{
		Ellipsis:       desc,
		ShortKey:       key,
		ShortDesc:      desc,
		ShortSeparator: desc,
		FullKey:        key,
		FullDesc:       desc,
		FullSeparator:  desc,
	}
}

// InputPrompt is the style of a text input prompt.
func InputPrompt() lipgloss.Style {
	if !enabled {
		return lipgloss.NewStyle()
	}
	return makeStyle(DefaultPalette.Warning)
}
