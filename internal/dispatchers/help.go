package dispatchers

import (
	"fmt"
	"io"
	"strings"

	"github.com/da-tools/da/internal/domain"
	"github.com/da-tools/da/internal/pattern"
)

// RenderHelp writes one pattern and its description for human display.
// The pattern line is indented by one space and the description line,
// omitted when blank, by two.
//
// The first word is styled as the command, alternatives as enumerations and
// other bracketed words as placeholders.
func RenderHelp(w io.Writer, s domain.Styler, patternText, description string) {
	words := pattern.SplitWords(patternText)
	styled := make([]string, len(words))

	for i, word := range words {
		switch {
		case i == 0:
			styled[i] = s.Command(word)
		case strings.Contains(word, "|"):
			styled[i] = s.Enumeration(word)
		case strings.HasPrefix(word, "<") || strings.HasPrefix(word, "["):
			styled[i] = s.Placeholder(word)
		default:
			styled[i] = word
		}
	}

	fmt.Fprintf(w, " %s\n", strings.Join(styled, " "))

	if desc := strings.TrimSpace(description); desc != "" {
		fmt.Fprintf(w, "  %s\n", desc)
	}
}

// matchesFilter reports whether patternText should be rendered for the
// given help search term. An empty term matches everything.
func matchesFilter(patternText, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(patternText), strings.ToLower(search))
}
