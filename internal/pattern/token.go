package pattern

import "strings"

// Kind identifies the grammar element a Token represents.
type Kind int

const (
	KindLiteral    Kind = iota // fixed word that must appear verbatim
	KindPositional             // <name> or [name]
	KindMenu                   // <a|b|c> or [*a|b|c]
	KindVariadic               // <...args> or [...args]
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindPositional:
		return "positional"
	case KindMenu:
		return "menu"
	case KindVariadic:
		return "variadic"
	default:
		return "unknown"
	}
}

// Token is one compiled element of a Pattern.
//
// Text holds the literal word for KindLiteral and the display name for
// KindPositional. Options and Default are only set for KindMenu; the '*'
// default marker is already stripped from both.
type Token struct {
	Kind       Kind
	Required   bool
	Text       string
	Options    []string
	Default    string
	HasDefault bool
}

// Accepts reports whether value is one of the menu options.
func (t Token) Accepts(value string) bool {
	for _, opt := range t.Options {
		if opt == value {
			return true
		}
	}
	return false
}

// Display returns the token the way it would be written in a pattern.
func (t Token) Display() string {
	open, close := "[", "]"
	if t.Required {
		open, close = "<", ">"
	}

	switch t.Kind {
	case KindLiteral:
		return t.Text
	case KindVariadic:
		return open + variadicMarker + close
	case KindMenu:
		opts := make([]string, len(t.Options))
		for i, opt := range t.Options {
			if t.HasDefault && opt == t.Default {
				opt = defaultMarker + opt
			}
			opts[i] = opt
		}
		return open + strings.Join(opts, menuSeparator) + close
	default:
		return open + t.Text + close
	}
}
