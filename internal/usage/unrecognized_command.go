package usage

import (
	"fmt"
	"strconv"
	"strings"
)

// UnrecognizedCommand is returned when no registered pattern matched the
// invocation. Each argument is quoted so empty strings and spaces stay visible.
func UnrecognizedCommand(invocation []string, suggestions ...string) *Error {
	msg := "Command not recognized: " + quoteAll(invocation)

	if len(suggestions) > 0 {
		msg += "\n\nThe most similar commands are:"
		for _, s := range suggestions {
			msg += "\n\t" + s
		}
	}

	msg += "\nSee 'da help'."

	return &Error{
		Kind:    ErrUnrecognizedCommand,
		Message: msg,
	}
}

// NoMatch is returned by commands that report a pattern mismatch as failure.
func NoMatch(pattern string, invocation []string) *Error {
	return &Error{
		Kind:    ErrNoMatch,
		Message: fmt.Sprintf("no match: %q against %s", pattern, quoteAll(invocation)),
	}
}

func quoteAll(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = strconv.Quote(a)
	}
	return strings.Join(quoted, " ")
}
