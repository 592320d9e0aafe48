package pattern

import (
	"errors"
	"fmt"
)

// ErrVariadicNotLast is wrapped by GrammarError when <...args> or [...args]
// is followed by another token.
var ErrVariadicNotLast = errors.New("variadic token has to be the last element in the pattern")

// GrammarError reports a pattern that cannot be compiled. It signals a bug
// in the script that registered the pattern, not bad user input.
type GrammarError struct {
	Pattern string
	Word    string
	Err     error
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("pattern %q: %s: %v", e.Pattern, e.Word, e.Err)
}

func (e *GrammarError) Unwrap() error {
	return e.Err
}

var _ error = (*GrammarError)(nil)
