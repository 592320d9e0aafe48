// Package pattern compiles command patterns such as "deploy <env> [*dev|prod]"
// into tokens and matches argument lists against them.
//
// Grammar, one word per token:
//
//	word        literal, must appear verbatim
//	<name>      required positional
//	[name]      optional positional
//	<a|b>       required menu of literal alternatives
//	[*a|b]      optional menu, 'a' is used when the argument is absent
//	<...args>   every remaining argument, at least one
//	[...args]   every remaining argument, possibly none
package pattern

import (
	"strings"
	"unicode"
)

const (
	variadicMarker = "...args"
	menuSeparator  = "|"
	defaultMarker  = "*"
)

// Pattern is the compiled, immutable form of a pattern string.
type Pattern struct {
	raw    string
	tokens []Token
}

// Raw returns the pattern text the Pattern was compiled from.
func (p *Pattern) Raw() string {
	return p.raw
}

// Tokens returns a copy of the compiled tokens.
func (p *Pattern) Tokens() []Token {
	out := make([]Token, len(p.tokens))
	copy(out, p.tokens)
	return out
}

// Compile turns raw into a Pattern. The only grammar error is a variadic
// token that is not the final word.
func Compile(raw string) (*Pattern, error) {
	words := SplitWords(raw)
	tokens := make([]Token, 0, len(words))

	for i, w := range words {
		tok := classify(w)
		if tok.Kind == KindVariadic && i != len(words)-1 {
			return nil, &GrammarError{Pattern: raw, Word: w, Err: ErrVariadicNotLast}
		}
		tokens = append(tokens, tok)
	}

	return &Pattern{raw: raw, tokens: tokens}, nil
}

// MustCompile is like Compile but panics if the pattern is malformed.
func MustCompile(raw string) *Pattern {
	p, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// SplitWords splits a pattern into display words. Whitespace separates words
// outside brackets. Inside a bracket, whitespace next to '|' or to either
// delimiter is dropped and any other run of whitespace becomes one space, so
// "< a | b >" and "<a|b>" yield the same word.
func SplitWords(raw string) []string {
	s := []rune(strings.TrimSpace(raw))

	var (
		words  []string
		word   []rune
		closer rune // 0 outside a bracket
	)

	flush := func() {
		if len(word) > 0 {
			words = append(words, string(word))
			word = word[:0]
		}
	}

	for i, c := range s {
		switch {
		case closer == 0 && unicode.IsSpace(c):
			flush()

		case closer == 0 && len(word) == 0 && (c == '<' || c == '['):
			closer = closingFor(c)
			word = append(word, c)

		case closer != 0 && c == closer:
			word = append(word, c)
			closer = 0
			flush()

		case closer != 0 && unicode.IsSpace(c):
			if keepBracketSpace(word, s[i+1:], closer) {
				word = append(word, ' ')
			}

		default:
			word = append(word, c)
		}
	}
	flush()

	return words
}

func closingFor(open rune) rune {
	if open == '<' {
		return '>'
	}
	return ']'
}

// keepBracketSpace decides whether a whitespace rune inside a bracket is
// content. word is never empty here since it starts with the opener.
func keepBracketSpace(word []rune, rest []rune, closer rune) bool {
	if len(word) == 1 {
		return false
	}
	prev := word[len(word)-1]
	if prev == ' ' || prev == '|' {
		return false
	}

	for _, next := range rest {
		if unicode.IsSpace(next) {
			continue
		}
		return next != '|' && next != closer
	}
	return false
}

// bracketed reports whether w is wrapped in <...> or [...] and returns the
// inner text.
func bracketed(w string) (required bool, inner string, ok bool) {
	if len(w) < 2 {
		return false, "", false
	}
	first, last := w[0], w[len(w)-1]
	switch {
	case first == '<' && last == '>':
		return true, w[1 : len(w)-1], true
	case first == '[' && last == ']':
		return false, w[1 : len(w)-1], true
	}
	return false, "", false
}

func classify(w string) Token {
	required, inner, ok := bracketed(w)
	if !ok {
		return Token{Kind: KindLiteral, Text: w}
	}

	switch {
	case inner == variadicMarker:
		return Token{Kind: KindVariadic, Required: required}
	case strings.Contains(inner, menuSeparator):
		return menuToken(inner, required)
	default:
		return Token{Kind: KindPositional, Required: required, Text: inner}
	}
}

func menuToken(inner string, required bool) Token {
	tok := Token{Kind: KindMenu, Required: required}

	for _, opt := range strings.Split(inner, menuSeparator) {
		if strings.HasPrefix(opt, defaultMarker) {
			opt = strings.TrimPrefix(opt, defaultMarker)
			if !tok.HasDefault {
				tok.Default = opt
				tok.HasDefault = true
			}
		}
		tok.Options = append(tok.Options, opt)
	}

	return tok
}
