package actions

import (
	"strings"

	"github.com/da-tools/da/internal/pattern"
	"github.com/da-tools/da/internal/usage"
)

// ExplainPattern handles `pattern explain <pattern>`.
func (d Deps) ExplainPattern(values pattern.Captures) error {
	return explainPattern(values, d)
}

func explainPattern(values pattern.Captures, deps Deps) error {
	raw := values.String(0)
	if strings.TrimSpace(raw) == "" {
		return usage.MissingArgument("pattern")
	}

	p, err := pattern.Compile(raw)
	if err != nil {
		return usage.InvalidPattern(err)
	}

	for i, tok := range p.Tokens() {
		presence := "optional"
		if tok.Required || tok.Kind == pattern.KindLiteral {
			presence = "required"
		}

		_, _ = deps.Printf("%d\t%-10s\t%-8s\t%s", i+1, tok.Kind, presence, tok.Display())
		if tok.Kind == pattern.KindMenu && tok.HasDefault {
			_, _ = deps.Printf("\tdefault=%s", tok.Default)
		}
		_, _ = deps.Printf("\n")
	}

	return nil
}

// TryPattern handles `pattern try <pattern> [...args]`: it evaluates the
// pattern against the remaining arguments and prints what was captured.
func (d Deps) TryPattern(values pattern.Captures) error {
	return tryPattern(values, d)
}

func tryPattern(values pattern.Captures, deps Deps) error {
	raw := values.String(0)

	p, err := pattern.Compile(raw)
	if err != nil {
		return usage.InvalidPattern(err)
	}

	var invocation []string
	if len(values) > 1 {
		invocation = values.Strings(1)
	}

	captures, ok := p.Evaluate(invocation)
	if !ok {
		return usage.NoMatch(raw, invocation)
	}

	if len(captures) == 0 {
		_, _ = deps.Printf("matched, nothing captured\n")
		return nil
	}

	for i, v := range captures {
		if v.IsVector() {
			_, _ = deps.Printf("$%d = %q\n", i+1, v.Strings())
			continue
		}
		_, _ = deps.Printf("$%d = %q\n", i+1, v.String())
	}

	return nil
}
