package pattern

// cursor walks an invocation by index. Only advance mutates it.
type cursor struct {
	args []string
	pos  int
}

func (c *cursor) exhausted() bool {
	return c.pos >= len(c.args)
}

func (c *cursor) current() string {
	if c.exhausted() {
		return ""
	}
	return c.args[c.pos]
}

func (c *cursor) advance() {
	if !c.exhausted() {
		c.pos++
	}
}

// rest returns the current value and everything after it.
func (c *cursor) rest() []string {
	if c.exhausted() {
		return nil
	}
	return c.args[c.pos:]
}

// Evaluate matches invocation against the pattern. On success it returns
// one value per non-literal token (optional positionals that were absent
// produce nothing) and true. A mismatch is reported as false, never as an
// error.
func (p *Pattern) Evaluate(invocation []string) (Captures, bool) {
	cur := &cursor{args: invocation}
	captures := make(Captures, 0, len(p.tokens))

	for _, tok := range p.tokens {
		switch tok.Kind {
		case KindLiteral:
			if cur.exhausted() || cur.current() != tok.Text {
				return nil, false
			}
			cur.advance()

		case KindPositional:
			if cur.exhausted() {
				if tok.Required {
					return nil, false
				}
				continue
			}
			captures = append(captures, Scalar(cur.current()))
			cur.advance()

		case KindVariadic:
			rest := cur.rest()
			if tok.Required && len(rest) == 0 {
				return nil, false
			}
			return append(captures, Vector(rest)), true

		case KindMenu:
			if cur.exhausted() {
				// Unlike an optional positional, an optional menu with no
				// default does not match missing input.
				if tok.Required || !tok.HasDefault {
					return nil, false
				}
				captures = append(captures, Scalar(tok.Default))
				continue
			}
			if !tok.Accepts(cur.current()) {
				return nil, false
			}
			captures = append(captures, Scalar(cur.current()))
			cur.advance()
		}
	}

	if !cur.exhausted() {
		return nil, false
	}
	return captures, true
}

// Matches is Evaluate without the captures.
func (p *Pattern) Matches(invocation []string) bool {
	_, ok := p.Evaluate(invocation)
	return ok
}
