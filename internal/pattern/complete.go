package pattern

// Complete returns the words that may follow words, the arguments typed so
// far, for the pattern to still be able to match. Literals offer their text
// and menus their options; positionals and variadics offer nothing. Optional
// tokens are assumed present.
func (p *Pattern) Complete(words []string) []string {
	i := 0
	for _, tok := range p.tokens {
		if i == len(words) {
			return tok.candidates()
		}

		switch tok.Kind {
		case KindLiteral:
			if words[i] != tok.Text {
				return nil
			}
		case KindMenu:
			if !tok.Accepts(words[i]) {
				return nil
			}
		case KindVariadic:
			return nil
		}
		i++
	}
	return nil
}

func (t Token) candidates() []string {
	switch t.Kind {
	case KindLiteral:
		return []string{t.Text}
	case KindMenu:
		out := make([]string, len(t.Options))
		copy(out, t.Options)
		return out
	default:
		return nil
	}
}
