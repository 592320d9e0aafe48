package style

import "github.com/da-tools/da/internal/domain"

// Styler implements domain.Styler using the global style functions.
type Styler struct{}

// NewStyler creates a new Styler instance.
func NewStyler() *Styler {
	return &Styler{}
}

func (s *Styler) Enabled() bool                  { return Enabled() }
func (s *Styler) Command(text string) string     { return Command(text) }
func (s *Styler) Enumeration(text string) string { return Enumeration(text) }
func (s *Styler) Placeholder(text string) string { return Placeholder(text) }
func (s *Styler) Success(text string) string     { return Success(text) }
func (s *Styler) Error(text string) string       { return Error(text) }
func (s *Styler) Muted(text string) string       { return Muted(text) }

// NopStyler is a no-op styler that returns text unchanged.
// Useful for testing or when styling is disabled.
type NopStyler struct{}

func (NopStyler) Enabled() bool                  { return false }
func (NopStyler) Command(text string) string     { return text }
func (NopStyler) Enumeration(text string) string { return text }
func (NopStyler) Placeholder(text string) string { return text }
func (NopStyler) Success(text string) string     { return text }
func (NopStyler) Error(text string) string       { return text }
func (NopStyler) Muted(text string) string       { return text }

var _ domain.Styler = (*Styler)(nil)
var _ domain.Styler = NopStyler{}
