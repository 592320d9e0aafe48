package actions

import "github.com/da-tools/da/internal/pattern"

func (d Deps) ShowVersion(values pattern.Captures) error {
	return showVersion(values, d)
}

func showVersion(_ pattern.Captures, deps Deps) error {
	_, _ = deps.Printf("da version %v\n", deps.Version())
	return nil
}
