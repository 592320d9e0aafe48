package config

import (
	"errors"

	"github.com/da-tools/da/internal/pattern"
)

// Interactive handles `config <interactive|-i>`: a full-screen editor for
// the visible config keys.
func (d Deps) Interactive(values pattern.Captures) error {
	return interactive(values, d)
}

func interactive(_ pattern.Captures, deps Deps) error {
	if !deps.IsInteractive() {
		return errors.New("config editor requires an interactive terminal")
	}

	current, err := deps.Config.GetAll()
	if err != nil {
		return err
	}

	final, err := deps.RunProgram(newConfigModel(deps.Config, current))
	if err != nil {
		return err
	}

	if fm, ok := final.(configModel); ok && fm.changed {
		_, _ = deps.Println("settings updated")
	}
	return nil
}
