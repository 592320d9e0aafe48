package logs

import (
	"errors"

	"github.com/da-tools/da/internal/pattern"
)

// Interactive handles `logs <interactive|-i>`: a full-screen viewer that
// follows the log file.
func (d Deps) Interactive(values pattern.Captures) error {
	return interactive(values, d)
}

func interactive(_ pattern.Captures, deps Deps) error {
	if !deps.IsInteractive() {
		return errors.New("interactive logs requires an interactive terminal")
	}

	_, err := deps.RunProgram(newLogsModel(deps.LogFilePath(), deps.OpenFile))
	return err
}
