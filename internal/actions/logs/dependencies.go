package logs

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/da-tools/da/internal/domain"
	"github.com/da-tools/da/internal/paths"
	"github.com/da-tools/da/internal/ui"
)

// Deps are the collaborators of the logs actions. Handlers are methods so
// routes bind them to one application.
type Deps struct {
	LogFilePath   func() string
	Printf        func(string, ...any) (int, error)
	Println       func(...any) (int, error)
	ReadFile      func(string) ([]byte, error)
	WriteFile     func(string, []byte, os.FileMode) error
	Stat          func(string) (os.FileInfo, error)
	OpenFile      func(string, int, os.FileMode) (*os.File, error)
	IsInteractive func() bool
	RunProgram    func(tea.Model) (tea.Model, error)
}

// NewDeps reads the application's log file and prints to its output.
func NewDeps(application *domain.Application) Deps {
	logPath := application.LogPath
	return Deps{
		LogFilePath: func() string {
			if logPath == "" {
				return paths.LogFilePath()
			}
			return logPath
		},
		Printf:        application.Output.Printf,
		Println:       application.Output.Println,
		ReadFile:      os.ReadFile,
		WriteFile:     os.WriteFile,
		Stat:          os.Stat,
		OpenFile:      os.OpenFile,
		IsInteractive: ui.IsInteractive,
		RunProgram:    ui.RunProgram,
	}
}
