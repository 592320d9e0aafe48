package config

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/da-tools/da/internal/domain"
	"github.com/da-tools/da/internal/ui"
)

// Deps are the collaborators of the config actions.
type Deps struct {
	Config        domain.ConfigProvider
	Printf        func(string, ...any) (int, error)
	Println       func(...any) (int, error)
	IsInteractive func() bool
	RunProgram    func(tea.Model) (tea.Model, error)
}

// NewDeps binds the config actions to the application's provider and output.
func NewDeps(application *domain.Application) Deps {
	return Deps{
		Config:        application.Config,
		Printf:        application.Output.Printf,
		Println:       application.Output.Println,
		IsInteractive: ui.IsInteractive,
		RunProgram:    ui.RunProgram,
	}
}
