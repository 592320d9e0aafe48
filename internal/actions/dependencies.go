package actions

import (
	"github.com/da-tools/da/internal/app"
	"github.com/da-tools/da/internal/domain"
)

// Deps are the collaborators of the top-level actions. Each handler is a
// method so a route can bind it to one application.
type Deps struct {
	Printf  func(format string, a ...any) (n int, err error)
	Version func() string
}

// NewDeps prints through the application's output.
func NewDeps(application *domain.Application) Deps {
	return Deps{
		Printf:  application.Output.Printf,
		Version: func() string { return app.Version },
	}
}
