package completions

import (
	"io"

	"github.com/da-tools/da/internal/completions"
	"github.com/da-tools/da/internal/dispatchers"
	"github.com/da-tools/da/internal/domain"
	"github.com/da-tools/da/internal/pattern"
	"github.com/da-tools/da/internal/usage"
)

type Deps struct {
	Out     io.Writer
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
	Shell   func() completions.Shell
	Routes  func() []dispatchers.Route
}

// NewDeps writes to the application's output. routes is the table that
// `completions complete` draws candidates from.
func NewDeps(application *domain.Application, routes func() []dispatchers.Route) Deps {
	return Deps{
		Out:     application.Output,
		Printf:  application.Output.Printf,
		Println: application.Output.Println,
		Shell:   completions.RunningShell,
		Routes:  routes,
	}
}

// Instructions handles `completions [shell]`: it shows how to install
// shell completions, detecting the shell when none is given.
func (d Deps) Instructions(values pattern.Captures) error {
	return instructions(values, d)
}

func instructions(values pattern.Captures, deps Deps) error {
	shell := completions.Shell(values.String(0))
	if shell == "" {
		shell = deps.Shell()
		if shell == "" {
			return usage.MissingArgument("shell")
		}
	}
	if !shell.Valid() {
		return usage.InvalidValue("shell", string(shell), "use bash, zsh or fish")
	}

	printInstructions(shell, deps)
	return nil
}

// Script handles `completions script <bash|zsh|fish>`.
func (d Deps) Script(values pattern.Captures) error {
	return script(values, d)
}

func script(values pattern.Captures, deps Deps) error {
	return completions.PrintScript(deps.Out, completions.Shell(values.String(0)))
}

// Complete handles `completions complete [...words]`: it prints one
// candidate per line for the words typed so far.
func (d Deps) Complete(values pattern.Captures) error {
	return complete(values, d)
}

func complete(values pattern.Captures, deps Deps) error {
	var words []string
	if len(values) > 0 {
		words = values.Strings(0)
	}

	for _, c := range completions.Candidates(deps.Routes(), words) {
		_, _ = deps.Println(c)
	}
	return nil
}

func printInstructions(shell completions.Shell, deps Deps) {
	evalLine := completions.SourceInstructions(shell)
	rcFile := completions.RcFile(shell)
	autoPath := completions.AutoInstallPath(shell)

	_, _ = deps.Println("To enable completions, choose one of the following:")
	_, _ = deps.Println()

	optionNum := 1

	if autoPath != "" {
		_, _ = deps.Printf("%d. Write to auto-load directory:\n", optionNum)
		_, _ = deps.Printf("   %s completions script %s > %s\n", completions.BinaryName(), shell, autoPath)
		_, _ = deps.Println()
		optionNum++
	}

	_, _ = deps.Printf("%d. Add to %s:\n", optionNum, rcFile)
	_, _ = deps.Printf("   %s\n", evalLine)
	_, _ = deps.Println()

	_, _ = deps.Println("Then restart your shell or run: exec $SHELL")
}
