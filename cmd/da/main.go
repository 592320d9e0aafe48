package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/da-tools/da/internal/app"
	"github.com/da-tools/da/internal/cli"
	"github.com/da-tools/da/internal/dispatchers"
	"github.com/da-tools/da/internal/ui"
	"github.com/da-tools/da/internal/usage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts := app.DefaultOptions()
	opts.Output = stdout
	opts.IsTerminal = ui.IsTerminal(stdout)

	application := app.New(opts)
	defer func() { _ = app.Close(application) }()

	application.Logger.Debug("da %q", args)

	d := dispatchers.New(args,
		dispatchers.WithOutput(application.Output),
		dispatchers.WithErrOutput(stderr),
		dispatchers.WithLogger(application.Logger),
		dispatchers.WithStyler(application.Styler),
	)

	err := dispatchers.Run(d, cli.Routes(application))
	if err == nil {
		return 0
	}

	fmt.Fprintln(stderr, application.Styler.Error(err.Error()))

	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	application.Logger.Error("da %q: %v", args, err)
	return 1
}
