package cli

import (
	"github.com/da-tools/da/internal/actions"
	completionsactions "github.com/da-tools/da/internal/actions/completions"
	configactions "github.com/da-tools/da/internal/actions/config"
	logsactions "github.com/da-tools/da/internal/actions/logs"
	"github.com/da-tools/da/internal/dispatchers"
	"github.com/da-tools/da/internal/domain"
)

// Routes returns the da command table in dispatch order, with every action
// bound to application.
func Routes(application *domain.Application) []dispatchers.Route {
	top := actions.NewDeps(application)
	cfg := configactions.NewDeps(application)
	logs := logsactions.NewDeps(application)
	shell := completionsactions.NewDeps(application, func() []dispatchers.Route {
		return Routes(application)
	})

	return []dispatchers.Route{
		// info
		{
			Pattern:     "version",
			Description: "Show da version",
			Action:      top.ShowVersion,
		},
		{
			Pattern:     "<--version|-v>",
			Description: "Same as 'da version'",
			Action:      top.ShowVersion,
		},

		// patterns
		{
			Pattern:     "pattern explain <pattern>",
			Description: "List the tokens a pattern compiles to",
			Action:      top.ExplainPattern,
		},
		{
			Pattern:     "pattern try <pattern> [...args]",
			Description: "Match a pattern against the given arguments and print the captures",
			Action:      top.TryPattern,
		},

		// config
		{
			Pattern:     "config get <key>",
			Description: "Print the effective value of a config key",
			Action:      cfg.Get,
		},
		{
			Pattern:     "config set <key> <value>",
			Description: "Write a config value to ~/.darc",
			Action:      cfg.Set,
		},
		{
			Pattern:     "config unset <key>",
			Description: "Remove a config value from ~/.darc",
			Action:      cfg.Unset,
		},
		{
			Pattern:     "config list [*plain|json]",
			Description: "List config values",
			Action:      cfg.List,
		},
		{
			Pattern:     "config <interactive|-i>",
			Description: "Edit config values in a full-screen editor",
			Action:      cfg.Interactive,
		},

		// logs
		{
			Pattern:     "logs json [limit]",
			Description: "Print the last log lines as JSON",
			Action:      logs.ViewJSON,
		},
		{
			Pattern:     "logs tail",
			Description: "Follow the log file",
			Action:      logs.Tail,
		},
		{
			Pattern:     "logs clear",
			Description: "Empty the log file",
			Action:      logs.Clear,
		},
		{
			Pattern:     "logs <interactive|-i>",
			Description: "Browse and follow the log in a full-screen viewer",
			Action:      logs.Interactive,
		},
		{
			Pattern:     "logs [limit]",
			Description: "Print the last log lines (default 50)",
			Action:      logs.View,
		},

		// shell integration
		{
			Pattern:     "completions complete [...words]",
			Description: "Print completion candidates for the words typed so far",
			Action:      shell.Complete,
		},
		{
			Pattern:     "completions script <bash|zsh|fish>",
			Description: "Print the completion script for a shell",
			Action:      shell.Script,
		},
		{
			Pattern:     "completions [shell]",
			Description: "Show how to install shell completions",
			Action:      shell.Instructions,
		},
	}
}
