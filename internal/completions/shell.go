package completions

import (
	"os"
	"path/filepath"
)

// Shell is a shell da can generate a completion script for.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells lists the supported shells in display order.
var Shells = []Shell{ShellBash, ShellZsh, ShellFish}

// Valid reports whether s is a supported shell.
func (s Shell) Valid() bool {
	switch s {
	case ShellBash, ShellZsh, ShellFish:
		return true
	default:
		return false
	}
}

// RunningShell guesses the user's shell from $SHELL. It returns "" when the
// shell is unknown or unsupported.
func RunningShell() Shell {
	shell := Shell(filepath.Base(os.Getenv("SHELL")))
	if !shell.Valid() {
		return ""
	}
	return shell
}
