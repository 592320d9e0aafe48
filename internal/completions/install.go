package completions

import (
	"fmt"
	"os"
	"path/filepath"
)

// SourceInstructions returns shell-specific instructions for loading completions
func SourceInstructions(shell Shell) string {
	bin := BinaryPath()
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completions script %s)"`, bin, shell)
	case ShellFish:
		return fmt.Sprintf(`%s completions script fish | source`, bin)
	default:
		return ""
	}
}

// RcFile returns the rc file path for the given shell
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}

// AutoInstallPath returns the path where completions can be auto-loaded from.
// Returns empty string if auto-install is not supported for this shell.
func AutoInstallPath(shell Shell) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	bin := BinaryName()

	switch shell {
	case ShellFish:
		// Fish always auto-loads from this directory
		return filepath.Join(home, ".config", "fish", "completions", bin+".fish")
	case ShellBash:
		// Only if bash-completion is installed
		if IsBashCompletionInstalled() {
			return filepath.Join(home, ".local", "share", "bash-completion", "completions", bin)
		}
		return ""
	default:
		return ""
	}
}

var bashCompletionPaths = []string{
	"/usr/share/bash-completion/bash_completion",
	"/etc/bash_completion",
	"/usr/local/etc/profile.d/bash_completion.sh",
	"/opt/homebrew/etc/profile.d/bash_completion.sh",
}

// IsBashCompletionInstalled reports whether the bash-completion package,
// which loads per-user completion files, is present.
func IsBashCompletionInstalled() bool {
	for _, p := range bashCompletionPaths {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}
