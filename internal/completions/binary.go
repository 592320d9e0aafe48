package completions

import (
	"os"
	"path/filepath"
)

const defaultBinary = "da"

// BinaryPath returns the resolved path of the running executable, falling
// back to the bare binary name.
func BinaryPath() string {
	exe, err := os.Executable()
	if err != nil {
		return defaultBinary
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		return resolved
	}
	return exe
}

// BinaryName returns the name completions are registered under.
func BinaryName() string {
	name := filepath.Base(BinaryPath())
	if name == "" || name == "." || name == string(filepath.Separator) {
		return defaultBinary
	}
	return name
}
