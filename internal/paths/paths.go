package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "da"

// AppDataDir returns the application data directory for the log file.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns ~/.darc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".darc"), nil
}

// ConfigLockPath returns the lock file guarding concurrent config edits.
func ConfigLockPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".darc.lock"), nil
}

// LogFilePath returns the path to the application log file:
//   - macOS: ~/Library/Application Support/da/da.log
//   - Linux: $XDG_CONFIG_HOME/da/da.log or ~/.config/da/da.log
//   - Windows: %AppData%\da\da.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "da.log")
}
