package config

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/da-tools/da/internal/paths"
)

// WriteLines replaces ~/.darc atomically: the lines go to a temp file in the
// same directory which is then renamed over the config.
func WriteLines(lines []string) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	// Temp file in the same directory so the rename stays on one filesystem
	tmpFile, err := os.CreateTemp(filepath.Dir(configPath), ".darc.tmp.*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	// Clean up the temp file on any failure
	success := false
	defer func() {
		if !success {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	// Same permissions as the file it replaces
	if err := tmpFile.Chmod(0600); err != nil {
		return err
	}

	writer := bufio.NewWriter(tmpFile)
	for _, line := range lines {
		if _, err := writer.WriteString(line + "\n"); err != nil {
			return err
		}
	}

	if err := writer.Flush(); err != nil {
		return err
	}
	// Sync to ensure data is written before the rename makes it visible
	if err := tmpFile.Sync(); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	// Atomic rename
	if err := os.Rename(tmpPath, configPath); err != nil {
		return err
	}

	success = true
	return nil
}
