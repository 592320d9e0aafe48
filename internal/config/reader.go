package config

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/da-tools/da/internal/domain"
	"github.com/da-tools/da/internal/log"
	"github.com/da-tools/da/internal/paths"
)

// ReadLines returns the raw lines of ~/.darc, creating the file with the
// default keys when it does not exist yet.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	lines, err := scanLines(file)
	if err != nil {
		return nil, err
	}

	// Seed a fresh file so users can discover the available keys
	if isNew && len(lines) == 0 {
		lines = initializeDefaults()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

// PeekLines returns the raw lines of ~/.darc without creating it. A missing
// file reads as no lines.
func PeekLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	file, err := os.Open(configPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	return scanLines(file)
}

func scanLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		// Tolerate files edited on Windows
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func initializeDefaults() []string {
	lines := []string{
		"# da configuration",
		"# Edit values below or use: da config set <key> <value>",
		"",
	}

	for _, key := range domain.VisibleConfigKeys() {
		value := key.Default
		if strings.Contains(value, " ") {
			value = `"` + value + `"`
		}
		lines = append(lines, key.Name+"="+value)
	}

	return lines
}
