package config

import "github.com/da-tools/da/internal/domain"

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	cfg, err := load()
	if err == nil {
		if value, exists := cfg[key]; exists {
			return value, true
		}
	}

	return domain.GetDefaultValue(key)
}

// GetAll returns all config values (user overrides merged with defaults).
// A missing or unreadable file yields the defaults alone.
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(domain.ConfigKeys))

	for _, key := range domain.ConfigKeys {
		result[key.Name] = key.Default
	}

	cfg, err := load()
	if err != nil {
		return result, nil
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}

// load parses ~/.darc without creating it; reads must not leave files behind.
func load() (map[string]string, error) {
	lines, err := PeekLines()
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
