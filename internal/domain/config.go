package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string   // Section for grouping in config list
	Allowed     []string // Accepted values; empty means any
	Hidden      bool     // Hidden keys are not shown in help or config list
}

// ConfigKeys defines all available configuration keys.
// Order determines display order in `da config list`.
var ConfigKeys = []ConfigKey{
	// Display
	{
		Name:        "color",
		Default:     "auto",
		Description: "Colorize help and errors: auto, always, never",
		Section:     "Display",
		Allowed:     []string{"auto", "always", "never"},
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
		Allowed:     []string{"true", "false"},
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum level written to the log: debug, info, warn, error",
		Section:     "Logging",
		Allowed:     []string{"debug", "info", "warn", "error"},
	},
}

var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// GetDefaultValue returns the default value for a config key.
func GetDefaultValue(name string) (string, bool) {
	if key, ok := configKeyMap[name]; ok {
		return key.Default, true
	}
	return "", false
}

// Accepts reports whether value is allowed for the key.
func (k ConfigKey) Accepts(value string) bool {
	if len(k.Allowed) == 0 {
		return true
	}
	for _, a := range k.Allowed {
		if a == value {
			return true
		}
	}
	return false
}

// VisibleConfigKeys returns all non-hidden configuration keys.
func VisibleConfigKeys() []ConfigKey {
	var visible []ConfigKey
	for _, key := range ConfigKeys {
		if !key.Hidden {
			visible = append(visible, key)
		}
	}
	return visible
}
