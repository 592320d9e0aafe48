package config

import (
	"github.com/da-tools/da/internal/domain"
	"github.com/da-tools/da/internal/pattern"
	"github.com/da-tools/da/internal/usage"
)

// Get handles `config get <key>`.
func (d Deps) Get(values pattern.Captures) error {
	return get(values, d)
}

func get(values pattern.Captures, deps Deps) error {
	key := values.String(0)
	if key == "" {
		return usage.MissingArgument("key")
	}
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	value, found := deps.Config.Get(key)
	if !found {
		return usage.InvalidConfigKey(key)
	}

	_, _ = deps.Println(value)
	return nil
}
