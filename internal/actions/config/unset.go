package config

import (
	"github.com/da-tools/da/internal/domain"
	"github.com/da-tools/da/internal/pattern"
	"github.com/da-tools/da/internal/usage"
)

// Unset handles `config unset <key>`.
func (d Deps) Unset(values pattern.Captures) error {
	return unset(values, d)
}

func unset(values pattern.Captures, deps Deps) error {
	key := values.String(0)
	if key == "" {
		return usage.MissingArgument("key")
	}
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	removed, err := deps.Config.Unset(key)
	if err != nil {
		return err
	}

	if !removed {
		_, _ = deps.Printf("%s was not set\n", key)
		return nil
	}

	_, _ = deps.Printf("unset %s\n", key)
	return nil
}
