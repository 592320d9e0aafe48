package config

import (
	"strings"

	"github.com/da-tools/da/internal/domain"
	"github.com/da-tools/da/internal/pattern"
	"github.com/da-tools/da/internal/usage"
)

// Set handles `config set <key> <value>`.
func (d Deps) Set(values pattern.Captures) error {
	return set(values, d)
}

func set(values pattern.Captures, deps Deps) error {
	if len(values) < 2 {
		return usage.MissingArgument("key value")
	}

	key := values.String(0)
	value := values.String(1)

	if err := validate(key, value); err != nil {
		return err
	}

	updated, err := deps.Config.Set(key, value)
	if err != nil {
		return err
	}

	action := "added"
	if updated {
		action = "updated"
	}

	_, _ = deps.Printf("%s %s=%s\n", action, key, value)
	return nil
}

// validate checks key against the catalogue and value against its
// allowed values.
func validate(key, value string) error {
	def, ok := domain.GetConfigKey(key)
	if !ok {
		return usage.InvalidConfigKey(key)
	}
	if !def.Accepts(value) {
		return usage.InvalidValue(key, value, "expected one of "+strings.Join(def.Allowed, ", "))
	}
	return nil
}
