package config

import (
	"encoding/json"
	"fmt"

	"github.com/da-tools/da/internal/domain"
	"github.com/da-tools/da/internal/pattern"
	"github.com/da-tools/da/internal/usage"
)

const (
	formatPlain = "plain"
	formatJSON  = "json"
)

// List handles `config list [*plain|json]`.
func (d Deps) List(values pattern.Captures) error {
	return list(values, d)
}

func list(values pattern.Captures, deps Deps) error {
	format := values.String(0)
	if format == "" {
		format = formatPlain
	}

	configMap, err := deps.Config.GetAll()
	if err != nil {
		return err
	}

	// Only show visible (non-hidden) keys
	visible := make(map[string]string)
	var order []string
	for _, key := range domain.VisibleConfigKeys() {
		if value, exists := configMap[key.Name]; exists {
			visible[key.Name] = value
			order = append(order, key.Name)
		}
	}

	switch format {
	case formatPlain:
		for _, name := range order {
			_, _ = deps.Printf("%s=%s\n", name, visible[name])
		}
	case formatJSON:
		data, err := json.MarshalIndent(visible, "", "  ")
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		_, _ = deps.Println(string(data))
	default:
		return usage.InvalidValue("format", format, "expected plain or json")
	}

	return nil
}
