package config

import (
	"fmt"

	"github.com/da-tools/da/internal/domain"
)

// Provider is the ~/.darc backed domain.ConfigProvider. Writes hold the
// config lock for the whole read-modify-write cycle.
type Provider struct{}

// NewProvider creates a new configuration provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Get returns the value for a configuration key.
func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

// GetAll returns all configuration values.
func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

// Set writes key=value and reports whether the key was already present.
func (p *Provider) Set(key, value string) (bool, error) {
	var updated bool
	err := WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}

		lines, updated = Set(lines, key, value)
		return WriteLines(lines)
	})
	return updated, err
}

// Unset removes key and reports whether it was present. The file is left
// untouched when there is nothing to remove.
func (p *Provider) Unset(key string) (bool, error) {
	var removed bool
	err := WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}

		lines, removed = Unset(lines, key)
		if !removed {
			return nil
		}
		return WriteLines(lines)
	})
	return removed, err
}

var _ domain.ConfigProvider = (*Provider)(nil)
