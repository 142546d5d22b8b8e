// Package flags provides a configuration-backed feature flag adapter.
package flags

import (
	"context"

	"github.com/zoevet/pet-travel-service/internal/ports"
)

// ConfigFlags implements ports.FeatureFlags from a static map loaded at
// startup. Flags do not change at runtime; a restart picks up new values.
type ConfigFlags struct {
	bools   map[string]bool
	strings map[string]string
}

var _ ports.FeatureFlags = (*ConfigFlags)(nil)

// New creates a ConfigFlags adapter from the config's feature map.
func New(bools map[string]bool) *ConfigFlags {
	return &ConfigFlags{
		bools:   bools,
		strings: map[string]string{},
	}
}

// IsEnabled implements ports.FeatureFlags.
func (f *ConfigFlags) IsEnabled(_ context.Context, flag string, defaultValue bool) bool {
	if v, ok := f.bools[flag]; ok {
		return v
	}

	return defaultValue
}

// GetString implements ports.FeatureFlags.
func (f *ConfigFlags) GetString(_ context.Context, flag string, defaultValue string) string {
	if v, ok := f.strings[flag]; ok {
		return v
	}

	return defaultValue
}
