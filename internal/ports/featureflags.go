package ports

import (
	"context"
)

// FeatureFlags defines the contract for feature flag evaluation. The
// application checks feature enablement without knowing the underlying
// provider; this service backs it with static configuration, but the port
// leaves room for a dynamic provider later.
//
// Example usage:
//
//	if flags.IsEnabled(ctx, "guidance", false) {
//	    return s.guidance.GenerateGuidance(ctx, req)
//	}
type FeatureFlags interface {
	// IsEnabled checks if a boolean feature flag is enabled.
	// Returns defaultValue if the flag doesn't exist or evaluation fails.
	IsEnabled(ctx context.Context, flag string, defaultValue bool) bool

	// GetString retrieves a string feature flag value.
	// Returns defaultValue if the flag doesn't exist or evaluation fails.
	GetString(ctx context.Context, flag string, defaultValue string) string
}
