// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application
// layer to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, ...)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/zoevet/pet-travel-service/internal/domain"
)

// GuidanceClient is the contract for the generative travel-guidance
// collaborator. Implementations call an external language model and return
// plain guidance text.
type GuidanceClient interface {
	// GenerateGuidance produces a travel-requirements paragraph for the
	// given request. Returns domain.ErrUnavailable when the upstream
	// model cannot be reached or answers with an error.
	GenerateGuidance(ctx context.Context, req domain.GuidanceRequest) (string, error)
}
