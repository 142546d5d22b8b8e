package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoevet/pet-travel-service/internal/adapters/http/dto"
	"github.com/zoevet/pet-travel-service/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "catalog miss is unprocessable, not a missing resource",
			err:        &domain.CatalogMissError{Region: domain.RegionAsia, Species: domain.SpeciesCat},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   dto.ErrorCodeUnprocessable,
		},
		{
			name:       "plain not found",
			err:        domain.NewNotFoundError("quote", "q-1"),
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeNotFound,
		},
		{
			name:       "validation",
			err:        domain.NewValidationError("weight", "must be a number"),
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidation,
		},
		{
			name:       "unavailable",
			err:        domain.NewUnavailableError("gemini", "circuit breaker open"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   dto.ErrorCodeUnavailable,
		},
		{
			name:       "unknown errors stay generic",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrorCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

// A catalog miss wrapped by the service layer must still map to 422.
func TestMapDomainError_WrappedCatalogMiss(t *testing.T) {
	var err error = &domain.CatalogMissError{Region: domain.RegionEurope}
	err = fmt.Errorf("parallel execution failed: %w", err)

	status, resp := MapDomainError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, dto.ErrorCodeUnprocessable, resp.Error.Code)
}
