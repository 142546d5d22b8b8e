package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/zoevet/pet-travel-service/internal/domain"
	"github.com/zoevet/pet-travel-service/internal/ports"
)

// GuidanceFlag is the feature flag gating the AI guidance endpoint. The
// feature is a superseded revision of the travel page kept behind a toggle.
const GuidanceFlag = "guidance"

// GuidanceService orchestrates the generative travel-guidance use case.
type GuidanceService struct {
	client ports.GuidanceClient
	flags  ports.FeatureFlags
	logger *slog.Logger
}

// GuidanceServiceConfig contains configuration for the guidance service.
type GuidanceServiceConfig struct {
	Client ports.GuidanceClient
	Flags  ports.FeatureFlags
	Logger *slog.Logger
}

// NewGuidanceService creates a new guidance service.
// Panics if Client or Flags is nil. Defaults logger to slog.Default() if nil.
func NewGuidanceService(cfg GuidanceServiceConfig) *GuidanceService {
	if cfg.Client == nil {
		panic("GuidanceService: Client is required")
	}

	if cfg.Flags == nil {
		panic("GuidanceService: Flags is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &GuidanceService{
		client: cfg.Client,
		flags:  cfg.Flags,
		logger: logger,
	}
}

// Enabled reports whether the guidance feature is switched on.
func (s *GuidanceService) Enabled(ctx context.Context) bool {
	return s.flags.IsEnabled(ctx, GuidanceFlag, false)
}

// Generate produces a travel-requirements paragraph for the request.
// Returns domain.ErrNotFound when the feature flag is off, and the
// collaborator's domain.ErrUnavailable when the model call fails.
func (s *GuidanceService) Generate(ctx context.Context, req domain.GuidanceRequest) (string, error) {
	if !s.Enabled(ctx) {
		return "", domain.NewNotFoundError("guidance", "")
	}

	start := time.Now()

	text, err := s.client.GenerateGuidance(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "guidance generation failed",
			slog.String("destination", req.Destination),
			slog.Any("error", err),
		)

		return "", err
	}

	s.logger.InfoContext(ctx, "generated travel guidance",
		slog.String("destination", req.Destination),
		slog.String("species", string(req.Species)),
		slog.Duration("duration", time.Since(start)),
	)

	return text, nil
}

// GenerateForQuote runs the quote computation and a guidance generation
// concurrently. Guidance failures degrade to an empty string with a
// warning; quote failures fail the call.
func (s *GuidanceService) GenerateForQuote(
	ctx context.Context,
	quotes *QuoteService,
	req domain.QuoteRequest,
) (*domain.Quote, string, error) {
	quote, text, err := Parallel2(ctx,
		func(ctx context.Context) (*domain.Quote, error) {
			return quotes.ComputeQuote(ctx, req)
		},
		func(ctx context.Context) (string, error) {
			entry, entryErr := quotes.catalog.Entry(req.Region)
			if entryErr != nil {
				return "", nil
			}

			text, genErr := s.Generate(ctx, domain.GuidanceRequest{
				Destination:      entry.Title,
				Species:          req.Species,
				AnimalAge:        ageYears(req.BirthDate, time.Now().UTC()),
				HealthConditions: "Ninguna",
			})
			if genErr != nil {
				s.logger.WarnContext(ctx, "quote guidance degraded",
					slog.Any("error", genErr),
				)

				return "", nil
			}

			return text, nil
		},
	)
	if err != nil {
		return nil, "", err
	}

	return quote, text, nil
}

// ageYears computes whole years between birth and now.
func ageYears(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.YearDay() < birth.YearDay() {
		years--
	}

	if years < 0 {
		return 0
	}

	return years
}
