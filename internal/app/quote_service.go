package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/zoevet/pet-travel-service/internal/domain"
)

// instrumentationName is used for the OpenTelemetry meter.
const instrumentationName = "github.com/zoevet/pet-travel-service/internal/app"

// QuoteService is the quote engine: it computes travel price breakdowns
// from the injected destination catalog. The catalog is immutable, so
// every computation is deterministic and side-effect free.
type QuoteService struct {
	catalog *domain.Catalog
	logger  *slog.Logger

	quotesComputed metric.Int64Counter
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Catalog *domain.Catalog
	Logger  *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// Panics if Catalog is nil. Defaults logger to slog.Default() if nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Catalog == nil {
		panic("QuoteService: Catalog is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	meter := otel.Meter(instrumentationName)

	quotesComputed, err := meter.Int64Counter(
		"travel.quotes.computed.total",
		metric.WithDescription("Total number of travel quotes computed"),
	)
	if err != nil {
		// The noop meter never fails; a real provider failing to build a
		// counter is a programming error.
		panic(err)
	}

	return &QuoteService{
		catalog:        cfg.Catalog,
		logger:         logger,
		quotesComputed: quotesComputed,
	}
}

// ComputeQuote derives a price breakdown for a validated travel request.
//
// Region and species are enum-validated at the adapter boundary, so a
// catalog miss here is an invariant violation: it is logged at error level
// and returned as-is so the HTTP layer fails loudly instead of producing a
// zero-value quote.
func (s *QuoteService) ComputeQuote(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error) {
	quote, err := domain.ComputeQuote(s.catalog, req, uuid.NewString(), time.Now().UTC())
	if err != nil {
		var miss *domain.CatalogMissError
		if errors.As(err, &miss) {
			s.logger.ErrorContext(ctx, "catalog lookup miss for enum-validated input",
				slog.String("region", string(miss.Region)),
				slog.String("species", string(miss.Species)),
			)
		}

		return nil, err
	}

	s.quotesComputed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("region", string(quote.Request.Region)),
		attribute.String("species", string(quote.Request.Species)),
	))

	s.logger.InfoContext(ctx, "computed travel quote",
		slog.String("quote_id", quote.ID),
		slog.String("region", string(req.Region)),
		slog.String("species", string(req.Species)),
		slog.String("total", quote.Total.String()),
	)

	return quote, nil
}

// Destinations returns the catalog entries in display order, for the
// front end to render region choices with fees and services.
func (s *QuoteService) Destinations(ctx context.Context) []domain.DestinationEntry {
	regions := s.catalog.Regions()
	entries := make([]domain.DestinationEntry, 0, len(regions))

	for _, region := range regions {
		entry, err := s.catalog.Entry(region)
		if err != nil {
			// Regions() only returns present entries.
			continue
		}

		entries = append(entries, entry)
	}

	s.logger.DebugContext(ctx, "listed destinations", slog.Int("count", len(entries)))

	return entries
}

// AirportFee exposes the catalog's flat airport-authority fee.
func (s *QuoteService) AirportFee() domain.Cents {
	return s.catalog.AirportFee()
}
