package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoevet/pet-travel-service/internal/domain"
)

func quoteRequest(species domain.Species, region domain.Region) domain.QuoteRequest {
	return domain.QuoteRequest{
		OwnerName: "María Pérez",
		PetName:   "Rocky",
		Breed:     "Beagle",
		Color:     "Tricolor",
		Species:   species,
		Weight:    "12.5",
		BirthDate: time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC),
		Region:    region,
	}
}

// singleRegionCatalog builds a catalog covering only Europe, so other
// regions produce catalog misses.
func singleRegionCatalog(t *testing.T) *domain.Catalog {
	t.Helper()

	services := []domain.ServiceLineItem{
		{Label: "Vaccination", Price: domain.Dollars(100)},
	}

	catalog, err := domain.NewCatalog([]domain.DestinationEntry{
		{
			Region:        domain.RegionEurope,
			Title:         "Europa",
			GovernmentFee: domain.Dollars(70),
			Services: map[domain.Species][]domain.ServiceLineItem{
				domain.SpeciesDog: services,
				domain.SpeciesCat: services,
			},
		},
	}, domain.Dollars(20))
	require.NoError(t, err)

	return catalog
}

func TestQuoteService_ComputeQuote(t *testing.T) {
	svc := NewQuoteService(QuoteServiceConfig{Catalog: domain.DefaultCatalog()})

	quote, err := svc.ComputeQuote(context.Background(), quoteRequest(domain.SpeciesDog, domain.RegionEurope))
	require.NoError(t, err)

	assert.NotEmpty(t, quote.ID)
	assert.Equal(t, domain.Dollars(590), quote.Total)
	assert.WithinDuration(t, time.Now().UTC(), quote.GeneratedAt, time.Minute)
}

func TestQuoteService_ComputeQuote_UniqueIDs(t *testing.T) {
	svc := NewQuoteService(QuoteServiceConfig{Catalog: domain.DefaultCatalog()})
	req := quoteRequest(domain.SpeciesCat, domain.RegionAsia)

	first, err := svc.ComputeQuote(context.Background(), req)
	require.NoError(t, err)

	second, err := svc.ComputeQuote(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Total, second.Total)
}

func TestQuoteService_ComputeQuote_CatalogMiss(t *testing.T) {
	svc := NewQuoteService(QuoteServiceConfig{Catalog: singleRegionCatalog(t)})

	_, err := svc.ComputeQuote(context.Background(), quoteRequest(domain.SpeciesDog, domain.RegionAsia))
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestQuoteService_Destinations(t *testing.T) {
	svc := NewQuoteService(QuoteServiceConfig{Catalog: domain.DefaultCatalog()})

	entries := svc.Destinations(context.Background())
	require.Len(t, entries, 4)
	assert.Equal(t, domain.RegionEurope, entries[0].Region)
}

func TestQuoteService_AirportFee(t *testing.T) {
	svc := NewQuoteService(QuoteServiceConfig{Catalog: domain.DefaultCatalog()})
	assert.Equal(t, domain.Dollars(20), svc.AirportFee())
}

func TestNewQuoteService_RequiresCatalog(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteService(QuoteServiceConfig{})
	})
}
