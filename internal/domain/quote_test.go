package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest(species Species, region Region) QuoteRequest {
	return QuoteRequest{
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

func TestComputeQuote_EuropeDog(t *testing.T) {
	catalog := DefaultCatalog()
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

	quote, err := ComputeQuote(catalog, testRequest(SpeciesDog, RegionEurope), "q-1", now)
	require.NoError(t, err)

	assert.Equal(t, "q-1", quote.ID)
	assert.Len(t, quote.LineItems, 4)
	assert.Equal(t, Dollars(500), quote.ServicesSubtotal)
	assert.Equal(t, Dollars(70), quote.GovernmentFee)
	assert.Equal(t, Dollars(20), quote.AirportFee)
	assert.Equal(t, Dollars(590), quote.Total)
	assert.Equal(t, now, quote.GeneratedAt)
}

func TestComputeQuote_AsiaCat(t *testing.T) {
	catalog := DefaultCatalog()

	quote, err := ComputeQuote(catalog, testRequest(SpeciesCat, RegionAsia), "q-2", time.Now())
	require.NoError(t, err)

	require.Len(t, quote.LineItems, 1)
	assert.Equal(t, "Comprehensive Asia Package", quote.LineItems[0].Label)
	assert.Equal(t, Dollars(650), quote.ServicesSubtotal)
	assert.Equal(t, Dollars(100), quote.GovernmentFee)
	assert.Equal(t, Dollars(770), quote.Total)
}

func TestComputeQuote_TotalIsSumOfParts(t *testing.T) {
	catalog := DefaultCatalog()

	for _, region := range AllRegions() {
		for _, species := range AllSpecies() {
			quote, err := ComputeQuote(catalog, testRequest(species, region), "q", time.Now())
			require.NoError(t, err)

			var subtotal Cents
			for _, item := range quote.LineItems {
				subtotal += item.Price
			}

			assert.Equal(t, subtotal, quote.ServicesSubtotal)
			assert.Equal(t, subtotal+quote.GovernmentFee+quote.AirportFee, quote.Total)
			assert.Equal(t, quote.GovernmentFee+quote.AirportFee, quote.FixedFees())
		}
	}
}

func TestComputeQuote_Deterministic(t *testing.T) {
	catalog := DefaultCatalog()
	now := time.Now().UTC()
	req := testRequest(SpeciesDog, RegionNorthAmerica)

	first, err := ComputeQuote(catalog, req, "same-id", now)
	require.NoError(t, err)

	second, err := ComputeQuote(catalog, req, "same-id", now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeQuote_MissingRegion(t *testing.T) {
	entries := []DestinationEntry{
		{
			Region:        RegionEurope,
			Title:         "Europa",
			GovernmentFee: Dollars(70),
			Services: map[Species][]ServiceLineItem{
				SpeciesDog: {{Label: "Vaccination", Price: Dollars(100)}},
				SpeciesCat: {{Label: "Vaccination", Price: Dollars(100)}},
			},
		},
	}

	catalog, err := NewCatalog(entries, Dollars(20))
	require.NoError(t, err)

	_, err = ComputeQuote(catalog, testRequest(SpeciesDog, RegionAsia), "q", time.Now())
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.ErrorIs(t, err, ErrCatalogMiss)

	var miss *CatalogMissError
	require.ErrorAs(t, err, &miss)
	assert.Equal(t, RegionAsia, miss.Region)
}

func TestQuote_PetAgeYears(t *testing.T) {
	catalog := DefaultCatalog()
	req := testRequest(SpeciesDog, RegionEurope)
	req.BirthDate = time.Date(2020, time.June, 15, 0, 0, 0, 0, time.UTC)

	quote, err := ComputeQuote(catalog, req, "q", time.Now())
	require.NoError(t, err)

	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{"before birthday", time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), 5},
		{"on birthday", time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC), 6},
		{"after birthday", time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC), 6},
		{"before birth", time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, quote.PetAgeYears(tt.at))
		})
	}
}

func TestCents_String(t *testing.T) {
	tests := []struct {
		amount Cents
		want   string
	}{
		{Dollars(590), "$590"},
		{Dollars(0), "$0"},
		{Cents(1250), "$12.50"},
		{Cents(1205), "$12.05"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.amount.String())
	}
}

func TestParseRegion(t *testing.T) {
	tests := []struct {
		input   string
		want    Region
		wantErr bool
	}{
		{"europe", RegionEurope, false},
		{"Europe", RegionEurope, false},
		{"europa", RegionEurope, false},
		{"norteamerica", RegionNorthAmerica, false},
		{"latinoamerica", RegionLatinAmerica, false},
		{" asia ", RegionAsia, false},
		{"antarctica", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRegion(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidation(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSpecies(t *testing.T) {
	got, err := ParseSpecies("Dog")
	require.NoError(t, err)
	assert.Equal(t, SpeciesDog, got)

	got, err = ParseSpecies("cat")
	require.NoError(t, err)
	assert.Equal(t, SpeciesCat, got)

	_, err = ParseSpecies("hamster")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
