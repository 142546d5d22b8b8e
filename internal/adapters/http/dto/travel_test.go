package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoevet/pet-travel-service/internal/domain"
)

func validQuoteRequest() TravelQuoteRequest {
	return TravelQuoteRequest{
		OwnerName:         "María Pérez",
		PetName:           "Rocky",
		Breed:             "Beagle",
		Color:             "Tricolor",
		Species:           "dog",
		Weight:            "12.5",
		BirthDate:         "2020-03-15",
		DestinationRegion: "europe",
		ContactPhone:      "+34 600 111 222",
		ContactEmail:      "maria@example.com",
	}
}

func TestTravelQuoteRequest_Valid(t *testing.T) {
	req := validQuoteRequest()
	require.NoError(t, Validate(&req))

	domReq, contact, err := req.ToDomain()
	require.NoError(t, err)

	assert.Equal(t, domain.SpeciesDog, domReq.Species)
	assert.Equal(t, domain.RegionEurope, domReq.Region)
	assert.Equal(t, time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC), domReq.BirthDate)
	assert.Equal(t, "12.5", domReq.Weight)
	assert.Equal(t, "+34 600 111 222", contact.Phone)
}

func TestTravelQuoteRequest_WeightValidation(t *testing.T) {
	tests := []struct {
		weight string
		valid  bool
	}{
		{"12", true},
		{"12.5", true},
		{"12.50", true},
		{"0.25", true},
		{"12.555", false},
		{"12,5", false},
		{"-12", false},
		{".5", false},
		{"12.", false},
		{"abc", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.weight, func(t *testing.T) {
			req := validQuoteRequest()
			req.Weight = tt.weight

			err := Validate(&req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, ValidationErrors(err), "weight")
			}
		})
	}
}

func TestTravelQuoteRequest_BirthDateValidation(t *testing.T) {
	today := time.Now().UTC().Format(time.DateOnly)
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format(time.DateOnly)
	recent := time.Now().UTC().AddDate(-1, 0, 0).Format(time.DateOnly)

	tests := []struct {
		name  string
		date  string
		valid bool
	}{
		{"typical", "2020-03-15", true},
		{"lower bound", "2000-01-01", true},
		{"recent", recent, true},
		{"upper bound today", today, true},
		{"before 2000", "1999-12-31", false},
		{"tomorrow", tomorrow, false},
		{"wrong format", "15/03/2020", false},
		{"not a date", "yesterday", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validQuoteRequest()
			req.BirthDate = tt.date

			err := Validate(&req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, ValidationErrors(err), "birthDate")
			}
		})
	}
}

func TestTravelQuoteRequest_FieldLengths(t *testing.T) {
	req := validQuoteRequest()
	req.OwnerName = "M"
	err := Validate(&req)
	require.Error(t, err)
	assert.Contains(t, ValidationErrors(err), "ownerName")

	req = validQuoteRequest()
	req.PetName = "R"
	assert.NoError(t, Validate(&req), "single-letter pet names are allowed")

	req = validQuoteRequest()
	req.Breed = " "
	err = Validate(&req)
	require.Error(t, err)
	assert.Contains(t, ValidationErrors(err), "breed")
}

func TestTravelQuoteRequest_ToDomain_RegionAlias(t *testing.T) {
	req := validQuoteRequest()
	req.DestinationRegion = "latinoamerica"

	domReq, _, err := req.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, domain.RegionLatinAmerica, domReq.Region)
}

func TestTravelQuoteRequest_ToDomain_UnknownRegion(t *testing.T) {
	req := validQuoteRequest()
	req.DestinationRegion = "antarctica"

	_, _, err := req.ToDomain()
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestNewTravelQuoteResponse(t *testing.T) {
	quote, err := domain.ComputeQuote(domain.DefaultCatalog(), domain.QuoteRequest{
		OwnerName: "María Pérez",
		PetName:   "Rocky",
		Breed:     "Beagle",
		Color:     "Tricolor",
		Species:   domain.SpeciesDog,
		Weight:    "12.5",
		BirthDate: time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC),
		Region:    domain.RegionEurope,
	}, "q-1", time.Now().UTC())
	require.NoError(t, err)

	resp := NewTravelQuoteResponse(quote, WhatsAppShare{Message: "hola", Link: "https://wa.me/1?text=hola"}, "guía")

	assert.Equal(t, "q-1", resp.QuoteID)
	assert.Equal(t, "europe", resp.Destination.Region)
	assert.Len(t, resp.Services, 4)
	assert.Equal(t, int64(50000), resp.ServicesSubtotal.Cents)
	assert.Equal(t, "$590", resp.Total.Display)
	assert.Equal(t, int64(59000), resp.Total.Cents)
	assert.Equal(t, "hola", resp.WhatsApp.Message)
	assert.Equal(t, "guía", resp.Guidance)
}

func TestNewDestinationsResponse(t *testing.T) {
	catalog := domain.DefaultCatalog()

	var entries []domain.DestinationEntry
	for _, region := range catalog.Regions() {
		entry, err := catalog.Entry(region)
		require.NoError(t, err)
		entries = append(entries, entry)
	}

	resp := NewDestinationsResponse(entries, catalog.AirportFee())

	require.Len(t, resp.Destinations, 4)
	assert.Equal(t, int64(2000), resp.AirportFee.Cents)

	europe := resp.Destinations[0]
	assert.Equal(t, "europe", europe.Region)
	assert.Len(t, europe.Services["dog"], 4)
	assert.Len(t, europe.Services["cat"], 4)
}

func TestGuidanceRequest_ToDomain(t *testing.T) {
	req := GuidanceRequest{
		Destination: "Japón",
		Species:     "cat",
		AnimalAge:   3,
	}
	require.NoError(t, Validate(&req))

	domReq, err := req.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, domain.SpeciesCat, domReq.Species)
	assert.Equal(t, "Japón", domReq.Destination)
}

func TestGuidanceRequest_Validation(t *testing.T) {
	req := GuidanceRequest{Destination: "J", Species: "dog", AnimalAge: 3}
	err := Validate(&req)
	require.Error(t, err)
	assert.Contains(t, ValidationErrors(err), "destination")

	req = GuidanceRequest{Destination: "Japón", Species: "hamster", AnimalAge: 3}
	err = Validate(&req)
	require.Error(t, err)
	assert.Contains(t, ValidationErrors(err), "species")

	req = GuidanceRequest{Destination: "Japón", Species: "dog", AnimalAge: 80}
	err = Validate(&req)
	require.Error(t, err)
	assert.Contains(t, ValidationErrors(err), "animalAge")
}
