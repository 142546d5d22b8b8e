// Package domain contains core business entities and rules for pet travel
// quoting. Entities here have no knowledge of HTTP, configuration sources,
// or external services.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Species identifies the kind of animal travelling.
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// AllSpecies lists every supported species in display order.
func AllSpecies() []Species {
	return []Species{SpeciesDog, SpeciesCat}
}

// ParseSpecies converts a wire value to a Species.
func ParseSpecies(s string) (Species, error) {
	switch Species(strings.ToLower(strings.TrimSpace(s))) {
	case SpeciesDog:
		return SpeciesDog, nil
	case SpeciesCat:
		return SpeciesCat, nil
	default:
		return "", NewValidationErrorWithValue("species", "must be dog or cat", s)
	}
}

// Valid reports whether the species is a member of the closed enum.
func (s Species) Valid() bool {
	return s == SpeciesDog || s == SpeciesCat
}

// Region identifies a destination region in the travel catalog.
type Region string

const (
	RegionEurope       Region = "europe"
	RegionNorthAmerica Region = "north_america"
	RegionAsia         Region = "asia"
	RegionLatinAmerica Region = "latin_america"
)

// AllRegions lists every catalog region in display order.
func AllRegions() []Region {
	return []Region{RegionEurope, RegionNorthAmerica, RegionAsia, RegionLatinAmerica}
}

// regionAliases maps legacy form values from the original Spanish site
// to canonical region keys.
var regionAliases = map[string]Region{
	"europa":        RegionEurope,
	"norteamerica":  RegionNorthAmerica,
	"latinoamerica": RegionLatinAmerica,
}

// ParseRegion converts a wire value to a Region. Legacy Spanish aliases
// are accepted for compatibility with previously deployed forms.
func ParseRegion(s string) (Region, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if r, ok := regionAliases[v]; ok {
		return r, nil
	}

	switch Region(v) {
	case RegionEurope, RegionNorthAmerica, RegionAsia, RegionLatinAmerica:
		return Region(v), nil
	default:
		return "", NewValidationErrorWithValue("destinationRegion", "unknown destination region", s)
	}
}

// Valid reports whether the region is a member of the closed enum.
func (r Region) Valid() bool {
	switch r {
	case RegionEurope, RegionNorthAmerica, RegionAsia, RegionLatinAmerica:
		return true
	}

	return false
}

// Cents is a currency amount in integer cents. All catalog arithmetic is
// integral, so subtotals and totals are exact sums with no float drift.
type Cents int64

// Dollars builds an amount from a whole-dollar value.
func Dollars(d int64) Cents {
	return Cents(d * 100)
}

// String renders the amount as "$123" or "$123.45".
func (c Cents) String() string {
	if c%100 == 0 {
		return fmt.Sprintf("$%d", c/100)
	}

	return fmt.Sprintf("$%d.%02d", c/100, c%100)
}

// ServiceLineItem is one priced service within a quote.
type ServiceLineItem struct {
	// Label is the service name shown to the customer.
	Label string

	// Detail describes what the service covers.
	Detail string

	// Price is the per-quote price of the service.
	Price Cents
}

// QuoteRequest is the user-submitted input for a travel quote. It is
// validated at the adapter boundary before reaching the quote engine.
type QuoteRequest struct {
	OwnerName string
	PetName   string
	Breed     string
	Color     string
	Species   Species

	// Weight is kept as the validated decimal string the owner entered
	// (pattern \d+(\.\d{1,2})?). It is display data, not arithmetic input.
	Weight string

	BirthDate time.Time
	Region    Region
}

// ContactDetails is the reachback information included in share messages.
type ContactDetails struct {
	Phone string
	Email string
}

// Quote is the computed price breakdown for a travel request. A Quote is
// immutable once computed; a new submission produces a new Quote.
type Quote struct {
	// ID uniquely identifies this quote for logging and tracing.
	ID string

	// Request is the originating submission.
	Request QuoteRequest

	// Entry is the catalog entry selected by the request's region.
	Entry DestinationEntry

	// LineItems is the per-species service sequence from the entry.
	LineItems []ServiceLineItem

	// ServicesSubtotal is the exact sum of LineItems prices.
	ServicesSubtotal Cents

	// GovernmentFee is the destination's flat governmental charge.
	GovernmentFee Cents

	// AirportFee is the flat airport-authority charge applied once per quote.
	AirportFee Cents

	// Total is ServicesSubtotal + GovernmentFee + AirportFee.
	Total Cents

	// GeneratedAt is when the quote was computed.
	GeneratedAt time.Time
}

// ComputeQuote derives a Quote from the catalog and a validated request.
// It is a pure function over its inputs: identical (region, species) pairs
// always produce identical line items and totals.
//
// The region and species are enum-validated upstream, so a catalog miss is
// a programming error. It is reported as ErrCatalogMiss rather than being
// masked with a zero-value quote.
func ComputeQuote(catalog *Catalog, req QuoteRequest, id string, now time.Time) (*Quote, error) {
	entry, err := catalog.Entry(req.Region)
	if err != nil {
		return nil, err
	}

	items, err := entry.ServicesFor(req.Species)
	if err != nil {
		return nil, err
	}

	var subtotal Cents
	for _, item := range items {
		subtotal += item.Price
	}

	return &Quote{
		ID:               id,
		Request:          req,
		Entry:            entry,
		LineItems:        items,
		ServicesSubtotal: subtotal,
		GovernmentFee:    entry.GovernmentFee,
		AirportFee:       catalog.AirportFee(),
		Total:            subtotal + entry.GovernmentFee + catalog.AirportFee(),
		GeneratedAt:      now,
	}, nil
}

// FixedFees is the sum of the flat charges applied on top of the subtotal.
func (q *Quote) FixedFees() Cents {
	return q.GovernmentFee + q.AirportFee
}

// PetAgeYears returns the pet's age in whole years at the given time.
func (q *Quote) PetAgeYears(at time.Time) int {
	years := at.Year() - q.Request.BirthDate.Year()
	if at.YearDay() < q.Request.BirthDate.YearDay() {
		years--
	}

	if years < 0 {
		return 0
	}

	return years
}
