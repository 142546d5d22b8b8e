package domain

import "fmt"

// ErrCatalogMiss indicates a (region, species) lookup that the catalog does
// not cover. Enum validation upstream makes this unreachable in normal
// operation; hitting it means the catalog data and the enums disagree.
var ErrCatalogMiss = NewNotFoundError("catalog entry", "")

// CatalogMissError reports the exact lookup that failed.
type CatalogMissError struct {
	Region  Region
	Species Species
}

// Error implements the error interface.
func (e *CatalogMissError) Error() string {
	if e.Species != "" {
		return fmt.Sprintf("catalog has no services for region %q species %q", e.Region, e.Species)
	}

	return fmt.Sprintf("catalog has no entry for region %q", e.Region)
}

// Unwrap returns ErrCatalogMiss, which itself unwraps to ErrNotFound, so
// errors.Is matches both sentinels.
func (e *CatalogMissError) Unwrap() error {
	return ErrCatalogMiss
}

// DestinationEntry is the immutable catalog record for one destination
// region: display copy, lead-time advisory, the governmental fee, and the
// required services per species.
type DestinationEntry struct {
	Region            Region
	Title             string
	Description       string
	EstimatedLeadTime string
	GovernmentFee     Cents
	GovernmentFeeNote string
	Services          map[Species][]ServiceLineItem
}

// ServicesFor returns a copy of the ordered service sequence for a species.
// The copy keeps callers from mutating catalog data through the slice.
func (e DestinationEntry) ServicesFor(species Species) ([]ServiceLineItem, error) {
	items, ok := e.Services[species]
	if !ok || len(items) == 0 {
		return nil, &CatalogMissError{Region: e.Region, Species: species}
	}

	out := make([]ServiceLineItem, len(items))
	copy(out, items)

	return out, nil
}

// Catalog is the static table of destination entries plus the flat
// airport-authority fee. It is built once at startup and injected into the
// quote service; nothing mutates it afterwards.
type Catalog struct {
	entries    map[Region]DestinationEntry
	airportFee Cents
}

// NewCatalog builds a catalog from entries, enforcing the invariant that
// every entry defines at least one service for every species.
func NewCatalog(entries []DestinationEntry, airportFee Cents) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, NewValidationError("catalog", "at least one destination entry is required")
	}

	if airportFee < 0 {
		return nil, NewValidationError("airportFee", "must not be negative")
	}

	byRegion := make(map[Region]DestinationEntry, len(entries))

	for _, entry := range entries {
		if !entry.Region.Valid() {
			return nil, NewValidationErrorWithValue("region", "unknown region in catalog", string(entry.Region))
		}

		if _, dup := byRegion[entry.Region]; dup {
			return nil, NewConflictError("catalog", fmt.Sprintf("duplicate entry for region %q", entry.Region))
		}

		for _, species := range AllSpecies() {
			if len(entry.Services[species]) == 0 {
				return nil, NewValidationError("services",
					fmt.Sprintf("region %q defines no services for species %q", entry.Region, species))
			}
		}

		for species, items := range entry.Services {
			for _, item := range items {
				if item.Price < 0 {
					return nil, NewValidationError("price",
						fmt.Sprintf("negative price for %q (%s/%s)", item.Label, entry.Region, species))
				}
			}
		}

		byRegion[entry.Region] = entry
	}

	return &Catalog{entries: byRegion, airportFee: airportFee}, nil
}

// Entry returns the catalog entry for a region.
func (c *Catalog) Entry(region Region) (DestinationEntry, error) {
	entry, ok := c.entries[region]
	if !ok {
		return DestinationEntry{}, &CatalogMissError{Region: region}
	}

	return entry, nil
}

// Regions returns the catalog's regions in canonical display order.
func (c *Catalog) Regions() []Region {
	out := make([]Region, 0, len(c.entries))

	for _, r := range AllRegions() {
		if _, ok := c.entries[r]; ok {
			out = append(out, r)
		}
	}

	return out
}

// AirportFee is the flat airport-authority charge applied once per quote.
func (c *Catalog) AirportFee() Cents {
	return c.airportFee
}

// defaultAirportFee is the observed flat airport-authority charge.
const defaultAirportFee = 20

// DefaultCatalog returns the built-in destination catalog. Deployments can
// replace it with a YAML file via the catalog.path config key.
func DefaultCatalog() *Catalog {
	euServices := []ServiceLineItem{
		{Label: "Annual Vaccination", Detail: "Rabies and core vaccines, valid for 12 months", Price: Dollars(100)},
		{Label: "Microchip Implant", Detail: "ISO 11784/11785 compliant identification chip", Price: Dollars(50)},
		{Label: "Antibody Titration", Detail: "Rabies serology test at an EU-approved laboratory", Price: Dollars(200)},
		{Label: "EU Official Health Certificate", Detail: "Issued and endorsed within 10 days of travel", Price: Dollars(150)},
	}

	naServices := []ServiceLineItem{
		{Label: "Annual Vaccination", Detail: "Rabies and core vaccines, valid for 12 months", Price: Dollars(100)},
		{Label: "Microchip Implant", Detail: "ISO 11784/11785 compliant identification chip", Price: Dollars(50)},
		{Label: "International Health Certificate", Detail: "Endorsed export health certificate", Price: Dollars(120)},
	}

	latamServices := []ServiceLineItem{
		{Label: "Annual Vaccination", Detail: "Rabies and core vaccines, valid for 12 months", Price: Dollars(100)},
		{Label: "Export Health Certificate", Detail: "Regional export certificate and deworming record", Price: Dollars(80)},
	}

	entries := []DestinationEntry{
		{
			Region:            RegionEurope,
			Title:             "Europa",
			Description:       "Unión Europea y Reino Unido",
			EstimatedLeadTime: "4 a 6 meses antes del viaje",
			GovernmentFee:     Dollars(70),
			GovernmentFeeNote: "Tasa gubernamental de exportación",
			Services: map[Species][]ServiceLineItem{
				SpeciesDog: euServices,
				SpeciesCat: euServices,
			},
		},
		{
			Region:            RegionNorthAmerica,
			Title:             "Norteamérica",
			Description:       "Estados Unidos, Canadá y México",
			EstimatedLeadTime: "2 a 3 meses antes del viaje",
			GovernmentFee:     Dollars(85),
			GovernmentFeeNote: "Tasa gubernamental de exportación",
			Services: map[Species][]ServiceLineItem{
				SpeciesDog: naServices,
				SpeciesCat: naServices,
			},
		},
		{
			Region:            RegionAsia,
			Title:             "Asia",
			Description:       "Incluye destinos con cuarentena estricta",
			EstimatedLeadTime: "6 a 8 meses antes del viaje",
			GovernmentFee:     Dollars(100),
			GovernmentFeeNote: "Tasa gubernamental y de cuarentena",
			Services: map[Species][]ServiceLineItem{
				SpeciesDog: {
					{Label: "Comprehensive Asia Package", Detail: "Vacunas, microchip, titulación y certificados", Price: Dollars(700)},
				},
				SpeciesCat: {
					{Label: "Comprehensive Asia Package", Detail: "Vacunas, microchip, titulación y certificados", Price: Dollars(650)},
				},
			},
		},
		{
			Region:            RegionLatinAmerica,
			Title:             "Latinoamérica",
			Description:       "América Central y del Sur",
			EstimatedLeadTime: "1 a 2 meses antes del viaje",
			GovernmentFee:     Dollars(40),
			GovernmentFeeNote: "Tasa gubernamental de exportación",
			Services: map[Species][]ServiceLineItem{
				SpeciesDog: latamServices,
				SpeciesCat: latamServices,
			},
		},
	}

	catalog, err := NewCatalog(entries, Dollars(defaultAirportFee))
	if err != nil {
		// The built-in data is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}

	return catalog
}
