// Package catalog loads the destination catalog from YAML files using
// koanf. When no file is configured the built-in domain catalog is used.
package catalog

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/zoevet/pet-travel-service/internal/domain"
)

// fileEntry is the YAML shape of one destination entry. Prices and fees
// are whole currency units in the file; they are converted to cents here.
type fileEntry struct {
	Region            string                `koanf:"region"`
	Title             string                `koanf:"title"`
	Description       string                `koanf:"description"`
	EstimatedLeadTime string                `koanf:"estimated_lead_time"`
	GovernmentFee     int64                 `koanf:"government_fee"`
	GovernmentFeeNote string                `koanf:"government_fee_note"`
	Services          map[string][]fileItem `koanf:"services"`
}

// fileItem is the YAML shape of one service line item.
type fileItem struct {
	Label  string `koanf:"label"`
	Detail string `koanf:"detail"`
	Price  int64  `koanf:"price"`
}

// fileCatalog is the root YAML document.
type fileCatalog struct {
	AirportFee   int64       `koanf:"airport_fee"`
	Destinations []fileEntry `koanf:"destinations"`
}

// Load returns the catalog for the given path. An empty path selects the
// built-in default catalog.
func Load(path string) (*domain.Catalog, error) {
	if path == "" {
		return domain.DefaultCatalog(), nil
	}

	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading catalog file %q: %w", path, err)
	}

	var doc fileCatalog
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, fmt.Errorf("unmarshalling catalog file %q: %w", path, err)
	}

	return build(&doc)
}

// build converts the YAML document to a validated domain catalog.
func build(doc *fileCatalog) (*domain.Catalog, error) {
	entries := make([]domain.DestinationEntry, 0, len(doc.Destinations))

	for _, fe := range doc.Destinations {
		region, err := domain.ParseRegion(fe.Region)
		if err != nil {
			return nil, err
		}

		services := make(map[domain.Species][]domain.ServiceLineItem, len(fe.Services))

		for rawSpecies, items := range fe.Services {
			species, err := domain.ParseSpecies(rawSpecies)
			if err != nil {
				return nil, err
			}

			lineItems := make([]domain.ServiceLineItem, 0, len(items))
			for _, item := range items {
				lineItems = append(lineItems, domain.ServiceLineItem{
					Label:  item.Label,
					Detail: item.Detail,
					Price:  domain.Dollars(item.Price),
				})
			}

			services[species] = lineItems
		}

		entries = append(entries, domain.DestinationEntry{
			Region:            region,
			Title:             fe.Title,
			Description:       fe.Description,
			EstimatedLeadTime: fe.EstimatedLeadTime,
			GovernmentFee:     domain.Dollars(fe.GovernmentFee),
			GovernmentFeeNote: fe.GovernmentFeeNote,
			Services:          services,
		})
	}

	return domain.NewCatalog(entries, domain.Dollars(doc.AirportFee))
}
