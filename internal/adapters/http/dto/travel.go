package dto

import (
	"time"

	"github.com/zoevet/pet-travel-service/internal/domain"
)

// TravelQuoteRequest is the submission payload for quote and document
// endpoints. Weight and birthDate arrive as strings and are checked by the
// petweight and birthdate validators before domain conversion.
type TravelQuoteRequest struct {
	OwnerName string `json:"ownerName" validate:"required,notempty,min=2,max=120"`
	PetName   string `json:"petName" validate:"required,notempty,min=1,max=120"`
	Breed     string `json:"breed" validate:"required,notempty,min=2,max=120"`
	Color     string `json:"color" validate:"required,notempty,min=2,max=60"`
	Species   string `json:"species" validate:"required,oneof=dog cat"`
	Weight    string `json:"weight" validate:"required,petweight"`
	BirthDate string `json:"birthDate" validate:"required,birthdate"`

	// DestinationRegion accepts canonical keys and the legacy Spanish
	// aliases; ParseRegion normalizes either form.
	DestinationRegion string `json:"destinationRegion" validate:"required,notempty"`

	// Contact details are optional and only feed the share message.
	ContactPhone string `json:"contactPhone,omitempty" validate:"omitempty,max=30"`
	ContactEmail string `json:"contactEmail,omitempty" validate:"omitempty,email"`
}

// ToDomain converts the validated request into domain types. Enum and date
// parsing can still fail here (e.g. an unknown region string), surfacing as
// domain validation errors.
func (r *TravelQuoteRequest) ToDomain() (domain.QuoteRequest, domain.ContactDetails, error) {
	species, err := domain.ParseSpecies(r.Species)
	if err != nil {
		return domain.QuoteRequest{}, domain.ContactDetails{}, err
	}

	region, err := domain.ParseRegion(r.DestinationRegion)
	if err != nil {
		return domain.QuoteRequest{}, domain.ContactDetails{}, err
	}

	birth, err := time.Parse(time.DateOnly, r.BirthDate)
	if err != nil {
		return domain.QuoteRequest{}, domain.ContactDetails{},
			domain.NewValidationErrorWithValue("birthDate", "must be a date in YYYY-MM-DD format", r.BirthDate)
	}

	req := domain.QuoteRequest{
		OwnerName: r.OwnerName,
		PetName:   r.PetName,
		Breed:     r.Breed,
		Color:     r.Color,
		Species:   species,
		Weight:    r.Weight,
		BirthDate: birth,
		Region:    region,
	}

	contact := domain.ContactDetails{
		Phone: r.ContactPhone,
		Email: r.ContactEmail,
	}

	return req, contact, nil
}

// Money carries an amount both as exact cents and as display text.
type Money struct {
	Cents   int64  `json:"cents"`
	Display string `json:"display"`
}

// NewMoney converts a domain amount to its wire form.
func NewMoney(c domain.Cents) Money {
	return Money{Cents: int64(c), Display: c.String()}
}

// ServiceLineResponse is one priced service within a quote response.
type ServiceLineResponse struct {
	Label  string `json:"label"`
	Detail string `json:"detail"`
	Price  Money  `json:"price"`
}

// DestinationSummary describes the selected destination within a quote.
type DestinationSummary struct {
	Region            string `json:"region"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	EstimatedLeadTime string `json:"estimatedLeadTime"`
}

// WhatsAppShare carries the pre-built share hand-off.
type WhatsAppShare struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// TravelQuoteResponse is the computed price breakdown returned to the client.
type TravelQuoteResponse struct {
	QuoteID     string    `json:"quoteId"`
	GeneratedAt time.Time `json:"generatedAt"`

	Destination DestinationSummary    `json:"destination"`
	Services    []ServiceLineResponse `json:"services"`

	ServicesSubtotal Money `json:"servicesSubtotal"`
	GovernmentFee    Money `json:"governmentFee"`
	AirportFee       Money `json:"airportFee"`
	Total            Money `json:"total"`

	WhatsApp WhatsAppShare `json:"whatsapp"`

	// Guidance is the optional AI travel-requirements paragraph. Empty when
	// the feature is disabled or the collaborator was unavailable.
	Guidance string `json:"guidance,omitempty"`
}

// NewTravelQuoteResponse builds the response from a computed quote and the
// pre-built share hand-off.
func NewTravelQuoteResponse(quote *domain.Quote, share WhatsAppShare, guidance string) *TravelQuoteResponse {
	services := make([]ServiceLineResponse, 0, len(quote.LineItems))
	for _, item := range quote.LineItems {
		services = append(services, ServiceLineResponse{
			Label:  item.Label,
			Detail: item.Detail,
			Price:  NewMoney(item.Price),
		})
	}

	return &TravelQuoteResponse{
		QuoteID:     quote.ID,
		GeneratedAt: quote.GeneratedAt,
		Destination: DestinationSummary{
			Region:            string(quote.Entry.Region),
			Title:             quote.Entry.Title,
			Description:       quote.Entry.Description,
			EstimatedLeadTime: quote.Entry.EstimatedLeadTime,
		},
		Services:         services,
		ServicesSubtotal: NewMoney(quote.ServicesSubtotal),
		GovernmentFee:    NewMoney(quote.GovernmentFee),
		AirportFee:       NewMoney(quote.AirportFee),
		Total:            NewMoney(quote.Total),
		WhatsApp:         share,
		Guidance:         guidance,
	}
}

// DestinationResponse is one catalog entry in the destinations listing.
type DestinationResponse struct {
	Region            string                           `json:"region"`
	Title             string                           `json:"title"`
	Description       string                           `json:"description"`
	EstimatedLeadTime string                           `json:"estimatedLeadTime"`
	GovernmentFee     Money                            `json:"governmentFee"`
	GovernmentFeeNote string                           `json:"governmentFeeNote"`
	Services          map[string][]ServiceLineResponse `json:"services"`
}

// DestinationsResponse lists the catalog entries plus the flat airport fee
// applied to every quote.
type DestinationsResponse struct {
	Destinations []DestinationResponse `json:"destinations"`
	AirportFee   Money                 `json:"airportFee"`
}

// NewDestinationsResponse builds the listing from catalog entries.
func NewDestinationsResponse(entries []domain.DestinationEntry, airportFee domain.Cents) *DestinationsResponse {
	out := make([]DestinationResponse, 0, len(entries))

	for _, entry := range entries {
		services := make(map[string][]ServiceLineResponse, len(entry.Services))

		for _, species := range domain.AllSpecies() {
			items, err := entry.ServicesFor(species)
			if err != nil {
				continue
			}

			lines := make([]ServiceLineResponse, 0, len(items))
			for _, item := range items {
				lines = append(lines, ServiceLineResponse{
					Label:  item.Label,
					Detail: item.Detail,
					Price:  NewMoney(item.Price),
				})
			}

			services[string(species)] = lines
		}

		out = append(out, DestinationResponse{
			Region:            string(entry.Region),
			Title:             entry.Title,
			Description:       entry.Description,
			EstimatedLeadTime: entry.EstimatedLeadTime,
			GovernmentFee:     NewMoney(entry.GovernmentFee),
			GovernmentFeeNote: entry.GovernmentFeeNote,
			Services:          services,
		})
	}

	return &DestinationsResponse{
		Destinations: out,
		AirportFee:   NewMoney(airportFee),
	}
}

// GuidanceRequest is the payload for the standalone guidance endpoint. It
// serves the older free-form travel page, so the destination is a country
// name rather than a catalog region.
type GuidanceRequest struct {
	Destination      string `json:"destination" validate:"required,notempty,min=2,max=120"`
	Species          string `json:"species" validate:"required,oneof=dog cat"`
	AnimalAge        int    `json:"animalAge" validate:"gte=0,lte=50"`
	HealthConditions string `json:"healthConditions,omitempty" validate:"omitempty,max=500"`
}

// ToDomain converts the validated request into the domain type.
func (r *GuidanceRequest) ToDomain() (domain.GuidanceRequest, error) {
	species, err := domain.ParseSpecies(r.Species)
	if err != nil {
		return domain.GuidanceRequest{}, err
	}

	return domain.GuidanceRequest{
		Destination:      r.Destination,
		Species:          species,
		AnimalAge:        r.AnimalAge,
		HealthConditions: r.HealthConditions,
	}, nil
}

// GuidanceResponse carries the generated travel-requirements paragraph.
type GuidanceResponse struct {
	Guidance string `json:"guidance"`
}
