// Package render produces the printable quote document.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/microcosm-cc/bluemonday"

	"github.com/zoevet/pet-travel-service/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// ClinicInfo is the clinic letterhead printed on every document.
type ClinicInfo struct {
	Name     string
	Phone    string
	Email    string
	Address  string
	Schedule string
}

// DocumentRenderer renders a quote into a self-contained printable HTML
// document. Styling is inline so the document survives being saved or
// printed outside the application.
type DocumentRenderer struct {
	tmpl   *template.Template
	policy *bluemonday.Policy
}

// NewDocumentRenderer parses the embedded document template.
func NewDocumentRenderer() (*DocumentRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/document.html")
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}

	return &DocumentRenderer{
		tmpl: tmpl,
		// StrictPolicy strips all markup from owner-entered text. The
		// template escapes on output as well; sanitizing the input keeps
		// markup fragments out of the document entirely.
		policy: bluemonday.StrictPolicy(),
	}, nil
}

// documentView is the template's view model. All money values are
// pre-rendered strings so the template stays formatting-free.
type documentView struct {
	Clinic ClinicInfo

	QuoteID     string
	GeneratedAt string

	OwnerName string
	PetName   string
	Species   string
	Breed     string
	Color     string
	Weight    string
	BirthDate string
	AgeYears  int

	Destination       string
	Description       string
	EstimatedLeadTime string

	LineItems []documentLineItem

	ServicesSubtotal  string
	GovernmentFee     string
	GovernmentFeeNote string
	AirportFee        string
	Total             string

	Guidance string
}

type documentLineItem struct {
	Label  string
	Detail string
	Price  string
}

// Render writes the printable document for a quote. The guidance paragraph
// is optional; when empty the document omits that section.
func (r *DocumentRenderer) Render(w io.Writer, quote *domain.Quote, clinic ClinicInfo, guidance string) error {
	if quote == nil {
		return domain.NewValidationError("quote", "is required")
	}

	view := documentView{
		Clinic: clinic,

		QuoteID:     quote.ID,
		GeneratedAt: quote.GeneratedAt.Format("02/01/2006 15:04"),

		OwnerName: r.policy.Sanitize(quote.Request.OwnerName),
		PetName:   r.policy.Sanitize(quote.Request.PetName),
		Species:   speciesDisplay(quote.Request.Species),
		Breed:     r.policy.Sanitize(quote.Request.Breed),
		Color:     r.policy.Sanitize(quote.Request.Color),
		Weight:    r.policy.Sanitize(quote.Request.Weight),
		BirthDate: quote.Request.BirthDate.Format("02/01/2006"),
		AgeYears:  quote.PetAgeYears(quote.GeneratedAt),

		Destination:       quote.Entry.Title,
		Description:       quote.Entry.Description,
		EstimatedLeadTime: quote.Entry.EstimatedLeadTime,

		ServicesSubtotal:  quote.ServicesSubtotal.String(),
		GovernmentFee:     quote.GovernmentFee.String(),
		GovernmentFeeNote: quote.Entry.GovernmentFeeNote,
		AirportFee:        quote.AirportFee.String(),
		Total:             quote.Total.String(),

		Guidance: r.policy.Sanitize(guidance),
	}

	for _, item := range quote.LineItems {
		view.LineItems = append(view.LineItems, documentLineItem{
			Label:  item.Label,
			Detail: item.Detail,
			Price:  item.Price.String(),
		})
	}

	if err := r.tmpl.Execute(w, view); err != nil {
		return fmt.Errorf("rendering quote document: %w", err)
	}

	return nil
}

// speciesDisplay renders the species in the document's language.
func speciesDisplay(s domain.Species) string {
	switch s {
	case domain.SpeciesDog:
		return "Perro"
	case domain.SpeciesCat:
		return "Gato"
	default:
		return string(s)
	}
}
