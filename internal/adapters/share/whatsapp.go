// Package share builds the WhatsApp hand-off for a computed quote.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/zoevet/pet-travel-service/internal/domain"
)

// emptyField is printed for optional fields the owner left blank, keeping
// the message layout stable for the clinic staff reading it.
const emptyField = "—"

// BuildMessage renders the plain-text WhatsApp message for a quote. The
// field order is fixed; clinic staff rely on it when transcribing quotes.
func BuildMessage(quote *domain.Quote, contact domain.ContactDetails) string {
	var sb strings.Builder

	sb.WriteString("Hola, quiero una cotización de viaje para mi mascota.\n\n")

	writeField(&sb, "Propietario", quote.Request.OwnerName)
	writeField(&sb, "Mascota", quote.Request.PetName)
	writeField(&sb, "Especie", speciesDisplay(quote.Request.Species))
	writeField(&sb, "Raza", quote.Request.Breed)
	writeField(&sb, "Color", quote.Request.Color)
	writeField(&sb, "Peso", weightDisplay(quote.Request.Weight))
	writeField(&sb, "Fecha de nacimiento", quote.Request.BirthDate.Format("02/01/2006"))
	writeField(&sb, "Destino", quote.Entry.Title)

	sb.WriteString("\nServicios requeridos:\n")

	for _, item := range quote.LineItems {
		fmt.Fprintf(&sb, "- %s: %s\n", item.Label, item.Price)
	}

	sb.WriteString("\n")
	writeField(&sb, "Subtotal de servicios", quote.ServicesSubtotal.String())
	writeField(&sb, quote.Entry.GovernmentFeeNote, quote.GovernmentFee.String())
	writeField(&sb, "Tasa aeroportuaria", quote.AirportFee.String())
	writeField(&sb, "Total", quote.Total.String())

	sb.WriteString("\nDatos de contacto:\n")
	writeField(&sb, "Teléfono", contact.Phone)
	writeField(&sb, "Correo", contact.Email)

	return sb.String()
}

// DeepLink builds the wa.me URL that opens a WhatsApp conversation with the
// clinic, pre-filled with the message. The number must be in international
// format without "+" or spaces.
func DeepLink(clinicNumber, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", clinicNumber, url.QueryEscape(message))
}

// writeField appends one "Label: value" line, substituting the placeholder
// for blank values.
func writeField(sb *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		value = emptyField
	}

	fmt.Fprintf(sb, "%s: %s\n", label, value)
}

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

func weightDisplay(weight string) string {
	if strings.TrimSpace(weight) == "" {
		return ""
	}

	return weight + " kg"
}
