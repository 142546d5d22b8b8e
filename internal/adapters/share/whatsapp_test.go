package share

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoevet/pet-travel-service/internal/domain"
)

func testQuote(t *testing.T) *domain.Quote {
	t.Helper()

	req := domain.QuoteRequest{
		OwnerName: "María Pérez",
		PetName:   "Rocky",
		Breed:     "Beagle",
		Color:     "Tricolor",
		Species:   domain.SpeciesDog,
		Weight:    "12.5",
		BirthDate: time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC),
		Region:    domain.RegionEurope,
	}

	quote, err := domain.ComputeQuote(domain.DefaultCatalog(), req, "q-1", time.Now().UTC())
	require.NoError(t, err)

	return quote
}

func TestBuildMessage(t *testing.T) {
	quote := testQuote(t)
	contact := domain.ContactDetails{Phone: "+34 600 111 222", Email: "maria@example.com"}

	msg := BuildMessage(quote, contact)

	assert.Contains(t, msg, "Propietario: María Pérez")
	assert.Contains(t, msg, "Mascota: Rocky")
	assert.Contains(t, msg, "Especie: Perro")
	assert.Contains(t, msg, "Peso: 12.5 kg")
	assert.Contains(t, msg, "Fecha de nacimiento: 15/03/2020")
	assert.Contains(t, msg, "Destino: Europa")
	assert.Contains(t, msg, "- Annual Vaccination: $100")
	assert.Contains(t, msg, "- EU Official Health Certificate: $150")
	assert.Contains(t, msg, "Subtotal de servicios: $500")
	assert.Contains(t, msg, "Tasa aeroportuaria: $20")
	assert.Contains(t, msg, "Total: $590")
	assert.Contains(t, msg, "Teléfono: +34 600 111 222")
	assert.Contains(t, msg, "Correo: maria@example.com")
}

func TestBuildMessage_FieldOrder(t *testing.T) {
	msg := BuildMessage(testQuote(t), domain.ContactDetails{})

	fields := []string{
		"Propietario:",
		"Mascota:",
		"Especie:",
		"Raza:",
		"Color:",
		"Peso:",
		"Fecha de nacimiento:",
		"Destino:",
		"Servicios requeridos:",
		"Subtotal de servicios:",
		"Total:",
		"Teléfono:",
		"Correo:",
	}

	last := -1
	for _, field := range fields {
		idx := strings.Index(msg, field)
		require.GreaterOrEqual(t, idx, 0, "missing field %q", field)
		assert.Greater(t, idx, last, "field %q out of order", field)
		last = idx
	}
}

func TestBuildMessage_EmptyContactUsesPlaceholder(t *testing.T) {
	msg := BuildMessage(testQuote(t), domain.ContactDetails{})

	assert.Contains(t, msg, "Teléfono: —")
	assert.Contains(t, msg, "Correo: —")
}

func TestDeepLink(t *testing.T) {
	link := DeepLink("584125957240", "Hola, quiero una cotización & más")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/584125957240?text="))
	assert.Contains(t, link, "Hola%2C+quiero")
	assert.NotContains(t, link, " ")
	assert.NotContains(t, link, "&m")
}
