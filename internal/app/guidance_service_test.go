package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoevet/pet-travel-service/internal/domain"
)

type fakeGuidanceClient struct {
	text    string
	err     error
	calls   int
	lastReq domain.GuidanceRequest
}

func (f *fakeGuidanceClient) GenerateGuidance(_ context.Context, req domain.GuidanceRequest) (string, error) {
	f.calls++
	f.lastReq = req

	return f.text, f.err
}

type fakeFlags struct {
	bools map[string]bool
}

func (f *fakeFlags) IsEnabled(_ context.Context, flag string, defaultValue bool) bool {
	if v, ok := f.bools[flag]; ok {
		return v
	}

	return defaultValue
}

func (f *fakeFlags) GetString(_ context.Context, _ string, defaultValue string) string {
	return defaultValue
}

func guidanceService(client *fakeGuidanceClient, enabled bool) *GuidanceService {
	return NewGuidanceService(GuidanceServiceConfig{
		Client: client,
		Flags:  &fakeFlags{bools: map[string]bool{GuidanceFlag: enabled}},
	})
}

func TestGuidanceService_Generate_FlagOff(t *testing.T) {
	client := &fakeGuidanceClient{text: "requisitos"}
	svc := guidanceService(client, false)

	_, err := svc.Generate(context.Background(), domain.GuidanceRequest{Destination: "Japón"})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Zero(t, client.calls)
}

func TestGuidanceService_Generate(t *testing.T) {
	client := &fakeGuidanceClient{text: "Para viajar a Japón necesitas..."}
	svc := guidanceService(client, true)

	req := domain.GuidanceRequest{
		Destination:      "Japón",
		Species:          domain.SpeciesDog,
		AnimalAge:        4,
		HealthConditions: "Ninguna",
	}

	text, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, client.text, text)
	assert.Equal(t, req, client.lastReq)
}

func TestGuidanceService_Generate_ClientError(t *testing.T) {
	client := &fakeGuidanceClient{err: domain.NewUnavailableError("gemini", "down")}
	svc := guidanceService(client, true)

	_, err := svc.Generate(context.Background(), domain.GuidanceRequest{Destination: "Japón"})
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
}

func TestGuidanceService_GenerateForQuote(t *testing.T) {
	client := &fakeGuidanceClient{text: "Lleva el pasaporte europeo de tu mascota."}
	svc := guidanceService(client, true)
	quotes := NewQuoteService(QuoteServiceConfig{Catalog: domain.DefaultCatalog()})

	quote, text, err := svc.GenerateForQuote(context.Background(), quotes, quoteRequest(domain.SpeciesDog, domain.RegionEurope))
	require.NoError(t, err)

	assert.Equal(t, domain.Dollars(590), quote.Total)
	assert.Equal(t, client.text, text)
	// The guidance request derives from the catalog entry, not raw input.
	assert.Equal(t, "Europa", client.lastReq.Destination)
	assert.Equal(t, "Ninguna", client.lastReq.HealthConditions)
}

func TestGuidanceService_GenerateForQuote_GuidanceDegrades(t *testing.T) {
	client := &fakeGuidanceClient{err: domain.NewUnavailableError("gemini", "down")}
	svc := guidanceService(client, true)
	quotes := NewQuoteService(QuoteServiceConfig{Catalog: domain.DefaultCatalog()})

	quote, text, err := svc.GenerateForQuote(context.Background(), quotes, quoteRequest(domain.SpeciesCat, domain.RegionAsia))
	require.NoError(t, err)

	assert.Equal(t, domain.Dollars(770), quote.Total)
	assert.Empty(t, text)
}

func TestGuidanceService_GenerateForQuote_QuoteFailurePropagates(t *testing.T) {
	client := &fakeGuidanceClient{text: "ok"}
	svc := guidanceService(client, true)
	quotes := NewQuoteService(QuoteServiceConfig{Catalog: singleRegionCatalog(t)})

	_, _, err := svc.GenerateForQuote(context.Background(), quotes, quoteRequest(domain.SpeciesDog, domain.RegionAsia))
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestGenerateForQuote_DerivesAge(t *testing.T) {
	client := &fakeGuidanceClient{text: "x"}
	svc := guidanceService(client, true)
	quotes := NewQuoteService(QuoteServiceConfig{Catalog: domain.DefaultCatalog()})

	// Born 2020-03-15; at least 6 whole years from 2026-08 onward.
	_, _, err := svc.GenerateForQuote(context.Background(), quotes, quoteRequest(domain.SpeciesDog, domain.RegionEurope))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, client.lastReq.AnimalAge, 6)
}
