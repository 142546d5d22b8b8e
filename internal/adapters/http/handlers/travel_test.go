package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoevet/pet-travel-service/internal/adapters/render"
	"github.com/zoevet/pet-travel-service/internal/app"
	"github.com/zoevet/pet-travel-service/internal/domain"
)

type stubGuidanceClient struct {
	text string
	err  error
}

func (s *stubGuidanceClient) GenerateGuidance(context.Context, domain.GuidanceRequest) (string, error) {
	return s.text, s.err
}

type stubFlags struct {
	guidance bool
}

func (s *stubFlags) IsEnabled(_ context.Context, flag string, defaultValue bool) bool {
	if flag == app.GuidanceFlag {
		return s.guidance
	}

	return defaultValue
}

func (s *stubFlags) GetString(_ context.Context, _ string, defaultValue string) string {
	return defaultValue
}

func newTestRouter(t *testing.T, guidanceOn bool, client *stubGuidanceClient) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if client == nil {
		client = &stubGuidanceClient{}
	}

	quotes := app.NewQuoteService(app.QuoteServiceConfig{Catalog: domain.DefaultCatalog()})
	guidance := app.NewGuidanceService(app.GuidanceServiceConfig{
		Client: client,
		Flags:  &stubFlags{guidance: guidanceOn},
	})

	renderer, err := render.NewDocumentRenderer()
	require.NoError(t, err)

	handler := NewTravelHandler(TravelHandlerConfig{
		Quotes:   quotes,
		Guidance: guidance,
		Renderer: renderer,
		Clinic: render.ClinicInfo{
			Name:  "Centro Veterinario Zoé",
			Phone: "+58 412 595 7240",
			Email: "contacto@vetpethaven.es",
		},
		WhatsAppNumber: "584125957240",
	})

	engine := gin.New()
	handler.RegisterRoutes(engine.Group("/api/v1"))

	return engine
}

func doJSON(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	return rec
}

const validQuoteBody = `{
	"ownerName": "María Pérez",
	"petName": "Rocky",
	"breed": "Beagle",
	"color": "Tricolor",
	"species": "dog",
	"weight": "12.5",
	"birthDate": "2020-03-15",
	"destinationRegion": "europe",
	"contactPhone": "+34 600 111 222"
}`

func TestCreateQuote(t *testing.T) {
	engine := newTestRouter(t, false, nil)

	rec := doJSON(engine, http.MethodPost, "/api/v1/travel/quotes", validQuoteBody)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		QuoteID  string `json:"quoteId"`
		Services []any  `json:"services"`
		Total    struct {
			Cents   int64  `json:"cents"`
			Display string `json:"display"`
		} `json:"total"`
		WhatsApp struct {
			Message string `json:"message"`
			Link    string `json:"link"`
		} `json:"whatsapp"`
		Guidance string `json:"guidance"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.QuoteID)
	assert.Len(t, resp.Services, 4)
	assert.Equal(t, int64(59000), resp.Total.Cents)
	assert.Equal(t, "$590", resp.Total.Display)
	assert.Contains(t, resp.WhatsApp.Message, "Rocky")
	assert.True(t, strings.HasPrefix(resp.WhatsApp.Link, "https://wa.me/584125957240?text="))
	assert.Empty(t, resp.Guidance)
}

func TestCreateQuote_WithGuidance(t *testing.T) {
	client := &stubGuidanceClient{text: "Lleva el pasaporte europeo."}
	engine := newTestRouter(t, true, client)

	rec := doJSON(engine, http.MethodPost, "/api/v1/travel/quotes", validQuoteBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Lleva el pasaporte europeo.")
}

func TestCreateQuote_GuidanceFailureDegrades(t *testing.T) {
	client := &stubGuidanceClient{err: domain.NewUnavailableError("gemini", "down")}
	engine := newTestRouter(t, true, client)

	rec := doJSON(engine, http.MethodPost, "/api/v1/travel/quotes", validQuoteBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "guidance")
}

func TestCreateQuote_ValidationErrors(t *testing.T) {
	engine := newTestRouter(t, false, nil)

	body := strings.Replace(validQuoteBody, `"12.5"`, `"12.555"`, 1)

	rec := doJSON(engine, http.MethodPost, "/api/v1/travel/quotes", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, rec.Body.String(), "weight")
}

func TestCreateQuote_MalformedJSON(t *testing.T) {
	engine := newTestRouter(t, false, nil)

	rec := doJSON(engine, http.MethodPost, "/api/v1/travel/quotes", "{not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "BAD_REQUEST")
}

func TestCreateQuote_UnknownRegion(t *testing.T) {
	engine := newTestRouter(t, false, nil)

	body := strings.Replace(validQuoteBody, `"europe"`, `"antarctica"`, 1)

	rec := doJSON(engine, http.MethodPost, "/api/v1/travel/quotes", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "destinationRegion")
}

func TestCreateQuote_SpanishRegionAlias(t *testing.T) {
	engine := newTestRouter(t, false, nil)

	body := strings.Replace(validQuoteBody, `"europe"`, `"europa"`, 1)

	rec := doJSON(engine, http.MethodPost, "/api/v1/travel/quotes", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"region":"europe"`)
}

func TestRenderDocument(t *testing.T) {
	engine := newTestRouter(t, false, nil)

	rec := doJSON(engine, http.MethodPost, "/api/v1/travel/quotes/document", validQuoteBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Centro Veterinario Zoé")
	assert.Contains(t, rec.Body.String(), "$590")
}

func TestRenderDocument_InvalidBody(t *testing.T) {
	engine := newTestRouter(t, false, nil)

	rec := doJSON(engine, http.MethodPost, "/api/v1/travel/quotes/document", `{"ownerName": "M"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListDestinations(t *testing.T) {
	engine := newTestRouter(t, false, nil)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/travel/destinations", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Destinations []struct {
			Region string `json:"region"`
		} `json:"destinations"`
		AirportFee struct {
			Cents int64 `json:"cents"`
		} `json:"airportFee"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Destinations, 4)
	assert.Equal(t, "europe", resp.Destinations[0].Region)
	assert.Equal(t, int64(2000), resp.AirportFee.Cents)
}

func TestGenerateGuidance_FlagOff(t *testing.T) {
	engine := newTestRouter(t, false, &stubGuidanceClient{text: "requisitos"})

	rec := doJSON(engine, http.MethodPost, "/api/v1/travel/guidance",
		`{"destination": "Japón", "species": "dog", "animalAge": 4}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateGuidance(t *testing.T) {
	engine := newTestRouter(t, true, &stubGuidanceClient{text: "Necesitas titulación de anticuerpos."})

	rec := doJSON(engine, http.MethodPost, "/api/v1/travel/guidance",
		`{"destination": "Japón", "species": "dog", "animalAge": 4, "healthConditions": "Ninguna"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Necesitas titulación de anticuerpos.")
}

func TestGenerateGuidance_Unavailable(t *testing.T) {
	engine := newTestRouter(t, true, &stubGuidanceClient{err: domain.NewUnavailableError("gemini", "down")})

	rec := doJSON(engine, http.MethodPost, "/api/v1/travel/guidance",
		`{"destination": "Japón", "species": "dog", "animalAge": 4}`)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "SERVICE_UNAVAILABLE")
}

func TestGenerateGuidance_InvalidBody(t *testing.T) {
	engine := newTestRouter(t, true, nil)

	rec := doJSON(engine, http.MethodPost, "/api/v1/travel/guidance",
		`{"destination": "J", "species": "hamster", "animalAge": -1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
