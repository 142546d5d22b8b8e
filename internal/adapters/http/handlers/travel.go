package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zoevet/pet-travel-service/internal/adapters/http/dto"
	"github.com/zoevet/pet-travel-service/internal/adapters/render"
	"github.com/zoevet/pet-travel-service/internal/adapters/share"
	"github.com/zoevet/pet-travel-service/internal/app"
	"github.com/zoevet/pet-travel-service/internal/domain"
)

// TravelHandler handles the pet-travel quoting endpoints.
type TravelHandler struct {
	quotes   *app.QuoteService
	guidance *app.GuidanceService
	renderer *render.DocumentRenderer

	clinic         render.ClinicInfo
	whatsappNumber string

	logger *slog.Logger
}

// TravelHandlerConfig contains dependencies for the travel handler.
type TravelHandlerConfig struct {
	Quotes   *app.QuoteService
	Guidance *app.GuidanceService
	Renderer *render.DocumentRenderer

	// Clinic is the letterhead printed on quote documents.
	Clinic render.ClinicInfo

	// WhatsAppNumber is the clinic's number in international format without
	// "+" or spaces, used for wa.me deep links.
	WhatsAppNumber string

	Logger *slog.Logger
}

// NewTravelHandler creates the travel handler.
// Panics if Quotes, Guidance, or Renderer is nil.
func NewTravelHandler(cfg TravelHandlerConfig) *TravelHandler {
	if cfg.Quotes == nil {
		panic("TravelHandler: Quotes is required")
	}

	if cfg.Guidance == nil {
		panic("TravelHandler: Guidance is required")
	}

	if cfg.Renderer == nil {
		panic("TravelHandler: Renderer is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &TravelHandler{
		quotes:         cfg.Quotes,
		guidance:       cfg.Guidance,
		renderer:       cfg.Renderer,
		clinic:         cfg.Clinic,
		whatsappNumber: cfg.WhatsAppNumber,
		logger:         logger,
	}
}

// RegisterRoutes registers the travel endpoints on the given router group.
//   - POST /travel/quotes - compute a price breakdown
//   - POST /travel/quotes/document - render the printable document
//   - GET  /travel/destinations - list catalog entries
//   - POST /travel/guidance - generate a travel-requirements paragraph
func (h *TravelHandler) RegisterRoutes(rg *gin.RouterGroup) {
	travel := rg.Group("/travel")
	travel.POST("/quotes", h.CreateQuote)
	travel.POST("/quotes/document", h.RenderDocument)
	travel.GET("/destinations", h.ListDestinations)
	travel.POST("/guidance", h.GenerateGuidance)
}

// CreateQuote handles POST /travel/quotes. It validates the submission,
// computes the price breakdown, and returns it together with the WhatsApp
// hand-off. When the guidance feature is on, the AI paragraph is generated
// concurrently with the quote.
func (h *TravelHandler) CreateQuote(c *gin.Context) {
	var req dto.TravelQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	quoteReq, contact, err := req.ToDomain()
	if err != nil {
		RespondWithError(c, err)
		return
	}

	quote, guidance, err := h.computeWithOptionalGuidance(c, quoteReq)
	if err != nil {
		RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTravelQuoteResponse(quote, h.buildShare(quote, contact), guidance))
}

// RenderDocument handles POST /travel/quotes/document. It computes the
// quote for the submission and responds with the printable HTML document.
// A rendering failure is a hard 500, never a silently empty page.
func (h *TravelHandler) RenderDocument(c *gin.Context) {
	var req dto.TravelQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	quoteReq, _, err := req.ToDomain()
	if err != nil {
		RespondWithError(c, err)
		return
	}

	quote, guidance, err := h.computeWithOptionalGuidance(c, quoteReq)
	if err != nil {
		RespondWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, quote, h.clinic, guidance); err != nil {
		RespondWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// ListDestinations handles GET /travel/destinations.
func (h *TravelHandler) ListDestinations(c *gin.Context) {
	entries := h.quotes.Destinations(c.Request.Context())
	c.JSON(http.StatusOK, dto.NewDestinationsResponse(entries, h.quotes.AirportFee()))
}

// GenerateGuidance handles POST /travel/guidance. The endpoint serves the
// older free-form travel page and responds 404 while the feature flag is off.
func (h *TravelHandler) GenerateGuidance(c *gin.Context) {
	var req dto.GuidanceRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	guidanceReq, err := req.ToDomain()
	if err != nil {
		RespondWithError(c, err)
		return
	}

	text, err := h.guidance.Generate(c.Request.Context(), guidanceReq)
	if err != nil {
		RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GuidanceResponse{Guidance: text})
}

// computeWithOptionalGuidance computes the quote, adding the AI paragraph
// when the feature flag is on. Guidance failures degrade to an empty string;
// only quote failures propagate.
func (h *TravelHandler) computeWithOptionalGuidance(c *gin.Context, req domain.QuoteRequest) (*domain.Quote, string, error) {
	ctx := c.Request.Context()

	if h.guidance.Enabled(ctx) {
		return h.guidance.GenerateForQuote(ctx, h.quotes, req)
	}

	quote, err := h.quotes.ComputeQuote(ctx, req)
	if err != nil {
		return nil, "", err
	}

	return quote, "", nil
}

// buildShare assembles the WhatsApp message and deep link for a quote.
func (h *TravelHandler) buildShare(quote *domain.Quote, contact domain.ContactDetails) dto.WhatsAppShare {
	message := share.BuildMessage(quote, contact)

	return dto.WhatsAppShare{
		Message: message,
		Link:    share.DeepLink(h.whatsappNumber, message),
	}
}
