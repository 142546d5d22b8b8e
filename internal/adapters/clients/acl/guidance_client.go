package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zoevet/pet-travel-service/internal/adapters/clients"
	"github.com/zoevet/pet-travel-service/internal/domain"
	"github.com/zoevet/pet-travel-service/internal/ports"
)

// guidanceServiceName identifies the downstream model API in logs and errors.
const guidanceServiceName = "gemini"

// guidanceTemperature keeps the requirement summaries factual rather than
// creative.
const guidanceTemperature = 0.2

// GeminiAdapter implements ports.GuidanceClient against the Gemini
// generateContent REST endpoint. The API key is injected by the underlying
// client's AuthFunc so it never appears in URLs, spans, or logs.
type GeminiAdapter struct {
	BaseAdapter

	model  string
	origin string
}

var (
	_ ports.GuidanceClient = (*GeminiAdapter)(nil)
	_ ports.HealthChecker  = (*GeminiAdapter)(nil)
)

// NewGeminiAdapter creates a guidance adapter using the given HTTP client,
// model name (e.g. "gemini-2.0-flash"), and the clinic's country, which the
// prompt uses as the travel origin.
func NewGeminiAdapter(client *clients.Client, model, originCountry string) *GeminiAdapter {
	return &GeminiAdapter{
		BaseAdapter: NewBaseAdapter(client, guidanceServiceName),
		model:       model,
		origin:      originCountry,
	}
}

// geminiRequest is the generateContent request payload (unexported DTO).
type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature"`
}

// geminiResponse is the generateContent response payload (unexported DTO).
type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

// GenerateGuidance asks the model for a travel-requirements paragraph for
// the given destination and pet profile. The response is plain Spanish text.
func (a *GeminiAdapter) GenerateGuidance(ctx context.Context, req domain.GuidanceRequest) (string, error) {
	if err := ValidateRequired(req.Destination, "destination"); err != nil {
		return "", err
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: buildPrompt(req, a.origin)}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature: guidanceTemperature,
		},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding guidance request: %w", err)
	}

	path := fmt.Sprintf("/models/%s:generateContent", a.model)

	body, err := a.Post(ctx, path, bytes.NewReader(data), "generate guidance")
	if err != nil {
		return "", err // Already a domain error
	}

	resp, err := DecodeResponse[geminiResponse](body)
	if err != nil {
		return "", domain.NewUnavailableError(a.ServiceName(), err.Error())
	}

	return translateGuidance(resp, a.ServiceName())
}

// Name implements ports.HealthChecker.
func (a *GeminiAdapter) Name() string {
	return guidanceServiceName
}

// Check reports unhealthy while the circuit breaker is open. It makes no
// network call; guidance is optional and a live probe would spend quota.
func (a *GeminiAdapter) Check(_ context.Context) error {
	if a.Client().CircuitState() == clients.StateOpen {
		return domain.NewUnavailableError(guidanceServiceName, "circuit breaker open")
	}

	return nil
}

// translateGuidance extracts the generated text from the model response.
// An empty candidate list usually means the prompt was blocked by a safety
// filter; that surfaces as unavailable so the caller can degrade.
func translateGuidance(resp *geminiResponse, serviceName string) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", domain.NewUnavailableError(serviceName, "model returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", domain.NewUnavailableError(serviceName, "model returned empty text")
	}

	return text, nil
}

// buildPrompt renders the instruction for the model. The origin country
// comes from the clinic configuration; the response language matches the
// clinic's audience.
func buildPrompt(req domain.GuidanceRequest, origin string) string {
	if origin == "" {
		origin = "España"
	}

	var sb strings.Builder

	sb.WriteString("Eres un asistente veterinario experto en viajes internacionales con mascotas.\n")
	fmt.Fprintf(&sb, "Un cliente quiere viajar desde %s con su mascota. Datos del viaje:\n", origin)
	fmt.Fprintf(&sb, "- Destino: %s\n", req.Destination)
	fmt.Fprintf(&sb, "- Especie: %s\n", speciesSpanish(req.Species))
	fmt.Fprintf(&sb, "- Edad del animal: %d años\n", req.AnimalAge)

	conditions := req.HealthConditions
	if conditions == "" {
		conditions = "Ninguna"
	}
	fmt.Fprintf(&sb, "- Condiciones de salud conocidas: %s\n", conditions)

	sb.WriteString("\nResume en un solo párrafo, en español, los requisitos sanitarios y ")
	sb.WriteString("documentales habituales para ese destino (vacunas, microchip, ")
	sb.WriteString("certificados, plazos). No inventes normativa específica: si no ")
	sb.WriteString("conoces el requisito exacto, recomienda confirmarlo con la autoridad ")
	sb.WriteString("competente del país de destino. Responde solo con el párrafo.")

	return sb.String()
}

// speciesSpanish renders the species for the prompt.
func speciesSpanish(s domain.Species) string {
	switch s {
	case domain.SpeciesDog:
		return "perro"
	case domain.SpeciesCat:
		return "gato"
	default:
		return string(s)
	}
}
