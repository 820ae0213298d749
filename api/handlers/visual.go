// ABOUTME: Visual parsing handler for the Huma API
// ABOUTME: Exposes the element spec parser as a standalone endpoint

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"magicmuse-api/api/dto/requests"
	"magicmuse-api/api/dto/responses"
	"magicmuse-api/core/domain"
	"magicmuse-api/core/visual"
)

// VisualHandler handles visual spec parsing requests
type VisualHandler struct {
	parser *visual.Parser
}

// NewVisualHandler creates a new visual handler
func NewVisualHandler(parser *visual.Parser) *VisualHandler {
	return &VisualHandler{parser: parser}
}

// RegisterRoutes registers all visual-related routes
func (h *VisualHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "parseVisual",
		Method:      http.MethodPost,
		Path:        "/visuals/parse",
		Summary:     "Parse a raw visual element spec into renderable data",
		Tags:        []string{"Visuals"},
	}, h.ParseVisual)
}

// ParseVisualInput defines the input for the ParseVisual operation
type ParseVisualInput struct {
	Body requests.ParseVisualRequest
}

// ParseVisualOutput wraps the parsed visual data
type ParseVisualOutput struct {
	Body responses.ParseVisualResponse
}

// ParseVisual handles POST /visuals/parse
func (h *VisualHandler) ParseVisual(ctx context.Context, input *ParseVisualInput) (*ParseVisualOutput, error) {
	parsed := h.parser.Parse(domain.VisualType(input.Body.Type), input.Body.RawData)
	return &ParseVisualOutput{Body: responses.ParseVisualResponse{Parsed: parsed}}, nil
}
