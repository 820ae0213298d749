// ABOUTME: Generation handlers for the Huma API
// ABOUTME: Starts, cancels and reports on content generation runs

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"magicmuse-api/api/dto/mappers"
	"magicmuse-api/api/dto/requests"
	"magicmuse-api/api/dto/responses"
	"magicmuse-api/core/domain"
	"magicmuse-api/core/generation"
	"magicmuse-api/core/workflow"
)

// GenerationHandler handles generation-related HTTP requests
type GenerationHandler struct {
	manager *workflow.Manager
	service *generation.Service
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(manager *workflow.Manager, service *generation.Service) *GenerationHandler {
	return &GenerationHandler{manager: manager, service: service}
}

// RegisterRoutes registers all generation-related routes
func (h *GenerationHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "startGeneration",
		Method:      http.MethodPost,
		Path:        "/workflows/{id}/generation/start",
		Summary:     "Start a content generation run",
		Tags:        []string{"Generation"},
	}, h.StartGeneration)

	huma.Register(api, huma.Operation{
		OperationID: "cancelGeneration",
		Method:      http.MethodPost,
		Path:        "/workflows/{id}/generation/cancel",
		Summary:     "Cancel the active generation run",
		Tags:        []string{"Generation"},
	}, h.CancelGeneration)

	huma.Register(api, huma.Operation{
		OperationID: "getGenerationStatus",
		Method:      http.MethodGet,
		Path:        "/workflows/{id}/generation",
		Summary:     "Get generation progress and per-slide status",
		Tags:        []string{"Generation"},
	}, h.GetStatus)

	huma.Register(api, huma.Operation{
		OperationID: "setFactCheckLevel",
		Method:      http.MethodPatch,
		Path:        "/workflows/{id}/generation/fact-check-level",
		Summary:     "Set the fact check level for future runs",
		Tags:        []string{"Generation"},
	}, h.SetFactCheckLevel)
}

// StartGenerationInput defines the input for the StartGeneration operation
type StartGenerationInput struct {
	ID   string `path:"id"`
	Body requests.StartGenerationRequest
}

// StartGenerationOutput wraps the run acknowledgement
type StartGenerationOutput struct {
	Body responses.StartGenerationResponse
}

// StartGeneration handles POST /workflows/{id}/generation/start
func (h *GenerationHandler) StartGeneration(ctx context.Context, input *StartGenerationInput) (*StartGenerationOutput, error) {
	store, err := h.manager.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	if input.Body.FactCheckLevel != "" {
		if err := store.SetFactCheckLevel(ctx, domain.FactCheckLevel(input.Body.FactCheckLevel)); err != nil {
			return nil, toHumaError(err)
		}
	}

	seq, err := h.service.Start(ctx, store, generation.RunOptions{
		Regenerate:  input.Body.Regenerate,
		Temperature: input.Body.Temperature,
		MaxTokens:   input.Body.MaxTokens,
	})
	if err != nil {
		return nil, toHumaError(err)
	}
	return &StartGenerationOutput{Body: responses.StartGenerationResponse{
		RunSequence: seq,
		Status:      "started",
	}}, nil
}

// GenerationIDInput carries the project ID path parameter
type GenerationIDInput struct {
	ID string `path:"id" doc:"Project ID"`
}

// CancelGeneration handles POST /workflows/{id}/generation/cancel
func (h *GenerationHandler) CancelGeneration(ctx context.Context, input *GenerationIDInput) (*GenerationStatusOutput, error) {
	store, err := h.manager.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	if err := store.CancelRun(ctx); err != nil {
		return nil, toHumaError(err)
	}
	return &GenerationStatusOutput{Body: mappers.ToGenerationStatus(store.State())}, nil
}

// GenerationStatusOutput wraps the progress report
type GenerationStatusOutput struct {
	Body responses.GenerationStatusResponse
}

// GetStatus handles GET /workflows/{id}/generation
func (h *GenerationHandler) GetStatus(ctx context.Context, input *GenerationIDInput) (*GenerationStatusOutput, error) {
	store, err := h.manager.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &GenerationStatusOutput{Body: mappers.ToGenerationStatus(store.State())}, nil
}

// FactCheckLevelInput defines the input for the SetFactCheckLevel operation
type FactCheckLevelInput struct {
	ID   string `path:"id"`
	Body struct {
		Level string `json:"level" enum:"basic,standard,thorough"`
	}
}

// SetFactCheckLevel handles PATCH /workflows/{id}/generation/fact-check-level
func (h *GenerationHandler) SetFactCheckLevel(ctx context.Context, input *FactCheckLevelInput) (*GenerationStatusOutput, error) {
	store, err := h.manager.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	if err := store.SetFactCheckLevel(ctx, domain.FactCheckLevel(input.Body.Level)); err != nil {
		return nil, toHumaError(err)
	}
	return &GenerationStatusOutput{Body: mappers.ToGenerationStatus(store.State())}, nil
}
