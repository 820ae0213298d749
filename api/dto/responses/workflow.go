// ABOUTME: Response DTOs for workflow-related API endpoints
// ABOUTME: Shapes composed state, generation status and template listings

package responses

import "magicmuse-api/core/domain"

// WorkflowResponse is the full composed state of a project workflow.
type WorkflowResponse struct {
	ProjectID string               `json:"projectId"`
	State     domain.WorkflowState `json:"state"`
}

// SlideStatusResponse summarizes one slide's generation state.
type SlideStatusResponse struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	CompletionStatus   string `json:"completionStatus"`
	GenerationProgress int    `json:"generationProgress"`
}

// GenerationStatusResponse reports the state of the latest generation run.
type GenerationStatusResponse struct {
	IsGenerating       bool                  `json:"isGenerating"`
	GenerationProgress int                   `json:"generationProgress"`
	PhaseData          domain.PhaseData      `json:"phaseData"`
	RunSequence        uint64                `json:"runSequence"`
	Slides             []SlideStatusResponse `json:"slides"`
	LastError          string                `json:"lastError,omitempty"`
}

// StartGenerationResponse acknowledges a started run.
type StartGenerationResponse struct {
	RunSequence uint64 `json:"runSequence"`
	Status      string `json:"status"`
}

// TemplateSummary describes one deck template.
type TemplateSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SlideCount  int    `json:"slideCount"`
}

// TemplateListResponse lists the available deck templates.
type TemplateListResponse struct {
	Templates []TemplateSummary `json:"templates"`
}

// BrandColorsResponse carries the extracted color scheme as hex strings.
type BrandColorsResponse struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Applied   bool   `json:"applied"`
}

// SessionResponse reports the current auth session, if any.
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"userId,omitempty"`
	Email         string `json:"email,omitempty"`
}
