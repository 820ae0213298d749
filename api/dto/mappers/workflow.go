// ABOUTME: Mappers converting between domain models and API DTOs
// ABOUTME: Slide inputs get server-assigned IDs; status views are derived here

package mappers

import (
	"github.com/google/uuid"

	"magicmuse-api/api/dto/requests"
	"magicmuse-api/api/dto/responses"
	"magicmuse-api/core/domain"
	"magicmuse-api/core/templates"
)

// ToWorkflowResponse shapes the composed state for API consumers.
func ToWorkflowResponse(st domain.WorkflowState) responses.WorkflowResponse {
	return responses.WorkflowResponse{
		ProjectID: st.Setup.ProjectID,
		State:     st,
	}
}

// ToGenerationStatus derives the generation status view from state.
func ToGenerationStatus(st domain.WorkflowState) responses.GenerationStatusResponse {
	slides := make([]responses.SlideStatusResponse, 0, len(st.Generation.SlideContents))
	for _, sc := range st.Generation.SlideContents {
		slides = append(slides, responses.SlideStatusResponse{
			ID:                 sc.ID,
			Title:              sc.Title,
			CompletionStatus:   string(sc.CompletionStatus),
			GenerationProgress: sc.GenerationProgress,
		})
	}
	return responses.GenerationStatusResponse{
		IsGenerating:       st.Generation.IsGenerating,
		GenerationProgress: st.Generation.GenerationProgress,
		PhaseData:          st.Generation.PhaseData,
		RunSequence:        st.Generation.RunSequence,
		Slides:             slides,
		LastError:          st.Generation.LastError,
	}
}

// ToSlides converts slide inputs to domain slides, assigning IDs where the
// client left them empty.
func ToSlides(inputs []requests.SlideInput) []domain.Slide {
	slides := make([]domain.Slide, 0, len(inputs))
	for _, in := range inputs {
		id := in.ID
		if id == "" {
			id = uuid.New().String()
		}
		slides = append(slides, domain.Slide{
			ID:            id,
			Title:         in.Title,
			Type:          in.Type,
			Description:   in.Description,
			CustomPrompt:  in.CustomPrompt,
			IncludeVisual: in.IncludeVisual,
			VisualType:    domain.VisualType(in.VisualType),
			IsRequired:    in.IsRequired,
		})
	}
	return slides
}

// ToHeadings converts heading inputs to domain headings.
func ToHeadings(inputs []requests.HeadingInput) []domain.HeadingItem {
	headings := make([]domain.HeadingItem, 0, len(inputs))
	for _, in := range inputs {
		id := in.ID
		if id == "" {
			id = uuid.New().String()
		}
		headings = append(headings, domain.HeadingItem{
			ID:       id,
			Level:    in.Level,
			Title:    in.Title,
			ParentID: in.ParentID,
		})
	}
	return headings
}

// ToContentElements converts content element inputs to domain elements.
func ToContentElements(inputs []requests.ContentElementInput) []domain.ContentElement {
	elements := make([]domain.ContentElement, 0, len(inputs))
	for _, in := range inputs {
		id := in.ID
		if id == "" {
			id = uuid.New().String()
		}
		elements = append(elements, domain.ContentElement{
			ID:   id,
			Type: in.Type,
			Name: in.Name,
		})
	}
	return elements
}

// ToTemplateList shapes the template catalog for API consumers.
func ToTemplateList(tpls []templates.Template) responses.TemplateListResponse {
	out := responses.TemplateListResponse{
		Templates: make([]responses.TemplateSummary, 0, len(tpls)),
	}
	for _, tpl := range tpls {
		out.Templates = append(out.Templates, responses.TemplateSummary{
			ID:          tpl.ID,
			Name:        tpl.Name,
			Description: tpl.Description,
			SlideCount:  len(tpl.Slides),
		})
	}
	return out
}
