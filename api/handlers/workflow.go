// ABOUTME: Workflow handlers for the Huma API
// ABOUTME: Project lifecycle, slice patch endpoints, templates and brand colors

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"magicmuse-api/api/dto/mappers"
	"magicmuse-api/api/dto/requests"
	"magicmuse-api/api/dto/responses"
	"magicmuse-api/core/domain"
	"magicmuse-api/core/services"
	"magicmuse-api/core/templates"
	"magicmuse-api/core/workflow"
)

// WorkflowHandler handles workflow-related HTTP requests
type WorkflowHandler struct {
	manager     *workflow.Manager
	catalog     *templates.Catalog
	brandColors *services.BrandColorService
}

// NewWorkflowHandler creates a new workflow handler
func NewWorkflowHandler(manager *workflow.Manager, catalog *templates.Catalog, brandColors *services.BrandColorService) *WorkflowHandler {
	return &WorkflowHandler{
		manager:     manager,
		catalog:     catalog,
		brandColors: brandColors,
	}
}

// RegisterRoutes registers all workflow-related routes
func (h *WorkflowHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "createWorkflow",
		Method:      http.MethodPost,
		Path:        "/workflows",
		Summary:     "Create a project workflow",
		Tags:        []string{"Workflows"},
	}, h.CreateWorkflow)

	huma.Register(api, huma.Operation{
		OperationID: "getWorkflow",
		Method:      http.MethodGet,
		Path:        "/workflows/{id}",
		Summary:     "Get the composed workflow state",
		Tags:        []string{"Workflows"},
	}, h.GetWorkflow)

	huma.Register(api, huma.Operation{
		OperationID: "deleteWorkflow",
		Method:      http.MethodDelete,
		Path:        "/workflows/{id}",
		Summary:     "Delete a workflow",
		Tags:        []string{"Workflows"},
	}, h.DeleteWorkflow)

	huma.Register(api, huma.Operation{
		OperationID: "resetWorkflow",
		Method:      http.MethodPost,
		Path:        "/workflows/{id}/reset",
		Summary:     "Reset transient workflow state to defaults",
		Tags:        []string{"Workflows"},
	}, h.ResetWorkflow)

	huma.Register(api, huma.Operation{
		OperationID: "patchSetup",
		Method:      http.MethodPatch,
		Path:        "/workflows/{id}/setup",
		Summary:     "Update setup fields",
		Tags:        []string{"Workflows"},
	}, h.PatchSetup)

	huma.Register(api, huma.Operation{
		OperationID: "patchAudience",
		Method:      http.MethodPatch,
		Path:        "/workflows/{id}/audience",
		Summary:     "Update audience fields",
		Tags:        []string{"Workflows"},
	}, h.PatchAudience)

	huma.Register(api, huma.Operation{
		OperationID: "patchDesign",
		Method:      http.MethodPatch,
		Path:        "/workflows/{id}/design",
		Summary:     "Update design fields and slide structure",
		Tags:        []string{"Workflows"},
	}, h.PatchDesign)

	huma.Register(api, huma.Operation{
		OperationID: "patchBlog",
		Method:      http.MethodPatch,
		Path:        "/workflows/{id}/blog",
		Summary:     "Update blog fields",
		Tags:        []string{"Workflows"},
	}, h.PatchBlog)

	huma.Register(api, huma.Operation{
		OperationID: "patchQA",
		Method:      http.MethodPatch,
		Path:        "/workflows/{id}/qa",
		Summary:     "Update QA validation statuses",
		Tags:        []string{"Workflows"},
	}, h.PatchQA)

	huma.Register(api, huma.Operation{
		OperationID: "patchDelivery",
		Method:      http.MethodPatch,
		Path:        "/workflows/{id}/delivery",
		Summary:     "Update delivery state",
		Tags:        []string{"Workflows"},
	}, h.PatchDelivery)

	huma.Register(api, huma.Operation{
		OperationID: "listTemplates",
		Method:      http.MethodGet,
		Path:        "/templates",
		Summary:     "List available deck templates",
		Tags:        []string{"Templates"},
	}, h.ListTemplates)

	huma.Register(api, huma.Operation{
		OperationID: "applyTemplate",
		Method:      http.MethodPost,
		Path:        "/workflows/{id}/design/template/{templateId}",
		Summary:     "Instantiate a template into the slide structure",
		Tags:        []string{"Templates"},
	}, h.ApplyTemplate)

	huma.Register(api, huma.Operation{
		OperationID: "extractBrandColors",
		Method:      http.MethodPost,
		Path:        "/workflows/{id}/design/brand-colors",
		Summary:     "Suggest a color scheme from the brand logo",
		Tags:        []string{"Workflows"},
	}, h.ExtractBrandColors)
}

// CreateWorkflowInput defines the input for the CreateWorkflow operation
type CreateWorkflowInput struct {
	Body requests.CreateWorkflowRequest
}

// WorkflowOutput wraps the composed state response
type WorkflowOutput struct {
	Body responses.WorkflowResponse
}

// CreateWorkflow handles POST /workflows
func (h *WorkflowHandler) CreateWorkflow(ctx context.Context, input *CreateWorkflowInput) (*WorkflowOutput, error) {
	setup := domain.DefaultSetupState()
	setup.ProjectName = input.Body.ProjectName
	setup.Description = input.Body.Description
	if input.Body.Privacy != "" {
		setup.Privacy = domain.Privacy(input.Body.Privacy)
	}
	if input.Body.Tags != nil {
		setup.Tags = input.Body.Tags
	}
	if input.Body.TeamMembers != nil {
		setup.TeamMembers = input.Body.TeamMembers
	}

	store, err := h.manager.Create(ctx, workflow.PartialState{Setup: &setup})
	if err != nil {
		return nil, toHumaError(err)
	}
	return &WorkflowOutput{Body: mappers.ToWorkflowResponse(store.State())}, nil
}

// WorkflowIDInput carries the project ID path parameter
type WorkflowIDInput struct {
	ID string `path:"id" doc:"Project ID"`
}

// GetWorkflow handles GET /workflows/{id}
func (h *WorkflowHandler) GetWorkflow(ctx context.Context, input *WorkflowIDInput) (*WorkflowOutput, error) {
	store, err := h.manager.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &WorkflowOutput{Body: mappers.ToWorkflowResponse(store.State())}, nil
}

// DeleteWorkflowOutput acknowledges a deletion
type DeleteWorkflowOutput struct {
	Body struct {
		Deleted bool `json:"deleted"`
	}
}

// DeleteWorkflow handles DELETE /workflows/{id}
func (h *WorkflowHandler) DeleteWorkflow(ctx context.Context, input *WorkflowIDInput) (*DeleteWorkflowOutput, error) {
	if _, err := h.manager.Get(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	if err := h.manager.Delete(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	out := &DeleteWorkflowOutput{}
	out.Body.Deleted = true
	return out, nil
}

// ResetWorkflow handles POST /workflows/{id}/reset
func (h *WorkflowHandler) ResetWorkflow(ctx context.Context, input *WorkflowIDInput) (*WorkflowOutput, error) {
	store, err := h.manager.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	if err := store.Reset(ctx); err != nil {
		return nil, toHumaError(err)
	}
	return &WorkflowOutput{Body: mappers.ToWorkflowResponse(store.State())}, nil
}

// PatchSetupInput defines the input for the PatchSetup operation
type PatchSetupInput struct {
	ID   string `path:"id"`
	Body requests.SetupPatchRequest
}

// PatchSetup handles PATCH /workflows/{id}/setup
func (h *WorkflowHandler) PatchSetup(ctx context.Context, input *PatchSetupInput) (*WorkflowOutput, error) {
	store, err := h.manager.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	body := input.Body
	if body.ProjectName != nil {
		if err := store.SetProjectName(ctx, *body.ProjectName); err != nil {
			return nil, toHumaError(err)
		}
	}
	if body.Description != nil {
		if err := store.SetDescription(ctx, *body.Description); err != nil {
			return nil, toHumaError(err)
		}
	}
	if body.Privacy != nil {
		if err := store.SetPrivacy(ctx, domain.Privacy(*body.Privacy)); err != nil {
			return nil, toHumaError(err)
		}
	}
	if body.Tags != nil {
		if err := store.SetTags(ctx, *body.Tags); err != nil {
			return nil, toHumaError(err)
		}
	}
	if body.TeamMembers != nil {
		if err := store.SetTeamMembers(ctx, *body.TeamMembers); err != nil {
			return nil, toHumaError(err)
		}
	}
	return &WorkflowOutput{Body: mappers.ToWorkflowResponse(store.State())}, nil
}

// PatchAudienceInput defines the input for the PatchAudience operation
type PatchAudienceInput struct {
	ID   string `path:"id"`
	Body requests.AudiencePatchRequest
}

// PatchAudience handles PATCH /workflows/{id}/audience
func (h *WorkflowHandler) PatchAudience(ctx context.Context, input *PatchAudienceInput) (*WorkflowOutput, error) {
	store, err := h.manager.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	audience := store.State().Audience
	body := input.Body
	if body.AudienceName != nil {
		audience.AudienceName = *body.AudienceName
	}
	if body.OrgType != nil {
		audience.OrgType = *body.OrgType
	}
	if body.Industry != nil {
		audience.Industry = *body.Industry
	}
	if body.Size != nil {
		audience.Size = domain.OrgSize(*body.Size)
	}
	if body.PersonaRole != nil {
		audience.PersonaRole = *body.PersonaRole
	}
	if body.PersonaConcerns != nil {
		audience.PersonaConcerns = *body.PersonaConcerns
	}
	if body.PersonaCriteria != nil {
		audience.PersonaCriteria = *body.PersonaCriteria
	}
	if body.PersonaCommPrefs != nil {
		audience.PersonaCommPrefs = *body.PersonaCommPrefs
	}
	if body.DemographicInfo != nil {
		audience.DemographicInfo = *body.DemographicInfo
	}
	if body.KnowledgeLevel != nil {
		audience.KnowledgeLevel = *body.KnowledgeLevel
	}
	if body.Interests != nil {
		audience.Interests = *body.Interests
	}
	if body.PainPoints != nil {
		audience.PainPoints = *body.PainPoints
	}
	if body.DesiredOutcomes != nil {
		audience.DesiredOutcomes = *body.DesiredOutcomes
	}

	if err := store.UpdateAudience(ctx, audience); err != nil {
		return nil, toHumaError(err)
	}
	return &WorkflowOutput{Body: mappers.ToWorkflowResponse(store.State())}, nil
}

// PatchDesignInput defines the input for the PatchDesign operation
type PatchDesignInput struct {
	ID   string `path:"id"`
	Body requests.DesignPatchRequest
}

// PatchDesign handles PATCH /workflows/{id}/design
func (h *WorkflowHandler) PatchDesign(ctx context.Context, input *PatchDesignInput) (*WorkflowOutput, error) {
	store, err := h.manager.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	body := input.Body
	if body.BrandLogo != nil {
		if err := store.SetBrandLogo(ctx, *body.BrandLogo); err != nil {
			return nil, toHumaError(err)
		}
	}
	if body.PrimaryColor != nil || body.SecondaryColor != nil || body.AccentColor != nil {
		design := store.State().Design
		primary, secondary, accent := design.PrimaryColor, design.SecondaryColor, design.AccentColor
		if body.PrimaryColor != nil {
			primary = *body.PrimaryColor
		}
		if body.SecondaryColor != nil {
			secondary = *body.SecondaryColor
		}
		if body.AccentColor != nil {
			accent = *body.AccentColor
		}
		if err := store.SetColors(ctx, primary, secondary, accent); err != nil {
			return nil, toHumaError(err)
		}
	}
	if body.HeadingFont != nil || body.BodyFont != nil {
		design := store.State().Design
		heading, bodyFont := design.HeadingFont, design.BodyFont
		if body.HeadingFont != nil {
			heading = *body.HeadingFont
		}
		if body.BodyFont != nil {
			bodyFont = *body.BodyFont
		}
		if err := store.SetFonts(ctx, heading, bodyFont); err != nil {
			return nil, toHumaError(err)
		}
	}
	if body.ComplexityLevel != nil {
		if err := store.SetComplexityLevel(ctx, domain.ComplexityLevel(*body.ComplexityLevel)); err != nil {
			return nil, toHumaError(err)
		}
	}
	if body.SlideStructure != nil {
		if err := store.SetSlideStructure(ctx, mappers.ToSlides(body.SlideStructure)); err != nil {
			return nil, toHumaError(err)
		}
	}
	return &WorkflowOutput{Body: mappers.ToWorkflowResponse(store.State())}, nil
}

// PatchBlogInput defines the input for the PatchBlog operation
type PatchBlogInput struct {
	ID   string `path:"id"`
	Body requests.BlogPatchRequest
}

// PatchBlog handles PATCH /workflows/{id}/blog
func (h *WorkflowHandler) PatchBlog(ctx context.Context, input *PatchBlogInput) (*WorkflowOutput, error) {
	store, err := h.manager.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	blog := store.State().Blog
	body := input.Body
	if body.PrimaryGoal != nil {
		blog.PrimaryGoal = *body.PrimaryGoal
	}
	if body.ContentGoals != nil {
		blog.ContentGoals = *body.ContentGoals
	}
	if body.TargetKeywords != nil {
		blog.TargetKeywords = *body.TargetKeywords
	}
	if body.SelectedStructureID != nil {
		blog.SelectedStructureID = *body.SelectedStructureID
	}
	if body.ContentElements != nil {
		blog.ContentElements = mappers.ToContentElements(body.ContentElements)
	}
	if body.HeadingStructure != nil {
		blog.HeadingStructure = mappers.ToHeadings(body.HeadingStructure)
	}
	if body.SEOCheckStatus != nil {
		blog.SEOCheckStatus = *body.SEOCheckStatus
	}
	if body.ReadabilityStatus != nil {
		blog.ReadabilityStatus = *body.ReadabilityStatus
	}
	if body.PlagiarismStatus != nil {
		blog.PlagiarismStatus = *body.PlagiarismStatus
	}
	if body.PublishPlatform != nil {
		blog.PublishPlatform = *body.PublishPlatform
	}
	if body.ScheduledAt != nil {
		blog.ScheduledAt = *body.ScheduledAt
	}
	if body.CanonicalURL != nil {
		blog.CanonicalURL = *body.CanonicalURL
	}

	if err := store.UpdateBlog(ctx, blog); err != nil {
		return nil, toHumaError(err)
	}
	return &WorkflowOutput{Body: mappers.ToWorkflowResponse(store.State())}, nil
}

// PatchQAInput defines the input for the PatchQA operation
type PatchQAInput struct {
	ID   string `path:"id"`
	Body requests.QAPatchRequest
}

// PatchQA handles PATCH /workflows/{id}/qa
func (h *WorkflowHandler) PatchQA(ctx context.Context, input *PatchQAInput) (*WorkflowOutput, error) {
	store, err := h.manager.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	updates := map[workflow.ValidationKind]*string{
		workflow.ValidationContent:    input.Body.ContentValidation,
		workflow.ValidationDesign:     input.Body.DesignValidation,
		workflow.ValidationCompliance: input.Body.ComplianceValidation,
	}
	for kind, status := range updates {
		if status == nil {
			continue
		}
		if err := store.SetValidationStatus(ctx, kind, domain.ValidationStatus(*status)); err != nil {
			return nil, toHumaError(err)
		}
	}
	return &WorkflowOutput{Body: mappers.ToWorkflowResponse(store.State())}, nil
}

// PatchDeliveryInput defines the input for the PatchDelivery operation
type PatchDeliveryInput struct {
	ID   string `path:"id"`
	Body requests.DeliveryPatchRequest
}

// PatchDelivery handles PATCH /workflows/{id}/delivery
func (h *WorkflowHandler) PatchDelivery(ctx context.Context, input *PatchDeliveryInput) (*WorkflowOutput, error) {
	store, err := h.manager.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	if err := store.SetClientPdfStatus(ctx, domain.PdfStatus(input.Body.ClientPdfStatus)); err != nil {
		return nil, toHumaError(err)
	}
	return &WorkflowOutput{Body: mappers.ToWorkflowResponse(store.State())}, nil
}

// ListTemplatesOutput wraps the template listing
type ListTemplatesOutput struct {
	Body responses.TemplateListResponse
}

// ListTemplates handles GET /templates
func (h *WorkflowHandler) ListTemplates(ctx context.Context, _ *struct{}) (*ListTemplatesOutput, error) {
	return &ListTemplatesOutput{Body: mappers.ToTemplateList(h.catalog.List())}, nil
}

// ApplyTemplateInput defines the input for the ApplyTemplate operation
type ApplyTemplateInput struct {
	ID         string `path:"id"`
	TemplateID string `path:"templateId"`
}

// ApplyTemplate handles POST /workflows/{id}/design/template/{templateId}
func (h *WorkflowHandler) ApplyTemplate(ctx context.Context, input *ApplyTemplateInput) (*WorkflowOutput, error) {
	store, err := h.manager.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	slides, err := h.catalog.Instantiate(input.TemplateID)
	if err != nil {
		return nil, toHumaError(err)
	}
	if err := store.SetTemplate(ctx, input.TemplateID, slides); err != nil {
		return nil, toHumaError(err)
	}
	return &WorkflowOutput{Body: mappers.ToWorkflowResponse(store.State())}, nil
}

// BrandColorsInput defines the input for the ExtractBrandColors operation
type BrandColorsInput struct {
	ID   string `path:"id"`
	Body requests.BrandColorsRequest
}

// BrandColorsOutput wraps the extracted color scheme
type BrandColorsOutput struct {
	Body responses.BrandColorsResponse
}

// ExtractBrandColors handles POST /workflows/{id}/design/brand-colors
func (h *WorkflowHandler) ExtractBrandColors(ctx context.Context, input *BrandColorsInput) (*BrandColorsOutput, error) {
	if h.brandColors == nil {
		return nil, huma.Error404NotFound("brand color extraction is disabled")
	}
	store, err := h.manager.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	logoURL := input.Body.LogoURL
	if logoURL == "" {
		logoURL = store.State().Design.BrandLogo
	}
	scheme, err := h.brandColors.ExtractScheme(ctx, logoURL)
	if err != nil {
		return nil, toHumaError(err)
	}

	applied := false
	if input.Body.Apply {
		if err := store.SetColors(ctx, scheme.Primary.Hex(), scheme.Secondary.Hex(), scheme.Accent.Hex()); err != nil {
			return nil, toHumaError(err)
		}
		applied = true
	}
	return &BrandColorsOutput{Body: responses.BrandColorsResponse{
		Primary:   scheme.Primary.Hex(),
		Secondary: scheme.Secondary.Hex(),
		Accent:    scheme.Accent.Hex(),
		Applied:   applied,
	}}, nil
}
