// ABOUTME: Request DTOs for workflow-related API endpoints
// ABOUTME: Patch requests use pointer fields so absent values leave state untouched

package requests

// CreateWorkflowRequest seeds a new project workflow.
type CreateWorkflowRequest struct {
	ProjectName string   `json:"projectName" maxLength:"200" doc:"Project display name"`
	Description string   `json:"description,omitempty" maxLength:"2000" doc:"Project description"`
	Privacy     string   `json:"privacy,omitempty" enum:"private,team,public" default:"private" doc:"Project visibility"`
	Tags        []string `json:"tags,omitempty" maxItems:"50" doc:"Project tags"`
	TeamMembers []string `json:"teamMembers,omitempty" maxItems:"100" doc:"Ordered team member list"`
}

// SetupPatchRequest updates setup slice fields. Only provided fields change.
type SetupPatchRequest struct {
	ProjectName *string   `json:"projectName,omitempty" maxLength:"200"`
	Description *string   `json:"description,omitempty" maxLength:"2000"`
	Privacy     *string   `json:"privacy,omitempty" enum:"private,team,public"`
	Tags        *[]string `json:"tags,omitempty" maxItems:"50"`
	TeamMembers *[]string `json:"teamMembers,omitempty" maxItems:"100"`
}

// AudiencePatchRequest updates audience slice fields.
type AudiencePatchRequest struct {
	AudienceName     *string   `json:"audienceName,omitempty"`
	OrgType          *string   `json:"orgType,omitempty"`
	Industry         *string   `json:"industry,omitempty"`
	Size             *string   `json:"size,omitempty" enum:",Small,Medium,Enterprise"`
	PersonaRole      *string   `json:"personaRole,omitempty"`
	PersonaConcerns  *[]string `json:"personaConcerns,omitempty"`
	PersonaCriteria  *[]string `json:"personaCriteria,omitempty"`
	PersonaCommPrefs *[]string `json:"personaCommPrefs,omitempty"`
	DemographicInfo  *string   `json:"demographicInfo,omitempty"`
	KnowledgeLevel   *string   `json:"knowledgeLevel,omitempty"`
	Interests        *[]string `json:"interests,omitempty"`
	PainPoints       *[]string `json:"painPoints,omitempty"`
	DesiredOutcomes  *[]string `json:"desiredOutcomes,omitempty"`
}

// SlideInput declares one slide in a slide structure update. An empty ID asks
// the server to assign one.
type SlideInput struct {
	ID            string `json:"id,omitempty"`
	Title         string `json:"title" minLength:"1" maxLength:"200"`
	Type          string `json:"type" minLength:"1" doc:"Slide type tag, e.g. cover, problem, solution"`
	Description   string `json:"description,omitempty"`
	CustomPrompt  string `json:"customPrompt,omitempty"`
	IncludeVisual bool   `json:"includeVisual,omitempty"`
	VisualType    string `json:"visualType,omitempty" enum:",chart,table,diagram,infographic,logo"`
	IsRequired    bool   `json:"isRequired,omitempty"`
}

// DesignPatchRequest updates design slice fields.
type DesignPatchRequest struct {
	BrandLogo       *string      `json:"brandLogo,omitempty"`
	PrimaryColor    *string      `json:"primaryColor,omitempty"`
	SecondaryColor  *string      `json:"secondaryColor,omitempty"`
	AccentColor     *string      `json:"accentColor,omitempty"`
	HeadingFont     *string      `json:"headingFont,omitempty"`
	BodyFont        *string      `json:"bodyFont,omitempty"`
	ComplexityLevel *string      `json:"complexityLevel,omitempty" enum:"basic,intermediate,advanced"`
	SlideStructure  []SlideInput `json:"slideStructure,omitempty" maxItems:"100"`
}

// HeadingInput declares one heading in a blog outline.
type HeadingInput struct {
	ID       string `json:"id,omitempty"`
	Level    int    `json:"level" minimum:"1" maximum:"6"`
	Title    string `json:"title" minLength:"1"`
	ParentID string `json:"parentId,omitempty"`
}

// ContentElementInput declares one blog building block.
type ContentElementInput struct {
	ID   string `json:"id,omitempty"`
	Type string `json:"type" minLength:"1"`
	Name string `json:"name" minLength:"1"`
}

// BlogPatchRequest updates blog slice fields.
type BlogPatchRequest struct {
	PrimaryGoal         *string               `json:"primaryGoal,omitempty"`
	ContentGoals        *[]string             `json:"contentGoals,omitempty"`
	TargetKeywords      *[]string             `json:"targetKeywords,omitempty"`
	SelectedStructureID *string               `json:"selectedStructureId,omitempty"`
	ContentElements     []ContentElementInput `json:"contentElements,omitempty"`
	HeadingStructure    []HeadingInput        `json:"headingStructure,omitempty"`
	SEOCheckStatus      *string               `json:"seoCheckStatus,omitempty"`
	ReadabilityStatus   *string               `json:"readabilityStatus,omitempty"`
	PlagiarismStatus    *string               `json:"plagiarismStatus,omitempty"`
	PublishPlatform     *string               `json:"publishPlatform,omitempty"`
	ScheduledAt         *string               `json:"scheduledAt,omitempty"`
	CanonicalURL        *string               `json:"canonicalUrl,omitempty"`
}

// QAPatchRequest updates QA slice fields.
type QAPatchRequest struct {
	ContentValidation    *string `json:"contentValidation,omitempty" enum:"Not Run,Running,Passed,Issues Found"`
	DesignValidation     *string `json:"designValidation,omitempty" enum:"Not Run,Running,Passed,Issues Found"`
	ComplianceValidation *string `json:"complianceValidation,omitempty" enum:"Not Run,Running,Passed,Issues Found"`
}

// DeliveryPatchRequest updates delivery slice fields.
type DeliveryPatchRequest struct {
	ClientPdfStatus string `json:"clientPdfStatus" enum:"idle,generating,success,error"`
}

// StartGenerationRequest configures a generation run.
type StartGenerationRequest struct {
	Regenerate     bool    `json:"regenerate,omitempty" doc:"Rebuild slides that are already complete"`
	FactCheckLevel string  `json:"factCheckLevel,omitempty" enum:",basic,standard,thorough"`
	Temperature    float64 `json:"temperature,omitempty" minimum:"0" maximum:"2"`
	MaxTokens      int     `json:"maxTokens,omitempty" minimum:"0" maximum:"32768"`
}

// BrandColorsRequest asks for a color scheme extracted from a logo.
type BrandColorsRequest struct {
	LogoURL string `json:"logoUrl,omitempty" doc:"Logo image URL; defaults to the design slice's brand logo"`
	Apply   bool   `json:"apply,omitempty" doc:"Write the extracted scheme into the design slice"`
}
