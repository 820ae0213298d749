// ABOUTME: Workflow domain model composing the per-slice state of a project
// ABOUTME: Defines literal sets and validation for setup, audience and design fields

package domain

import "fmt"

// Privacy controls who can see a project.
type Privacy string

const (
	PrivacyPrivate Privacy = "private"
	PrivacyTeam    Privacy = "team"
	PrivacyPublic  Privacy = "public"
)

// Valid reports whether p is a recognized privacy level.
func (p Privacy) Valid() bool {
	switch p {
	case PrivacyPrivate, PrivacyTeam, PrivacyPublic:
		return true
	}
	return false
}

// OrgSize is the audience organization size bucket. The empty value means unset.
type OrgSize string

const (
	OrgSizeUnset      OrgSize = ""
	OrgSizeSmall      OrgSize = "Small"
	OrgSizeMedium     OrgSize = "Medium"
	OrgSizeEnterprise OrgSize = "Enterprise"
)

// Valid reports whether s is a recognized organization size.
func (s OrgSize) Valid() bool {
	switch s {
	case OrgSizeUnset, OrgSizeSmall, OrgSizeMedium, OrgSizeEnterprise:
		return true
	}
	return false
}

// ComplexityLevel controls how elaborate the generated deck structure is.
type ComplexityLevel string

const (
	ComplexityBasic        ComplexityLevel = "basic"
	ComplexityIntermediate ComplexityLevel = "intermediate"
	ComplexityAdvanced     ComplexityLevel = "advanced"
)

// Valid reports whether c is a recognized complexity level.
func (c ComplexityLevel) Valid() bool {
	switch c {
	case ComplexityBasic, ComplexityIntermediate, ComplexityAdvanced:
		return true
	}
	return false
}

// SetupState holds project identity and setup metadata.
type SetupState struct {
	// ProjectID is assigned once by the backend and never changes afterwards
	ProjectID string `json:"projectId,omitempty"`

	ProjectName string   `json:"projectName"`
	Description string   `json:"description"`
	Privacy     Privacy  `json:"privacy"`
	Tags        []string `json:"tags"`
	TeamMembers []string `json:"teamMembers"`
}

// DefaultSetupState returns the setup slice defaults.
func DefaultSetupState() SetupState {
	return SetupState{
		Privacy:     PrivacyPrivate,
		Tags:        []string{},
		TeamMembers: []string{},
	}
}

// AudienceState holds the target audience and persona description.
type AudienceState struct {
	AudienceName     string   `json:"audienceName"`
	OrgType          string   `json:"orgType"`
	Industry         string   `json:"industry"`
	Size             OrgSize  `json:"size"`
	PersonaRole      string   `json:"personaRole"`
	PersonaConcerns  []string `json:"personaConcerns"`
	PersonaCriteria  []string `json:"personaCriteria"`
	PersonaCommPrefs []string `json:"personaCommPrefs"`

	// Blog-specific audience fields
	DemographicInfo string   `json:"demographicInfo"`
	KnowledgeLevel  string   `json:"knowledgeLevel"`
	Interests       []string `json:"interests"`
	PainPoints      []string `json:"painPoints"`
	DesiredOutcomes []string `json:"desiredOutcomes"`
}

// DefaultAudienceState returns the audience slice defaults.
func DefaultAudienceState() AudienceState {
	return AudienceState{
		PersonaConcerns:  []string{},
		PersonaCriteria:  []string{},
		PersonaCommPrefs: []string{},
		Interests:        []string{},
		PainPoints:       []string{},
		DesiredOutcomes:  []string{},
	}
}

// DesignState holds template, branding and slide structure choices.
type DesignState struct {
	SelectedTemplateID string          `json:"selectedTemplateId"`
	BrandLogo          string          `json:"brandLogo"`
	PrimaryColor       string          `json:"primaryColor"`
	SecondaryColor     string          `json:"secondaryColor"`
	AccentColor        string          `json:"accentColor"`
	HeadingFont        string          `json:"headingFont"`
	BodyFont           string          `json:"bodyFont"`
	SlideStructure     []Slide         `json:"slideStructure"`
	ComplexityLevel    ComplexityLevel `json:"complexityLevel"`
}

// DefaultDesignState returns the design slice defaults.
func DefaultDesignState() DesignState {
	return DesignState{
		SlideStructure:  []Slide{},
		ComplexityLevel: ComplexityIntermediate,
	}
}

// Validate checks the design slice invariants, notably slide ID uniqueness.
func (d *DesignState) Validate() error {
	seen := make(map[string]struct{}, len(d.SlideStructure))
	for _, s := range d.SlideStructure {
		if s.ID == "" {
			return fmt.Errorf("slide %q has empty ID", s.Title)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("duplicate slide ID %q", s.ID)
		}
		seen[s.ID] = struct{}{}
	}
	if !d.ComplexityLevel.Valid() {
		return fmt.Errorf("invalid complexity level %q", d.ComplexityLevel)
	}
	return nil
}

// WorkflowState is the composed state of one project workflow. Each slice owns
// a disjoint set of fields; the composer in core/workflow is the sole owner.
type WorkflowState struct {
	Setup      SetupState      `json:"setup"`
	Audience   AudienceState   `json:"audience"`
	Design     DesignState     `json:"design"`
	Generation GenerationState `json:"generation"`
	QA         QAState         `json:"qa"`
	Delivery   DeliveryState   `json:"delivery"`
	Blog       BlogState       `json:"blog"`
}

// DefaultWorkflowState returns a fully defaulted composed state.
func DefaultWorkflowState() WorkflowState {
	return WorkflowState{
		Setup:      DefaultSetupState(),
		Audience:   DefaultAudienceState(),
		Design:     DefaultDesignState(),
		Generation: DefaultGenerationState(),
		QA:         DefaultQAState(),
		Delivery:   DefaultDeliveryState(),
		Blog:       DefaultBlogState(),
	}
}
