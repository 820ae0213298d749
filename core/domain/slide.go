// ABOUTME: Slide domain model for pitch-deck structure and generated slide content
// ABOUTME: Provides the per-slide completion status ordering used by the tracker

package domain

// VisualType tags the kind of visual element a slide should carry.
type VisualType string

const (
	VisualChart       VisualType = "chart"
	VisualTable       VisualType = "table"
	VisualDiagram     VisualType = "diagram"
	VisualInfographic VisualType = "infographic"
	VisualLogo        VisualType = "logo"
)

// Valid reports whether v is a recognized visual type.
func (v VisualType) Valid() bool {
	switch v {
	case VisualChart, VisualTable, VisualDiagram, VisualInfographic, VisualLogo:
		return true
	}
	return false
}

// Slide is a structural placeholder in a deck. Order within the slide
// structure list is presentation order.
type Slide struct {
	// ID is unique within a slide structure
	ID string `json:"id"`

	Title         string     `json:"title"`
	Type          string     `json:"type"`
	Description   string     `json:"description,omitempty"`
	CustomPrompt  string     `json:"customPrompt,omitempty"`
	IncludeVisual bool       `json:"includeVisual,omitempty"`
	VisualType    VisualType `json:"visualType,omitempty"`
	IsRequired    bool       `json:"isRequired,omitempty"`
}

// SlideStatus is the per-slide completion status during a generation run.
type SlideStatus string

const (
	SlidePending     SlideStatus = "pending"
	SlideResearching SlideStatus = "researching"
	SlideDrafting    SlideStatus = "drafting"
	SlideComplete    SlideStatus = "complete"
)

// slideStatusRank orders statuses so regressions can be detected.
var slideStatusRank = map[SlideStatus]int{
	SlidePending:     0,
	SlideResearching: 1,
	SlideDrafting:    2,
	SlideComplete:    3,
}

// Valid reports whether s is a recognized slide status.
func (s SlideStatus) Valid() bool {
	_, ok := slideStatusRank[s]
	return ok
}

// Before reports whether s comes strictly before other in the
// pending -> researching -> drafting -> complete progression.
func (s SlideStatus) Before(other SlideStatus) bool {
	return slideStatusRank[s] < slideStatusRank[other]
}

// VisualElement is a structured visual attached to generated slide content.
// Data is an opaque payload interpreted by the renderer.
type VisualElement struct {
	Type     VisualType  `json:"type"`
	Data     interface{} `json:"data"`
	Caption  string      `json:"caption,omitempty"`
	Position string      `json:"position,omitempty"`
}

// Citation records a source backing a generated claim.
type Citation struct {
	Source string `json:"source"`
	URL    string `json:"url,omitempty"`
	Text   string `json:"text"`
}

// SlideContent is the generated content for one slide. It is created with
// status pending when a run starts and survives run failure; only a workflow
// reset removes it.
type SlideContent struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Content            string          `json:"content"`
	VisualElements     []VisualElement `json:"visualElements,omitempty"`
	Citations          []Citation      `json:"citations,omitempty"`
	CompletionStatus   SlideStatus     `json:"completionStatus"`
	GenerationProgress int             `json:"generationProgress"`
}
