// ABOUTME: Generation domain model for multi-phase content production runs
// ABOUTME: Defines the phase ordering, progress clamping and run-level state

package domain

// GenerationPhase is one of the ordered stages of a generation run.
type GenerationPhase string

const (
	PhaseResearching GenerationPhase = "researching"
	PhaseContent     GenerationPhase = "content"
	PhaseFinalizing  GenerationPhase = "finalizing"
)

// phaseRank orders phases; the tracker rejects unknown phase tags.
var phaseRank = map[GenerationPhase]int{
	PhaseResearching: 0,
	PhaseContent:     1,
	PhaseFinalizing:  2,
}

// Valid reports whether p is a recognized phase.
func (p GenerationPhase) Valid() bool {
	_, ok := phaseRank[p]
	return ok
}

// Before reports whether p comes strictly before other in phase order.
func (p GenerationPhase) Before(other GenerationPhase) bool {
	return phaseRank[p] < phaseRank[other]
}

// FactCheckLevel controls how aggressively generated claims are verified.
type FactCheckLevel string

const (
	FactCheckBasic    FactCheckLevel = "basic"
	FactCheckStandard FactCheckLevel = "standard"
	FactCheckThorough FactCheckLevel = "thorough"
)

// Valid reports whether f is a recognized fact-check level.
func (f FactCheckLevel) Valid() bool {
	switch f {
	case FactCheckBasic, FactCheckStandard, FactCheckThorough:
		return true
	}
	return false
}

// ClampProgress forces a progress value into [0,100]. Progress setters are
// total: out-of-range input is clamped, never rejected.
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// PhaseData records which phase is active and how far along it is.
type PhaseData struct {
	CurrentPhase   GenerationPhase `json:"currentPhase"`
	PhaseProgress  int             `json:"phaseProgress"`
	CurrentSection int             `json:"currentSection,omitempty"`
	TotalSections  int             `json:"totalSections,omitempty"`
	CurrentSlide   int             `json:"currentSlide,omitempty"`
	TotalSlides    int             `json:"totalSlides,omitempty"`
}

// GenerationState is the generation slice of the workflow. All of it is
// transient: it resets to defaults on reload.
type GenerationState struct {
	IsGenerating bool `json:"isGenerating"`

	// GenerationProgress is derived from phase and per-slide progress and is
	// monotone non-decreasing within a single run.
	GenerationProgress int `json:"generationProgress"`

	PhaseData      PhaseData      `json:"phaseData"`
	FactCheckLevel FactCheckLevel `json:"factCheckLevel"`
	SlideContents  []SlideContent `json:"slideContents"`
	LastError      string         `json:"lastError,omitempty"`

	// RunSequence identifies the latest run; progress callbacks carrying a
	// stale sequence number are discarded.
	RunSequence uint64 `json:"runSequence"`
}

// DefaultGenerationState returns the generation slice defaults.
func DefaultGenerationState() GenerationState {
	return GenerationState{
		PhaseData:      PhaseData{CurrentPhase: PhaseResearching},
		FactCheckLevel: FactCheckStandard,
		SlideContents:  []SlideContent{},
	}
}
