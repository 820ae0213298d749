// ABOUTME: Quality-assurance and delivery domain models for the workflow
// ABOUTME: Holds validation statuses, quality metrics, fact-check results and PDF state

package domain

// ValidationStatus is the state of one QA validation pass.
type ValidationStatus string

const (
	ValidationNotRun      ValidationStatus = "Not Run"
	ValidationRunning     ValidationStatus = "Running"
	ValidationPassed      ValidationStatus = "Passed"
	ValidationIssuesFound ValidationStatus = "Issues Found"
)

// Valid reports whether v is a recognized validation status.
func (v ValidationStatus) Valid() bool {
	switch v {
	case ValidationNotRun, ValidationRunning, ValidationPassed, ValidationIssuesFound:
		return true
	}
	return false
}

// QualityCategory is one scored dimension of a quality assessment.
type QualityCategory struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// QualityIssue is a single flagged problem in generated content.
type QualityIssue struct {
	ID       string `json:"id"`
	Severity string `json:"severity"`
	Text     string `json:"text"`
}

// QualityMetrics is the aggregate quality assessment of a deck.
type QualityMetrics struct {
	OverallScore float64           `json:"overallScore"`
	Categories   []QualityCategory `json:"categories"`
	Issues       []QualityIssue    `json:"issues"`
}

// FactCheckResult records verification of one generated claim.
type FactCheckResult struct {
	Claim       string `json:"claim"`
	Verified    bool   `json:"verified"`
	Source      string `json:"source,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

// Suggestion is a proposed refinement to generated content.
type Suggestion struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// QAState is the quality-assurance slice of the workflow. Transient; resets on reload.
type QAState struct {
	QualityMetrics        *QualityMetrics   `json:"qualityMetrics"`
	FactCheckResults      []FactCheckResult `json:"factCheckResults"`
	ContentValidation     ValidationStatus  `json:"contentValidation"`
	DesignValidation      ValidationStatus  `json:"designValidation"`
	ComplianceValidation  ValidationStatus  `json:"complianceValidation"`
	RefinementSuggestions []Suggestion      `json:"refinementSuggestions"`
}

// DefaultQAState returns the QA slice defaults.
func DefaultQAState() QAState {
	return QAState{
		FactCheckResults:      []FactCheckResult{},
		ContentValidation:     ValidationNotRun,
		DesignValidation:      ValidationNotRun,
		ComplianceValidation:  ValidationNotRun,
		RefinementSuggestions: []Suggestion{},
	}
}

// PdfStatus is the state of a client-side PDF export.
type PdfStatus string

const (
	PdfIdle       PdfStatus = "idle"
	PdfGenerating PdfStatus = "generating"
	PdfSuccess    PdfStatus = "success"
	PdfError      PdfStatus = "error"
)

// Valid reports whether p is a recognized PDF status.
func (p PdfStatus) Valid() bool {
	switch p {
	case PdfIdle, PdfGenerating, PdfSuccess, PdfError:
		return true
	}
	return false
}

// DeliveryState is the delivery slice of the workflow. Transient; resets on reload.
type DeliveryState struct {
	IsGeneratingClientPdf bool      `json:"isGeneratingClientPdf"`
	ClientPdfStatus       PdfStatus `json:"clientPdfStatus"`
}

// DefaultDeliveryState returns the delivery slice defaults.
func DefaultDeliveryState() DeliveryState {
	return DeliveryState{ClientPdfStatus: PdfIdle}
}
