// ABOUTME: Setter actions for the quality-assurance slice of the workflow store
// ABOUTME: Validation statuses, quality metrics, fact checks and suggestions

package workflow

import (
	"context"

	"magicmuse-api/core/domain"
	coreerrors "magicmuse-api/core/errors"
)

// ValidationKind selects which of the three QA validation passes a status
// update targets.
type ValidationKind string

const (
	ValidationContent    ValidationKind = "content"
	ValidationDesign     ValidationKind = "design"
	ValidationCompliance ValidationKind = "compliance"
)

// SetValidationStatus updates one QA validation pass.
func (s *Store) SetValidationStatus(ctx context.Context, kind ValidationKind, status domain.ValidationStatus) error {
	if !status.Valid() {
		return &coreerrors.ValidationError{Field: "validationStatus", Message: "unrecognized validation status"}
	}
	return s.update(ctx, func(st *domain.WorkflowState) error {
		switch kind {
		case ValidationContent:
			st.QA.ContentValidation = status
		case ValidationDesign:
			st.QA.DesignValidation = status
		case ValidationCompliance:
			st.QA.ComplianceValidation = status
		default:
			return &coreerrors.ValidationError{Field: "validationKind", Message: "must be content, design or compliance"}
		}
		return nil
	})
}

// SetQualityMetrics replaces the aggregate quality assessment.
func (s *Store) SetQualityMetrics(ctx context.Context, metrics *domain.QualityMetrics) error {
	return s.update(ctx, func(st *domain.WorkflowState) error {
		if metrics == nil {
			st.QA.QualityMetrics = nil
			return nil
		}
		copied := *metrics
		copied.Categories = append([]domain.QualityCategory(nil), metrics.Categories...)
		copied.Issues = append([]domain.QualityIssue(nil), metrics.Issues...)
		st.QA.QualityMetrics = &copied
		return nil
	})
}

// SetFactCheckResults replaces the fact-check result list.
func (s *Store) SetFactCheckResults(ctx context.Context, results []domain.FactCheckResult) error {
	return s.update(ctx, func(st *domain.WorkflowState) error {
		st.QA.FactCheckResults = append([]domain.FactCheckResult(nil), results...)
		return nil
	})
}

// SetRefinementSuggestions replaces the refinement suggestion list.
func (s *Store) SetRefinementSuggestions(ctx context.Context, suggestions []domain.Suggestion) error {
	return s.update(ctx, func(st *domain.WorkflowState) error {
		st.QA.RefinementSuggestions = append([]domain.Suggestion(nil), suggestions...)
		return nil
	})
}
