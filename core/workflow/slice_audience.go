// ABOUTME: Setter actions for the audience slice of the workflow store
// ABOUTME: Target audience, persona description and blog-specific audience fields

package workflow

import (
	"context"

	"magicmuse-api/core/domain"
	coreerrors "magicmuse-api/core/errors"
)

// UpdateAudience replaces the audience slice. The organization size must be a
// recognized bucket (or unset).
func (s *Store) UpdateAudience(ctx context.Context, a domain.AudienceState) error {
	if !a.Size.Valid() {
		return &coreerrors.ValidationError{Field: "size", Message: "must be Small, Medium, Enterprise or empty"}
	}
	return s.update(ctx, func(st *domain.WorkflowState) error {
		st.Audience = cloneAudience(a)
		return nil
	})
}

// SetAudienceName sets the audience display name.
func (s *Store) SetAudienceName(ctx context.Context, name string) error {
	return s.update(ctx, func(st *domain.WorkflowState) error {
		st.Audience.AudienceName = name
		return nil
	})
}

// SetIndustry sets the audience industry.
func (s *Store) SetIndustry(ctx context.Context, industry string) error {
	return s.update(ctx, func(st *domain.WorkflowState) error {
		st.Audience.Industry = industry
		return nil
	})
}

// cloneAudience deep-copies the list fields so the stored slice never aliases
// caller-owned memory.
func cloneAudience(a domain.AudienceState) domain.AudienceState {
	a.PersonaConcerns = append([]string(nil), a.PersonaConcerns...)
	a.PersonaCriteria = append([]string(nil), a.PersonaCriteria...)
	a.PersonaCommPrefs = append([]string(nil), a.PersonaCommPrefs...)
	a.Interests = append([]string(nil), a.Interests...)
	a.PainPoints = append([]string(nil), a.PainPoints...)
	a.DesiredOutcomes = append([]string(nil), a.DesiredOutcomes...)
	return a
}
