// ABOUTME: Setter actions for the design slice of the workflow store
// ABOUTME: Template selection, branding, fonts and the deck slide structure

package workflow

import (
	"context"

	"magicmuse-api/core/domain"
	coreerrors "magicmuse-api/core/errors"
)

// SetTemplate records the selected template and the slide structure it
// instantiates. Slide IDs must be unique.
func (s *Store) SetTemplate(ctx context.Context, templateID string, slides []domain.Slide) error {
	slides = append([]domain.Slide(nil), slides...)
	candidate := domain.DesignState{SlideStructure: slides, ComplexityLevel: domain.ComplexityBasic}
	if err := candidate.Validate(); err != nil {
		return &coreerrors.ValidationError{Field: "slideStructure", Message: err.Error()}
	}
	return s.update(ctx, func(st *domain.WorkflowState) error {
		st.Design.SelectedTemplateID = templateID
		st.Design.SlideStructure = slides
		return nil
	})
}

// SetSlideStructure replaces the slide structure. Slide IDs must be unique;
// list order is presentation order.
func (s *Store) SetSlideStructure(ctx context.Context, slides []domain.Slide) error {
	slides = append([]domain.Slide(nil), slides...)
	candidate := domain.DesignState{SlideStructure: slides, ComplexityLevel: domain.ComplexityBasic}
	if err := candidate.Validate(); err != nil {
		return &coreerrors.ValidationError{Field: "slideStructure", Message: err.Error()}
	}
	return s.update(ctx, func(st *domain.WorkflowState) error {
		st.Design.SlideStructure = slides
		return nil
	})
}

// SetBrandLogo sets the brand logo reference.
func (s *Store) SetBrandLogo(ctx context.Context, logo string) error {
	return s.update(ctx, func(st *domain.WorkflowState) error {
		st.Design.BrandLogo = logo
		return nil
	})
}

// SetColors sets the three brand colors in one mutation.
func (s *Store) SetColors(ctx context.Context, primary, secondary, accent string) error {
	return s.update(ctx, func(st *domain.WorkflowState) error {
		st.Design.PrimaryColor = primary
		st.Design.SecondaryColor = secondary
		st.Design.AccentColor = accent
		return nil
	})
}

// SetFonts sets the heading and body fonts.
func (s *Store) SetFonts(ctx context.Context, heading, body string) error {
	return s.update(ctx, func(st *domain.WorkflowState) error {
		st.Design.HeadingFont = heading
		st.Design.BodyFont = body
		return nil
	})
}

// SetComplexityLevel sets the deck complexity. Unknown levels are rejected.
func (s *Store) SetComplexityLevel(ctx context.Context, level domain.ComplexityLevel) error {
	if !level.Valid() {
		return &coreerrors.ValidationError{Field: "complexityLevel", Message: "must be basic, intermediate or advanced"}
	}
	return s.update(ctx, func(st *domain.WorkflowState) error {
		st.Design.ComplexityLevel = level
		return nil
	})
}
