// ABOUTME: Setter actions for the blog slice of the workflow store
// ABOUTME: Objectives, structure, QA status strings, publishing and analytics

package workflow

import (
	"context"

	"magicmuse-api/core/domain"
	coreerrors "magicmuse-api/core/errors"
)

// UpdateBlog replaces the blog slice. Heading structure parent references
// must point at headings present in the same list.
func (s *Store) UpdateBlog(ctx context.Context, b domain.BlogState) error {
	ids := make(map[string]struct{}, len(b.HeadingStructure))
	for _, h := range b.HeadingStructure {
		ids[h.ID] = struct{}{}
	}
	for _, h := range b.HeadingStructure {
		if h.ParentID == "" {
			continue
		}
		if _, ok := ids[h.ParentID]; !ok {
			return &coreerrors.ValidationError{Field: "headingStructure", Message: "parent heading " + h.ParentID + " does not exist"}
		}
	}
	return s.update(ctx, func(st *domain.WorkflowState) error {
		st.Blog = cloneBlog(b)
		return nil
	})
}

// SetBlogStructure records the selected structure and its building blocks.
func (s *Store) SetBlogStructure(ctx context.Context, structureID string, elements []domain.ContentElement) error {
	return s.update(ctx, func(st *domain.WorkflowState) error {
		st.Blog.SelectedStructureID = structureID
		st.Blog.ContentElements = append([]domain.ContentElement(nil), elements...)
		return nil
	})
}

func cloneBlog(b domain.BlogState) domain.BlogState {
	b.ContentGoals = append([]string(nil), b.ContentGoals...)
	b.TargetKeywords = append([]string(nil), b.TargetKeywords...)
	b.ContentElements = append([]domain.ContentElement(nil), b.ContentElements...)
	b.HeadingStructure = append([]domain.HeadingItem(nil), b.HeadingStructure...)
	return b
}
