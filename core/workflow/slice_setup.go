// ABOUTME: Setter actions for the setup slice of the workflow store
// ABOUTME: Project identity, name, description, privacy, tags and team members

package workflow

import (
	"context"
	"errors"

	"magicmuse-api/core/domain"
	coreerrors "magicmuse-api/core/errors"
)

// AssignProjectID records the backend-assigned project identifier. It can be
// assigned exactly once.
func (s *Store) AssignProjectID(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("project ID cannot be empty")
	}
	return s.update(ctx, func(st *domain.WorkflowState) error {
		if st.Setup.ProjectID != "" {
			return errors.New("project ID is already assigned")
		}
		st.Setup.ProjectID = id
		return nil
	})
}

// SetProjectName sets the project display name.
func (s *Store) SetProjectName(ctx context.Context, name string) error {
	return s.update(ctx, func(st *domain.WorkflowState) error {
		st.Setup.ProjectName = name
		return nil
	})
}

// SetDescription sets the project description.
func (s *Store) SetDescription(ctx context.Context, description string) error {
	return s.update(ctx, func(st *domain.WorkflowState) error {
		st.Setup.Description = description
		return nil
	})
}

// SetPrivacy sets the project privacy level. Unknown levels are rejected.
func (s *Store) SetPrivacy(ctx context.Context, p domain.Privacy) error {
	if !p.Valid() {
		return &coreerrors.ValidationError{Field: "privacy", Message: "must be private, team or public"}
	}
	return s.update(ctx, func(st *domain.WorkflowState) error {
		st.Setup.Privacy = p
		return nil
	})
}

// SetTags replaces the project tag set.
func (s *Store) SetTags(ctx context.Context, tags []string) error {
	return s.update(ctx, func(st *domain.WorkflowState) error {
		st.Setup.Tags = append([]string(nil), tags...)
		return nil
	})
}

// SetTeamMembers replaces the ordered team member list.
func (s *Store) SetTeamMembers(ctx context.Context, members []string) error {
	return s.update(ctx, func(st *domain.WorkflowState) error {
		st.Setup.TeamMembers = append([]string(nil), members...)
		return nil
	})
}
