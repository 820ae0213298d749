// ABOUTME: Setter actions for the delivery slice of the workflow store
// ABOUTME: Tracks client-side PDF export state

package workflow

import (
	"context"

	"magicmuse-api/core/domain"
	coreerrors "magicmuse-api/core/errors"
)

// SetClientPdfStatus updates the PDF export status. The isGenerating flag is
// kept consistent with the status rather than settable on its own.
func (s *Store) SetClientPdfStatus(ctx context.Context, status domain.PdfStatus) error {
	if !status.Valid() {
		return &coreerrors.ValidationError{Field: "clientPdfStatus", Message: "must be idle, generating, success or error"}
	}
	return s.update(ctx, func(st *domain.WorkflowState) error {
		st.Delivery.ClientPdfStatus = status
		st.Delivery.IsGeneratingClientPdf = status == domain.PdfGenerating
		return nil
	})
}
