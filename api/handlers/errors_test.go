// ABOUTME: Tests for domain-to-HTTP error mapping
// ABOUTME: Every domain error kind must map to a stable status code

package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "magicmuse-api/core/errors"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.True(t, errors.As(err, &se), "expected a huma status error, got %T", err)
	return se.GetStatus()
}

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want int
	}{
		{"not found", &coreerrors.NotFoundError{Resource: "workflow", ID: "w1"}, 404},
		{"validation", &coreerrors.ValidationError{Field: "slides", Message: "empty"}, 400},
		{"stale run", &coreerrors.StaleRunError{Got: 1, Latest: 2}, 409},
		{"upstream 500", &coreerrors.ExternalAPIError{StatusCode: 502, API: "openrouter"}, 503},
		{"upstream 429", &coreerrors.ExternalAPIError{StatusCode: 429, API: "openrouter"}, 429},
		{"upstream 400", &coreerrors.ExternalAPIError{StatusCode: 422, API: "openrouter"}, 400},
		{"plain error", fmt.Errorf("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusOf(t, toHumaError(tt.in)))
		})
	}
}

func TestToHumaError_Nil(t *testing.T) {
	assert.NoError(t, toHumaError(nil))
}

func TestToHumaError_WrappedNotFound(t *testing.T) {
	wrapped := coreerrors.WrapError(&coreerrors.NotFoundError{Resource: "template", ID: "t1"}, "lookup")
	assert.Equal(t, 404, statusOf(t, toHumaError(wrapped)))
}
