// ABOUTME: Response DTOs for the visual specification parser endpoint
// ABOUTME: Wraps the parsed structure returned to renderers

package responses

import "magicmuse-api/core/domain"

// ParseVisualResponse carries the structured interpretation of a raw visual
// description.
type ParseVisualResponse struct {
	Parsed domain.ParsedVisualData `json:"parsed"`
}
