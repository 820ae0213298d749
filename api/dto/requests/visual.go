// ABOUTME: Request DTOs for the visual specification parser endpoint
// ABOUTME: Carries the visual type hint and the raw text to interpret

package requests

// ParseVisualRequest asks the parser to interpret a raw visual description.
type ParseVisualRequest struct {
	// Type is the visual type hint from the slide structure
	Type string `json:"type" enum:"chart,table,diagram,infographic" doc:"Visual type hint"`

	// RawData is the freeform text to interpret, typically LLM output
	RawData string `json:"rawData" maxLength:"65536" doc:"Freeform visual description"`
}
