// ABOUTME: Blog domain model for the blog-post variant of the project workflow
// ABOUTME: Covers objectives, structure, QA status strings, publishing and analytics

package domain

// ContentElement is a reusable building block in a blog structure.
type ContentElement struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// HeadingItem is a node in the blog's heading outline. ParentID is empty for
// top-level headings.
type HeadingItem struct {
	ID       string `json:"id"`
	Level    int    `json:"level"`
	Title    string `json:"title"`
	ParentID string `json:"parentId,omitempty"`
}

// BlogState is the blog slice of the workflow. Objective and structure fields
// persist across reloads; QA status, publishing and analytics fields are transient.
type BlogState struct {
	// Objective fields
	PrimaryGoal    string   `json:"primaryGoal"`
	ContentGoals   []string `json:"contentGoals"`
	TargetKeywords []string `json:"targetKeywords"`

	// Structure fields
	SelectedStructureID string           `json:"selectedStructureId"`
	ContentElements     []ContentElement `json:"contentElements"`
	HeadingStructure    []HeadingItem    `json:"headingStructure"`

	// QA status strings
	SEOCheckStatus      string `json:"seoCheckStatus"`
	ReadabilityStatus   string `json:"readabilityStatus"`
	PlagiarismStatus    string `json:"plagiarismStatus"`

	// Publishing fields
	PublishPlatform string `json:"publishPlatform"`
	ScheduledAt     string `json:"scheduledAt"`
	CanonicalURL    string `json:"canonicalUrl"`

	// Analytics placeholders
	ViewCount       int     `json:"viewCount"`
	EngagementScore float64 `json:"engagementScore"`
}

// DefaultBlogState returns the blog slice defaults.
func DefaultBlogState() BlogState {
	return BlogState{
		ContentGoals:     []string{},
		TargetKeywords:   []string{},
		ContentElements:  []ContentElement{},
		HeadingStructure: []HeadingItem{},
	}
}
