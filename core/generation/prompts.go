// ABOUTME: Prompt construction for the research, content and fact-check phases
// ABOUTME: Builds chat messages from workflow state for the LLM boundary

package generation

import (
	"fmt"
	"strings"

	"magicmuse-api/core/domain"
	"magicmuse-api/core/interfaces"
)

const systemPrompt = `You are a pitch deck writing assistant. Write concise,
persuasive slide content for the audience described. When a slide calls for a
visual, append a fenced block tagged visual-specification containing JSON, or
a [VISUALIZATION: ...] tag. Cite sources as lines starting with "Source: ".`

// researchPrompt asks for background research on the project and audience.
func researchPrompt(st domain.WorkflowState) []interfaces.ChatMessage {
	var b strings.Builder
	fmt.Fprintf(&b, "Research the background for a pitch deck.\n")
	fmt.Fprintf(&b, "Project: %s\n", st.Setup.ProjectName)
	if st.Setup.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", st.Setup.Description)
	}
	fmt.Fprintf(&b, "Audience: %s (%s, %s", st.Audience.AudienceName, st.Audience.OrgType, st.Audience.Industry)
	if st.Audience.Size != domain.OrgSizeUnset {
		fmt.Fprintf(&b, ", %s", st.Audience.Size)
	}
	b.WriteString(")\n")
	if st.Audience.PersonaRole != "" {
		fmt.Fprintf(&b, "Decision maker: %s\n", st.Audience.PersonaRole)
	}
	if len(st.Audience.PersonaConcerns) > 0 {
		fmt.Fprintf(&b, "Concerns: %s\n", strings.Join(st.Audience.PersonaConcerns, "; "))
	}
	b.WriteString("Summarize the market context, competitors and key claims worth making.")
	return []interfaces.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: b.String()},
	}
}

// slidePrompt asks for the content of one slide, carrying the research notes.
func slidePrompt(st domain.WorkflowState, slide domain.Slide, research string) []interfaces.ChatMessage {
	var b strings.Builder
	fmt.Fprintf(&b, "Write the %q slide (type: %s) of the deck for %s.\n",
		slide.Title, slide.Type, st.Setup.ProjectName)
	if slide.Description != "" {
		fmt.Fprintf(&b, "Slide intent: %s\n", slide.Description)
	}
	if slide.CustomPrompt != "" {
		fmt.Fprintf(&b, "Author instructions: %s\n", slide.CustomPrompt)
	}
	if slide.IncludeVisual {
		fmt.Fprintf(&b, "Include a %s visual specification.\n", slide.VisualType)
	}
	if research != "" {
		fmt.Fprintf(&b, "\nResearch notes:\n%s\n", research)
	}
	return []interfaces.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: b.String()},
	}
}

// factCheckPrompt asks for claim verification across the generated contents.
func factCheckPrompt(contents []domain.SlideContent, level domain.FactCheckLevel) []interfaces.ChatMessage {
	var b strings.Builder
	fmt.Fprintf(&b, "Fact-check the following deck content at %s depth.\n", level)
	b.WriteString("For each factual claim output one line:\nCLAIM: <claim> | VERIFIED: yes/no | SOURCE: <source or empty>\n\n")
	for _, sc := range contents {
		fmt.Fprintf(&b, "## %s\n%s\n\n", sc.Title, sc.Content)
	}
	return []interfaces.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: b.String()},
	}
}
