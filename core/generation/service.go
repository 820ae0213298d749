// ABOUTME: Generation run service driving the research, content and finalize phases
// ABOUTME: Applies run-sequence staleness, idempotent resume and failure semantics

package generation

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"magicmuse-api/core/domain"
	coreerrors "magicmuse-api/core/errors"
	"magicmuse-api/core/interfaces"
	"magicmuse-api/core/visual"
	"magicmuse-api/core/workflow"
)

// The URL separator is anchored on the scheme so hyphens inside source
// names are not mistaken for it.
var citationRe = regexp.MustCompile(`(?im)^Source:\s*(.+?)(?:\s+-\s+(https?://\S+))?\s*$`)

// RunOptions configures one generation run.
type RunOptions struct {
	// Regenerate forces already-complete slides to be rebuilt. Without it a
	// run resumes: complete slides are skipped.
	Regenerate bool

	Temperature float64
	MaxTokens   int
}

// Service drives generation runs against a workflow store. All state flows
// through the store's setters, so every update carries the run's sequence
// number and stale callbacks from superseded runs are discarded.
type Service struct {
	deps            interfaces.Dependencies
	parser          *visual.Parser
	factCheckingOff bool
}

// Option configures a Service.
type Option func(*Service)

// WithFactChecking enables or disables the fact-check pass. When disabled the
// finalize phase skips verification regardless of the workflow's level.
func WithFactChecking(enabled bool) Option {
	return func(s *Service) {
		s.factCheckingOff = !enabled
	}
}

// NewService creates a generation service.
func NewService(deps interfaces.Dependencies, parser *visual.Parser, opts ...Option) *Service {
	if parser == nil {
		parser = visual.NewParser()
	}
	s := &Service{deps: deps, parser: parser}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes one full generation run synchronously. On failure the run is
// marked failed with lastError and completed slides are kept; a stale-run
// result means a newer run superseded this one and the store was left alone.
func (s *Service) Run(ctx context.Context, store *workflow.Store, opts RunOptions) error {
	seq, err := s.begin(ctx, store, opts)
	if err != nil {
		return err
	}
	return s.run(ctx, store, seq, opts)
}

// Start begins a run and drives it on a background goroutine, returning the
// run's sequence number immediately. The background work detaches from the
// request context so an early client disconnect does not abort the run.
func (s *Service) Start(ctx context.Context, store *workflow.Store, opts RunOptions) (uint64, error) {
	seq, err := s.begin(ctx, store, opts)
	if err != nil {
		return 0, err
	}
	bg := context.WithoutCancel(ctx)
	go func() {
		if err := s.run(bg, store, seq, opts); err != nil && s.deps.Logger != nil {
			s.deps.Logger.Error("Generation run failed", map[string]interface{}{
				"sequence": seq,
				"error":    err.Error(),
			})
		}
	}()
	return seq, nil
}

func (s *Service) begin(ctx context.Context, store *workflow.Store, opts RunOptions) (uint64, error) {
	if s.deps.LLM == nil {
		return 0, errors.New("LLM client not configured")
	}
	state := store.State()
	if len(state.Design.SlideStructure) == 0 {
		return 0, &coreerrors.ValidationError{Field: "slideStructure", Message: "cannot generate an empty deck"}
	}
	return store.StartRun(ctx, opts.Regenerate)
}

func (s *Service) run(ctx context.Context, store *workflow.Store, seq uint64, opts RunOptions) error {
	research, err := s.researchPhase(ctx, store, seq, opts)
	if err != nil {
		return s.fail(ctx, store, seq, err)
	}

	if err := s.contentPhase(ctx, store, seq, research, opts); err != nil {
		return s.fail(ctx, store, seq, err)
	}

	if err := s.finalizePhase(ctx, store, seq, opts); err != nil {
		return s.fail(ctx, store, seq, err)
	}

	return store.CompleteRun(ctx, seq)
}

// researchPhase runs the single research completion and returns its notes.
func (s *Service) researchPhase(ctx context.Context, store *workflow.Store, seq uint64, opts RunOptions) (string, error) {
	if err := store.SetPhaseData(ctx, seq, domain.PhaseData{CurrentPhase: domain.PhaseResearching}); err != nil {
		return "", err
	}
	resp, err := s.deps.LLM.Complete(ctx, interfaces.ChatRequest{
		Messages:    researchPrompt(store.State()),
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	if err := store.SetPhaseData(ctx, seq, domain.PhaseData{
		CurrentPhase:  domain.PhaseResearching,
		PhaseProgress: 100,
	}); err != nil {
		return "", err
	}
	return resp.Content, nil
}

// contentPhase generates each pending slide in presentation order. Slides
// already complete (resume after a failure) are skipped.
func (s *Service) contentPhase(ctx context.Context, store *workflow.Store, seq uint64, research string, opts RunOptions) error {
	state := store.State()
	total := len(state.Design.SlideStructure)
	if err := store.SetPhaseData(ctx, seq, domain.PhaseData{
		CurrentPhase: domain.PhaseContent,
		TotalSlides:  total,
	}); err != nil {
		return err
	}

	for i, slide := range state.Design.SlideStructure {
		if completed(store.State(), slide.ID) {
			continue
		}
		if err := store.SetPhaseData(ctx, seq, domain.PhaseData{
			CurrentPhase:  domain.PhaseContent,
			PhaseProgress: i * 100 / total,
			CurrentSlide:  i + 1,
			TotalSlides:   total,
		}); err != nil {
			return err
		}
		if err := s.generateSlide(ctx, store, seq, slide, research, opts); err != nil {
			return err
		}
	}
	return nil
}

// generateSlide walks one slide through researching, drafting and complete.
func (s *Service) generateSlide(ctx context.Context, store *workflow.Store, seq uint64, slide domain.Slide, research string, opts RunOptions) error {
	if err := store.SetSlideStatus(ctx, seq, slide.ID, domain.SlideResearching, 10); err != nil {
		return err
	}
	resp, err := s.deps.LLM.Complete(ctx, interfaces.ChatRequest{
		Messages:    slidePrompt(store.State(), slide, research),
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return err
	}
	if err := store.SetSlideStatus(ctx, seq, slide.ID, domain.SlideDrafting, 60); err != nil {
		return err
	}

	content, visuals := s.extractVisuals(slide, resp.Content)
	citations := extractCitations(resp.Content)
	if err := store.SetSlideContent(ctx, seq, slide.ID, content, visuals, citations); err != nil {
		return err
	}
	return store.SetSlideStatus(ctx, seq, slide.ID, domain.SlideComplete, 100)
}

// finalizePhase runs the fact-check pass when the level asks for one.
func (s *Service) finalizePhase(ctx context.Context, store *workflow.Store, seq uint64, opts RunOptions) error {
	if err := store.SetPhaseData(ctx, seq, domain.PhaseData{CurrentPhase: domain.PhaseFinalizing}); err != nil {
		return err
	}
	state := store.State()
	if !s.factCheckingOff && state.Generation.FactCheckLevel != domain.FactCheckBasic {
		resp, err := s.deps.LLM.Complete(ctx, interfaces.ChatRequest{
			Messages:    factCheckPrompt(state.Generation.SlideContents, state.Generation.FactCheckLevel),
			Temperature: opts.Temperature,
			MaxTokens:   opts.MaxTokens,
		})
		if err != nil {
			return err
		}
		if results := parseFactChecks(resp.Content); len(results) > 0 {
			if err := store.SetFactCheckResults(ctx, results); err != nil {
				return err
			}
		}
	}
	return store.SetPhaseData(ctx, seq, domain.PhaseData{
		CurrentPhase:  domain.PhaseFinalizing,
		PhaseProgress: 100,
	})
}

// fail marks the run failed unless a newer run already owns the store.
func (s *Service) fail(ctx context.Context, store *workflow.Store, seq uint64, cause error) error {
	if coreerrors.IsStaleRun(cause) {
		if s.deps.Logger != nil {
			s.deps.Logger.Debug("Generation run superseded", map[string]interface{}{
				"error": cause.Error(),
			})
		}
		return cause
	}
	if err := store.FailRun(ctx, seq, cause.Error()); err != nil && !coreerrors.IsStaleRun(err) && s.deps.Logger != nil {
		s.deps.Logger.Error("Failed to record generation failure", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return cause
}

// extractVisuals parses the slide's visual specification out of the LLM
// response when the slide asked for one, returning the content with fenced
// specs removed.
func (s *Service) extractVisuals(slide domain.Slide, content string) (string, []domain.VisualElement) {
	if !slide.IncludeVisual || slide.VisualType == domain.VisualLogo {
		return content, nil
	}
	parsed := s.parser.Parse(slide.VisualType, content)
	element := domain.VisualElement{
		Type:     parsed.Type,
		Data:     parsed,
		Caption:  parsed.Title,
		Position: "center",
	}
	cleaned := strings.TrimSpace(stripVisualBlocks(content))
	return cleaned, []domain.VisualElement{element}
}

var fencedBlockRe = regexp.MustCompile("(?s)```visual-specification.*?```")

func stripVisualBlocks(content string) string {
	return fencedBlockRe.ReplaceAllString(content, "")
}

// extractCitations collects "Source: name - url" lines.
func extractCitations(content string) []domain.Citation {
	var citations []domain.Citation
	for _, m := range citationRe.FindAllStringSubmatch(content, -1) {
		citations = append(citations, domain.Citation{
			Source: strings.TrimSpace(m[1]),
			URL:    m[2],
			Text:   strings.TrimSpace(m[0]),
		})
	}
	return citations
}

// parseFactChecks reads "CLAIM: ... | VERIFIED: yes/no | SOURCE: ..." lines.
func parseFactChecks(content string) []domain.FactCheckResult {
	var results []domain.FactCheckResult
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(strings.ToUpper(line), "CLAIM:") {
			continue
		}
		parts := strings.Split(line, "|")
		result := domain.FactCheckResult{
			Claim: strings.TrimSpace(parts[0][len("CLAIM:"):]),
		}
		for _, part := range parts[1:] {
			part = strings.TrimSpace(part)
			upper := strings.ToUpper(part)
			switch {
			case strings.HasPrefix(upper, "VERIFIED:"):
				value := strings.TrimSpace(part[len("VERIFIED:"):])
				result.Verified = strings.EqualFold(value, "yes") || strings.EqualFold(value, "true")
			case strings.HasPrefix(upper, "SOURCE:"):
				result.Source = strings.TrimSpace(part[len("SOURCE:"):])
			}
		}
		if result.Claim != "" {
			results = append(results, result)
		}
	}
	return results
}

// completed reports whether the slide's content is already complete.
func completed(st domain.WorkflowState, slideID string) bool {
	for _, sc := range st.Generation.SlideContents {
		if sc.ID == slideID {
			return sc.CompletionStatus == domain.SlideComplete
		}
	}
	return false
}
