// ABOUTME: Tests for the generation run service
// ABOUTME: Covers the full run, failure and resume semantics, and staleness handling

package generation

import (
	"context"
	"testing"

	"magicmuse-api/core/domain"
	coreerrors "magicmuse-api/core/errors"
	"magicmuse-api/core/interfaces"
	"magicmuse-api/core/visual"
	"magicmuse-api/core/workflow"
)

func deckStore(t *testing.T, llm interfaces.LLMClient, slides ...domain.Slide) (*Service, *workflow.Store) {
	t.Helper()
	deps := interfaces.Dependencies{
		Storage: newMockStorage(),
		LLM:     llm,
		Logger:  nopLogger{},
	}
	store, err := workflow.NewStore(deps)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if err := store.SetSlideStructure(context.Background(), slides); err != nil {
		t.Fatalf("SetSlideStructure() error = %v", err)
	}
	return NewService(deps, visual.NewParser()), store
}

func plainSlides(ids ...string) []domain.Slide {
	slides := make([]domain.Slide, 0, len(ids))
	for _, id := range ids {
		slides = append(slides, domain.Slide{ID: id, Title: "Slide " + id, Type: "content"})
	}
	return slides
}

func TestRun_Success(t *testing.T) {
	llm := &mockLLM{}
	service, store := deckStore(t, llm, plainSlides("a", "b")...)
	ctx := context.Background()

	if err := service.Run(ctx, store, RunOptions{}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	st := store.State()
	if st.Generation.IsGenerating {
		t.Error("finished run should clear isGenerating")
	}
	if st.Generation.GenerationProgress != 100 {
		t.Errorf("progress = %d, want 100", st.Generation.GenerationProgress)
	}
	if st.Generation.LastError != "" {
		t.Errorf("lastError = %q, want empty", st.Generation.LastError)
	}
	for _, sc := range st.Generation.SlideContents {
		if sc.CompletionStatus != domain.SlideComplete {
			t.Errorf("slide %s status = %s, want complete", sc.ID, sc.CompletionStatus)
		}
		if sc.Content == "" {
			t.Errorf("slide %s has no content", sc.ID)
		}
	}

	// 1 research + 2 slides + 1 fact check (standard level).
	if got := llm.callCount(); got != 4 {
		t.Errorf("LLM calls = %d, want 4", got)
	}
}

func TestRun_EmptyDeckRejected(t *testing.T) {
	service, store := deckStore(t, &mockLLM{})
	err := service.Run(context.Background(), store, RunOptions{})
	if !coreerrors.IsValidation(err) {
		t.Errorf("empty deck should be a validation error, got %v", err)
	}
}

func TestRun_NoLLMConfigured(t *testing.T) {
	service, store := deckStore(t, nil, plainSlides("a")...)
	if err := service.Run(context.Background(), store, RunOptions{}); err == nil {
		t.Error("missing LLM client should fail the run")
	}
}

func TestRun_FailureKeepsCompletedSlides(t *testing.T) {
	// Call 1 is research, call 2 generates slide a, call 3 fails slide b.
	llm := &mockLLM{errAt: 3}
	service, store := deckStore(t, llm, plainSlides("a", "b")...)
	ctx := context.Background()

	if err := service.Run(ctx, store, RunOptions{}); err == nil {
		t.Fatal("run should surface the provider error")
	}

	st := store.State()
	if st.Generation.IsGenerating {
		t.Error("failed run should clear isGenerating")
	}
	if st.Generation.LastError == "" {
		t.Error("failed run should record lastError")
	}
	byID := map[string]domain.SlideContent{}
	for _, sc := range st.Generation.SlideContents {
		byID[sc.ID] = sc
	}
	if byID["a"].CompletionStatus != domain.SlideComplete {
		t.Error("slide generated before the failure should stay complete")
	}
	if byID["b"].CompletionStatus == domain.SlideComplete {
		t.Error("failed slide should not be complete")
	}
}

func TestRun_ResumeSkipsCompleteSlides(t *testing.T) {
	llm := &mockLLM{errAt: 3}
	service, store := deckStore(t, llm, plainSlides("a", "b")...)
	ctx := context.Background()

	if err := service.Run(ctx, store, RunOptions{}); err == nil {
		t.Fatal("first run should fail")
	}
	failedCalls := llm.callCount()

	llm.errAt = 0
	if err := service.Run(ctx, store, RunOptions{}); err != nil {
		t.Fatalf("resume run error = %v", err)
	}

	// Resume: research + slide b + fact check, slide a is skipped.
	if got := llm.callCount() - failedCalls; got != 3 {
		t.Errorf("resume made %d LLM calls, want 3", got)
	}
	for _, sc := range store.State().Generation.SlideContents {
		if sc.CompletionStatus != domain.SlideComplete {
			t.Errorf("slide %s not complete after resume", sc.ID)
		}
	}
}

func TestRun_RegenerateRebuildsCompleteSlides(t *testing.T) {
	llm := &mockLLM{}
	service, store := deckStore(t, llm, plainSlides("a")...)
	ctx := context.Background()

	if err := service.Run(ctx, store, RunOptions{}); err != nil {
		t.Fatalf("first run error = %v", err)
	}
	first := llm.callCount()

	if err := service.Run(ctx, store, RunOptions{Regenerate: true}); err != nil {
		t.Fatalf("regenerate run error = %v", err)
	}
	if got := llm.callCount() - first; got != 3 {
		t.Errorf("regenerate made %d calls, want 3 (research + slide + fact check)", got)
	}
}

func TestRun_BasicLevelSkipsFactCheck(t *testing.T) {
	llm := &mockLLM{}
	service, store := deckStore(t, llm, plainSlides("a")...)
	ctx := context.Background()

	if err := store.SetFactCheckLevel(ctx, domain.FactCheckBasic); err != nil {
		t.Fatalf("SetFactCheckLevel() error = %v", err)
	}
	if err := service.Run(ctx, store, RunOptions{}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	// Research + slide only.
	if got := llm.callCount(); got != 2 {
		t.Errorf("LLM calls = %d, want 2", got)
	}
}

func TestRun_FactCheckingDisabledSkipsPass(t *testing.T) {
	llm := &mockLLM{}
	_, store := deckStore(t, llm, plainSlides("a")...)
	service := NewService(interfaces.Dependencies{
		Storage: newMockStorage(),
		LLM:     llm,
		Logger:  nopLogger{},
	}, visual.NewParser(), WithFactChecking(false))
	ctx := context.Background()

	// Thorough level is ignored when fact checking is off.
	if err := store.SetFactCheckLevel(ctx, domain.FactCheckThorough); err != nil {
		t.Fatalf("SetFactCheckLevel() error = %v", err)
	}
	if err := service.Run(ctx, store, RunOptions{}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := llm.callCount(); got != 2 {
		t.Errorf("LLM calls = %d, want 2 (research + slide)", got)
	}
}

func TestRun_SupersededRunLeavesStoreAlone(t *testing.T) {
	llm := &mockLLM{}
	service, store := deckStore(t, llm, plainSlides("a", "b")...)
	ctx := context.Background()

	// A second run starts while the first is between LLM calls.
	llm.onCall = func(call int) {
		if call == 2 {
			if _, err := store.StartRun(ctx, false); err != nil {
				t.Errorf("superseding StartRun() error = %v", err)
			}
		}
	}

	err := service.Run(ctx, store, RunOptions{})
	if !coreerrors.IsStaleRun(err) {
		t.Fatalf("superseded run should report staleness, got %v", err)
	}

	st := store.State()
	if !st.Generation.IsGenerating {
		t.Error("the newer run owns the store and is still generating")
	}
	if st.Generation.LastError != "" {
		t.Errorf("a superseded run must not record a failure, lastError = %q", st.Generation.LastError)
	}
}

func TestRun_ExtractsCitations(t *testing.T) {
	llm := &mockLLM{responses: []string{
		"research notes",
		"Strong traction.\nSource: Gartner - https://example.com/report\nSource: Internal metrics\n",
	}}
	service, store := deckStore(t, llm, plainSlides("a")...)
	ctx := context.Background()
	if err := store.SetFactCheckLevel(ctx, domain.FactCheckBasic); err != nil {
		t.Fatal(err)
	}

	if err := service.Run(ctx, store, RunOptions{}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	citations := store.State().Generation.SlideContents[0].Citations
	if len(citations) != 2 {
		t.Fatalf("citations = %v", citations)
	}
	if citations[0].Source != "Gartner" || citations[0].URL != "https://example.com/report" {
		t.Errorf("first citation = %+v", citations[0])
	}
	if citations[1].Source != "Internal metrics" || citations[1].URL != "" {
		t.Errorf("second citation = %+v", citations[1])
	}
}

func TestRun_ExtractsVisuals(t *testing.T) {
	slideBody := "Market overview.\n```visual-specification\n" +
		`{"type":"chart","title":"TAM","chartType":"bar","data":[{"label":"2025","value":4.5}]}` +
		"\n```\nClosing line."
	llm := &mockLLM{responses: []string{"research notes", slideBody}}

	slide := domain.Slide{
		ID: "a", Title: "Market", Type: "market",
		IncludeVisual: true, VisualType: domain.VisualChart,
	}
	service, store := deckStore(t, llm, slide)
	ctx := context.Background()
	if err := store.SetFactCheckLevel(ctx, domain.FactCheckBasic); err != nil {
		t.Fatal(err)
	}

	if err := service.Run(ctx, store, RunOptions{}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	sc := store.State().Generation.SlideContents[0]
	if len(sc.VisualElements) != 1 {
		t.Fatalf("visual elements = %v", sc.VisualElements)
	}
	element := sc.VisualElements[0]
	if element.Type != domain.VisualChart || element.Caption != "TAM" {
		t.Errorf("element = %+v", element)
	}
	parsed, ok := element.Data.(domain.ParsedVisualData)
	if !ok {
		t.Fatalf("element data has type %T", element.Data)
	}
	if len(parsed.DataPoints) != 1 || parsed.DataPoints[0].Value != 4.5 {
		t.Errorf("parsed data = %+v", parsed.DataPoints)
	}
	if sc.Content == "" || sc.Content != "Market overview.\n\nClosing line." {
		t.Errorf("fenced spec should be stripped from content, got %q", sc.Content)
	}
}

func TestRun_FactCheckResultsRecorded(t *testing.T) {
	llm := &mockLLM{responses: []string{
		"research notes",
		"slide content",
		"CLAIM: Market is $4.5B | VERIFIED: yes | SOURCE: Gartner\nCLAIM: 10x faster | VERIFIED: no | SOURCE:\nnot a claim line",
	}}
	service, store := deckStore(t, llm, plainSlides("a")...)

	if err := service.Run(context.Background(), store, RunOptions{}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	results := store.State().QA.FactCheckResults
	if len(results) != 2 {
		t.Fatalf("fact check results = %v", results)
	}
	if !results[0].Verified || results[0].Source != "Gartner" {
		t.Errorf("first result = %+v", results[0])
	}
	if results[1].Verified {
		t.Errorf("second result should be unverified: %+v", results[1])
	}
}

func TestExtractCitations(t *testing.T) {
	content := "Line one.\nSource: TechCrunch - https://tc.example\nsource: lowercase works - https://x.example\nSource: Bare source\n"
	citations := extractCitations(content)
	if len(citations) != 3 {
		t.Fatalf("citations = %v", citations)
	}
	if citations[1].Source != "lowercase works" {
		t.Errorf("case-insensitive match failed: %+v", citations[1])
	}
}

func TestExtractCitations_HyphenatedSource(t *testing.T) {
	citations := extractCitations("Source: Gartner Market-Share Report - https://example.com/share\n")
	if len(citations) != 1 {
		t.Fatalf("citations = %v", citations)
	}
	if citations[0].Source != "Gartner Market-Share Report" {
		t.Errorf("Source = %q, hyphens in the name must not split it", citations[0].Source)
	}
	if citations[0].URL != "https://example.com/share" {
		t.Errorf("URL = %q", citations[0].URL)
	}
}

func TestParseFactChecks_Empty(t *testing.T) {
	if got := parseFactChecks("no claims here\njust prose"); len(got) != 0 {
		t.Errorf("results = %v", got)
	}
	if got := parseFactChecks("CLAIM:  | VERIFIED: yes"); len(got) != 0 {
		t.Errorf("empty claim should be dropped, got %v", got)
	}
}
