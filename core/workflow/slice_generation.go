// ABOUTME: Setter actions for the generation slice, including the phase tracker
// ABOUTME: Enforces progress clamping, slide-status monotonicity and run staleness

package workflow

import (
	"context"

	"magicmuse-api/core/domain"
	coreerrors "magicmuse-api/core/errors"
)

// StartRun begins a new generation run and returns its sequence number. Any
// updates still in flight from a previous run carry an older sequence and are
// discarded. Slides already complete from an earlier run are kept as-is
// unless regenerate is set; everything else is (re)seeded as pending.
func (s *Store) StartRun(ctx context.Context, regenerate bool) (uint64, error) {
	var seq uint64
	err := s.update(ctx, func(st *domain.WorkflowState) error {
		st.Generation.RunSequence++
		seq = st.Generation.RunSequence
		st.Generation.IsGenerating = true
		st.Generation.LastError = ""
		st.Generation.GenerationProgress = 0
		st.Generation.PhaseData = domain.PhaseData{
			CurrentPhase: domain.PhaseResearching,
			TotalSlides:  len(st.Design.SlideStructure),
		}

		existing := make(map[string]domain.SlideContent, len(st.Generation.SlideContents))
		for _, sc := range st.Generation.SlideContents {
			existing[sc.ID] = sc
		}
		contents := make([]domain.SlideContent, 0, len(st.Design.SlideStructure))
		for _, slide := range st.Design.SlideStructure {
			if prev, ok := existing[slide.ID]; ok && prev.CompletionStatus == domain.SlideComplete && !regenerate {
				contents = append(contents, prev)
				continue
			}
			contents = append(contents, domain.SlideContent{
				ID:               slide.ID,
				Title:            slide.Title,
				CompletionStatus: domain.SlidePending,
			})
		}
		st.Generation.SlideContents = contents
		recomputeOverall(st)
		return nil
	})
	return seq, err
}

// SetPhaseData records the active phase and its progress for run seq. The
// phase tag must be recognized; progress is clamped to [0,100]. The tracker
// records, it does not enforce transition order -- the run driver decides
// when to advance.
func (s *Store) SetPhaseData(ctx context.Context, seq uint64, pd domain.PhaseData) error {
	if !pd.CurrentPhase.Valid() {
		return &coreerrors.ValidationError{Field: "currentPhase", Message: "unrecognized generation phase"}
	}
	pd.PhaseProgress = domain.ClampProgress(pd.PhaseProgress)
	return s.update(ctx, func(st *domain.WorkflowState) error {
		if err := checkRun(st, seq); err != nil {
			return err
		}
		st.Generation.PhaseData = pd
		recomputeOverall(st)
		return nil
	})
}

// SetSlideStatus advances the completion status and progress of one slide.
// Status never regresses within a run: an update that would walk backwards is
// ignored. Progress is clamped to [0,100].
func (s *Store) SetSlideStatus(ctx context.Context, seq uint64, slideID string, status domain.SlideStatus, progress int) error {
	if !status.Valid() {
		return &coreerrors.ValidationError{Field: "completionStatus", Message: "unrecognized slide status"}
	}
	progress = domain.ClampProgress(progress)
	return s.update(ctx, func(st *domain.WorkflowState) error {
		if err := checkRun(st, seq); err != nil {
			return err
		}
		idx := slideContentIndex(st, slideID)
		if idx < 0 {
			return &coreerrors.NotFoundError{Resource: "slide content", ID: slideID}
		}
		sc := st.Generation.SlideContents[idx]
		if status.Before(sc.CompletionStatus) {
			return nil
		}
		sc.CompletionStatus = status
		if progress > sc.GenerationProgress {
			sc.GenerationProgress = progress
		}
		if status == domain.SlideComplete {
			sc.GenerationProgress = 100
		}
		setSlideContent(st, idx, sc)
		recomputeOverall(st)
		return nil
	})
}

// SetSlideContent stores generated content for one slide.
func (s *Store) SetSlideContent(ctx context.Context, seq uint64, slideID, content string, visuals []domain.VisualElement, citations []domain.Citation) error {
	return s.update(ctx, func(st *domain.WorkflowState) error {
		if err := checkRun(st, seq); err != nil {
			return err
		}
		idx := slideContentIndex(st, slideID)
		if idx < 0 {
			return &coreerrors.NotFoundError{Resource: "slide content", ID: slideID}
		}
		sc := st.Generation.SlideContents[idx]
		sc.Content = content
		sc.VisualElements = append([]domain.VisualElement(nil), visuals...)
		sc.Citations = append([]domain.Citation(nil), citations...)
		setSlideContent(st, idx, sc)
		return nil
	})
}

// FailRun records a run failure. Completed slides remain in the store; a
// later run resumes rather than restarts them.
func (s *Store) FailRun(ctx context.Context, seq uint64, message string) error {
	return s.update(ctx, func(st *domain.WorkflowState) error {
		if err := checkRun(st, seq); err != nil {
			return err
		}
		st.Generation.LastError = message
		st.Generation.IsGenerating = false
		return nil
	})
}

// CompleteRun finishes a run successfully.
func (s *Store) CompleteRun(ctx context.Context, seq uint64) error {
	return s.update(ctx, func(st *domain.WorkflowState) error {
		if err := checkRun(st, seq); err != nil {
			return err
		}
		st.Generation.IsGenerating = false
		st.Generation.PhaseData.CurrentPhase = domain.PhaseFinalizing
		st.Generation.PhaseData.PhaseProgress = 100
		st.Generation.GenerationProgress = 100
		return nil
	})
}

// CancelRun aborts whatever run is active. Unlike FailRun it does not carry a
// sequence number: cancellation always targets the latest run.
func (s *Store) CancelRun(ctx context.Context) error {
	return s.update(ctx, func(st *domain.WorkflowState) error {
		if !st.Generation.IsGenerating {
			return nil
		}
		st.Generation.LastError = "canceled"
		st.Generation.IsGenerating = false
		return nil
	})
}

// SetFactCheckLevel sets how aggressively generated claims are verified.
func (s *Store) SetFactCheckLevel(ctx context.Context, level domain.FactCheckLevel) error {
	if !level.Valid() {
		return &coreerrors.ValidationError{Field: "factCheckLevel", Message: "must be basic, standard or thorough"}
	}
	return s.update(ctx, func(st *domain.WorkflowState) error {
		st.Generation.FactCheckLevel = level
		return nil
	})
}

// checkRun rejects updates whose sequence number no longer matches the
// latest run.
func checkRun(st *domain.WorkflowState, seq uint64) error {
	if seq != st.Generation.RunSequence {
		return &coreerrors.StaleRunError{Got: seq, Latest: st.Generation.RunSequence}
	}
	return nil
}

func slideContentIndex(st *domain.WorkflowState, slideID string) int {
	for i, sc := range st.Generation.SlideContents {
		if sc.ID == slideID {
			return i
		}
	}
	return -1
}

// setSlideContent replaces one entry, copying the list so mutation never
// reaches a previously returned snapshot.
func setSlideContent(st *domain.WorkflowState, idx int, sc domain.SlideContent) {
	contents := append([]domain.SlideContent(nil), st.Generation.SlideContents...)
	contents[idx] = sc
	st.Generation.SlideContents = contents
}

// recomputeOverall derives the overall progress as a weighted blend:
// researching 20%, content 70% split across slides, finalizing 10%. The value
// is monotone non-decreasing within a run.
func recomputeOverall(st *domain.WorkflowState) {
	g := &st.Generation
	var derived int
	switch g.PhaseData.CurrentPhase {
	case domain.PhaseResearching:
		derived = g.PhaseData.PhaseProgress * 20 / 100
	case domain.PhaseContent:
		derived = 20 + slideAverage(g.SlideContents)*70/100
	case domain.PhaseFinalizing:
		derived = 90 + g.PhaseData.PhaseProgress*10/100
	}
	derived = domain.ClampProgress(derived)
	if derived > g.GenerationProgress {
		g.GenerationProgress = derived
	}
}

func slideAverage(contents []domain.SlideContent) int {
	if len(contents) == 0 {
		return 0
	}
	total := 0
	for _, sc := range contents {
		total += domain.ClampProgress(sc.GenerationProgress)
	}
	return total / len(contents)
}
