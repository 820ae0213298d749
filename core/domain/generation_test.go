// ABOUTME: Tests for generation phase ordering and progress clamping
// ABOUTME: Covers the phase rank and the total clamp used by all progress setters

package domain

import "testing"

func TestClampProgress(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{"negative clamps to zero", -5, 0},
		{"zero unchanged", 0, 0},
		{"midrange unchanged", 42, 42},
		{"hundred unchanged", 100, 100},
		{"over hundred clamps", 150, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampProgress(tt.input); got != tt.want {
				t.Errorf("ClampProgress(%d) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerationPhase_Ordering(t *testing.T) {
	if !PhaseResearching.Before(PhaseContent) {
		t.Error("researching should come before content")
	}
	if !PhaseContent.Before(PhaseFinalizing) {
		t.Error("content should come before finalizing")
	}
	if PhaseFinalizing.Before(PhaseResearching) {
		t.Error("finalizing should not come before researching")
	}
}

func TestGenerationPhase_Valid(t *testing.T) {
	for _, p := range []GenerationPhase{PhaseResearching, PhaseContent, PhaseFinalizing} {
		if !p.Valid() {
			t.Errorf("%s should be valid", p)
		}
	}
	if GenerationPhase("rendering").Valid() {
		t.Error("unknown phase should be invalid")
	}
}

func TestFactCheckLevel_Valid(t *testing.T) {
	for _, f := range []FactCheckLevel{FactCheckBasic, FactCheckStandard, FactCheckThorough} {
		if !f.Valid() {
			t.Errorf("%s should be valid", f)
		}
	}
	if FactCheckLevel("strict").Valid() {
		t.Error("unknown level should be invalid")
	}
}

func TestDefaultGenerationState(t *testing.T) {
	st := DefaultGenerationState()
	if st.IsGenerating {
		t.Error("default state should not be generating")
	}
	if st.FactCheckLevel != FactCheckStandard {
		t.Errorf("default fact check level = %s, want %s", st.FactCheckLevel, FactCheckStandard)
	}
	if st.PhaseData.CurrentPhase != PhaseResearching {
		t.Errorf("default phase = %s, want %s", st.PhaseData.CurrentPhase, PhaseResearching)
	}
	if st.SlideContents == nil {
		t.Error("slide contents should be an empty slice, not nil")
	}
}
