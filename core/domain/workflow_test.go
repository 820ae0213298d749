// ABOUTME: Tests for the workflow domain literal sets and design validation
// ABOUTME: Covers privacy levels, org sizes and slide ID uniqueness

package domain

import "testing"

func TestPrivacy_Valid(t *testing.T) {
	for _, p := range []Privacy{PrivacyPrivate, PrivacyTeam, PrivacyPublic} {
		if !p.Valid() {
			t.Errorf("%s should be valid", p)
		}
	}
	if Privacy("hidden").Valid() {
		t.Error("unknown privacy should be invalid")
	}
}

func TestOrgSize_Valid(t *testing.T) {
	for _, s := range []OrgSize{OrgSizeUnset, OrgSizeSmall, OrgSizeMedium, OrgSizeEnterprise} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if OrgSize("huge").Valid() {
		t.Error("unknown size should be invalid")
	}
}

func TestDesignState_Validate(t *testing.T) {
	design := DefaultDesignState()
	design.SlideStructure = []Slide{
		{ID: "a", Title: "Cover"},
		{ID: "b", Title: "Problem"},
	}
	if err := design.Validate(); err != nil {
		t.Errorf("valid design rejected: %v", err)
	}

	design.SlideStructure = append(design.SlideStructure, Slide{ID: "a", Title: "Dup"})
	if err := design.Validate(); err == nil {
		t.Error("duplicate slide ID should be rejected")
	}

	design.SlideStructure = []Slide{{ID: "", Title: "Anon"}}
	if err := design.Validate(); err == nil {
		t.Error("empty slide ID should be rejected")
	}

	design = DefaultDesignState()
	design.ComplexityLevel = "extreme"
	if err := design.Validate(); err == nil {
		t.Error("invalid complexity level should be rejected")
	}
}

func TestDefaultWorkflowState(t *testing.T) {
	st := DefaultWorkflowState()
	if st.Setup.Privacy != PrivacyPrivate {
		t.Errorf("default privacy = %s, want %s", st.Setup.Privacy, PrivacyPrivate)
	}
	if st.Design.ComplexityLevel != ComplexityIntermediate {
		t.Errorf("default complexity = %s, want %s", st.Design.ComplexityLevel, ComplexityIntermediate)
	}
	if st.Setup.ProjectID != "" {
		t.Error("default state should have no project ID")
	}
}
