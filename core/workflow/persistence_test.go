// ABOUTME: Tests for the persistence whitelist projection and its restore path
// ABOUTME: Fields outside the whitelist must reload at slice defaults

package workflow

import (
	"context"
	"encoding/json"
	"testing"

	"magicmuse-api/core/domain"
)

func TestValidateWhitelist(t *testing.T) {
	if err := validateWhitelist(); err != nil {
		t.Fatalf("whitelist does not match the state shape: %v", err)
	}
}

func TestProjection_OnlyWhitelistedFields(t *testing.T) {
	st := domain.DefaultWorkflowState()
	st.Setup.ProjectID = "p1"
	st.Setup.ProjectName = "Acme"
	st.Audience.AudienceName = "VCs"
	st.Audience.PersonaRole = "Partner"
	st.Generation.IsGenerating = true
	st.Generation.GenerationProgress = 55

	doc := Projection(st)

	if doc["setup"]["projectName"] != "Acme" {
		t.Errorf("projectName = %v, want Acme", doc["setup"]["projectName"])
	}
	if doc["audience"]["audienceName"] != "VCs" {
		t.Errorf("audienceName = %v, want VCs", doc["audience"]["audienceName"])
	}
	if _, ok := doc["audience"]["personaRole"]; ok {
		t.Error("personaRole is not whitelisted and should not be projected")
	}
	if _, ok := doc["generation"]; ok {
		t.Error("generation slice is transient and should not be projected")
	}
	if _, ok := doc["qa"]; ok {
		t.Error("qa slice is transient and should not be projected")
	}
	if _, ok := doc["delivery"]; ok {
		t.Error("delivery slice is transient and should not be projected")
	}
}

func TestApplyProjection_RoundTrip(t *testing.T) {
	original := domain.DefaultWorkflowState()
	original.Setup.ProjectID = "p1"
	original.Setup.ProjectName = "Acme"
	original.Setup.Tags = []string{"saas", "fintech"}
	original.Design.PrimaryColor = "#112233"
	original.Design.SlideStructure = []domain.Slide{
		{ID: "s1", Title: "Cover", Type: "cover"},
	}
	original.Blog.TargetKeywords = []string{"growth"}

	payload, err := json.Marshal(Projection(original))
	if err != nil {
		t.Fatalf("marshal projection: %v", err)
	}

	restored := domain.DefaultWorkflowState()
	if err := ApplyProjection(&restored, payload); err != nil {
		t.Fatalf("ApplyProjection() error = %v", err)
	}

	if restored.Setup.ProjectID != "p1" || restored.Setup.ProjectName != "Acme" {
		t.Errorf("setup not restored: %+v", restored.Setup)
	}
	if len(restored.Setup.Tags) != 2 || restored.Setup.Tags[0] != "saas" {
		t.Errorf("tags not restored: %v", restored.Setup.Tags)
	}
	if restored.Design.PrimaryColor != "#112233" {
		t.Errorf("primary color not restored: %q", restored.Design.PrimaryColor)
	}
	if len(restored.Design.SlideStructure) != 1 || restored.Design.SlideStructure[0].ID != "s1" {
		t.Errorf("slide structure not restored: %v", restored.Design.SlideStructure)
	}
	if len(restored.Blog.TargetKeywords) != 1 {
		t.Errorf("blog keywords not restored: %v", restored.Blog.TargetKeywords)
	}
}

func TestApplyProjection_TransientStaysDefault(t *testing.T) {
	original := domain.DefaultWorkflowState()
	original.Setup.ProjectID = "p1"
	original.Generation.IsGenerating = true
	original.Generation.GenerationProgress = 80
	original.QA.ContentValidation = domain.ValidationPassed

	payload, err := json.Marshal(Projection(original))
	if err != nil {
		t.Fatalf("marshal projection: %v", err)
	}

	restored := domain.DefaultWorkflowState()
	if err := ApplyProjection(&restored, payload); err != nil {
		t.Fatalf("ApplyProjection() error = %v", err)
	}
	if restored.Generation.IsGenerating {
		t.Error("isGenerating must reload as false")
	}
	if restored.Generation.GenerationProgress != 0 {
		t.Error("generation progress must reload at zero")
	}
	if restored.QA.ContentValidation != domain.ValidationNotRun {
		t.Error("qa status must reload at its default")
	}
}

func TestApplyProjection_IgnoresUnknownKeys(t *testing.T) {
	restored := domain.DefaultWorkflowState()
	payload := []byte(`{"setup":{"projectName":"Old","legacyField":123},"retired":{"x":1}}`)
	if err := ApplyProjection(&restored, payload); err != nil {
		t.Fatalf("ApplyProjection() error = %v", err)
	}
	if restored.Setup.ProjectName != "Old" {
		t.Errorf("projectName = %q, want Old", restored.Setup.ProjectName)
	}
}

func TestApplyProjection_CorruptPayload(t *testing.T) {
	restored := domain.DefaultWorkflowState()
	if err := ApplyProjection(&restored, []byte("{not json")); err == nil {
		t.Error("corrupt payload should error")
	}
	if err := ApplyProjection(&restored, []byte(`{"setup":{"tags":"not-a-list"}}`)); err == nil {
		t.Error("type-mismatched field should error")
	}
}

func TestStore_PersistsOnMutation(t *testing.T) {
	storage := newMockStorage()
	store, err := NewStore(testDeps(storage))
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	ctx := context.Background()

	if err := store.AssignProjectID(ctx, "p1"); err != nil {
		t.Fatalf("AssignProjectID() error = %v", err)
	}
	if err := store.SetProjectName(ctx, "Durable"); err != nil {
		t.Fatalf("SetProjectName() error = %v", err)
	}

	data, err := storage.Get(ctx, StorageKey("p1"))
	if err != nil {
		t.Fatalf("nothing persisted under %s: %v", StorageKey("p1"), err)
	}
	var doc map[string]map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("persisted payload is not JSON: %v", err)
	}
	if doc["setup"]["projectName"] != "Durable" {
		t.Errorf("persisted projectName = %v, want Durable", doc["setup"]["projectName"])
	}
}

func TestStore_NoPersistWithoutProjectID(t *testing.T) {
	storage := newMockStorage()
	store, err := NewStore(testDeps(storage))
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	if err := store.SetProjectName(context.Background(), "Anonymous"); err != nil {
		t.Fatalf("SetProjectName() error = %v", err)
	}
	if len(storage.data) != 0 {
		t.Error("a store without a project ID has nothing addressable to persist")
	}
}

func TestLoadProjection(t *testing.T) {
	storage := newMockStorage()
	ctx := context.Background()

	st := domain.DefaultWorkflowState()
	st.Setup.ProjectID = "p9"
	st.Setup.ProjectName = "Reloaded"
	payload, _ := json.Marshal(Projection(st))
	if err := storage.Set(ctx, StorageKey("p9"), payload); err != nil {
		t.Fatalf("seed storage: %v", err)
	}

	loaded, err := LoadProjection(ctx, storage, "p9")
	if err != nil {
		t.Fatalf("LoadProjection() error = %v", err)
	}
	if loaded.Setup.ProjectName != "Reloaded" {
		t.Errorf("projectName = %q, want Reloaded", loaded.Setup.ProjectName)
	}

	if _, err := LoadProjection(ctx, storage, "missing"); err == nil {
		t.Error("missing key should error")
	}
}
