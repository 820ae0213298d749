// ABOUTME: Declarative persistence whitelist and the projection saved to storage
// ABOUTME: Whitelist is validated against the real state shape at store construction

package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"magicmuse-api/core/domain"
	"magicmuse-api/core/interfaces"
)

// FieldRef names one persisted field by its Go slice and field name.
type FieldRef struct {
	Slice string
	Field string
}

// persistenceWhitelist is the full set of fields that survive a reload.
// Everything not listed here reloads as its slice default: generation flags,
// progress, slide contents, QA results and delivery state are deliberately
// transient.
var persistenceWhitelist = []FieldRef{
	{"Setup", "ProjectID"},
	{"Setup", "ProjectName"},
	{"Setup", "Description"},
	{"Setup", "Privacy"},
	{"Setup", "Tags"},
	{"Setup", "TeamMembers"},
	{"Audience", "AudienceName"},
	{"Audience", "Industry"},
	{"Design", "SelectedTemplateID"},
	{"Design", "BrandLogo"},
	{"Design", "PrimaryColor"},
	{"Design", "SecondaryColor"},
	{"Design", "AccentColor"},
	{"Design", "HeadingFont"},
	{"Design", "BodyFont"},
	{"Design", "SlideStructure"},
	{"Design", "ComplexityLevel"},
	{"Blog", "PrimaryGoal"},
	{"Blog", "ContentGoals"},
	{"Blog", "TargetKeywords"},
	{"Blog", "SelectedStructureID"},
	{"Blog", "ContentElements"},
	{"Blog", "HeadingStructure"},
}

// StorageKey returns the durable storage key for a project's projection.
func StorageKey(projectID string) string {
	return "workflow:" + projectID
}

// validateWhitelist checks every whitelist entry against the actual shape of
// domain.WorkflowState. Renaming a field without updating the whitelist fails
// store construction instead of silently dropping the field.
func validateWhitelist() error {
	stateType := reflect.TypeOf(domain.WorkflowState{})
	for _, ref := range persistenceWhitelist {
		sliceField, ok := stateType.FieldByName(ref.Slice)
		if !ok {
			return fmt.Errorf("persistence whitelist names unknown slice %q", ref.Slice)
		}
		if _, ok := sliceField.Type.FieldByName(ref.Field); !ok {
			return fmt.Errorf("persistence whitelist names unknown field %s.%s", ref.Slice, ref.Field)
		}
	}
	return nil
}

// jsonName extracts the JSON key for a struct field, falling back to the Go
// field name when no tag is present.
func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name
	}
	name := strings.Split(tag, ",")[0]
	if name == "" {
		return f.Name
	}
	return name
}

// Projection extracts the whitelisted fields of st as a nested map keyed by
// JSON names, ready for marshaling.
func Projection(st domain.WorkflowState) map[string]map[string]interface{} {
	stateVal := reflect.ValueOf(st)
	stateType := stateVal.Type()
	doc := make(map[string]map[string]interface{})
	for _, ref := range persistenceWhitelist {
		sliceField, _ := stateType.FieldByName(ref.Slice)
		sliceVal := stateVal.FieldByName(ref.Slice)
		fieldMeta, _ := sliceVal.Type().FieldByName(ref.Field)

		sliceKey := jsonName(sliceField)
		if doc[sliceKey] == nil {
			doc[sliceKey] = make(map[string]interface{})
		}
		doc[sliceKey][jsonName(fieldMeta)] = sliceVal.FieldByName(ref.Field).Interface()
	}
	return doc
}

// ApplyProjection merges a previously persisted projection into st, touching
// only whitelisted fields. Unknown keys in the document are ignored so old
// payloads stay loadable.
func ApplyProjection(st *domain.WorkflowState, data []byte) error {
	var doc map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("corrupt workflow projection: %w", err)
	}

	stateVal := reflect.ValueOf(st).Elem()
	stateType := stateVal.Type()
	for _, ref := range persistenceWhitelist {
		sliceField, _ := stateType.FieldByName(ref.Slice)
		sliceDoc, ok := doc[jsonName(sliceField)]
		if !ok {
			continue
		}
		sliceVal := stateVal.FieldByName(ref.Slice)
		fieldMeta, _ := sliceVal.Type().FieldByName(ref.Field)
		raw, ok := sliceDoc[jsonName(fieldMeta)]
		if !ok {
			continue
		}
		target := sliceVal.FieldByName(ref.Field)
		if err := json.Unmarshal(raw, target.Addr().Interface()); err != nil {
			return fmt.Errorf("corrupt field %s.%s in projection: %w", ref.Slice, ref.Field, err)
		}
	}
	return nil
}

// persist writes the whitelisted projection to durable storage. A store with
// no project ID yet has nothing addressable to persist.
func (s *Store) persist(ctx context.Context, st domain.WorkflowState) error {
	if s.deps.Storage == nil || st.Setup.ProjectID == "" {
		return nil
	}
	payload, err := json.Marshal(Projection(st))
	if err != nil {
		return err
	}
	return s.deps.Storage.Set(ctx, StorageKey(st.Setup.ProjectID), payload)
}

// LoadProjection reads a persisted projection and returns a state with the
// whitelisted fields restored and everything else at slice defaults.
func LoadProjection(ctx context.Context, storage interfaces.KVStorage, projectID string) (domain.WorkflowState, error) {
	st := domain.DefaultWorkflowState()
	data, err := storage.Get(ctx, StorageKey(projectID))
	if err != nil {
		return st, err
	}
	if err := ApplyProjection(&st, data); err != nil {
		return st, err
	}
	return st, nil
}
