package builder_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

var testEpoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestBuilder() *builder.Builder {
	return builder.New(
		builder.WithClock(testsupport.FixedClock(testEpoch)),
		builder.WithIDGenerator(testsupport.SequentialIDs("id")),
	)
}

func newTestSchema(b *builder.Builder) schema.FormSchema {
	return b.NewSchema("job-1", "Backend Engineer Application")
}

func TestNewSchemaCanonicalSections(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)

	if form.Version != 1 {
		t.Fatalf("expected version 1, got %d", form.Version)
	}
	if len(form.Sections) != 3 {
		t.Fatalf("expected 3 canonical sections, got %d", len(form.Sections))
	}
	titles := []string{"Personal Information", "Experience", "Additional"}
	for i, section := range form.Sections {
		if section.Title != titles[i] {
			t.Fatalf("section %d: want title %q got %q", i, titles[i], section.Title)
		}
		if section.Order != i {
			t.Fatalf("section %d: want order %d got %d", i, i, section.Order)
		}
		if len(section.Fields) != 0 {
			t.Fatalf("section %d: expected no fields", i)
		}
	}
	if err := form.Validate(); err != nil {
		t.Fatalf("fresh schema fails validation: %v", err)
	}
}

func TestAddFieldFromTemplate(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)
	personal := form.Sections[0]

	next, field, err := b.AddField(form, schema.KindText, personal.ID)
	if err != nil {
		t.Fatalf("add field: %v", err)
	}

	if field.Label != "Text Field" {
		t.Fatalf("expected template label, got %q", field.Label)
	}
	if field.Order != 0 {
		t.Fatalf("expected order 0, got %d", field.Order)
	}
	if field.Required {
		t.Fatal("expected template default required=false")
	}
	if field.SectionID != personal.ID {
		t.Fatalf("expected section %q, got %q", personal.ID, field.SectionID)
	}
	if next.Version != form.Version+1 {
		t.Fatalf("expected version bump to %d, got %d", form.Version+1, next.Version)
	}
	if !next.UpdatedAt.After(form.UpdatedAt) {
		t.Fatal("expected UpdatedAt to advance")
	}
	if err := next.Validate(); err != nil {
		t.Fatalf("schema invalid after add: %v", err)
	}
}

func TestAddFieldLeavesInputUntouched(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)
	snapshot := form.Clone()

	if _, _, err := b.AddField(form, schema.KindEmail, form.Sections[0].ID); err != nil {
		t.Fatalf("add field: %v", err)
	}

	if diff := cmp.Diff(snapshot, form); diff != "" {
		t.Fatalf("input schema mutated (-want +got):\n%s", diff)
	}
}

func TestAddFieldAtIndexClampsToBounds(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)
	sectionID := form.Sections[0].ID

	form, first, err := b.AddField(form, schema.KindText, sectionID)
	if err != nil {
		t.Fatalf("add first: %v", err)
	}
	form, second, err := b.AddField(form, schema.KindEmail, sectionID, builder.AtIndex(99))
	if err != nil {
		t.Fatalf("add second: %v", err)
	}
	form, third, err := b.AddField(form, schema.KindPhone, sectionID, builder.AtIndex(-5))
	if err != nil {
		t.Fatalf("add third: %v", err)
	}

	section, _ := schema.FindSection(form, sectionID)
	wantOrder := []string{third.ID, first.ID, second.ID}
	for i, field := range section.OrderedFields() {
		if field.ID != wantOrder[i] {
			t.Fatalf("position %d: want %q got %q", i, wantOrder[i], field.ID)
		}
		if field.Order != i {
			t.Fatalf("field %q: want dense order %d got %d", field.ID, i, field.Order)
		}
	}
}

func TestAddFieldUnknownSection(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)

	_, _, err := b.AddField(form, schema.KindText, "missing")
	if !errors.Is(err, builder.ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}
}

func TestAddFieldUnknownKind(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)

	_, _, err := b.AddField(form, "captcha", form.Sections[0].ID)
	if !errors.Is(err, schema.ErrUnknownFieldKind) {
		t.Fatalf("expected ErrUnknownFieldKind, got %v", err)
	}
}

func TestUpdateFieldPatchesAttributes(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)
	form, field, err := b.AddField(form, schema.KindText, form.Sections[0].ID)
	if err != nil {
		t.Fatalf("add field: %v", err)
	}

	next, err := b.UpdateField(form, field.ID, builder.FieldPatch{
		Label:    builder.StringPtr("Full Name"),
		Required: builder.BoolPtr(true),
	})
	if err != nil {
		t.Fatalf("update field: %v", err)
	}

	_, got, ok := schema.FindField(next, field.ID)
	if !ok {
		t.Fatal("field vanished after update")
	}
	if got.Label != "Full Name" || !got.Required {
		t.Fatalf("patch not applied: %+v", got)
	}
	if got.Kind != schema.KindText {
		t.Fatalf("kind changed: %q", got.Kind)
	}
	if got.Placeholder != field.Placeholder {
		t.Fatalf("unpatched attribute changed: %q", got.Placeholder)
	}
	if next.Version != form.Version+1 {
		t.Fatalf("expected version bump, got %d", next.Version)
	}
}

func TestUpdateFieldKeepsMismatchedValidation(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)
	form, field, err := b.AddField(form, schema.KindNumber, form.Sections[0].ID)
	if err != nil {
		t.Fatalf("add field: %v", err)
	}

	// Length bounds are meaningless for a number field; the builder stores
	// them anyway and the validation engine ignores them.
	next, err := b.UpdateField(form, field.ID, builder.FieldPatch{
		Validation: &schema.Validation{
			MinLength: builder.IntPtr(3),
			Min:       builder.FloatPtr(1),
		},
	})
	if err != nil {
		t.Fatalf("update field: %v", err)
	}

	_, got, _ := schema.FindField(next, field.ID)
	if got.Validation.MinLength == nil || *got.Validation.MinLength != 3 {
		t.Fatal("expected mismatched attribute to be preserved")
	}
	if got.Validation.Min == nil || *got.Validation.Min != 1 {
		t.Fatal("expected matching attribute to be stored")
	}
}

func TestUpdateFieldNotFound(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)
	snapshot := form.Clone()

	_, err := b.UpdateField(form, "missing", builder.FieldPatch{Label: builder.StringPtr("x")})
	if !errors.Is(err, builder.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}
	if diff := cmp.Diff(snapshot, form); diff != "" {
		t.Fatalf("failed mutation touched input (-want +got):\n%s", diff)
	}
}

func TestRemoveFieldRenumbersSurvivors(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)
	sectionID := form.Sections[0].ID

	form, first, _ := b.AddField(form, schema.KindText, sectionID)
	form, second, _ := b.AddField(form, schema.KindEmail, sectionID)
	form, third, _ := b.AddField(form, schema.KindPhone, sectionID)

	next, err := b.RemoveField(form, second.ID)
	if err != nil {
		t.Fatalf("remove field: %v", err)
	}

	section, _ := schema.FindSection(next, sectionID)
	fields := section.OrderedFields()
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].ID != first.ID || fields[0].Order != 0 {
		t.Fatalf("unexpected first survivor: %+v", fields[0])
	}
	if fields[1].ID != third.ID || fields[1].Order != 1 {
		t.Fatalf("unexpected second survivor: %+v", fields[1])
	}
	if err := next.Validate(); err != nil {
		t.Fatalf("schema invalid after remove: %v", err)
	}
}

func TestRemoveFieldTwiceFailsSecondTime(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)
	form, field, _ := b.AddField(form, schema.KindText, form.Sections[0].ID)

	once, err := b.RemoveField(form, field.ID)
	if err != nil {
		t.Fatalf("first remove: %v", err)
	}

	twice, err := b.RemoveField(once, field.ID)
	if !errors.Is(err, builder.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("failed remove changed schema (-want +got):\n%s", diff)
	}
}

func TestRemoveLastFieldLeavesEmptySection(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)
	form, field, _ := b.AddField(form, schema.KindText, form.Sections[0].ID)

	next, err := b.RemoveField(form, field.ID)
	if err != nil {
		t.Fatalf("remove field: %v", err)
	}
	section, _ := schema.FindSection(next, form.Sections[0].ID)
	if len(section.Fields) != 0 {
		t.Fatalf("expected empty section, got %d fields", len(section.Fields))
	}
	if err := next.Validate(); err != nil {
		t.Fatalf("schema invalid with empty section: %v", err)
	}
}

func TestMoveFieldWithinSection(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)
	sectionID := form.Sections[0].ID

	form, fieldA, _ := b.AddField(form, schema.KindText, sectionID)
	form, fieldB, _ := b.AddField(form, schema.KindEmail, sectionID)

	next, err := b.MoveField(form, fieldB.ID, sectionID, 0)
	if err != nil {
		t.Fatalf("move field: %v", err)
	}

	section, _ := schema.FindSection(next, sectionID)
	fields := section.OrderedFields()
	if fields[0].ID != fieldB.ID || fields[1].ID != fieldA.ID {
		t.Fatalf("unexpected order: %q, %q", fields[0].ID, fields[1].ID)
	}
	if fields[0].Order != 0 || fields[1].Order != 1 {
		t.Fatalf("orders not dense: %d, %d", fields[0].Order, fields[1].Order)
	}
	if next.Version != form.Version+1 {
		t.Fatalf("expected version bump, got %d", next.Version)
	}
}

func TestMoveFieldAcrossSections(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)
	personal := form.Sections[0].ID
	experience := form.Sections[1].ID

	form, stay, _ := b.AddField(form, schema.KindText, personal)
	form, mover, _ := b.AddField(form, schema.KindEmail, personal)
	form, existing, _ := b.AddField(form, schema.KindNumber, experience)

	next, err := b.MoveField(form, mover.ID, experience, 0)
	if err != nil {
		t.Fatalf("move field: %v", err)
	}

	src, _ := schema.FindSection(next, personal)
	if len(src.Fields) != 1 || src.Fields[0].ID != stay.ID || src.Fields[0].Order != 0 {
		t.Fatalf("source section not renumbered: %+v", src.Fields)
	}

	dest, _ := schema.FindSection(next, experience)
	fields := dest.OrderedFields()
	if len(fields) != 2 || fields[0].ID != mover.ID || fields[1].ID != existing.ID {
		t.Fatalf("unexpected destination layout: %+v", fields)
	}
	if fields[0].SectionID != experience {
		t.Fatalf("moved field keeps stale section id %q", fields[0].SectionID)
	}
	if err := next.Validate(); err != nil {
		t.Fatalf("schema invalid after cross-section move: %v", err)
	}
}

func TestMoveFieldOntoCurrentPositionIsNoop(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)
	sectionID := form.Sections[0].ID
	form, field, _ := b.AddField(form, schema.KindText, sectionID)

	next, err := b.MoveField(form, field.ID, sectionID, 0)
	if err != nil {
		t.Fatalf("move field: %v", err)
	}
	if diff := cmp.Diff(form, next); diff != "" {
		t.Fatalf("no-op move changed schema (-want +got):\n%s", diff)
	}
}

func TestMoveFieldClampsDestinationIndex(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)
	personal := form.Sections[0].ID
	experience := form.Sections[1].ID

	form, mover, _ := b.AddField(form, schema.KindText, personal)
	form, existing, _ := b.AddField(form, schema.KindNumber, experience)

	next, err := b.MoveField(form, mover.ID, experience, 99)
	if err != nil {
		t.Fatalf("move field: %v", err)
	}

	dest, _ := schema.FindSection(next, experience)
	fields := dest.OrderedFields()
	if fields[0].ID != existing.ID || fields[1].ID != mover.ID {
		t.Fatalf("expected clamp to append, got %+v", fields)
	}
}

func TestMoveFieldValidatesBothEndpointsFirst(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)
	form, field, _ := b.AddField(form, schema.KindText, form.Sections[0].ID)
	snapshot := form.Clone()

	_, err := b.MoveField(form, field.ID, "missing", 0)
	if !errors.Is(err, builder.ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}
	if diff := cmp.Diff(snapshot, form); diff != "" {
		t.Fatalf("failed move touched input (-want +got):\n%s", diff)
	}

	_, err = b.MoveField(form, "missing", form.Sections[0].ID, 0)
	if !errors.Is(err, builder.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}
}

func TestReorderSections(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)
	ids := []string{form.Sections[2].ID, form.Sections[0].ID, form.Sections[1].ID}

	next, err := b.ReorderSections(form, ids)
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}

	for i, section := range next.OrderedSections() {
		if section.ID != ids[i] {
			t.Fatalf("position %d: want %q got %q", i, ids[i], section.ID)
		}
		if section.Order != i {
			t.Fatalf("section %q order %d, want %d", section.ID, section.Order, i)
		}
	}
}

func TestReorderSectionsRejectsBadPermutations(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)

	cases := map[string][]string{
		"too short": {form.Sections[0].ID},
		"duplicate": {form.Sections[0].ID, form.Sections[0].ID, form.Sections[1].ID},
		"unknown":   {form.Sections[0].ID, form.Sections[1].ID, "missing"},
	}
	for name, ids := range cases {
		if _, err := b.ReorderSections(form, ids); !errors.Is(err, builder.ErrInvalidPermutation) {
			t.Fatalf("%s: expected ErrInvalidPermutation, got %v", name, err)
		}
	}
}

func TestSectionLifecycle(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)

	form, section, err := b.AddSection(form, "References")
	if err != nil {
		t.Fatalf("add section: %v", err)
	}
	if section.Order != 3 {
		t.Fatalf("expected appended order 3, got %d", section.Order)
	}

	form, err = b.UpdateSection(form, section.ID, builder.SectionPatch{
		Title:       builder.StringPtr("Professional References"),
		Description: builder.StringPtr("People we may contact."),
	})
	if err != nil {
		t.Fatalf("update section: %v", err)
	}
	got, _ := schema.FindSection(form, section.ID)
	if got.Title != "Professional References" || got.Description != "People we may contact." {
		t.Fatalf("patch not applied: %+v", got)
	}

	form, field, err := b.AddField(form, schema.KindText, section.ID)
	if err != nil {
		t.Fatalf("add field: %v", err)
	}
	if _, err := b.RemoveSection(form, section.ID); err == nil {
		t.Fatal("expected non-empty section removal to fail")
	}

	form, err = b.RemoveField(form, field.ID)
	if err != nil {
		t.Fatalf("remove field: %v", err)
	}
	form, err = b.RemoveSection(form, section.ID)
	if err != nil {
		t.Fatalf("remove section: %v", err)
	}
	if len(form.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(form.Sections))
	}
	if err := form.Validate(); err != nil {
		t.Fatalf("schema invalid after section removal: %v", err)
	}
}

func TestMutationSequenceKeepsInvariants(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)
	personal := form.Sections[0].ID
	experience := form.Sections[1].ID

	var fields []schema.FormField
	for _, kind := range []schema.FieldKind{schema.KindText, schema.KindEmail, schema.KindPhone, schema.KindSelect} {
		var field schema.FormField
		var err error
		form, field, err = b.AddField(form, kind, personal)
		if err != nil {
			t.Fatalf("add %q: %v", kind, err)
		}
		fields = append(fields, field)
	}

	var err error
	form, err = b.MoveField(form, fields[3].ID, experience, 0)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	form, err = b.RemoveField(form, fields[1].ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	form, err = b.MoveField(form, fields[0].ID, personal, 1)
	if err != nil {
		t.Fatalf("reorder move: %v", err)
	}
	form, err = b.ReorderSections(form, []string{
		form.Sections[1].ID, form.Sections[2].ID, form.Sections[0].ID,
	})
	if err != nil {
		t.Fatalf("reorder sections: %v", err)
	}

	if err := form.Validate(); err != nil {
		t.Fatalf("invariants broken after mutation sequence: %v", err)
	}
	// 1 create + 4 adds + 2 moves + 1 remove + 1 reorder; the no-op-free
	// sequence bumps the version once per accepted mutation.
	if form.Version != 9 {
		t.Fatalf("expected version 9, got %d", form.Version)
	}
}
