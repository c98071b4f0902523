package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

func collectSchema() schema.FormSchema {
	return schema.FormSchema{
		ID: "form-1",
		Sections: []schema.FormSection{
			{
				ID:    "sec-1",
				Order: 0,
				Fields: []schema.FormField{
					{ID: "fld-name", Kind: schema.KindText, Order: 0, SectionID: "sec-1"},
					{ID: "fld-email", Kind: schema.KindEmail, Order: 1, SectionID: "sec-1"},
				},
			},
		},
	}
}

func TestCollectSubmissionKeysByFieldID(t *testing.T) {
	raw := map[string]any{
		"fld-name":   "Ada",
		"fld-email":  "ada@example.com",
		"csrf_token": "abc123",
		"Full Name":  "label keys are not field ids",
	}

	got := render.CollectSubmission(collectSchema(), raw)

	want := map[string]any{
		"fld-name":  "Ada",
		"fld-email": "ada@example.com",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("collect mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectSubmissionEmptyRaw(t *testing.T) {
	got := render.CollectSubmission(collectSchema(), nil)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestHiddenFieldHelpers(t *testing.T) {
	merged := render.MergeHiddenFields(
		map[string]string{"existing": "1"},
		render.CSRFToken("csrf_token", "abc"),
		render.VersionField("form_version", 7),
		render.Hidden("  ", "dropped"),
	)

	want := map[string]string{
		"existing":     "1",
		"csrf_token":   "abc",
		"form_version": "7",
	}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}

	sorted := render.SortedHiddenFields(merged)
	wantOrder := []string{"csrf_token", "existing", "form_version"}
	for i, field := range sorted {
		if field.Name != wantOrder[i] {
			t.Fatalf("position %d: want %q got %q", i, wantOrder[i], field.Name)
		}
	}
}

type stubRenderer struct {
	name string
}

func (s *stubRenderer) Name() string        { return s.name }
func (s *stubRenderer) ContentType() string { return "text/plain" }
func (s *stubRenderer) Render(context.Context, schema.FormSchema, render.RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(&stubRenderer{name: "vanilla"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(&stubRenderer{name: "tui"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := registry.Register(&stubRenderer{name: "vanilla"}); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected nil renderer to fail")
	}

	renderer, err := registry.Get("tui")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "tui" {
		t.Fatalf("got wrong renderer %q", renderer.Name())
	}

	if _, err := registry.Get("preact"); err == nil {
		t.Fatal("expected unknown renderer lookup to fail")
	}

	want := []string{"tui", "vanilla"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("vanilla") || registry.Has("preact") {
		t.Fatal("membership mismatch")
	}
}
