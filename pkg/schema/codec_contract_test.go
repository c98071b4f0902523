package schema_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

// The on-disk layout is part of the module's contract: persisted schemas must
// keep loading across releases. The golden pins ids, order, validation
// attributes, and timestamp formatting.
func TestEncodeContract(t *testing.T) {
	stamp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	form := schema.FormSchema{
		ID:    "form-1",
		JobID: "job-1",
		Title: "Application",
		Sections: []schema.FormSection{
			{
				ID:    "sec-1",
				Title: "Personal Information",
				Order: 0,
				Fields: []schema.FormField{
					{
						ID:          "fld-name",
						Kind:        schema.KindText,
						Label:       "Full Name",
						Placeholder: "Enter text",
						Required:    true,
						Order:       0,
						SectionID:   "sec-1",
						Validation:  schema.Validation{MaxLength: intPtr(255)},
					},
				},
			},
		},
		Version:   2,
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}

	got, err := schema.EncodeIndent(form)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	goldenPath := filepath.Join("testdata", "application_form.golden.json")
	if testsupport.WriteMaybeGolden(t, goldenPath, got) {
		return
	}

	want := strings.TrimSpace(testsupport.MustReadGoldenString(t, goldenPath))
	if diff := testsupport.CompareGolden(want, strings.TrimSpace(string(got))); diff != "" {
		t.Fatalf("encoding drifted from golden (-want +got):\n%s", diff)
	}

	reparsed, err := schema.Parse(got)
	if err != nil {
		t.Fatalf("golden payload fails to parse: %v", err)
	}
	if diff := testsupport.CompareGolden(form, reparsed); diff != "" {
		t.Fatalf("golden round trip mismatch (-want +got):\n%s", diff)
	}
}
