// Package formbuilder assembles the form schema toolkit behind a small
// facade: type aliases for the schema model, a Session combining the
// mutation engine with undo history, and shortcut constructors for the
// common entry points. Library consumers that need finer control import
// the pkg packages directly.
package formbuilder

import (
	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// FormSchema is the versioned form definition.
type FormSchema = schema.FormSchema

// FormSection groups fields for presentation.
type FormSection = schema.FormSection

// FormField is a single form control definition.
type FormField = schema.FormField

// FieldKind enumerates the supported field types.
type FieldKind = schema.FieldKind

// FieldPatch carries optional updates for a field's editable attributes.
type FieldPatch = builder.FieldPatch

// SectionPatch carries optional updates for a section's presentation
// attributes.
type SectionPatch = builder.SectionPatch

// Outcome is a single-field validation result.
type Outcome = validation.Outcome

// Report is a whole-submission validation result keyed by field id.
type Report = validation.Report

// NewSchema creates an empty versioned form using a default builder.
func NewSchema(jobID, title string, options ...builder.SchemaOption) FormSchema {
	return builder.New().NewSchema(jobID, title, options...)
}

// Parse decodes and validates a JSON schema payload.
func Parse(data []byte) (FormSchema, error) {
	return schema.Parse(data)
}

// ValidateSubmission evaluates every field of the form against the submitted
// values.
func ValidateSubmission(form FormSchema, values map[string]any) Report {
	return validation.ValidateSubmission(form, values)
}
