package validation

import "github.com/goliatone/go-formbuilder/pkg/schema"

// Report is the outcome of validating a whole submission. Fields holds one
// outcome per schema field, including fields the candidate left out, so every
// required-field error surfaces in a single pass.
type Report struct {
	Fields      map[string]Outcome `json:"fields"`
	Submittable bool               `json:"submittable"`
}

// Outcome returns the outcome recorded for a field id.
func (r Report) Outcome(fieldID string) Outcome {
	return r.Fields[fieldID]
}

// Invalid lists the ids of fields that failed, in schema display order when
// the caller iterates the schema; map order here is unspecified.
func (r Report) Invalid() []string {
	var out []string
	for id, outcome := range r.Fields {
		if !outcome.Valid() {
			out = append(out, id)
		}
	}
	return out
}

// ValidateSubmission evaluates every field declared by the schema against the
// submitted values, keyed by field id. Submittable is true iff every outcome
// is valid.
func ValidateSubmission(form schema.FormSchema, values map[string]any) Report {
	report := Report{
		Fields:      make(map[string]Outcome, form.FieldCount()),
		Submittable: true,
	}

	for _, section := range form.OrderedSections() {
		for _, field := range section.OrderedFields() {
			outcome := ValidateField(field, values[field.ID])
			report.Fields[field.ID] = outcome
			if !outcome.Valid() {
				report.Submittable = false
			}
		}
	}

	return report
}
