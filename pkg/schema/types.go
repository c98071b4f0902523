package schema

import "time"

// FieldKind enumerates the closed catalog of field kinds. The catalog is
// fixed at build time; schemas referencing any other kind fail to parse.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindEmail    FieldKind = "email"
	KindPhone    FieldKind = "phone"
	KindSelect   FieldKind = "select"
	KindRadio    FieldKind = "radio"
	KindCheckbox FieldKind = "checkbox"
	KindFile     FieldKind = "file"
	KindDate     FieldKind = "date"
	KindNumber   FieldKind = "number"
	KindSalary   FieldKind = "salary"
	KindLocation FieldKind = "location"
)

// Kinds returns the catalog in its canonical palette order.
func Kinds() []FieldKind {
	return []FieldKind{
		KindText,
		KindTextarea,
		KindEmail,
		KindPhone,
		KindSelect,
		KindRadio,
		KindCheckbox,
		KindFile,
		KindDate,
		KindNumber,
		KindSalary,
		KindLocation,
	}
}

// Known reports whether the kind belongs to the catalog.
func (k FieldKind) Known() bool {
	switch k {
	case KindText, KindTextarea, KindEmail, KindPhone, KindSelect, KindRadio,
		KindCheckbox, KindFile, KindDate, KindNumber, KindSalary, KindLocation:
		return true
	default:
		return false
	}
}

// HasOptions reports whether fields of this kind carry an Options list.
func (k FieldKind) HasOptions() bool {
	switch k {
	case KindSelect, KindRadio, KindCheckbox:
		return true
	default:
		return false
	}
}

// Option is a single selectable choice for select/radio/checkbox fields.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Validation carries the kind-specific validation attributes of a field.
// Attributes that do not apply to the field's declared kind are preserved on
// the wire but ignored by the validation engine.
type Validation struct {
	MinLength   *int     `json:"minLength,omitempty"`
	MaxLength   *int     `json:"maxLength,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	FileTypes   []string `json:"fileTypes,omitempty"`
	MaxFileSize int64    `json:"maxFileSize,omitempty"`
}

// FormField models an individual input inside a form section.
type FormField struct {
	ID          string     `json:"id"`
	Kind        FieldKind  `json:"kind"`
	Label       string     `json:"label"`
	Placeholder string     `json:"placeholder,omitempty"`
	Description string     `json:"description,omitempty"`
	Required    bool       `json:"required"`
	Order       int        `json:"order"`
	SectionID   string     `json:"sectionId"`
	Options     []Option   `json:"options,omitempty"`
	Validation  Validation `json:"validation"`
}

// FormSection groups fields under a heading. A section may legally hold zero
// fields.
type FormSection struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Order       int         `json:"order"`
	Fields      []FormField `json:"fields"`
}

// Settings is an opaque bag of form-level flags (draft saving, multi-step
// presentation, compliance toggles). The core passes it through unchanged.
type Settings map[string]any

// FormSchema is the top-level aggregate renderers and the builder consume.
type FormSchema struct {
	ID          string        `json:"id"`
	JobID       string        `json:"jobId"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Sections    []FormSection `json:"sections"`
	Settings    Settings      `json:"settings,omitempty"`
	Version     int           `json:"version"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	CreatedBy   string        `json:"createdBy,omitempty"`
}

// Clone returns a deep copy of the schema. Mutation functions operate on
// clones so the caller's value is never touched.
func (s FormSchema) Clone() FormSchema {
	out := s
	out.Sections = make([]FormSection, len(s.Sections))
	for i, section := range s.Sections {
		out.Sections[i] = section.Clone()
	}
	if s.Settings != nil {
		out.Settings = make(Settings, len(s.Settings))
		for key, value := range s.Settings {
			out.Settings[key] = cloneValue(value)
		}
	}
	return out
}

// Clone returns a deep copy of the section and its fields.
func (sec FormSection) Clone() FormSection {
	out := sec
	out.Fields = make([]FormField, len(sec.Fields))
	for i, field := range sec.Fields {
		out.Fields[i] = field.Clone()
	}
	return out
}

// Clone returns a deep copy of the field, including options and validation
// attributes.
func (f FormField) Clone() FormField {
	out := f
	if f.Options != nil {
		out.Options = append([]Option(nil), f.Options...)
	}
	out.Validation = f.Validation.Clone()
	return out
}

// Clone returns a deep copy of the validation record.
func (v Validation) Clone() Validation {
	out := v
	out.MinLength = cloneIntPtr(v.MinLength)
	out.MaxLength = cloneIntPtr(v.MaxLength)
	out.Min = cloneFloatPtr(v.Min)
	out.Max = cloneFloatPtr(v.Max)
	if v.FileTypes != nil {
		out.FileTypes = append([]string(nil), v.FileTypes...)
	}
	return out
}

func cloneIntPtr(in *int) *int {
	if in == nil {
		return nil
	}
	out := *in
	return &out
}

func cloneFloatPtr(in *float64) *float64 {
	if in == nil {
		return nil
	}
	out := *in
	return &out
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		clone := make(map[string]any, len(typed))
		for k, v := range typed {
			clone[k] = cloneValue(v)
		}
		return clone
	case []any:
		clone := make([]any, len(typed))
		for i, v := range typed {
			clone[i] = cloneValue(v)
		}
		return clone
	default:
		return typed
	}
}
