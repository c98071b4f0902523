package builder

import "github.com/goliatone/go-formbuilder/pkg/schema"

// FieldPatch carries optional updates for a field's editable attributes. Nil
// members leave the current value untouched. Kind and id are deliberately not
// representable here: the field keeps both for its whole life.
//
// Validation replaces the whole record when set. The builder accepts
// validation attributes that do not apply to the field's kind; the validation
// engine ignores them at submission time.
type FieldPatch struct {
	Label       *string
	Placeholder *string
	Description *string
	Required    *bool
	Options     []schema.Option
	Validation  *schema.Validation
}

// StringPtr is a small convenience for building patches.
func StringPtr(value string) *string { return &value }

// BoolPtr is a small convenience for building patches.
func BoolPtr(value bool) *bool { return &value }

// IntPtr is a small convenience for building validation records.
func IntPtr(value int) *int { return &value }

// FloatPtr is a small convenience for building validation records.
func FloatPtr(value float64) *float64 { return &value }

func (p FieldPatch) apply(field *schema.FormField) {
	if p.Label != nil {
		field.Label = *p.Label
	}
	if p.Placeholder != nil {
		field.Placeholder = *p.Placeholder
	}
	if p.Description != nil {
		field.Description = *p.Description
	}
	if p.Required != nil {
		field.Required = *p.Required
	}
	if p.Options != nil {
		field.Options = append([]schema.Option(nil), p.Options...)
	}
	if p.Validation != nil {
		field.Validation = p.Validation.Clone()
	}
}
