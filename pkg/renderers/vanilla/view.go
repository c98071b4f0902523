package vanilla

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// buildView flattens the schema into the plain map/slice shape the template
// engine consumes. Display order follows the Order attributes, never slice
// position.
func (r *Renderer) buildView(form schema.FormSchema, options render.RenderOptions) map[string]any {
	sections := make([]any, 0, len(form.Sections))
	for _, section := range form.OrderedSections() {
		fields := make([]any, 0, len(section.Fields))
		for _, field := range section.OrderedFields() {
			fields = append(fields, r.fieldView(field, options))
		}
		sections = append(sections, map[string]any{
			"id":          section.ID,
			"title":       section.Title,
			"description": section.Description,
			"fields":      fields,
		})
	}

	hidden := make([]any, 0)
	for _, field := range render.SortedHiddenFields(options.HiddenFields) {
		hidden = append(hidden, map[string]any{
			"name":  field.Name,
			"value": field.Value,
		})
	}

	return map[string]any{
		"title":        form.Title,
		"description":  form.Description,
		"version":      form.Version,
		"sections":     sections,
		"hiddenFields": hidden,
	}
}

func (r *Renderer) fieldView(field schema.FormField, options render.RenderOptions) map[string]any {
	value := options.Values[field.ID]

	view := map[string]any{
		"id":          field.ID,
		"kind":        string(field.Kind),
		"controlId":   controlID(field.ID),
		"label":       field.Label,
		"placeholder": field.Placeholder,
		"help":        r.sanitizer.Sanitize(field.Description),
		"required":    field.Required,
		"inputType":   inputType(field.Kind),
		"value":       scalarValue(value),
		"errors":      options.Errors[field.ID],
	}

	if field.Kind.HasOptions() {
		selected := selectedValues(value)
		optionViews := make([]any, 0, len(field.Options))
		for _, opt := range field.Options {
			_, isSelected := selected[opt.Value]
			optionViews = append(optionViews, map[string]any{
				"value":    opt.Value,
				"label":    opt.Label,
				"selected": isSelected,
			})
		}
		view["options"] = optionViews
	}

	if field.Kind == schema.KindFile && len(field.Validation.FileTypes) > 0 {
		view["accept"] = strings.Join(field.Validation.FileTypes, ",")
	}

	return view
}

func controlID(fieldID string) string {
	return "fb-" + fieldID
}

// inputType maps a field kind onto the matching HTML input type. Kinds with
// dedicated markup (textarea, select, radio, checkbox, file) are handled by
// the template and never reach the generic input branch.
func inputType(kind schema.FieldKind) string {
	switch kind {
	case schema.KindEmail:
		return "email"
	case schema.KindPhone:
		return "tel"
	case schema.KindDate:
		return "date"
	case schema.KindNumber, schema.KindSalary:
		return "number"
	default:
		return "text"
	}
}

func scalarValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case []string, []any:
		return ""
	default:
		return fmt.Sprint(typed)
	}
}

func selectedValues(value any) map[string]struct{} {
	out := make(map[string]struct{})
	switch typed := value.(type) {
	case string:
		if typed != "" {
			out[typed] = struct{}{}
		}
	case []string:
		for _, item := range typed {
			out[item] = struct{}{}
		}
	case []any:
		for _, item := range typed {
			if text, ok := item.(string); ok {
				out[text] = struct{}{}
			}
		}
	}
	return out
}
