package vanilla

import (
	"net/url"

	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// ParseForm converts a posted urlencoded payload into the raw value shapes
// the validation engine understands, then filters it through
// render.CollectSubmission so the result is keyed strictly by field id.
// Checkbox fields collect every posted value; everything else takes the first
// one. File inputs do not travel in urlencoded bodies and are expected to be
// merged in by the caller as validation.FileValue entries.
func ParseForm(form schema.FormSchema, posted url.Values) map[string]any {
	raw := make(map[string]any, len(posted))

	for _, section := range form.Sections {
		for _, field := range section.Fields {
			values, ok := posted[field.ID]
			if !ok || len(values) == 0 {
				continue
			}
			if field.Kind == schema.KindCheckbox {
				raw[field.ID] = append([]string(nil), values...)
				continue
			}
			raw[field.ID] = values[0]
		}
	}

	return render.CollectSubmission(form, raw)
}
