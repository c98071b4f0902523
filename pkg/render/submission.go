package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// CollectSubmission filters whatever a surface captured down to the fields
// the schema declares, keyed strictly by field id. Keys that do not match a
// field id are dropped; entries for declared fields pass through untouched.
// Keying by id rather than label or position means schema edits (reordering,
// relabeling) never invalidate previously collected data.
func CollectSubmission(form schema.FormSchema, raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	if len(raw) == 0 {
		return out
	}

	for _, section := range form.Sections {
		for _, field := range section.Fields {
			if value, ok := raw[field.ID]; ok {
				out[field.ID] = value
			}
		}
	}
	return out
}

// HiddenField is a hidden input emitted alongside the visible form. Use the
// helpers (CSRFToken, VersionField) for the common cases.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// CSRFToken constructs a hidden field carrying the provided token. Callers
// supply the input name to match their backend expectations.
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// VersionField constructs a hidden field carrying the schema version, used
// for optimistic locking at the persistence boundary.
func VersionField(name string, version int) HiddenField {
	return Hidden(name, version)
}

// MergeHiddenFields returns a copy of base with the provided fields applied.
// Empty names are ignored; later fields win on name collisions.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	if len(base) == 0 && len(fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(fields))
	for key, value := range base {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			out[trimmed] = value
		}
	}
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		out[name] = field.Value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedHiddenFields normalises and sorts hidden fields for deterministic
// rendering. Empty names are dropped.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	if len(fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		if strings.TrimSpace(name) == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]HiddenField, 0, len(names))
	for _, name := range names {
		result = append(result, HiddenField{Name: name, Value: fields[name]})
	}
	return result
}
