package schema

import "sort"

// FindSection locates a section by id. The returned value is a copy.
func FindSection(s FormSchema, sectionID string) (FormSection, bool) {
	for _, section := range s.Sections {
		if section.ID == sectionID {
			return section.Clone(), true
		}
	}
	return FormSection{}, false
}

// FindField locates a field by id and reports its owning section. Both
// returned values are copies.
func FindField(s FormSchema, fieldID string) (FormSection, FormField, bool) {
	for _, section := range s.Sections {
		for _, field := range section.Fields {
			if field.ID == fieldID {
				return section.Clone(), field.Clone(), true
			}
		}
	}
	return FormSection{}, FormField{}, false
}

// OrderedSections returns the sections sorted by Order ascending. Slice
// position in the stored schema is never trusted for display order.
func (s FormSchema) OrderedSections() []FormSection {
	out := make([]FormSection, len(s.Sections))
	for i, section := range s.Sections {
		out[i] = section.Clone()
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// OrderedFields returns the section's fields sorted by Order ascending.
func (sec FormSection) OrderedFields() []FormField {
	out := make([]FormField, len(sec.Fields))
	for i, field := range sec.Fields {
		out[i] = field.Clone()
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// FieldCount reports the total number of fields across every section.
func (s FormSchema) FieldCount() int {
	total := 0
	for _, section := range s.Sections {
		total += len(section.Fields)
	}
	return total
}
