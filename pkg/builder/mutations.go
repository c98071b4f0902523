package builder

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// AddOption tweaks a single AddField call.
type AddOption func(*addConfig)

type addConfig struct {
	index *int
}

// AtIndex inserts the new field at the given position within the section
// instead of appending. Out-of-range positions clamp to the section bounds.
func AtIndex(index int) AddOption {
	return func(cfg *addConfig) {
		cfg.index = &index
	}
}

// AddField instantiates a field from the template for kind and inserts it
// into the target section, renumbering the section afterwards. The new field
// is returned alongside the updated schema so callers can address it.
func (b *Builder) AddField(s schema.FormSchema, kind schema.FieldKind, sectionID string, options ...AddOption) (schema.FormSchema, schema.FormField, error) {
	cfg := addConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	tpl, err := b.catalog.TemplateFor(kind)
	if err != nil {
		return s, schema.FormField{}, err
	}

	out := s.Clone()
	canonicalize(&out)

	section := findSection(&out, sectionID)
	if section == nil {
		return s, schema.FormField{}, fmt.Errorf("%w: %q", ErrSectionNotFound, sectionID)
	}

	field := tpl.Instantiate(b.newID(), section.ID)

	index := len(section.Fields)
	if cfg.index != nil {
		index = clamp(*cfg.index, 0, len(section.Fields))
	}
	section.Fields = insertField(section.Fields, field, index)
	renumberFields(section)

	b.touch(&out)
	return out, section.Fields[index].Clone(), nil
}

// UpdateField merges the patch into the addressed field. Kind and id are not
// part of FieldPatch and therefore cannot change.
func (b *Builder) UpdateField(s schema.FormSchema, fieldID string, patch FieldPatch) (schema.FormSchema, error) {
	out := s.Clone()
	canonicalize(&out)

	field := findField(&out, fieldID)
	if field == nil {
		return s, fmt.Errorf("%w: %q", ErrFieldNotFound, fieldID)
	}

	patch.apply(field)

	b.touch(&out)
	return out, nil
}

// RemoveField deletes the field from its owning section and renumbers the
// remaining fields. Removing the last field leaves a valid empty section.
func (b *Builder) RemoveField(s schema.FormSchema, fieldID string) (schema.FormSchema, error) {
	out := s.Clone()
	canonicalize(&out)

	for i := range out.Sections {
		section := &out.Sections[i]
		for j, field := range section.Fields {
			if field.ID != fieldID {
				continue
			}
			section.Fields = append(section.Fields[:j], section.Fields[j+1:]...)
			renumberFields(section)
			b.touch(&out)
			return out, nil
		}
	}

	return s, fmt.Errorf("%w: %q", ErrFieldNotFound, fieldID)
}

// MoveField relocates a field within or across sections. Both endpoints are
// validated before anything changes; moving a field onto its current position
// is a no-op that returns the input schema unchanged. The destination index
// clamps to the section bounds, so an index past the end appends.
func (b *Builder) MoveField(s schema.FormSchema, fieldID, destSectionID string, destIndex int) (schema.FormSchema, error) {
	out := s.Clone()
	canonicalize(&out)

	srcSection, srcIndex := locateField(&out, fieldID)
	if srcSection == nil {
		return s, fmt.Errorf("%w: %q", ErrFieldNotFound, fieldID)
	}
	destSection := findSection(&out, destSectionID)
	if destSection == nil {
		return s, fmt.Errorf("%w: %q", ErrSectionNotFound, destSectionID)
	}

	if srcSection == destSection && destIndex == srcIndex {
		return s, nil
	}

	field := srcSection.Fields[srcIndex]
	srcSection.Fields = append(srcSection.Fields[:srcIndex], srcSection.Fields[srcIndex+1:]...)

	if srcSection != destSection {
		field.SectionID = destSection.ID
	}

	index := clamp(destIndex, 0, len(destSection.Fields))
	destSection.Fields = insertField(destSection.Fields, field, index)

	renumberFields(srcSection)
	renumberFields(destSection)

	b.touch(&out)
	return out, nil
}

// ReorderSections assigns section Order following the provided id sequence.
// The sequence must be an exact permutation of the schema's section ids; a
// missing, extra, or duplicated id fails with ErrInvalidPermutation.
func (b *Builder) ReorderSections(s schema.FormSchema, orderedIDs []string) (schema.FormSchema, error) {
	if len(orderedIDs) != len(s.Sections) {
		return s, fmt.Errorf("%w: got %d ids, schema has %d sections", ErrInvalidPermutation, len(orderedIDs), len(s.Sections))
	}

	position := make(map[string]int, len(orderedIDs))
	for i, id := range orderedIDs {
		if _, dup := position[id]; dup {
			return s, fmt.Errorf("%w: duplicate id %q", ErrInvalidPermutation, id)
		}
		position[id] = i
	}

	out := s.Clone()
	for i := range out.Sections {
		pos, ok := position[out.Sections[i].ID]
		if !ok {
			return s, fmt.Errorf("%w: unknown id %q", ErrInvalidPermutation, out.Sections[i].ID)
		}
		out.Sections[i].Order = pos
	}
	canonicalize(&out)

	b.touch(&out)
	return out, nil
}

// SectionPatch carries optional updates for a section's presentation
// attributes.
type SectionPatch struct {
	Title       *string
	Description *string
}

// AddSection appends a new empty section to the schema.
func (b *Builder) AddSection(s schema.FormSchema, title string) (schema.FormSchema, schema.FormSection, error) {
	out := s.Clone()
	canonicalize(&out)

	section := schema.FormSection{
		ID:     b.newID(),
		Title:  title,
		Order:  len(out.Sections),
		Fields: []schema.FormField{},
	}
	out.Sections = append(out.Sections, section)

	b.touch(&out)
	return out, section.Clone(), nil
}

// UpdateSection merges the patch into the addressed section.
func (b *Builder) UpdateSection(s schema.FormSchema, sectionID string, patch SectionPatch) (schema.FormSchema, error) {
	out := s.Clone()
	canonicalize(&out)

	section := findSection(&out, sectionID)
	if section == nil {
		return s, fmt.Errorf("%w: %q", ErrSectionNotFound, sectionID)
	}
	if patch.Title != nil {
		section.Title = *patch.Title
	}
	if patch.Description != nil {
		section.Description = *patch.Description
	}

	b.touch(&out)
	return out, nil
}

// RemoveSection deletes an empty section and renumbers the rest. Sections
// still holding fields are refused; fields are destroyed only by explicit
// RemoveField calls.
func (b *Builder) RemoveSection(s schema.FormSchema, sectionID string) (schema.FormSchema, error) {
	out := s.Clone()
	canonicalize(&out)

	for i := range out.Sections {
		if out.Sections[i].ID != sectionID {
			continue
		}
		if len(out.Sections[i].Fields) > 0 {
			return s, fmt.Errorf("builder: section %q still holds %d fields", sectionID, len(out.Sections[i].Fields))
		}
		out.Sections = append(out.Sections[:i], out.Sections[i+1:]...)
		canonicalize(&out)
		b.touch(&out)
		return out, nil
	}

	return s, fmt.Errorf("%w: %q", ErrSectionNotFound, sectionID)
}

func (b *Builder) touch(s *schema.FormSchema) {
	s.Version++
	s.UpdatedAt = b.clock().UTC()
}

// canonicalize sorts sections and fields by Order and rewrites Order into
// dense zero-based sequences, so slice position and Order agree while the
// mutation works on the value.
func canonicalize(s *schema.FormSchema) {
	sort.SliceStable(s.Sections, func(i, j int) bool {
		return s.Sections[i].Order < s.Sections[j].Order
	})
	for i := range s.Sections {
		s.Sections[i].Order = i
		sort.SliceStable(s.Sections[i].Fields, func(a, b int) bool {
			return s.Sections[i].Fields[a].Order < s.Sections[i].Fields[b].Order
		})
		renumberFields(&s.Sections[i])
	}
}

// renumberFields rewrites Order from slice position. Mutations splice the
// canonicalized slice first, so position is authoritative here; sorting by
// the stale Order values again would undo the splice.
func renumberFields(section *schema.FormSection) {
	for i := range section.Fields {
		section.Fields[i].Order = i
	}
}

func findSection(s *schema.FormSchema, sectionID string) *schema.FormSection {
	for i := range s.Sections {
		if s.Sections[i].ID == sectionID {
			return &s.Sections[i]
		}
	}
	return nil
}

func findField(s *schema.FormSchema, fieldID string) *schema.FormField {
	for i := range s.Sections {
		for j := range s.Sections[i].Fields {
			if s.Sections[i].Fields[j].ID == fieldID {
				return &s.Sections[i].Fields[j]
			}
		}
	}
	return nil
}

func locateField(s *schema.FormSchema, fieldID string) (*schema.FormSection, int) {
	for i := range s.Sections {
		for j := range s.Sections[i].Fields {
			if s.Sections[i].Fields[j].ID == fieldID {
				return &s.Sections[i], j
			}
		}
	}
	return nil, -1
}

func insertField(fields []schema.FormField, field schema.FormField, index int) []schema.FormField {
	fields = append(fields, schema.FormField{})
	copy(fields[index+1:], fields[index:])
	fields[index] = field
	return fields
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
