package schema

import (
	"errors"
	"fmt"
)

// ErrUnknownFieldKind signals a field kind outside the closed catalog. It is
// returned by the codec on load and by the template registry on lookup.
var ErrUnknownFieldKind = errors.New("schema: unknown field kind")

// Validate checks the structural invariants the builder guarantees: unique
// section and field ids, dense zero-based Order permutations at both levels,
// known field kinds, and section ownership recorded on every field.
func (s FormSchema) Validate() error {
	sectionIDs := make(map[string]struct{}, len(s.Sections))
	fieldIDs := make(map[string]struct{})
	sectionOrders := make(map[int]struct{}, len(s.Sections))

	for _, section := range s.Sections {
		if section.ID == "" {
			return errors.New("schema: section id is required")
		}
		if _, dup := sectionIDs[section.ID]; dup {
			return fmt.Errorf("schema: duplicate section id %q", section.ID)
		}
		sectionIDs[section.ID] = struct{}{}

		if section.Order < 0 || section.Order >= len(s.Sections) {
			return fmt.Errorf("schema: section %q order %d out of range", section.ID, section.Order)
		}
		if _, dup := sectionOrders[section.Order]; dup {
			return fmt.Errorf("schema: duplicate section order %d", section.Order)
		}
		sectionOrders[section.Order] = struct{}{}

		fieldOrders := make(map[int]struct{}, len(section.Fields))
		for _, field := range section.Fields {
			if field.ID == "" {
				return fmt.Errorf("schema: section %q holds a field without id", section.ID)
			}
			if _, dup := fieldIDs[field.ID]; dup {
				return fmt.Errorf("schema: duplicate field id %q", field.ID)
			}
			fieldIDs[field.ID] = struct{}{}

			if !field.Kind.Known() {
				return fmt.Errorf("schema: field %q: %w: %q", field.ID, ErrUnknownFieldKind, field.Kind)
			}
			if field.SectionID != section.ID {
				return fmt.Errorf("schema: field %q claims section %q but lives in %q", field.ID, field.SectionID, section.ID)
			}
			if field.Order < 0 || field.Order >= len(section.Fields) {
				return fmt.Errorf("schema: field %q order %d out of range", field.ID, field.Order)
			}
			if _, dup := fieldOrders[field.Order]; dup {
				return fmt.Errorf("schema: section %q has duplicate field order %d", section.ID, field.Order)
			}
			fieldOrders[field.Order] = struct{}{}
		}
	}
	return nil
}
