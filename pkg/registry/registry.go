package registry

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// FieldTemplate is the immutable default configuration for one field kind.
// Templates are read-only process-wide data; lookups hand out copies so a
// field instantiated from a template never shares state with it.
type FieldTemplate struct {
	Kind        schema.FieldKind `json:"kind"`
	Label       string           `json:"label"`
	Description string           `json:"description,omitempty"`
	// Defaults seeds a newly added field. ID, SectionID and Order are
	// assigned by the builder at insertion time.
	Defaults schema.FormField `json:"defaults"`
	// ValidationOptions names the validation attributes that are meaningful
	// for this kind, for builder UIs that expose constraint editing.
	ValidationOptions []string `json:"validationOptions,omitempty"`
}

// Clone returns a deep copy of the template.
func (t FieldTemplate) Clone() FieldTemplate {
	out := t
	out.Defaults = t.Defaults.Clone()
	if t.ValidationOptions != nil {
		out.ValidationOptions = append([]string(nil), t.ValidationOptions...)
	}
	return out
}

// Instantiate produces a fresh FormField from the template's defaults. The
// caller supplies the generated id and the owning section; Order is left for
// the builder to renumber.
func (t FieldTemplate) Instantiate(id, sectionID string) schema.FormField {
	field := t.Defaults.Clone()
	field.ID = id
	field.Kind = t.Kind
	field.SectionID = sectionID
	return field
}

// Catalog is an ordered, immutable set of field templates keyed by kind.
type Catalog struct {
	templates []FieldTemplate
	index     map[schema.FieldKind]int
}

// TemplateFor resolves a template by kind. Unknown kinds fail with
// schema.ErrUnknownFieldKind.
func (c *Catalog) TemplateFor(kind schema.FieldKind) (FieldTemplate, error) {
	if c == nil {
		return FieldTemplate{}, fmt.Errorf("registry: catalog is nil")
	}
	idx, ok := c.index[kind]
	if !ok {
		return FieldTemplate{}, fmt.Errorf("registry: %w: %q", schema.ErrUnknownFieldKind, kind)
	}
	return c.templates[idx].Clone(), nil
}

// All returns every template in palette order. The slice and its entries are
// copies.
func (c *Catalog) All() []FieldTemplate {
	if c == nil {
		return nil
	}
	out := make([]FieldTemplate, len(c.templates))
	for i, tpl := range c.templates {
		out[i] = tpl.Clone()
	}
	return out
}

// Has reports whether the catalog resolves the given kind.
func (c *Catalog) Has(kind schema.FieldKind) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[kind]
	return ok
}

// Len reports the number of registered templates.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.templates)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the compiled-in catalog. It panics if the embedded catalog
// is malformed, which only happens on a broken build.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(defaultCatalogYAML)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("registry: embedded catalog: %v", defaultErr))
	}
	return defaultCatalog
}

// TemplateFor resolves a template from the default catalog.
func TemplateFor(kind schema.FieldKind) (FieldTemplate, error) {
	return Default().TemplateFor(kind)
}

// AllTemplates lists the default catalog in palette order.
func AllTemplates() []FieldTemplate {
	return Default().All()
}
