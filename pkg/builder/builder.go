package builder

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-formbuilder/pkg/registry"
)

var (
	// ErrSectionNotFound signals a section id absent from the schema.
	ErrSectionNotFound = errors.New("builder: section not found")
	// ErrFieldNotFound signals a field id absent from the schema.
	ErrFieldNotFound = errors.New("builder: field not found")
	// ErrInvalidPermutation signals a reorder request whose section ids do
	// not exactly match the schema's sections.
	ErrInvalidPermutation = errors.New("builder: section ids are not a permutation of the schema")
)

// Builder applies schema mutations. The zero configuration uses the default
// template catalog, uuid identifiers, and the wall clock; tests inject
// deterministic replacements through options.
type Builder struct {
	catalog *registry.Catalog
	clock   func() time.Time
	newID   func() string
}

// Option configures the builder.
type Option func(*Builder)

// WithCatalog substitutes the template catalog used by AddField.
func WithCatalog(catalog *registry.Catalog) Option {
	return func(b *Builder) {
		if catalog != nil {
			b.catalog = catalog
		}
	}
}

// WithClock overrides the timestamp source for UpdatedAt bookkeeping.
func WithClock(clock func() time.Time) Option {
	return func(b *Builder) {
		if clock != nil {
			b.clock = clock
		}
	}
}

// WithIDGenerator overrides how fresh section and field ids are minted.
func WithIDGenerator(newID func() string) Option {
	return func(b *Builder) {
		if newID != nil {
			b.newID = newID
		}
	}
}

// New constructs a Builder applying any provided options.
func New(options ...Option) *Builder {
	b := &Builder{
		catalog: registry.Default(),
		clock:   time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}
