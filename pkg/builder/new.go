package builder

import "github.com/goliatone/go-formbuilder/pkg/schema"

// defaultSectionTitles is the canonical section layout for a fresh form.
var defaultSectionTitles = []string{
	"Personal Information",
	"Experience",
	"Additional",
}

// SchemaOption configures NewSchema.
type SchemaOption func(*schemaConfig)

type schemaConfig struct {
	description   string
	createdBy     string
	sectionTitles []string
	settings      schema.Settings
}

// WithDescription sets the form description.
func WithDescription(description string) SchemaOption {
	return func(cfg *schemaConfig) {
		cfg.description = description
	}
}

// WithCreatedBy records the operator creating the form.
func WithCreatedBy(createdBy string) SchemaOption {
	return func(cfg *schemaConfig) {
		cfg.createdBy = createdBy
	}
}

// WithSections replaces the canonical section titles.
func WithSections(titles ...string) SchemaOption {
	return func(cfg *schemaConfig) {
		if len(titles) > 0 {
			cfg.sectionTitles = titles
		}
	}
}

// WithSettings seeds the opaque settings record.
func WithSettings(settings schema.Settings) SchemaOption {
	return func(cfg *schemaConfig) {
		cfg.settings = settings
	}
}

// NewSchema creates an empty versioned form for a job: the canonical sections
// with no fields, version 1, and fresh timestamps.
func (b *Builder) NewSchema(jobID, title string, options ...SchemaOption) schema.FormSchema {
	cfg := schemaConfig{sectionTitles: defaultSectionTitles}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	now := b.clock().UTC()
	out := schema.FormSchema{
		ID:          b.newID(),
		JobID:       jobID,
		Title:       title,
		Description: cfg.description,
		Sections:    make([]schema.FormSection, 0, len(cfg.sectionTitles)),
		Settings:    cfg.settings,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   cfg.createdBy,
	}

	for i, sectionTitle := range cfg.sectionTitles {
		out.Sections = append(out.Sections, schema.FormSection{
			ID:     b.newID(),
			Title:  sectionTitle,
			Order:  i,
			Fields: []schema.FormField{},
		})
	}

	return out
}
