package registry

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// catalogDoc mirrors the YAML layout of a catalog file. The raw document is
// normalised into typed templates so schema types stay free of yaml tags.
type catalogDoc struct {
	Templates []templateDoc `yaml:"templates"`
}

type templateDoc struct {
	Kind              string      `yaml:"kind"`
	Label             string      `yaml:"label"`
	Description       string      `yaml:"description"`
	Defaults          defaultsDoc `yaml:"defaults"`
	ValidationOptions []string    `yaml:"validationOptions"`
}

type defaultsDoc struct {
	Label       string        `yaml:"label"`
	Placeholder string        `yaml:"placeholder"`
	Description string        `yaml:"description"`
	Required    bool          `yaml:"required"`
	Options     []optionDoc   `yaml:"options"`
	Validation  validationDoc `yaml:"validation"`
}

type optionDoc struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type validationDoc struct {
	MinLength   *int     `yaml:"minLength"`
	MaxLength   *int     `yaml:"maxLength"`
	Min         *float64 `yaml:"min"`
	Max         *float64 `yaml:"max"`
	FileTypes   []string `yaml:"fileTypes"`
	MaxFileSize int64    `yaml:"maxFileSize"`
}

// Load parses a YAML catalog document into a Catalog. Duplicate or unknown
// kinds are rejected so a substituted catalog cannot shadow or extend the
// closed kind set.
func Load(data []byte) (*Catalog, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("registry: catalog payload is empty")
	}

	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("registry: parse catalog: %w", err)
	}
	if len(doc.Templates) == 0 {
		return nil, fmt.Errorf("registry: catalog defines no templates")
	}

	catalog := &Catalog{
		templates: make([]FieldTemplate, 0, len(doc.Templates)),
		index:     make(map[schema.FieldKind]int, len(doc.Templates)),
	}

	for _, raw := range doc.Templates {
		kind := schema.FieldKind(strings.TrimSpace(raw.Kind))
		if !kind.Known() {
			return nil, fmt.Errorf("registry: catalog: %w: %q", schema.ErrUnknownFieldKind, raw.Kind)
		}
		if _, dup := catalog.index[kind]; dup {
			return nil, fmt.Errorf("registry: catalog defines kind %q twice", kind)
		}

		tpl, err := normaliseTemplate(kind, raw)
		if err != nil {
			return nil, err
		}

		catalog.index[kind] = len(catalog.templates)
		catalog.templates = append(catalog.templates, tpl)
	}

	return catalog, nil
}

// LoadFS reads a catalog file from the provided filesystem, letting a
// deployment substitute its own palette.
func LoadFS(fsys fs.FS, path string) (*Catalog, error) {
	if fsys == nil {
		return nil, fmt.Errorf("registry: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("registry: read catalog %s: %w", path, err)
	}
	return Load(data)
}

func normaliseTemplate(kind schema.FieldKind, raw templateDoc) (FieldTemplate, error) {
	label := strings.TrimSpace(raw.Label)
	if label == "" {
		return FieldTemplate{}, fmt.Errorf("registry: catalog template %q needs a label", kind)
	}

	defaults := schema.FormField{
		Kind:        kind,
		Label:       strings.TrimSpace(raw.Defaults.Label),
		Placeholder: strings.TrimSpace(raw.Defaults.Placeholder),
		Description: strings.TrimSpace(raw.Defaults.Description),
		Required:    raw.Defaults.Required,
		Validation: schema.Validation{
			MinLength:   raw.Defaults.Validation.MinLength,
			MaxLength:   raw.Defaults.Validation.MaxLength,
			Min:         raw.Defaults.Validation.Min,
			Max:         raw.Defaults.Validation.Max,
			FileTypes:   raw.Defaults.Validation.FileTypes,
			MaxFileSize: raw.Defaults.Validation.MaxFileSize,
		},
	}
	if defaults.Label == "" {
		defaults.Label = label
	}
	for _, opt := range raw.Defaults.Options {
		value := strings.TrimSpace(opt.Value)
		if value == "" {
			return FieldTemplate{}, fmt.Errorf("registry: catalog template %q has an option without value", kind)
		}
		optLabel := strings.TrimSpace(opt.Label)
		if optLabel == "" {
			optLabel = value
		}
		defaults.Options = append(defaults.Options, schema.Option{Value: value, Label: optLabel})
	}
	if kind.HasOptions() && len(defaults.Options) == 0 {
		return FieldTemplate{}, fmt.Errorf("registry: catalog template %q needs at least one option", kind)
	}

	return FieldTemplate{
		Kind:              kind,
		Label:             label,
		Description:       strings.TrimSpace(raw.Description),
		Defaults:          defaults,
		ValidationOptions: raw.ValidationOptions,
	}, nil
}
