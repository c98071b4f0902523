package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

var (
	// ErrOperationNotFound signals the document has no operation with the
	// requested id.
	ErrOperationNotFound = errors.New("openapi: operation not found")
	// ErrNoRequestSchema signals the operation carries no usable request
	// body object to derive fields from.
	ErrNoRequestSchema = errors.New("openapi: operation has no request body object")
)

const (
	sectionExtensionKey = "x-formbuilder-section"
	defaultSectionTitle = "Application"
)

// Importer bootstraps a form schema from an OpenAPI operation's request body.
// Each body property becomes a field; the optional x-formbuilder-section
// extension groups properties into sections.
type Importer struct {
	builder *builder.Builder
}

// Option configures the Importer.
type Option func(*Importer)

// WithBuilder substitutes the mutation engine used to assemble the schema.
func WithBuilder(b *builder.Builder) Option {
	return func(i *Importer) {
		if b != nil {
			i.builder = b
		}
	}
}

// New constructs an Importer applying any provided options.
func New(options ...Option) *Importer {
	imp := &Importer{builder: builder.New()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(imp)
	}
	return imp
}

// Import loads the OpenAPI document, locates the operation by id, and builds
// a form schema from its request body properties. Properties are emitted in
// name order within each section so repeated imports of the same document
// produce the same layout.
func (i *Importer) Import(ctx context.Context, data []byte, operationID, jobID string) (schema.FormSchema, error) {
	if err := ctx.Err(); err != nil {
		return schema.FormSchema{}, err
	}
	if len(data) == 0 {
		return schema.FormSchema{}, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return schema.FormSchema{}, fmt.Errorf("openapi: load document: %w", err)
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return schema.FormSchema{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	body := requestBodySchema(operation)
	if body == nil || len(body.Properties) == 0 {
		return schema.FormSchema{}, fmt.Errorf("%w: %q", ErrNoRequestSchema, operationID)
	}

	title := operation.Summary
	if title == "" {
		title = operationID
	}

	sections := groupBySection(body)
	form := i.builder.NewSchema(jobID, title,
		builder.WithDescription(operation.Description),
		builder.WithSections(sectionTitles(sections)...),
	)

	required := make(map[string]bool, len(body.Required))
	for _, name := range body.Required {
		required[name] = true
	}

	for idx, group := range sections {
		sectionID := form.Sections[idx].ID
		for _, prop := range group.properties {
			form, err = i.addProperty(form, sectionID, prop, required[prop.name])
			if err != nil {
				return schema.FormSchema{}, fmt.Errorf("openapi: property %q: %w", prop.name, err)
			}
		}
	}

	return form, nil
}

type property struct {
	name  string
	value *openapi3.Schema
}

type sectionGroup struct {
	title      string
	properties []property
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestBodySchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	content := operation.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "multipart/form-data", "application/x-www-form-urlencoded"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// groupBySection buckets body properties by their x-formbuilder-section
// extension. Groups keep first-seen order over sorted property names;
// untagged properties land in the default section.
func groupBySection(body *openapi3.Schema) []sectionGroup {
	names := make([]string, 0, len(body.Properties))
	for name := range body.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var groups []sectionGroup
	index := make(map[string]int)
	for _, name := range names {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		title := sectionFor(ref.Value)
		pos, ok := index[title]
		if !ok {
			pos = len(groups)
			index[title] = pos
			groups = append(groups, sectionGroup{title: title})
		}
		groups[pos].properties = append(groups[pos].properties, property{name: name, value: ref.Value})
	}
	return groups
}

func sectionFor(value *openapi3.Schema) string {
	if raw, ok := value.Extensions[sectionExtensionKey]; ok {
		if title, ok := raw.(string); ok && title != "" {
			return title
		}
	}
	return defaultSectionTitle
}

func sectionTitles(groups []sectionGroup) []string {
	titles := make([]string, 0, len(groups))
	for _, group := range groups {
		titles = append(titles, group.title)
	}
	return titles
}

func (i *Importer) addProperty(form schema.FormSchema, sectionID string, prop property, required bool) (schema.FormSchema, error) {
	kind := kindFor(prop.value)

	form, field, err := i.builder.AddField(form, kind, sectionID)
	if err != nil {
		return schema.FormSchema{}, err
	}

	patch := builder.FieldPatch{
		Label:    builder.StringPtr(labelFromName(prop.name)),
		Required: builder.BoolPtr(required),
	}
	if prop.value.Description != "" {
		patch.Description = builder.StringPtr(prop.value.Description)
	}
	if options := optionsFor(kind, prop.value); len(options) > 0 {
		patch.Options = options
	}
	if validation := validationFrom(prop.value, field.Validation); validation != nil {
		patch.Validation = validation
	}

	return i.builder.UpdateField(form, field.ID, patch)
}

// kindFor maps an OpenAPI property schema onto a field kind. Unrecognized
// shapes fall back to plain text.
func kindFor(value *openapi3.Schema) schema.FieldKind {
	if len(value.Enum) > 0 {
		return schema.KindSelect
	}

	switch firstType(value.Type) {
	case "string":
		switch value.Format {
		case "email":
			return schema.KindEmail
		case "date":
			return schema.KindDate
		case "binary", "byte":
			return schema.KindFile
		}
		if value.MaxLength != nil && *value.MaxLength > 500 {
			return schema.KindTextarea
		}
		return schema.KindText
	case "number", "integer":
		return schema.KindNumber
	case "boolean":
		return schema.KindRadio
	case "array":
		if value.Items != nil && value.Items.Value != nil && len(value.Items.Value.Enum) > 0 {
			return schema.KindCheckbox
		}
		return schema.KindText
	default:
		return schema.KindText
	}
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	if values := types.Slice(); len(values) > 0 {
		return values[0]
	}
	return ""
}

// optionsFor derives choice options from the property: its own enum, the
// item enum for checkbox arrays, or Yes/No for booleans surfaced as radios.
func optionsFor(kind schema.FieldKind, value *openapi3.Schema) []schema.Option {
	if len(value.Enum) > 0 {
		return optionsFromEnum(value.Enum)
	}
	if kind == schema.KindCheckbox && value.Items != nil && value.Items.Value != nil {
		return optionsFromEnum(value.Items.Value.Enum)
	}
	if kind == schema.KindRadio && firstType(value.Type) == "boolean" {
		return []schema.Option{
			{Value: "yes", Label: "Yes"},
			{Value: "no", Label: "No"},
		}
	}
	return nil
}

func optionsFromEnum(enum []any) []schema.Option {
	options := make([]schema.Option, 0, len(enum))
	for _, raw := range enum {
		value := fmt.Sprint(raw)
		options = append(options, schema.Option{Value: value, Label: labelFromName(value)})
	}
	return options
}

// validationFrom folds the property's bounds into the template's validation
// defaults, returning nil when the property adds nothing.
func validationFrom(value *openapi3.Schema, base schema.Validation) *schema.Validation {
	changed := false
	out := base.Clone()

	if value.MinLength != 0 {
		length := int(value.MinLength)
		out.MinLength = &length
		changed = true
	}
	if value.MaxLength != nil {
		length := int(*value.MaxLength)
		out.MaxLength = &length
		changed = true
	}
	if value.Min != nil {
		min := *value.Min
		out.Min = &min
		changed = true
	}
	if value.Max != nil {
		max := *value.Max
		out.Max = &max
		changed = true
	}

	if !changed {
		return nil
	}
	return &out
}

// labelFromName turns snake_case, kebab-case, or camelCase property names
// into title-cased labels: "yearsOfExperience" becomes "Years Of Experience".
func labelFromName(name string) string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			flush()
		case unicode.IsUpper(r):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()

	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
