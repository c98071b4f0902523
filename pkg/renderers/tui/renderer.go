// Package tui collects a form submission through terminal prompts. Prompting
// is abstracted behind PromptDriver (survey-backed by default) and every
// answer is checked through the shared validation engine before it is
// accepted, so the terminal surface enforces exactly the same rules as the
// HTML one.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

const skipChoice = "(skip)"

// Renderer implements render.Renderer for terminal-driven sessions. Its
// Render output is the serialized submission payload keyed by field id.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	stat         StatFunc
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
		stat:         osStat,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain"
	}
	return "application/json"
}

// Render walks the schema in display order, prompting for every field and
// re-asking until the shared validation engine accepts the answer. The
// returned payload maps field ids to collected values.
func (r *Renderer) Render(ctx context.Context, form schema.FormSchema, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	collected := make(map[string]any)

	for _, section := range form.OrderedSections() {
		if len(section.Fields) == 0 {
			continue
		}
		if err := r.driver.Info(ctx, "== "+section.Title+" =="); err != nil {
			return nil, err
		}
		for _, field := range section.OrderedFields() {
			if err := r.promptField(ctx, field, options.Values[field.ID], collected); err != nil {
				return nil, err
			}
		}
	}

	return r.serialize(render.CollectSubmission(form, collected))
}

func (r *Renderer) promptField(ctx context.Context, field schema.FormField, prefill any, collected map[string]any) error {
	for {
		value, err := r.askValue(ctx, field, prefill)
		if err != nil {
			return err
		}

		outcome := validation.ValidateField(field, value)
		if !outcome.Valid() {
			if err := r.driver.Info(ctx, "Invalid: "+outcome.Message); err != nil {
				return err
			}
			continue
		}

		if value != nil {
			collected[field.ID] = value
		}
		return nil
	}
}

func (r *Renderer) askValue(ctx context.Context, field schema.FormField, prefill any) (any, error) {
	switch field.Kind {
	case schema.KindTextarea:
		text, err := r.driver.TextArea(ctx, TextAreaConfig{
			Message: promptLabel(field),
			Default: prefillString(prefill),
			Help:    field.Description,
		})
		if err != nil {
			return nil, err
		}
		return emptyAsNil(text), nil

	case schema.KindSelect, schema.KindRadio:
		return r.askChoice(ctx, field, prefill)

	case schema.KindCheckbox:
		return r.askMultiChoice(ctx, field, prefill)

	case schema.KindNumber, schema.KindSalary:
		return r.askNumber(ctx, field, prefill)

	case schema.KindFile:
		return r.askFile(ctx, field)

	default:
		text, err := r.driver.Input(ctx, InputConfig{
			Message: promptLabel(field),
			Default: prefillString(prefill),
			Help:    helpText(field),
		})
		if err != nil {
			return nil, err
		}
		return emptyAsNil(text), nil
	}
}

func (r *Renderer) askChoice(ctx context.Context, field schema.FormField, prefill any) (any, error) {
	labels := make([]string, 0, len(field.Options)+1)
	if !field.Required {
		labels = append(labels, skipChoice)
	}
	offset := len(labels)
	for _, opt := range field.Options {
		labels = append(labels, opt.Label)
	}

	defaultIdx := -1
	if current := prefillString(prefill); current != "" {
		for i, opt := range field.Options {
			if opt.Value == current {
				defaultIdx = offset + i
			}
		}
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      promptLabel(field),
		Options:      labels,
		DefaultIndex: defaultIdx,
		Help:         field.Description,
	})
	if err != nil {
		return nil, err
	}
	if idx < offset {
		return nil, nil
	}
	return field.Options[idx-offset].Value, nil
}

func (r *Renderer) askMultiChoice(ctx context.Context, field schema.FormField, prefill any) (any, error) {
	labels := make([]string, 0, len(field.Options))
	for _, opt := range field.Options {
		labels = append(labels, opt.Label)
	}

	var defaults []int
	for _, current := range prefillSlice(prefill) {
		for i, opt := range field.Options {
			if opt.Value == current {
				defaults = append(defaults, i)
			}
		}
	}

	indices, err := r.driver.MultiSelect(ctx, SelectConfig{
		Message:  promptLabel(field),
		Options:  labels,
		Defaults: defaults,
		Help:     field.Description,
	})
	if err != nil {
		return nil, err
	}
	if len(indices) == 0 {
		return nil, nil
	}

	values := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(field.Options) {
			values = append(values, field.Options[idx].Value)
		}
	}
	return values, nil
}

func (r *Renderer) askNumber(ctx context.Context, field schema.FormField, prefill any) (any, error) {
	text, err := r.driver.Input(ctx, InputConfig{
		Message: promptLabel(field),
		Default: prefillString(prefill),
		Help:    helpText(field),
	})
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}
	if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return parsed, nil
	}
	// Hand the raw text to the validation engine so the candidate sees the
	// NOT_NUMERIC message instead of a bare parse error.
	return trimmed, nil
}

func (r *Renderer) askFile(ctx context.Context, field schema.FormField) (any, error) {
	path, err := r.driver.Input(ctx, InputConfig{
		Message: promptLabel(field) + " (path to file)",
		Help:    helpText(field),
	})
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, nil
	}

	name, size, err := r.stat(trimmed)
	if err != nil {
		if infoErr := r.driver.Info(ctx, fmt.Sprintf("Cannot read %s: %v", trimmed, err)); infoErr != nil {
			return nil, infoErr
		}
		// Let validation flag the missing answer when the field is required.
		return nil, nil
	}
	return validation.FileValue{Name: filepath.Base(name), Size: size}, nil
}

func (r *Renderer) serialize(values map[string]any) ([]byte, error) {
	if r.outputFormat == OutputFormatPrettyText {
		var b strings.Builder
		for _, key := range sortedKeys(values) {
			fmt.Fprintf(&b, "%s=%v\n", key, values[key])
		}
		return []byte(b.String()), nil
	}
	return json.Marshal(values)
}

func promptLabel(field schema.FormField) string {
	label := field.Label
	if label == "" {
		label = field.ID
	}
	if field.Required {
		return label + " *"
	}
	return label
}

func helpText(field schema.FormField) string {
	if field.Description != "" {
		return field.Description
	}
	return field.Placeholder
}

func emptyAsNil(text string) any {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return text
}

func prefillString(value any) string {
	if text, ok := value.(string); ok {
		return text
	}
	return ""
}

func prefillSlice(value any) []string {
	switch typed := value.(type) {
	case []string:
		return typed
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			if text, ok := item.(string); ok {
				out = append(out, text)
			}
		}
		return out
	default:
		return nil
	}
}

func sortedKeys(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
