package render

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// Renderer is the contract every presentation surface implements: it reads a
// form schema and produces a byte representation (HTML, terminal session
// transcript, JSON preview). Renderers never mutate the schema and never
// carry their own validation rules; they delegate to pkg/validation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form schema.FormSchema, options RenderOptions) ([]byte, error)
}

// RenderOptions carries per-request data renderers can use without touching
// the schema value.
type RenderOptions struct {
	// Values pre-populates controls, keyed by field id.
	Values map[string]any
	// Errors surfaces server-side validation feedback keyed by field id.
	Errors map[string][]string
	// HiddenFields are extra name/value inputs emitted alongside the form
	// (CSRF tokens, schema version for optimistic locking).
	HiddenFields map[string]string
}
