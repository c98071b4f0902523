package builder

import "github.com/goliatone/go-formbuilder/pkg/schema"

// History is a snapshot stack over schema values enabling undo/redo. Because
// every mutation yields a whole new value, a snapshot is just the value
// itself; no operation log or inverse transforms are needed.
type History struct {
	past    []schema.FormSchema
	current schema.FormSchema
	future  []schema.FormSchema
	limit   int
}

// HistoryOption configures a History.
type HistoryOption func(*History)

// WithLimit caps the number of undo snapshots kept. Zero or negative means
// unbounded.
func WithLimit(limit int) HistoryOption {
	return func(h *History) {
		h.limit = limit
	}
}

// NewHistory starts a history at the given schema value.
func NewHistory(initial schema.FormSchema, options ...HistoryOption) *History {
	h := &History{current: initial.Clone()}
	for _, opt := range options {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Current returns the schema at the head of the history.
func (h *History) Current() schema.FormSchema {
	return h.current.Clone()
}

// Push records a new accepted mutation result and clears the redo stack.
func (h *History) Push(next schema.FormSchema) {
	h.past = append(h.past, h.current)
	if h.limit > 0 && len(h.past) > h.limit {
		h.past = h.past[len(h.past)-h.limit:]
	}
	h.current = next.Clone()
	h.future = nil
}

// Undo steps back one snapshot. It reports false when there is nothing to
// undo.
func (h *History) Undo() (schema.FormSchema, bool) {
	if len(h.past) == 0 {
		return h.current.Clone(), false
	}
	h.future = append(h.future, h.current)
	h.current = h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	return h.current.Clone(), true
}

// Redo reapplies the most recently undone snapshot.
func (h *History) Redo() (schema.FormSchema, bool) {
	if len(h.future) == 0 {
		return h.current.Clone(), false
	}
	h.past = append(h.past, h.current)
	h.current = h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	return h.current.Clone(), true
}

// CanUndo reports whether an undo snapshot exists.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether a redo snapshot exists.
func (h *History) CanRedo() bool { return len(h.future) > 0 }
