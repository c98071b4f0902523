package formbuilder

import (
	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// Session pairs the mutation engine with snapshot history so an editing
// surface gets undo/redo without tracking schema values itself. Every
// accepted mutation pushes the new value; failed mutations leave the head
// untouched.
type Session struct {
	builder *builder.Builder
	history *builder.History
}

// SessionOption configures a Session.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	builder      *builder.Builder
	historyLimit int
}

// WithSessionBuilder substitutes the mutation engine used by the session.
func WithSessionBuilder(b *builder.Builder) SessionOption {
	return func(cfg *sessionConfig) {
		if b != nil {
			cfg.builder = b
		}
	}
}

// WithHistoryLimit caps the number of undo snapshots kept.
func WithHistoryLimit(limit int) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.historyLimit = limit
	}
}

// NewSession starts an editing session over the given schema.
func NewSession(form schema.FormSchema, options ...SessionOption) *Session {
	cfg := sessionConfig{builder: builder.New()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	var historyOptions []builder.HistoryOption
	if cfg.historyLimit > 0 {
		historyOptions = append(historyOptions, builder.WithLimit(cfg.historyLimit))
	}
	return &Session{
		builder: cfg.builder,
		history: builder.NewHistory(form, historyOptions...),
	}
}

// Schema returns the current schema value.
func (s *Session) Schema() schema.FormSchema {
	return s.history.Current()
}

// AddField inserts a field instantiated from the template for kind.
func (s *Session) AddField(kind schema.FieldKind, sectionID string, options ...builder.AddOption) (schema.FormField, error) {
	next, field, err := s.builder.AddField(s.history.Current(), kind, sectionID, options...)
	if err != nil {
		return schema.FormField{}, err
	}
	s.history.Push(next)
	return field, nil
}

// UpdateField merges the patch into the addressed field.
func (s *Session) UpdateField(fieldID string, patch builder.FieldPatch) error {
	next, err := s.builder.UpdateField(s.history.Current(), fieldID, patch)
	if err != nil {
		return err
	}
	s.history.Push(next)
	return nil
}

// RemoveField deletes the addressed field.
func (s *Session) RemoveField(fieldID string) error {
	next, err := s.builder.RemoveField(s.history.Current(), fieldID)
	if err != nil {
		return err
	}
	s.history.Push(next)
	return nil
}

// MoveField relocates a field within or across sections. A move onto the
// field's current position is a no-op and records no history entry.
func (s *Session) MoveField(fieldID, destSectionID string, destIndex int) error {
	current := s.history.Current()
	next, err := s.builder.MoveField(current, fieldID, destSectionID, destIndex)
	if err != nil {
		return err
	}
	if next.Version == current.Version {
		return nil
	}
	s.history.Push(next)
	return nil
}

// ReorderSections assigns section order following the id sequence.
func (s *Session) ReorderSections(orderedIDs []string) error {
	next, err := s.builder.ReorderSections(s.history.Current(), orderedIDs)
	if err != nil {
		return err
	}
	s.history.Push(next)
	return nil
}

// AddSection appends a new empty section.
func (s *Session) AddSection(title string) (schema.FormSection, error) {
	next, section, err := s.builder.AddSection(s.history.Current(), title)
	if err != nil {
		return schema.FormSection{}, err
	}
	s.history.Push(next)
	return section, nil
}

// UpdateSection merges the patch into the addressed section.
func (s *Session) UpdateSection(sectionID string, patch builder.SectionPatch) error {
	next, err := s.builder.UpdateSection(s.history.Current(), sectionID, patch)
	if err != nil {
		return err
	}
	s.history.Push(next)
	return nil
}

// RemoveSection deletes an empty section.
func (s *Session) RemoveSection(sectionID string) error {
	next, err := s.builder.RemoveSection(s.history.Current(), sectionID)
	if err != nil {
		return err
	}
	s.history.Push(next)
	return nil
}

// Undo steps back one mutation, reporting false when at the oldest snapshot.
func (s *Session) Undo() (schema.FormSchema, bool) {
	return s.history.Undo()
}

// Redo reapplies the most recently undone mutation.
func (s *Session) Redo() (schema.FormSchema, bool) {
	return s.history.Redo()
}

// CanUndo reports whether an undo snapshot exists.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether a redo snapshot exists.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }
