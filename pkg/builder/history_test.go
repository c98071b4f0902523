package builder_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

func TestHistoryUndoRedo(t *testing.T) {
	b := newTestBuilder()
	v1 := newTestSchema(b)
	history := builder.NewHistory(v1)

	v2, _, err := b.AddField(v1, schema.KindText, v1.Sections[0].ID)
	if err != nil {
		t.Fatalf("add field: %v", err)
	}
	history.Push(v2)

	v3, _, err := b.AddField(v2, schema.KindEmail, v2.Sections[0].ID)
	if err != nil {
		t.Fatalf("add field: %v", err)
	}
	history.Push(v3)

	if !history.CanUndo() {
		t.Fatal("expected undo to be available")
	}

	got, ok := history.Undo()
	if !ok {
		t.Fatal("undo reported nothing to undo")
	}
	if diff := cmp.Diff(v2, got); diff != "" {
		t.Fatalf("undo mismatch (-want +got):\n%s", diff)
	}

	got, ok = history.Redo()
	if !ok {
		t.Fatal("redo reported nothing to redo")
	}
	if diff := cmp.Diff(v3, got); diff != "" {
		t.Fatalf("redo mismatch (-want +got):\n%s", diff)
	}
	if history.CanRedo() {
		t.Fatal("expected redo stack to be drained")
	}
}

func TestHistoryUndoAtOldestSnapshot(t *testing.T) {
	b := newTestBuilder()
	v1 := newTestSchema(b)
	history := builder.NewHistory(v1)

	got, ok := history.Undo()
	if ok {
		t.Fatal("expected nothing to undo")
	}
	if diff := cmp.Diff(v1, got); diff != "" {
		t.Fatalf("undo at floor should return current (-want +got):\n%s", diff)
	}
}

func TestHistoryPushClearsRedo(t *testing.T) {
	b := newTestBuilder()
	v1 := newTestSchema(b)
	history := builder.NewHistory(v1)

	v2, _, _ := b.AddField(v1, schema.KindText, v1.Sections[0].ID)
	history.Push(v2)
	history.Undo()

	v2b, _, _ := b.AddField(v1, schema.KindEmail, v1.Sections[0].ID)
	history.Push(v2b)

	if history.CanRedo() {
		t.Fatal("push after undo must clear the redo stack")
	}
}

func TestHistoryLimitDropsOldest(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)
	history := builder.NewHistory(form, builder.WithLimit(2))

	for i := 0; i < 4; i++ {
		next, _, err := b.AddField(form, schema.KindText, form.Sections[0].ID)
		if err != nil {
			t.Fatalf("add field: %v", err)
		}
		history.Push(next)
		form = next
	}

	undos := 0
	for history.CanUndo() {
		history.Undo()
		undos++
	}
	if undos != 2 {
		t.Fatalf("expected limit to keep 2 undo snapshots, got %d", undos)
	}
}

func TestHistoryCurrentReturnsCopy(t *testing.T) {
	b := newTestBuilder()
	form := newTestSchema(b)
	history := builder.NewHistory(form)

	head := history.Current()
	head.Title = "mutated"

	if history.Current().Title != "Backend Engineer Application" {
		t.Fatal("Current leaked internal state")
	}
}
