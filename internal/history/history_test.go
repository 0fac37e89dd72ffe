package history

import (
	"testing"

	"github.com/ironsheep/image-editor-mcp/internal/imaging"
)

// buffer returns a 4x4 buffer filled with a gray level
func buffer(t *testing.T, level uint8) *imaging.Buffer {
	t.Helper()
	buf, err := imaging.NewBuffer(4, 4)
	if err != nil {
		t.Fatalf("NewBuffer failed: %v", err)
	}
	buf.Fill(imaging.RGB{R: level, G: level, B: level})
	return buf
}

func level(buf *imaging.Buffer) uint8 {
	return buf.RGBAt(0, 0).R
}

func TestHistory_Empty(t *testing.T) {
	h := New()

	if h.CanUndo() || h.CanRedo() {
		t.Error("new history should have nothing to undo or redo")
	}
	if got, ok := h.Undo(buffer(t, 1)); ok || got != nil {
		t.Errorf("Undo on empty = (%v, %v), want (nil, false)", got, ok)
	}
	if got, ok := h.Redo(buffer(t, 1)); ok || got != nil {
		t.Errorf("Redo on empty = (%v, %v), want (nil, false)", got, ok)
	}
	if h.RedoDepth() != 0 {
		t.Error("failed undo must not push to redo")
	}
}

func TestHistory_UndoRedo(t *testing.T) {
	h := New()
	current := buffer(t, 10)

	// edit 10 -> 20
	h.Record(current)
	current = buffer(t, 20)

	prev, ok := h.Undo(current)
	if !ok || level(prev) != 10 {
		t.Fatalf("Undo = (%v, %v), want level 10", prev, ok)
	}
	current = prev
	if !h.CanRedo() || h.CanUndo() {
		t.Errorf("after undo: CanUndo=%v CanRedo=%v", h.CanUndo(), h.CanRedo())
	}

	next, ok := h.Redo(current)
	if !ok || level(next) != 20 {
		t.Fatalf("Redo = (%v, %v), want level 20", next, ok)
	}
	current = next

	// Back and forth forever between the two states
	for i := 0; i < 3; i++ {
		current, _ = h.Undo(current)
		if level(current) != 10 {
			t.Fatalf("round %d undo: level %d, want 10", i, level(current))
		}
		current, _ = h.Redo(current)
		if level(current) != 20 {
			t.Fatalf("round %d redo: level %d, want 20", i, level(current))
		}
	}
}

func TestHistory_RecordDiscardsRedo(t *testing.T) {
	h := New()
	current := buffer(t, 1)

	h.Record(current)
	current = buffer(t, 2)
	current, _ = h.Undo(current)

	h.Record(current)
	if h.CanRedo() {
		t.Error("Record should discard the redo branch")
	}
	if _, ok := h.Redo(current); ok {
		t.Error("Redo after a new edit should be a no-op")
	}
}

func TestHistory_EntriesAreCopies(t *testing.T) {
	h := New()
	current := buffer(t, 50)

	h.Record(current)
	current.Fill(imaging.RGB{R: 99})

	prev, ok := h.Undo(current)
	if !ok {
		t.Fatal("Undo failed")
	}
	if level(prev) != 50 {
		t.Errorf("recorded entry changed with the live buffer: level %d, want 50", level(prev))
	}

	// Mutating the returned buffer must not touch the redo entry
	prev.Fill(imaging.Black)
	next, _ := h.Redo(prev)
	if level(next) != 99 {
		t.Errorf("redo entry changed: level %d, want 99", level(next))
	}
}

func TestHistory_Depths(t *testing.T) {
	h := New()
	current := buffer(t, 0)
	for i := 1; i <= 100; i++ {
		h.Record(current)
		current = buffer(t, uint8(i))
	}
	if h.UndoDepth() != 100 {
		t.Errorf("UndoDepth = %d, want 100 (unbounded)", h.UndoDepth())
	}

	for i := 0; i < 30; i++ {
		current, _ = h.Undo(current)
	}
	if h.UndoDepth() != 70 || h.RedoDepth() != 30 {
		t.Errorf("depths = %d/%d, want 70/30", h.UndoDepth(), h.RedoDepth())
	}
	if level(current) != 70 {
		t.Errorf("level %d, want 70", level(current))
	}

	h.Reset()
	if h.CanUndo() || h.CanRedo() {
		t.Error("Reset should empty both stacks")
	}
}

func TestHistory_RecordNil(t *testing.T) {
	h := New()
	h.Record(nil)
	if h.CanUndo() {
		t.Error("recording nil should be ignored")
	}
}
