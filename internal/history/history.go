// Package history keeps the undo and redo stacks of an editing session.
//
// Every entry is a deep copy owned by the stack. Buffers handed out by Undo
// and Redo become owned by the caller, so mutating the live image never
// rewrites history.
package history

import (
	"github.com/ironsheep/image-editor-mcp/internal/imaging"
)

// History is a linear undo/redo manager. Both stacks are unbounded.
//
// History is not safe for concurrent use.
type History struct {
	undoStack []*imaging.Buffer
	redoStack []*imaging.Buffer
}

// New returns an empty history.
func New() *History {
	return &History{
		undoStack: make([]*imaging.Buffer, 0),
		redoStack: make([]*imaging.Buffer, 0),
	}
}

// Record saves a copy of buf as the state before an edit. Any pending redo
// entries are discarded.
func (h *History) Record(buf *imaging.Buffer) {
	if buf == nil {
		return
	}
	h.undoStack = append(h.undoStack, buf.Clone())
	h.redoStack = truncate(h.redoStack)
}

// Undo returns the previous state and saves a copy of current for Redo.
// It reports false, and changes nothing, when there is nothing to undo.
func (h *History) Undo(current *imaging.Buffer) (*imaging.Buffer, bool) {
	prev, ok := pop(&h.undoStack)
	if !ok {
		return nil, false
	}
	if current != nil {
		h.redoStack = append(h.redoStack, current.Clone())
	}
	return prev, true
}

// Redo returns the state that was last undone and saves a copy of current
// for Undo. It reports false, and changes nothing, when there is nothing to
// redo.
func (h *History) Redo(current *imaging.Buffer) (*imaging.Buffer, bool) {
	next, ok := pop(&h.redoStack)
	if !ok {
		return nil, false
	}
	if current != nil {
		h.undoStack = append(h.undoStack, current.Clone())
	}
	return next, true
}

// Reset empties both stacks.
func (h *History) Reset() {
	h.undoStack = truncate(h.undoStack)
	h.redoStack = truncate(h.redoStack)
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// UndoDepth returns the number of undo entries.
func (h *History) UndoDepth() int { return len(h.undoStack) }

// RedoDepth returns the number of redo entries.
func (h *History) RedoDepth() int { return len(h.redoStack) }

func pop(stack *[]*imaging.Buffer) (*imaging.Buffer, bool) {
	s := *stack
	if len(s) == 0 {
		return nil, false
	}
	top := s[len(s)-1]
	s[len(s)-1] = nil
	*stack = s[:len(s)-1]
	return top, true
}

// truncate drops every entry while keeping the backing array.
func truncate(stack []*imaging.Buffer) []*imaging.Buffer {
	for i := range stack {
		stack[i] = nil
	}
	return stack[:0]
}
