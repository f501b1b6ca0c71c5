package ui

import "github.com/piwi3910/tcocompare/internal/model"

const defaultMaxDepth = 50

// Snapshot is a scenario as it was before an edit.
type Snapshot struct {
	Scenario model.Scenario
	Label    string // e.g. "Edit Scenario", "Load Template Retail chain"
}

// MakeSnapshot copies s so later edits cannot reach the stored value.
func MakeSnapshot(s model.Scenario, label string) Snapshot {
	return Snapshot{Scenario: s.Clone(), Label: label}
}

type snapshotStack []Snapshot

func (st *snapshotStack) push(s Snapshot) {
	*st = append(*st, s)
}

func (st *snapshotStack) pop() (Snapshot, bool) {
	n := len(*st)
	if n == 0 {
		return Snapshot{}, false
	}
	top := (*st)[n-1]
	*st = (*st)[:n-1]
	return top, true
}

func (st snapshotStack) peek() (Snapshot, bool) {
	if len(st) == 0 {
		return Snapshot{}, false
	}
	return st[len(st)-1], true
}

// History keeps scenario edits for undo and redo. Only the newest maxDepth
// undo steps are kept.
type History struct {
	undoStack snapshotStack
	redoStack snapshotStack
	maxDepth  int
}

func NewHistory() *History {
	return &History{maxDepth: defaultMaxDepth}
}

// Push records the state before an edit. Any redo steps are discarded.
func (h *History) Push(s Snapshot) {
	h.undoStack.push(s)
	if over := len(h.undoStack) - h.maxDepth; over > 0 {
		h.undoStack = h.undoStack[over:]
	}
	h.redoStack = nil
}

// Undo returns the state to restore and parks current on the redo stack.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	prev, ok := h.undoStack.pop()
	if !ok {
		return Snapshot{}, false
	}
	h.redoStack.push(current)
	return prev, true
}

// Redo is the mirror of Undo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	next, ok := h.redoStack.pop()
	if !ok {
		return Snapshot{}, false
	}
	h.undoStack.push(current)
	return next, true
}

func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// UndoLabel names the edit Undo would revert, or "" when there is none.
func (h *History) UndoLabel() string {
	s, _ := h.undoStack.peek()
	return s.Label
}

func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}
