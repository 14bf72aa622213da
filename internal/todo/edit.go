package todo

import "errors"

// ErrNotEditing is returned when committing while no task is being edited.
var ErrNotEditing = errors.New("no task is being edited")

// EditMode is the single list-wide edit slot. The zero value is Viewing.
// At most one task is edited at a time; starting an edit on another task
// discards the previous draft.
type EditMode struct {
	ID    string
	Draft string
}

// Viewing returns the non-editing mode.
func Viewing() EditMode {
	return EditMode{}
}

// Editing returns the mode for editing id, seeded with draft.
func Editing(id, draft string) EditMode {
	return EditMode{ID: id, Draft: draft}
}

// Active reports whether a task is being edited.
func (e EditMode) Active() bool {
	return e.ID != ""
}

// Targets reports whether the edit slot holds the task with id.
func (e EditMode) Targets(id string) bool {
	return e.Active() && e.ID == id
}
