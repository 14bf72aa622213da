package todo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DueLayout is the layout of a due date.
const DueLayout = "2006-01-02"

var (
	// ErrEmptyText is returned when a task would be added with blank text.
	ErrEmptyText = errors.New("task text is empty")
	// ErrNotFound is returned when no task has the requested id.
	ErrNotFound = errors.New("task not found")
	// ErrInvalidDue is returned for due dates that are neither empty nor YYYY-MM-DD.
	ErrInvalidDue = errors.New("invalid due date")
)

// Task represents a single to-do item.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Due       string `json:"due"`
}

// HasDue reports whether the task has a due date.
func (t Task) HasDue() bool {
	return t.Due != ""
}

// Overdue reports whether an incomplete task is past its due date.
func (t Task) Overdue(now time.Time) bool {
	if t.Completed || t.Due == "" {
		return false
	}
	due, err := time.ParseInLocation(DueLayout, t.Due, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return due.Before(today)
}

// ValidateDue checks that s is empty or a YYYY-MM-DD date.
func ValidateDue(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(DueLayout, s); err != nil {
		return fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDue, s)
	}
	return nil
}

// IDFunc generates task ids.
type IDFunc func() string

// NewID returns a random task id.
func NewID() string {
	return uuid.NewString()
}

// List is an ordered task list. Insertion order is authoritative.
type List struct {
	tasks []Task
	newID IDFunc
}

// NewList creates a list holding tasks. A nil newID uses NewID.
func NewList(tasks []Task, newID IDFunc) *List {
	if newID == nil {
		newID = NewID
	}
	copied := make([]Task, len(tasks))
	copy(copied, tasks)
	return &List{tasks: copied, newID: newID}
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of the tasks in insertion order.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Replace swaps the whole list for tasks.
func (l *List) Replace(tasks []Task) {
	l.tasks = make([]Task, len(tasks))
	copy(l.tasks, tasks)
}

// Index returns the position of the task with id, or -1.
func (l *List) Index(id string) int {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns the task with id.
func (l *List) Get(id string) (Task, bool) {
	i := l.Index(id)
	if i < 0 {
		return Task{}, false
	}
	return l.tasks[i], true
}

// Add appends a new incomplete task with no due date.
func (l *List) Add(text string) (Task, error) {
	if strings.TrimSpace(text) == "" {
		return Task{}, ErrEmptyText
	}
	task := Task{ID: l.newID(), Text: text}
	l.tasks = append(l.tasks, task)
	return task, nil
}

// Update replaces the task with id by the result of updater applied to a copy.
func (l *List) Update(id string, updater func(*Task)) error {
	i := l.Index(id)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	updated := l.tasks[i]
	updater(&updated)
	updated.ID = id
	l.tasks[i] = updated
	return nil
}

// Toggle flips the completion flag of the task with id.
func (l *List) Toggle(id string) error {
	return l.Update(id, func(t *Task) {
		t.Completed = !t.Completed
	})
}

// SetText replaces the text of the task with id. Empty text is allowed.
func (l *List) SetText(id, text string) error {
	return l.Update(id, func(t *Task) {
		t.Text = text
	})
}

// SetDue sets the due date of the task with id.
func (l *List) SetDue(id, due string) error {
	if err := ValidateDue(due); err != nil {
		return err
	}
	return l.Update(id, func(t *Task) {
		t.Due = due
	})
}

// Remove deletes the task with id. Later tasks keep their relative order.
func (l *List) Remove(id string) error {
	i := l.Index(id)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return nil
}

// Filter returns the tasks matching f, in insertion order.
func (l *List) Filter(f Filter) []Task {
	out := make([]Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Resolve finds a task by a reference: a 1-based position within visible,
// written as "3" or "#3", or a unique id prefix.
func Resolve(visible []Task, ref string) (Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Task{}, fmt.Errorf("%w: empty reference", ErrNotFound)
	}
	if n, ok := parsePosition(ref); ok {
		if n < 1 || n > len(visible) {
			return Task{}, fmt.Errorf("%w: position %s out of range (1-%d)", ErrNotFound, strings.TrimPrefix(ref, "#"), len(visible))
		}
		return visible[n-1], nil
	}

	var match *Task
	for i := range visible {
		if !strings.HasPrefix(visible[i].ID, ref) {
			continue
		}
		if match != nil {
			return Task{}, fmt.Errorf("ambiguous task reference %q", ref)
		}
		match = &visible[i]
	}
	if match == nil {
		return Task{}, fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	return *match, nil
}

func parsePosition(ref string) (int, bool) {
	ref = strings.TrimPrefix(ref, "#")
	if ref == "" {
		return 0, false
	}
	if strings.TrimLeft(ref, "0123456789") != "" {
		return 0, false
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		// Too many digits for an int: a position, but never a valid one.
		return math.MaxInt, true
	}
	return n, true
}
