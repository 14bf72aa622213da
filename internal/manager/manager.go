// Package manager owns the application state of the task list: the tasks,
// the add-form draft, the active filter, the edit slot and the theme flag.
// It reads the store once when opened and writes back after every change.
package manager

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tasklist/internal/logging"
	"github.com/nibzard/tasklist/internal/store"
	"github.com/nibzard/tasklist/internal/todo"
)

// Options configures a Manager.
type Options struct {
	Logger      *log.Logger
	NewID       todo.IDFunc
	DefaultDark bool // theme used when darkMode was never saved
	Now         func() time.Time
}

// Manager is the task manager. It is not safe for concurrent use.
type Manager struct {
	kv     store.Store
	logger *log.Logger
	now    func() time.Time
	newID  todo.IDFunc

	list   *todo.List
	draft  string
	filter todo.Filter
	edit   todo.EditMode
	dark   bool

	defaultDark bool
	loadErr     error
}

// Open creates a manager backed by kv and hydrates it.
func Open(kv store.Store, opts Options) (*Manager, error) {
	if kv == nil {
		return nil, fmt.Errorf("store is nil")
	}
	m := &Manager{
		kv:          kv,
		logger:      opts.Logger,
		now:         opts.Now,
		newID:       opts.NewID,
		filter:      todo.FilterAll,
		defaultDark: opts.DefaultDark,
	}
	if m.logger == nil {
		m.logger = logging.Discard()
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.newID == nil {
		m.newID = todo.NewID
	}
	m.list = todo.NewList(nil, m.newID)

	if err := m.Reload(); err != nil {
		return nil, err
	}
	return m, nil
}

// Reload re-reads tasks and the theme flag from the store. Malformed task
// data leaves an empty list and is reported by LoadError; store errors are
// returned.
func (m *Manager) Reload() error {
	m.loadErr = nil
	m.edit = todo.Viewing()

	raw, ok, err := m.kv.Get(store.KeyTasks)
	if err != nil {
		return fmt.Errorf("read %s: %w", store.KeyTasks, err)
	}
	tasks := []todo.Task{}
	assigned := 0
	if ok {
		tasks, assigned, m.loadErr = decodeTasks(raw, m.newID)
		if m.loadErr != nil {
			m.logger.Warn("ignoring stored tasks", "err", m.loadErr)
			tasks = []todo.Task{}
			assigned = 0
		}
	}
	m.list.Replace(tasks)
	if assigned > 0 {
		// Ids handed out on load must survive into the next session.
		m.logger.Info("assigned ids to stored tasks", "count", assigned)
		_ = m.saveTasks()
	}

	rawDark, ok, err := m.kv.Get(store.KeyDarkMode)
	if err != nil {
		return fmt.Errorf("read %s: %w", store.KeyDarkMode, err)
	}
	if ok {
		m.dark = todo.UnmarshalDark(rawDark)
	} else {
		m.dark = m.defaultDark
	}

	m.logger.Debug("loaded state", "tasks", m.list.Len(), "dark", m.dark)
	return nil
}

// decodeTasks validates and parses raw, reporting how many tasks needed a
// fresh id.
func decodeTasks(raw string, newID todo.IDFunc) ([]todo.Task, int, error) {
	if err := todo.ValidateTasks(raw).Err(); err != nil {
		return nil, 0, err
	}
	assigned := 0
	tasks, err := todo.UnmarshalTasks(raw, func() string {
		assigned++
		return newID()
	})
	if err != nil {
		return nil, 0, err
	}
	return tasks, assigned, nil
}

// LoadError returns why stored tasks were discarded by the last load, if they were.
func (m *Manager) LoadError() error {
	return m.loadErr
}

// Tasks returns all tasks in insertion order.
func (m *Manager) Tasks() []todo.Task {
	return m.list.Tasks()
}

// Get returns the task with id.
func (m *Manager) Get(id string) (todo.Task, bool) {
	return m.list.Get(id)
}

// Visible returns the tasks matching the active filter.
func (m *Manager) Visible() []todo.Task {
	return m.list.Filter(m.filter)
}

// Count returns the number of visible tasks.
func (m *Manager) Count() int {
	return len(m.Visible())
}

// CountLabel returns the visible-task label, e.g. "3 tasks".
func (m *Manager) CountLabel() string {
	return todo.CountLabel(m.Count())
}

// Resolve finds a visible task by row number or id prefix.
func (m *Manager) Resolve(ref string) (todo.Task, error) {
	return todo.Resolve(m.Visible(), ref)
}

// Filter returns the active filter.
func (m *Manager) Filter() todo.Filter {
	return m.filter
}

// Edit returns the edit slot.
func (m *Manager) Edit() todo.EditMode {
	return m.edit
}

// Dark reports whether the dark theme is active.
func (m *Manager) Dark() bool {
	return m.dark
}

// Draft returns the add-form text.
func (m *Manager) Draft() string {
	return m.draft
}

// SetDraft replaces the add-form text.
func (m *Manager) SetDraft(text string) {
	m.draft = text
}

// Submit adds the draft as a new task.
func (m *Manager) Submit() (todo.Task, error) {
	return m.Add(m.draft)
}

// Add appends a task with text and clears the draft. Blank text returns
// todo.ErrEmptyText and changes nothing.
func (m *Manager) Add(text string) (todo.Task, error) {
	task, err := m.list.Add(text)
	if err != nil {
		return todo.Task{}, err
	}
	m.draft = ""
	m.logger.Info("task added", "id", task.ID)
	return task, m.saveTasks()
}

// Toggle flips the completion flag of the task with id.
func (m *Manager) Toggle(id string) error {
	if err := m.list.Toggle(id); err != nil {
		return err
	}
	m.logger.Info("task toggled", "id", id)
	return m.saveTasks()
}

// Remove deletes the task with id. An edit of that task is abandoned.
func (m *Manager) Remove(id string) error {
	if err := m.list.Remove(id); err != nil {
		return err
	}
	if m.edit.Targets(id) {
		m.edit = todo.Viewing()
	}
	m.logger.Info("task removed", "id", id)
	return m.saveTasks()
}

// BeginEdit starts editing the task with id, seeded with its current text.
// Any draft for another task is discarded.
func (m *Manager) BeginEdit(id string) error {
	task, ok := m.list.Get(id)
	if !ok {
		return fmt.Errorf("%w: %q", todo.ErrNotFound, id)
	}
	m.edit = todo.Editing(id, task.Text)
	return nil
}

// SetEditDraft replaces the edit draft.
func (m *Manager) SetEditDraft(text string) error {
	if !m.edit.Active() {
		return todo.ErrNotEditing
	}
	m.edit.Draft = text
	return nil
}

// CommitEdit writes the edit draft into the edited task and stops editing.
// The draft may be empty.
func (m *Manager) CommitEdit() error {
	if !m.edit.Active() {
		return todo.ErrNotEditing
	}
	edit := m.edit
	m.edit = todo.Viewing()
	if err := m.list.SetText(edit.ID, edit.Draft); err != nil {
		return err
	}
	m.logger.Info("task edited", "id", edit.ID)
	return m.saveTasks()
}

// CancelEdit stops editing without changing any task.
func (m *Manager) CancelEdit() {
	m.edit = todo.Viewing()
}

// SetDue sets the due date (YYYY-MM-DD) of the task with id. Empty clears it.
func (m *Manager) SetDue(id, due string) error {
	due = strings.TrimSpace(due)
	if err := m.list.SetDue(id, due); err != nil {
		return err
	}
	m.logger.Info("due date set", "id", id, "due", due)
	return m.saveTasks()
}

// SetFilter selects the filter named name. The filter is not persisted.
func (m *Manager) SetFilter(name string) error {
	f, err := todo.ParseFilter(name)
	if err != nil {
		return err
	}
	m.filter = f
	return nil
}

// CycleFilter selects the next filter and returns it.
func (m *Manager) CycleFilter() todo.Filter {
	m.filter = m.filter.Next()
	return m.filter
}

// ToggleTheme flips the theme flag and persists it.
func (m *Manager) ToggleTheme() error {
	return m.SetDark(!m.dark)
}

// SetDark sets the theme flag and persists it.
func (m *Manager) SetDark(dark bool) error {
	m.dark = dark
	m.logger.Info("theme changed", "dark", dark)
	if err := m.kv.Set(store.KeyDarkMode, todo.MarshalDark(dark)); err != nil {
		m.logger.Error("save theme", "err", err)
		return fmt.Errorf("save %s: %w", store.KeyDarkMode, err)
	}
	return nil
}

// Overdue reports whether task is incomplete and past its due date today.
func (m *Manager) Overdue(task todo.Task) bool {
	return task.Overdue(m.now())
}

func (m *Manager) saveTasks() error {
	data, err := todo.MarshalTasks(m.list.Tasks())
	if err != nil {
		return err
	}
	if err := m.kv.Set(store.KeyTasks, data); err != nil {
		m.logger.Error("save tasks", "err", err)
		return fmt.Errorf("save %s: %w", store.KeyTasks, err)
	}
	return nil
}
