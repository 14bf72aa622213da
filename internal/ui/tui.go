// Package ui provides the terminal interface for the task list.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/tasklist/internal/manager"
	"github.com/nibzard/tasklist/internal/todo"
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

// tuiConfig holds TUI configuration.
type tuiConfig struct {
	dateFormat string
}

// WithDateFormat sets the Go time layout used to display due dates.
func WithDateFormat(layout string) TUIOption {
	return func(c *tuiConfig) {
		if layout != "" {
			c.dateFormat = layout
		}
	}
}

// RunTUI runs the interactive task list until the user quits or ctx ends.
func RunTUI(ctx context.Context, mgr *manager.Manager, opts ...TUIOption) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	return runProgram(ctx, newTUIModel(mgr, opts...))
}

func runProgram(ctx context.Context, model *tuiModel) error {
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// inputMode says what the text field is currently collecting.
type inputMode int

const (
	modeList inputMode = iota
	modeAdd
	modeEdit
	modeDue
)

type tuiModel struct {
	mgr        *manager.Manager
	keys       keyMap
	help       help.Model
	input      textinput.Model
	mode       inputMode
	cursor     int
	dueID      string
	status     string
	width      int
	dateFormat string
}

func newTUIModel(mgr *manager.Manager, opts ...TUIOption) *tuiModel {
	c := &tuiConfig{dateFormat: todo.DueLayout}
	for _, opt := range opts {
		opt(c)
	}

	input := textinput.New()
	input.Prompt = "› "
	input.CharLimit = 500

	return &tuiModel{
		mgr:        mgr,
		keys:       defaultKeyMap(),
		help:       help.New(),
		input:      input,
		dateFormat: c.dateFormat,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.mode != modeList {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	if m.mode != modeList {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *tuiModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	visible := m.mgr.Visible()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Add):
		return m, m.focusInput(modeAdd, m.mgr.Draft(), "What needs to be done?")
	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(todo.FilterAll)
	case key.Matches(msg, m.keys.FilterDone):
		m.setFilter(todo.FilterCompleted)
	case key.Matches(msg, m.keys.FilterOpen):
		m.setFilter(todo.FilterIncomplete)
	case key.Matches(msg, m.keys.NextFilter):
		m.mgr.CycleFilter()
		m.clampCursor()
	case key.Matches(msg, m.keys.Theme):
		m.report(m.mgr.ToggleTheme())
	}

	task, ok := m.selected(visible)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.report(m.mgr.Toggle(task.ID))
		m.clampCursor()
	case key.Matches(msg, m.keys.Edit):
		if err := m.mgr.BeginEdit(task.ID); err != nil {
			m.report(err)
			return m, nil
		}
		return m, m.focusInput(modeEdit, m.mgr.Edit().Draft, "")
	case key.Matches(msg, m.keys.Due):
		m.dueID = task.ID
		return m, m.focusInput(modeDue, task.Due, "YYYY-MM-DD")
	case key.Matches(msg, m.keys.ClearDue):
		m.report(m.mgr.SetDue(task.ID, ""))
	case key.Matches(msg, m.keys.Remove):
		m.report(m.mgr.Remove(task.ID))
		m.clampCursor()
	}
	return m, nil
}

func (m *tuiModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if m.mode == modeEdit {
			m.mgr.CancelEdit()
		}
		m.blurInput()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		m.submitInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	switch m.mode {
	case modeAdd:
		m.mgr.SetDraft(m.input.Value())
	case modeEdit:
		m.report(m.mgr.SetEditDraft(m.input.Value()))
	}
	return m, cmd
}

func (m *tuiModel) submitInput() {
	switch m.mode {
	case modeAdd:
		_, err := m.mgr.Submit()
		if errors.Is(err, todo.ErrEmptyText) {
			return
		}
		m.report(err)
		m.input.SetValue("")
	case modeEdit:
		m.report(m.mgr.CommitEdit())
		m.blurInput()
	case modeDue:
		if err := m.mgr.SetDue(m.dueID, m.input.Value()); err != nil {
			m.report(err)
			if errors.Is(err, todo.ErrInvalidDue) {
				return
			}
		}
		m.blurInput()
	}
}

func (m *tuiModel) focusInput(mode inputMode, value, placeholder string) tea.Cmd {
	m.mode = mode
	m.status = ""
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *tuiModel) blurInput() {
	m.mode = modeList
	m.dueID = ""
	m.input.Blur()
	m.input.SetValue("")
	m.clampCursor()
}

func (m *tuiModel) setFilter(f todo.Filter) {
	m.report(m.mgr.SetFilter(string(f)))
	m.clampCursor()
}

func (m *tuiModel) selected(visible []todo.Task) (todo.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(visible) {
		return todo.Task{}, false
	}
	return visible[m.cursor], true
}

func (m *tuiModel) clampCursor() {
	n := m.mgr.Count()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *tuiModel) report(err error) {
	if err != nil {
		m.status = err.Error()
	}
}

func (m *tuiModel) View() string {
	th := newTheme(m.mgr.Dark())

	var b strings.Builder
	m.writeForm(&b, th)
	writeFilters(&b, th, m.mgr.Filter())
	m.writeList(&b, th)
	b.WriteString(th.muted.Render(m.mgr.CountLabel()))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(th.status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.mode == modeList {
		b.WriteString(m.help.View(m.keys))
	} else {
		b.WriteString(m.help.View(inputKeys{submit: m.keys.Submit, cancel: m.keys.Cancel}))
	}

	return renderShell(th, m.width, b.String())
}

func (m *tuiModel) writeForm(b *strings.Builder, th theme) {
	switch m.mode {
	case modeAdd:
		b.WriteString(m.input.View())
	case modeDue:
		b.WriteString(th.muted.Render("Due date: "))
		b.WriteString(m.input.View())
	default:
		b.WriteString(th.muted.Render("Press a to add a task"))
	}
	b.WriteString("\n\n")
}

func writeFilters(b *strings.Builder, th theme, active todo.Filter) {
	for i, f := range todo.Filters() {
		label := fmt.Sprintf("%d %s", i+1, f)
		if f == active {
			b.WriteString(th.activeTab.Render(label))
		} else {
			b.WriteString(th.tab.Render(label))
		}
	}
	b.WriteString("\n\n")
}

func (m *tuiModel) writeList(b *strings.Builder, th theme) {
	visible := m.mgr.Visible()
	if len(visible) == 0 {
		b.WriteString(th.muted.Render("  Nothing here."))
		b.WriteString("\n\n")
		return
	}

	edit := m.mgr.Edit()
	for i, task := range visible {
		pointer := "  "
		if i == m.cursor {
			pointer = th.cursor.Render("> ")
		}
		b.WriteString(pointer)
		b.WriteString(checkbox(task))
		b.WriteString(" ")

		if m.mode == modeEdit && edit.Targets(task.ID) {
			b.WriteString(m.input.View())
		} else {
			b.WriteString(m.renderText(th, task, i == m.cursor))
		}
		if due := m.renderDue(th, task); due != "" {
			b.WriteString("  ")
			b.WriteString(due)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (m *tuiModel) renderText(th theme, task todo.Task, selected bool) string {
	switch {
	case task.Completed:
		return th.done.Render(task.Text)
	case selected:
		return th.cursor.Render(task.Text)
	default:
		return th.row.Render(task.Text)
	}
}

func (m *tuiModel) renderDue(th theme, task todo.Task) string {
	if !task.HasDue() {
		return ""
	}
	label := formatDue(task.Due, m.dateFormat)
	if m.mgr.Overdue(task) {
		return th.overdue.Render("overdue " + label)
	}
	return th.due.Render("due " + label)
}

func checkbox(task todo.Task) string {
	if task.Completed {
		return "[x]"
	}
	return "[ ]"
}

// formatDue renders a stored YYYY-MM-DD date with layout.
func formatDue(due, layout string) string {
	t, err := time.Parse(todo.DueLayout, due)
	if err != nil || layout == "" {
		return due
	}
	return t.Format(layout)
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
