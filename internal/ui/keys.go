package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the list-mode key bindings.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Add        key.Binding
	Toggle     key.Binding
	Edit       key.Binding
	Due        key.Binding
	ClearDue   key.Binding
	Remove     key.Binding
	FilterAll  key.Binding
	FilterDone key.Binding
	FilterOpen key.Binding
	NextFilter key.Binding
	Theme      key.Binding
	Help       key.Binding
	Quit       key.Binding
	Submit     key.Binding
	Cancel     key.Binding
	ForceQuit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "i"),
			key.WithHelp("a", "add task"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e/enter", "edit"),
		),
		Due: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "due date"),
		),
		ClearDue: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "clear due"),
		),
		Remove: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("del", "delete"),
		),
		FilterAll: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "all"),
		),
		FilterDone: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "completed"),
		),
		FilterOpen: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "incomplete"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next filter"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Edit, k.Remove, k.NextFilter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Add, k.Toggle},
		{k.Edit, k.Due, k.ClearDue, k.Remove},
		{k.FilterAll, k.FilterDone, k.FilterOpen, k.NextFilter},
		{k.Theme, k.Help, k.Quit},
	}
}

// inputKeys is the help shown while a text field has focus.
type inputKeys struct {
	submit key.Binding
	cancel key.Binding
}

func (k inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.submit, k.cancel}
}

func (k inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
