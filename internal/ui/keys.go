package ui

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Commit    key.Binding
	Cancel    key.Binding
	Interrupt key.Binding
}

func newListKeyMap(exitable bool) listKeyMap {
	k := listKeyMap{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	}
	k.Cancel.SetEnabled(exitable)
	return k
}

func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Commit, k.Cancel}
}

func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Home, k.End, k.Commit, k.Cancel},
	}
}

type multiKeyMap struct {
	listKeyMap
	Toggle key.Binding
	Invert key.Binding
	Clear  key.Binding
	Undo   key.Binding
}

func newMultiKeyMap(exitable bool) multiKeyMap {
	k := multiKeyMap{
		listKeyMap: newListKeyMap(exitable),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Invert:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "invert")),
		Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Undo:       key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
	}
	k.Commit.SetHelp("enter", "done")
	return k
}

func (k multiKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Invert, k.Clear, k.Undo, k.Commit, k.Cancel}
}

func (k multiKeyMap) FullHelp() [][]key.Binding {
	return append(k.listKeyMap.FullHelp(), []key.Binding{k.Toggle, k.Invert, k.Clear, k.Undo})
}

type inputKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Commit    key.Binding
	Cancel    key.Binding
	Interrupt key.Binding
}

func newInputKeyMap(exitable bool) inputKeyMap {
	k := inputKeyMap{
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "start")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "end")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete back")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete")),
		Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	}
	k.Cancel.SetEnabled(exitable)
	return k
}

func (k inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Cancel}
}

func (k inputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Home, k.End},
		{k.Backspace, k.Delete, k.Commit, k.Cancel},
	}
}

type menuKeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Descend   key.Binding
	Ascend    key.Binding
	Invoke    key.Binding
	LogUp     key.Binding
	LogDown   key.Binding
	Cancel    key.Binding
	Interrupt key.Binding
}

func newMenuKeyMap(exitable bool) menuKeyMap {
	k := menuKeyMap{
		Next:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next")),
		Prev:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous")),
		Descend:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "open")),
		Ascend:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "back")),
		Invoke:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		LogUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "log up")),
		LogDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "log down")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	}
	k.Cancel.SetEnabled(exitable)
	return k
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Descend, k.Ascend, k.Invoke, k.Cancel}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Descend, k.Ascend},
		{k.Invoke, k.LogUp, k.LogDown, k.Cancel},
	}
}
