package ui

import (
	"fmt"
	"reflect"

	"github.com/atomicstack/termpick/internal/format/table"
	"github.com/atomicstack/termpick/internal/logging/events"
	"github.com/atomicstack/termpick/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const listDebugRows = 4

// Labeler renders a content item as a list row.
type Labeler[T any] func(T) string

func defaultLabel[T any](item T) string { return fmt.Sprint(item) }

// moveByKey applies the movement bound to msg, if any.
func moveByKey[T any](sel *state.Selection[T], keys listKeyMap, msg tea.KeyMsg) (handled, moved bool) {
	switch {
	case key.Matches(msg, keys.Up):
		return true, sel.MoveUp()
	case key.Matches(msg, keys.Down):
		return true, sel.MoveDown()
	case key.Matches(msg, keys.PageUp):
		return true, sel.MovePageUp()
	case key.Matches(msg, keys.PageDown):
		return true, sel.MovePageDown()
	case key.Matches(msg, keys.Home):
		return true, sel.MoveHome()
	case key.Matches(msg, keys.End):
		return true, sel.MoveEnd()
	}
	return false, false
}

// listBody renders the visible window of sel and returns the rows.
func listBody[T any](f *frame, sel *state.Selection[T], label Labeler[T], chosen func(int) bool) ([]styledLine, state.Window) {
	var window state.Window
	if h := f.bodyHeight(listDebugRows); h > 0 {
		window = sel.Sync(h)
	} else {
		window = state.Window{Top: 0, Bottom: sel.Len() - 1}
	}
	lines := make([]styledLine, 0, window.Bottom-window.Top+1)
	for i := window.Top; i <= window.Bottom && i < sel.Len(); i++ {
		lines = append(lines, itemLine(label(sel.Item(i)), i == sel.Cursor(), chosen(i)))
	}
	return lines, window
}

// ChoiceModel is the single-select list widget.
type ChoiceModel[T any] struct {
	frame
	sel    *state.Selection[T]
	label  Labeler[T]
	keys   listKeyMap
	window state.Window
}

// NewChoiceModel builds a single-select widget over items. A nil label uses
// fmt.Sprint.
func NewChoiceModel[T any](items []T, opts Options, label Labeler[T]) (*ChoiceModel[T], error) {
	sel, err := state.NewSelection(items, opts.Exitable)
	if err != nil {
		return nil, err
	}
	if label == nil {
		label = defaultLabel[T]
	}
	m := &ChoiceModel[T]{frame: newFrame(opts), sel: sel, label: label, keys: newListKeyMap(opts.Exitable)}
	m.register(map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	})
	return m, nil
}

// Init is part of the tea.Model interface.
func (m *ChoiceModel[T]) Init() tea.Cmd {
	return m.checkSurface("choice", listDebugRows, 1)
}

// Update responds to Bubble Tea messages.
func (m *ChoiceModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.route(msg)
}

// Selection exposes the underlying state machine.
func (m *ChoiceModel[T]) Selection() *state.Selection[T] { return m.sel }

// Result returns the committed item, the final status and any session error.
func (m *ChoiceModel[T]) Result() (T, state.Status, error) {
	var zero T
	if m.err != nil || !m.sel.Committed() {
		return zero, m.sel.Status(), m.err
	}
	return m.sel.Current(), m.sel.Status(), nil
}

func (m *ChoiceModel[T]) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	m.resize(msg.(tea.WindowSizeMsg))
	return m.checkSurface("choice", listDebugRows, 1)
}

func (m *ChoiceModel[T]) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	switch {
	case key.Matches(keyMsg, m.keys.Interrupt):
		return m.interrupt()
	case key.Matches(keyMsg, m.keys.Commit):
		if _, ok := m.sel.Commit(); ok {
			events.Select.Commit(m.sel.Cursor())
			return tea.Quit
		}
		return nil
	case key.Matches(keyMsg, m.keys.Cancel):
		honoured := m.sel.Cancel()
		events.Select.Cancel(honoured)
		if honoured {
			return tea.Quit
		}
		return nil
	}
	if _, moved := moveByKey(m.sel, m.keys, keyMsg); moved {
		events.Select.Cursor(m.sel.Cursor(), m.sel.Top())
	}
	return nil
}

// View implements tea.Model.
func (m *ChoiceModel[T]) View() string {
	m.redraws++
	body, window := listBody(&m.frame, m.sel, m.label, func(int) bool { return false })
	m.window = window
	result := "None"
	if m.sel.Committed() {
		result = m.label(m.sel.Current())
	}
	debug := m.debugLines([]table.Field{
		{Key: "cursor_pos", Value: m.sel.Cursor()},
		{Key: "current_top", Value: window.Top},
		{Key: "redraw_count", Value: m.redraws},
		{Key: "result", Value: result},
	})
	return m.compose(body, debug, m.footerLine(m.keys))
}

// MultiModel is the multi-select list widget.
type MultiModel[T any] struct {
	frame
	multi  *state.Multi[T]
	label  Labeler[T]
	keys   multiKeyMap
	window state.Window
}

// NewMultiModel builds a multi-select widget over items.
func NewMultiModel[T any](items []T, opts Options, label Labeler[T]) (*MultiModel[T], error) {
	multi, err := state.NewMulti(items, opts.Exitable)
	if err != nil {
		return nil, err
	}
	if label == nil {
		label = defaultLabel[T]
	}
	m := &MultiModel[T]{frame: newFrame(opts), multi: multi, label: label, keys: newMultiKeyMap(opts.Exitable)}
	m.register(map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	})
	return m, nil
}

// Init is part of the tea.Model interface.
func (m *MultiModel[T]) Init() tea.Cmd {
	return m.checkSurface("multi", listDebugRows, 1)
}

// Update responds to Bubble Tea messages.
func (m *MultiModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.route(msg)
}

// Multi exposes the underlying overlay.
func (m *MultiModel[T]) Multi() *state.Multi[T] { return m.multi }

// Result returns the chosen items, the final status and any session error.
func (m *MultiModel[T]) Result() ([]T, state.Status, error) {
	if m.err != nil || !m.multi.Committed() {
		return nil, m.multi.Status(), m.err
	}
	return m.multi.ChosenItems(), m.multi.Status(), nil
}

func (m *MultiModel[T]) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	m.resize(msg.(tea.WindowSizeMsg))
	return m.checkSurface("multi", listDebugRows, 1)
}

func (m *MultiModel[T]) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	switch {
	case key.Matches(keyMsg, m.keys.Interrupt):
		return m.interrupt()
	case key.Matches(keyMsg, m.keys.Commit):
		if _, ok := m.multi.Commit(); ok {
			events.Multi.Commit(m.multi.Chosen())
			return tea.Quit
		}
		return nil
	case key.Matches(keyMsg, m.keys.Cancel):
		honoured := m.multi.Cancel()
		events.Multi.Cancel(honoured)
		if honoured {
			return tea.Quit
		}
		return nil
	case key.Matches(keyMsg, m.keys.Toggle):
		if m.multi.Toggle() {
			events.Multi.Toggle(m.multi.Cursor(), m.multi.Chosen())
		}
		return nil
	case key.Matches(keyMsg, m.keys.Invert):
		if m.multi.Invert() {
			events.Multi.Invert(m.multi.Chosen())
		}
		return nil
	case key.Matches(keyMsg, m.keys.Clear):
		if m.multi.Clear() {
			events.Multi.Clear()
		}
		return nil
	case key.Matches(keyMsg, m.keys.Undo):
		events.Multi.Undo(m.multi.Undo(), m.multi.UndoDepth())
		return nil
	}
	if _, moved := moveByKey(m.multi.Selection, m.keys.listKeyMap, keyMsg); moved {
		events.Multi.Cursor(m.multi.Cursor(), m.multi.Top())
	}
	return nil
}

// View implements tea.Model.
func (m *MultiModel[T]) View() string {
	m.redraws++
	body, window := listBody(&m.frame, m.multi.Selection, m.label, m.multi.IsChosen)
	m.window = window
	labels := make([]string, 0, len(m.multi.Chosen()))
	for _, item := range m.multi.ChosenItems() {
		labels = append(labels, m.label(item))
	}
	debug := m.debugLines([]table.Field{
		{Key: "cursor_pos", Value: m.multi.Cursor()},
		{Key: "current_top", Value: window.Top},
		{Key: "redraw_count", Value: m.redraws},
		{Key: "result", Value: labels},
	})
	return m.compose(body, debug, m.footerLine(m.keys))
}
