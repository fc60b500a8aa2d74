package ui

import (
	"errors"
	"reflect"
	"strings"

	"github.com/atomicstack/termpick/internal/format/table"
	"github.com/atomicstack/termpick/internal/logging/events"
	"github.com/atomicstack/termpick/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

const (
	inputDebugRows = 3
	passwordMask   = '*'
)

// InputOptions configures the text entry widget.
type InputOptions struct {
	Validator     state.Validator
	ErrorTemplate string
	// Password masks every typed character on screen. Editing is unaffected.
	Password bool
	Initial  string
}

// InputModel is the free-text entry widget.
type InputModel struct {
	frame
	text   *state.Text
	in     InputOptions
	keys   inputKeyMap
	cursor cursor.Model
	status state.Status
	result string
	errMsg string
}

// NewInputModel builds a text entry widget.
func NewInputModel(opts Options, in InputOptions) *InputModel {
	m := &InputModel{
		frame: newFrame(opts),
		text:  state.NewText(in.Initial),
		in:    in,
		keys:  newInputKeyMap(opts.Exitable),
	}
	c := cursor.New()
	c.Style = m.palette.Styles().Cursor.Copy()
	c.TextStyle = m.palette.Styles().Normal.Copy()
	c.SetMode(cursor.CursorStatic)
	c.Focus()
	m.cursor = c
	m.register(map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	})
	return m
}

// Init is part of the tea.Model interface.
func (m *InputModel) Init() tea.Cmd {
	return m.checkSurface("input", inputDebugRows, 2)
}

// Update responds to Bubble Tea messages.
func (m *InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.route(msg)
}

// Text exposes the edit buffer.
func (m *InputModel) Text() *state.Text { return m.text }

// ErrorMessage is the message from the last rejected commit.
func (m *InputModel) ErrorMessage() string { return m.errMsg }

// Result returns the accepted text, the final status and any session error.
func (m *InputModel) Result() (string, state.Status, error) {
	return m.result, m.status, m.err
}

func (m *InputModel) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	m.resize(msg.(tea.WindowSizeMsg))
	return m.checkSurface("input", inputDebugRows, 2)
}

func (m *InputModel) handleKeyMsg(msg tea.Msg) tea.Cmd {
	if m.status != state.StatusActive {
		return nil
	}
	keyMsg := msg.(tea.KeyMsg)
	switch {
	case key.Matches(keyMsg, m.keys.Interrupt):
		return m.interrupt()
	case key.Matches(keyMsg, m.keys.Cancel):
		m.status = state.StatusCancelled
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Commit):
		return m.commit()
	case key.Matches(keyMsg, m.keys.Left):
		m.edit("left", m.text.MoveBy(-1))
	case key.Matches(keyMsg, m.keys.Right):
		m.edit("right", m.text.MoveBy(1))
	case key.Matches(keyMsg, m.keys.Home):
		m.edit("home", m.text.Home())
	case key.Matches(keyMsg, m.keys.End):
		m.edit("end", m.text.End())
	case key.Matches(keyMsg, m.keys.Backspace):
		m.edit("backspace", m.text.Backspace())
	case key.Matches(keyMsg, m.keys.Delete):
		m.edit("delete", m.text.Delete())
	case keyMsg.Type == tea.KeySpace:
		m.edit("insert", m.text.Insert(' '))
	case keyMsg.Type == tea.KeyRunes && !keyMsg.Alt:
		m.edit("insert", m.text.InsertString(string(keyMsg.Runes)) > 0)
	}
	return nil
}

func (m *InputModel) edit(op string, changed bool) {
	if changed {
		events.Input.Edit(op, m.text.Cursor(), m.text.Len())
	}
}

func (m *InputModel) commit() tea.Cmd {
	value, err := m.text.Commit(m.in.Validator, m.in.ErrorTemplate)
	var verr *state.ValidationError
	if errors.As(err, &verr) {
		m.errMsg = verr.Message
		events.Input.Rejected(m.text.Len())
		return nil
	}
	m.errMsg = ""
	m.result = value
	m.status = state.StatusCommitted
	events.Input.Commit(m.text.Len())
	return tea.Quit
}

// View implements tea.Model.
func (m *InputModel) View() string {
	m.redraws++
	body := []styledLine{
		{text: m.errMsg, style: m.palette.Styles().Error},
		{text: m.renderEntry(), raw: true},
	}
	debug := m.debugLines([]table.Field{
		{Key: "cursor_pos", Value: m.text.Cursor()},
		{Key: "redraw_count", Value: m.redraws},
		{Key: "string", Value: m.text.String()},
	})
	return m.compose(body, debug, m.footerLine(m.keys))
}

// renderEntry draws the edit line with the caret, scrolled horizontally so
// the caret stays within the surface width.
func (m *InputModel) renderEntry() string {
	runes := m.text.Runes()
	if m.in.Password {
		for i := range runes {
			runes[i] = passwordMask
		}
	}
	pos := m.text.Cursor()
	start := 0
	if m.width > 0 {
		cells := 1
		for start = pos; start > 0; start-- {
			w := runewidth.RuneWidth(runes[start-1])
			if cells+w > m.width {
				break
			}
			cells += w
		}
	}
	normal := m.palette.Styles().Normal
	var b strings.Builder
	if pos > start {
		b.WriteString(normal.Render(string(runes[start:pos])))
	}
	caret := " "
	if pos < len(runes) {
		caret = string(runes[pos])
	}
	m.cursor.SetChar(caret)
	b.WriteString(m.cursor.View())
	if pos+1 < len(runes) {
		b.WriteString(normal.Render(string(runes[pos+1:])))
	}
	return b.String()
}
