package ui

import (
	"context"
	"reflect"
	"strings"

	"github.com/atomicstack/termpick/internal/format/table"
	"github.com/atomicstack/termpick/internal/logging/events"
	"github.com/atomicstack/termpick/internal/menu"
	"github.com/atomicstack/termpick/internal/theme"
	"github.com/atomicstack/termpick/internal/ui/command"
	"github.com/atomicstack/termpick/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	menuDebugRows   = 2
	breadcrumbRows  = 3
	defaultRootName = "Root"
	// menuMinRows leaves one entry row under the breadcrumb and a log row
	// under the running indicator.
	menuMinRows = 2 * (breadcrumbRows + 1)
)

// MenuOptions configures the menu widget.
type MenuOptions struct {
	RootName string
	LogLines int
}

// MenuModel walks a menu tree and runs node actions, showing their output in
// a log panel on the bottom half of the surface.
type MenuModel struct {
	frame
	nav      *menu.Navigator
	rootName string
	keys     menuKeyMap
	bus      *command.Bus
	log      *menu.OutputLog
	logView  viewport.Model
	follow   bool
	ctx      context.Context
	cancel   context.CancelFunc
	running  bool
	top      int
	status   state.Status
	result   any
	lastErr  error
}

// NewMenuModel builds a menu widget over tree. The context bounds every
// action the session runs.
func NewMenuModel(ctx context.Context, tree *menu.Tree, opts Options, mo MenuOptions) *MenuModel {
	if ctx == nil {
		ctx = context.Background()
	}
	runCtx, cancel := context.WithCancel(ctx)
	rootName := mo.RootName
	if rootName == "" {
		rootName = defaultRootName
	}
	m := &MenuModel{
		frame:    newFrame(opts),
		nav:      menu.NewNavigator(tree),
		rootName: rootName,
		keys:     newMenuKeyMap(opts.Exitable),
		bus:      command.New(),
		log:      menu.NewOutputLog(mo.LogLines),
		logView:  viewport.New(0, 0),
		follow:   true,
		ctx:      runCtx,
		cancel:   cancel,
	}
	m.register(map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.ResultMsg{}): m.handleActionResultMsg,
		reflect.TypeOf(logTickMsg{}):        m.handleLogTickMsg,
	})
	return m
}

// Init is part of the tea.Model interface.
func (m *MenuModel) Init() tea.Cmd {
	return m.checkSurface("menu", menuDebugRows, menuMinRows)
}

// Update responds to Bubble Tea messages.
func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.route(msg)
}

// Navigator exposes the tree walker.
func (m *MenuModel) Navigator() *menu.Navigator { return m.nav }

// Log exposes the action output buffer.
func (m *MenuModel) Log() *menu.OutputLog { return m.log }

// Running reports whether an action is in flight.
func (m *MenuModel) Running() bool { return m.running }

// LastError is the error of the most recent failed action.
func (m *MenuModel) LastError() error { return m.lastErr }

// Result returns the value of the completing node, the final status and any
// session error.
func (m *MenuModel) Result() (any, state.Status, error) {
	return m.result, m.status, m.err
}

// Close releases the action context.
func (m *MenuModel) Close() {
	m.cancel()
}

func (m *MenuModel) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	m.resize(msg.(tea.WindowSizeMsg))
	return m.checkSurface("menu", menuDebugRows, menuMinRows)
}

func (m *MenuModel) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	if key.Matches(keyMsg, m.keys.Interrupt) {
		m.cancel()
		return m.interrupt()
	}
	if m.running || m.status != state.StatusActive {
		return nil
	}
	tree := m.nav.Tree()
	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		m.status = state.StatusCancelled
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Next):
		if m.nav.Next() {
			events.Menu.Focus(tree.Node(m.nav.Focus()).Name)
		}
	case key.Matches(keyMsg, m.keys.Prev):
		if m.nav.Prev() {
			events.Menu.Focus(tree.Node(m.nav.Focus()).Name)
		}
	case key.Matches(keyMsg, m.keys.Descend):
		if m.nav.Descend() {
			m.top = 0
			id, _ := m.nav.Parent().Node()
			events.Menu.Descend(tree.Node(id).Name)
		}
	case key.Matches(keyMsg, m.keys.Ascend):
		if m.nav.Ascend() {
			m.top = 0
			events.Menu.Ascend(m.nav.Breadcrumb(m.rootName))
		}
	case key.Matches(keyMsg, m.keys.LogUp):
		m.scrollLog(-1)
	case key.Matches(keyMsg, m.keys.LogDown):
		m.scrollLog(1)
	case key.Matches(keyMsg, m.keys.Invoke):
		return m.invoke()
	}
	return nil
}

// View implements tea.Model.
func (m *MenuModel) View() string {
	m.redraws++
	menuRows, logRows := m.panelRows()
	body := m.menuPanel(menuRows)
	body = append(body, m.logPanel(logRows)...)
	offset := -1
	if !m.follow {
		offset = m.logView.YOffset
	}
	debug := m.debugLines([]table.Field{
		{Key: "draw_count", Value: m.redraws},
		{Key: "output_position", Value: offset},
	})
	return m.compose(body, debug, m.footerLine(m.keys))
}

// panelRows splits the body between the menu and the log. Unknown surface
// sizes give the menu whatever it needs and the log a fixed slice.
func (m *MenuModel) panelRows() (int, int) {
	h := m.bodyHeight(menuDebugRows)
	if h < 0 {
		return -1, 10
	}
	menuRows := h / 2
	return menuRows, h - menuRows
}

func (m *MenuModel) menuPanel(rows int) []styledLine {
	lines := make([]styledLine, 0, 8)
	for _, text := range breadcrumbBox(m.nav.Breadcrumb(m.rootName)) {
		lines = append(lines, styledLine{text: text, id: theme.Normal})
	}
	tree := m.nav.Tree()
	items := m.nav.Items()
	window := state.Window{Top: 0, Bottom: len(items) - 1}
	if rows > 0 {
		focusIdx := 0
		for i, id := range items {
			if id == m.nav.Focus() {
				focusIdx = i
			}
		}
		window = state.ComputeWindow(focusIdx, len(items), rows-breadcrumbRows, m.top)
		m.top = window.Top
	}
	for i := window.Top; i <= window.Bottom && i < len(items); i++ {
		id := items[i]
		node := tree.Node(id)
		text := node.Name
		lineID := theme.Normal
		if id == m.nav.Focus() {
			text = ">" + text + "<"
			lineID = theme.Highlighted
		}
		if node.Action != nil {
			text += "*"
		}
		if tree.HasChildren(id) {
			text += " >>"
		}
		lines = append(lines, styledLine{text: text, id: lineID})
	}
	for rows > 0 && len(lines) < rows {
		lines = append(lines, styledLine{})
	}
	return lines
}

func (m *MenuModel) logPanel(rows int) []styledLine {
	status := ""
	if m.running {
		status = "running"
	}
	lines := []styledLine{{text: status, id: theme.Normal}}
	m.logView.Width = m.width
	m.logView.Height = rows - 1
	if m.logView.Height < 1 {
		m.logView.Height = 1
	}
	m.refreshLog()
	for _, text := range strings.Split(m.logView.View(), "\n") {
		lines = append(lines, styledLine{text: strings.TrimRight(text, " "), id: theme.Normal})
	}
	return lines
}

func (m *MenuModel) refreshLog() {
	m.logView.SetContent(m.log.String())
	if m.follow {
		m.logView.GotoBottom()
	}
}

func (m *MenuModel) scrollLog(delta int) {
	m.refreshLog()
	m.logView.SetYOffset(m.logView.YOffset + delta)
	m.follow = m.logView.AtBottom()
	events.Menu.LogScroll(m.logView.YOffset)
}

// breadcrumbBox frames the breadcrumb names in a one-row box.
func breadcrumbBox(names []string) []string {
	borders := make([]string, len(names))
	for i, name := range names {
		borders[i] = strings.Repeat("-", len([]rune(name)))
	}
	border := "+" + strings.Join(borders, "+") + "+"
	return []string{border, "|" + strings.Join(names, "|") + "|", border}
}
