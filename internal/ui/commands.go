package ui

import (
	"time"

	"github.com/atomicstack/termpick/internal/logging"
	"github.com/atomicstack/termpick/internal/menu"
	"github.com/atomicstack/termpick/internal/ui/command"
	"github.com/atomicstack/termpick/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const logTickInterval = 100 * time.Millisecond

// logTickMsg redraws the log panel while an action streams output.
type logTickMsg struct{}

func logTick() tea.Cmd {
	return tea.Tick(logTickInterval, func(time.Time) tea.Msg { return logTickMsg{} })
}

func (m *MenuModel) invoke() tea.Cmd {
	focus := m.nav.Focus()
	if focus == menu.NoNode {
		return nil
	}
	tree := m.nav.Tree()
	cmd := m.bus.Execute(m.ctx, command.Request{
		ID:    focus,
		Label: tree.Node(focus).Name,
		Tree:  tree,
		Out:   m.log,
	})
	if cmd == nil {
		return nil
	}
	m.running = true
	m.follow = true
	m.lastErr = nil
	return tea.Batch(cmd, logTick())
}

func (m *MenuModel) handleLogTickMsg(tea.Msg) tea.Cmd {
	if !m.running {
		return nil
	}
	return logTick()
}

func (m *MenuModel) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result := msg.(command.ResultMsg)
	m.running = false
	m.follow = true
	if result.Err != nil {
		m.lastErr = result.Err
		logging.Error(result.Err)
		return nil
	}
	if !result.Outcome.Done || m.status != state.StatusActive {
		return nil
	}
	m.result = result.Outcome.Value
	m.status = state.StatusCommitted
	return tea.Quit
}
