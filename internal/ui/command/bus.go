package command

import (
	"context"
	"fmt"
	"io"

	"github.com/atomicstack/termpick/internal/logging/events"
	"github.com/atomicstack/termpick/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/atomic"
)

// Request encapsulates one activation of a menu node.
type Request struct {
	ID    menu.NodeID
	Label string
	Tree  *menu.Tree
	Out   io.Writer
}

// ResultMsg is delivered to the model once the action has returned.
type ResultMsg struct {
	Request Request
	Outcome menu.Outcome
	Err     error
}

// Bus runs menu actions off the UI goroutine. At most one action is in flight
// at a time; activations made while one is running are dropped.
type Bus struct {
	running atomic.Bool
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Running reports whether an action is currently executing.
func (b *Bus) Running() bool {
	return b.running.Load()
}

// Execute claims the bus and returns a command that invokes the action and
// reports a ResultMsg. It returns nil when another action is still running or
// the node has nothing to run.
func (b *Bus) Execute(ctx context.Context, req Request) tea.Cmd {
	id := fmt.Sprint(int(req.ID))
	if req.Tree == nil || req.Tree.Node(req.ID).Action == nil {
		events.Command.Skip(id, req.Label)
		return nil
	}
	if !b.running.CompareAndSwap(false, true) {
		events.Command.Busy(id, req.Label)
		return nil
	}
	events.Command.Queue(id, req.Label)
	return func() tea.Msg {
		defer b.running.Store(false)
		outcome, err := req.Tree.Invoke(ctx, req.ID, req.Out)
		events.Command.Result(id, req.Label, outcome.Done)
		return ResultMsg{Request: req, Outcome: outcome, Err: err}
	}
}
