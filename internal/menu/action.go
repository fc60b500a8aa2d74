package menu

import (
	"context"
	"fmt"
	"io"

	"github.com/atomicstack/termpick/internal/logging/events"
)

// Action is the work bound to a menu node. Anything it prints to out lands in
// the menu's log panel.
type Action func(ctx context.Context, out io.Writer) (any, error)

// Outcome describes what happened when a node was invoked.
type Outcome struct {
	// Ran is false when the node has no action bound.
	Ran bool
	// Done is true when the node ends the menu session.
	Done  bool
	Value any
}

// Invoke runs the action bound to id, bracketing its output with banner lines.
// It blocks until the action returns.
func (t *Tree) Invoke(ctx context.Context, id NodeID, out io.Writer) (Outcome, error) {
	node := t.Node(id)
	if node.Action == nil {
		return Outcome{}, nil
	}
	if out == nil {
		out = io.Discard
	}
	events.Menu.Invoke(node.Name)
	fmt.Fprintf(out, "--- Calling function for %s ---\n", node.Name)
	value, err := node.Action(ctx, out)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		events.Menu.Failed(node.Name, err)
		return Outcome{Ran: true}, fmt.Errorf("%s: %w", node.Name, err)
	}
	fmt.Fprintln(out, "--- Done. ---")
	return Outcome{Ran: true, Done: node.Returns, Value: value}, nil
}

// ExitItem is a node that ends the menu session with no value.
func ExitItem(name string) Node {
	if name == "" {
		name = "Exit"
	}
	return Node{
		Name:    name,
		Action:  func(context.Context, io.Writer) (any, error) { return nil, nil },
		Returns: true,
	}
}

// ValueItem is a node that ends the menu session with a fixed value.
func ValueItem(name string, value any) Node {
	return Node{
		Name:    name,
		Action:  func(context.Context, io.Writer) (any, error) { return value, nil },
		Returns: true,
	}
}
