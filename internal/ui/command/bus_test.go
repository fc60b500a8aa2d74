package command

import (
	"context"
	"io"
	"testing"

	"github.com/atomicstack/termpick/internal/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteRunsActionOnce(t *testing.T) {
	calls := 0
	tree := menu.NewTree()
	id := tree.MustAdd(menu.Root, menu.Node{Name: "Run", Returns: true, Action: func(context.Context, io.Writer) (any, error) {
		calls++
		return "ok", nil
	}})
	bus := New()
	log := menu.NewOutputLog(10)

	cmd := bus.Execute(context.Background(), Request{ID: id, Label: "Run", Tree: tree, Out: log})
	require.NotNil(t, cmd)
	assert.True(t, bus.Running())
	assert.Nil(t, bus.Execute(context.Background(), Request{ID: id, Label: "Run", Tree: tree}), "second activation is dropped while busy")

	msg, ok := cmd().(ResultMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.True(t, msg.Outcome.Done)
	assert.Equal(t, "ok", msg.Outcome.Value)
	assert.Equal(t, 1, calls)
	assert.False(t, bus.Running())
	assert.NotEmpty(t, log.Lines())
}

func TestExecuteSkipsNodesWithoutAction(t *testing.T) {
	tree := menu.NewTree()
	id := tree.MustAdd(menu.Root, menu.Node{Name: "Folder"})
	bus := New()
	assert.Nil(t, bus.Execute(context.Background(), Request{ID: id, Tree: tree}))
	assert.False(t, bus.Running())
}
