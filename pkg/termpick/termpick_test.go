package termpick_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/atomicstack/termpick/pkg/termpick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func options(keys string) termpick.Options {
	return termpick.Options{
		Exitable: true,
		Scroll:   true,
		Input:    strings.NewReader(keys),
		Output:   io.Discard,
	}
}

type host struct {
	name string
	port int
}

func TestChooseWithLabel(t *testing.T) {
	hosts := []host{{"db", 5432}, {"web", 443}}
	got, err := termpick.Choose(context.Background(), hosts, options("\x1b[B\r"), func(h host) string { return h.name })
	require.NoError(t, err)
	assert.Equal(t, host{"web", 443}, got)
}

func TestChooseManyCancelled(t *testing.T) {
	_, err := termpick.ChooseMany(context.Background(), []int{1, 2}, options(" \x03"), nil)
	require.Error(t, err)
	assert.True(t, termpick.IsCancelled(err))
}

func TestChooseEmpty(t *testing.T) {
	_, err := termpick.Choose(context.Background(), nil, options(""), func(s string) string { return s })
	require.ErrorIs(t, err, termpick.ErrEmptyContent)
}

func TestPromptWithExpr(t *testing.T) {
	valid, err := termpick.Expr("input.matches('^[0-9]+$')")
	require.NoError(t, err)
	got, err := termpick.Prompt(context.Background(), options("x\x7f42\r"), termpick.PromptOptions{Validate: valid})
	require.NoError(t, err)
	assert.Equal(t, "42", got)
}

func TestMenuBuiltInCode(t *testing.T) {
	tree := termpick.NewTree()
	tools := tree.MustAdd(termpick.Root, termpick.Node{Name: "Tools"})
	tree.MustAdd(termpick.Ref(tools), termpick.ValueItem("Hammer", "hammer"))
	tree.MustAdd(termpick.Root, termpick.ExitItem(""))

	got, err := termpick.Menu(context.Background(), tree, options("\x1b[C\r"), termpick.MenuOptions{})
	require.NoError(t, err)
	assert.Equal(t, "hammer", got)
}
