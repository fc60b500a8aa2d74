package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/atomicstack/termpick/internal/menu"
	"github.com/atomicstack/termpick/internal/ui/state"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMenu builds:
//
//	Root
//	├── Menu
//	│   └── Save*
//	├── Utils
//	│   ├── Date*
//	│   └── Fail*
//	└── Pick*   (returns 42)
func testMenu(t *testing.T) *menu.Tree {
	t.Helper()
	tree := menu.NewTree()
	menuID := tree.MustAdd(menu.Root, menu.Node{Name: "Menu"})
	utils := tree.MustAdd(menu.Root, menu.Node{Name: "Utils"})
	tree.MustAdd(menu.Root, menu.ValueItem("Pick", 42))
	tree.MustAdd(menu.Ref(menuID), menu.Node{Name: "Save", Action: func(_ context.Context, out io.Writer) (any, error) {
		fmt.Fprintln(out, "saved")
		return nil, nil
	}})
	tree.MustAdd(menu.Ref(utils), menu.Node{Name: "Date", Action: func(_ context.Context, out io.Writer) (any, error) {
		fmt.Fprintln(out, "2026-01-01")
		return nil, nil
	}})
	tree.MustAdd(menu.Ref(utils), menu.Node{Name: "Fail", Action: func(context.Context, io.Writer) (any, error) {
		return nil, errors.New("boom")
	}})
	return tree
}

func newTestMenu(t *testing.T, opts Options) (*MenuModel, *Harness) {
	t.Helper()
	m := NewMenuModel(context.Background(), testMenu(t), opts, MenuOptions{})
	t.Cleanup(m.Close)
	return m, NewHarness(m)
}

func TestMenuInitialView(t *testing.T) {
	_, h := newTestMenu(t, Options{Exitable: true, Width: 40, Height: 20})
	lines := plainLines(h.View())
	require.Len(t, lines, 20)
	assert.Equal(t, []string{"+----+", "|Root|", "+----+", ">Menu< >>", "Utils >>", "Pick*"}, lines[:6])
}

func TestMenuDescendAscend(t *testing.T) {
	m, h := newTestMenu(t, Options{Exitable: true, Width: 40, Height: 20})
	h.Keys("right")
	lines := plainLines(h.View())
	assert.Equal(t, []string{"+----+----+", "|Root|Menu|", "+----+----+", ">Save<*"}, lines[:4])

	h.Keys("left")
	assert.Equal(t, []string{"Root"}, m.Navigator().Breadcrumb("Root"))
	lines = plainLines(h.View())
	assert.Equal(t, ">Menu< >>", lines[3])

	// Leaves have nothing to descend into; the root has nothing above it.
	h.Keys("left")
	assert.True(t, m.Navigator().Parent().IsRoot())
	h.Keys("up", "right")
	assert.True(t, m.Navigator().Parent().IsRoot())
	assert.Equal(t, "Pick", m.Navigator().Tree().Node(m.Navigator().Focus()).Name)
}

func TestMenuSiblingsWrap(t *testing.T) {
	m, h := newTestMenu(t, Options{})
	tree := m.Navigator().Tree()
	h.Keys("up")
	assert.Equal(t, "Pick", tree.Node(m.Navigator().Focus()).Name)
	h.Keys("down")
	assert.Equal(t, "Menu", tree.Node(m.Navigator().Focus()).Name)
}

func TestMenuReturningNodeEndsSession(t *testing.T) {
	m, h := newTestMenu(t, Options{Width: 40, Height: 20})
	h.Keys("down", "down", "enter")
	require.True(t, h.Quit())
	value, status, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, state.StatusCommitted, status)
	assert.Equal(t, 42, value)
	assert.Equal(t, []string{"--- Calling function for Pick ---", "--- Done. ---"}, m.Log().Lines())
}

func TestMenuActionOutputInLog(t *testing.T) {
	m, h := newTestMenu(t, Options{Width: 40, Height: 20})
	h.Keys("down", "right", "enter")
	if h.Quit() {
		t.Fatalf("expected non-returning action to keep the menu open")
	}
	assert.False(t, m.Running())
	view := ansi.Strip(h.View())
	assert.Contains(t, view, "--- Calling function for Date ---")
	assert.Contains(t, view, "2026-01-01")
	assert.Contains(t, view, "--- Done. ---")
}

func TestMenuActionErrorIsReported(t *testing.T) {
	m, h := newTestMenu(t, Options{Width: 40, Height: 20})
	h.Keys("down", "right", "down", "enter")
	require.False(t, h.Quit())
	require.Error(t, m.LastError())
	assert.Contains(t, m.LastError().Error(), "boom")
	assert.Contains(t, m.Log().String(), "error: boom")
	_, status, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, state.StatusActive, status)
}

func TestMenuIgnoresKeysWhileRunning(t *testing.T) {
	m, h := newTestMenu(t, Options{})
	h.Keys("right")
	_, cmd := m.Update(KeyMsg("enter"))
	require.NotNil(t, cmd)
	require.True(t, m.Running())

	focus := m.Navigator().Focus()
	m.Update(KeyMsg("down"))
	m.Update(KeyMsg("left"))
	assert.Equal(t, focus, m.Navigator().Focus())
	assert.False(t, m.Navigator().Parent().IsRoot())

	h.processCmd(cmd)
	assert.False(t, m.Running())
	assert.Contains(t, m.Log().String(), "saved")
}

func TestMenuNodeWithoutActionIsNoOp(t *testing.T) {
	m, h := newTestMenu(t, Options{})
	h.Keys("enter")
	assert.False(t, m.Running())
	assert.Equal(t, 0, m.Log().Len())
	assert.False(t, h.Quit())
}

func TestMenuCancel(t *testing.T) {
	m, h := newTestMenu(t, Options{Exitable: true})
	h.Keys("esc")
	require.True(t, h.Quit())
	_, status, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, state.StatusCancelled, status)
}

func TestMenuCtrlCInterrupts(t *testing.T) {
	m, h := newTestMenu(t, Options{})
	h.Keys("ctrl+c")
	require.True(t, h.Quit())
	_, _, err := m.Result()
	require.ErrorIs(t, err, ErrInterrupted)
}

func TestMenuSurfaceTooSmall(t *testing.T) {
	m, h := newTestMenu(t, Options{Width: 40, Height: 6})
	require.True(t, h.Quit())
	_, _, err := m.Result()
	var surface *SurfaceError
	require.ErrorAs(t, err, &surface)
	assert.Equal(t, "menu", surface.Op)
}

func TestMenuLogScroll(t *testing.T) {
	tree := menu.NewTree()
	tree.MustAdd(menu.Root, menu.Node{Name: "Many", Action: func(_ context.Context, out io.Writer) (any, error) {
		for i := 0; i < 30; i++ {
			fmt.Fprintf(out, "line %d\n", i)
		}
		return nil, nil
	}})
	m := NewMenuModel(context.Background(), tree, Options{Debug: true, Width: 40, Height: 23}, MenuOptions{})
	t.Cleanup(m.Close)
	h := NewHarness(m)
	h.Keys("enter")
	view := ansi.Strip(h.View())
	assert.Contains(t, view, "--- Done. ---")
	assert.Regexp(t, `output_position\s+= -1`, view)

	h.Keys("pgup")
	view = ansi.Strip(h.View())
	assert.NotContains(t, view, "--- Done. ---")
	assert.NotRegexp(t, `output_position\s+= -1`, view)

	h.Keys("pgdown")
	view = ansi.Strip(h.View())
	assert.Contains(t, view, "--- Done. ---")
	assert.Regexp(t, `output_position\s+= -1`, view)
}

func TestBreadcrumbBox(t *testing.T) {
	got := breadcrumbBox([]string{"Root", "Utils"})
	want := []string{"+----+-----+", "|Root|Utils|", "+----+-----+"}
	assert.Equal(t, want, got)
}
