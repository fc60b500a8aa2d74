package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/termpick/internal/ui/state"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minLength(n int) state.Validator {
	return func(s string) bool { return len([]rune(s)) >= n }
}

func TestInputRejectsThenAccepts(t *testing.T) {
	m := NewInputModel(Options{Exitable: true, Width: 40, Height: 5}, InputOptions{Validator: minLength(5)})
	h := NewHarness(m)

	h.Type("ab")
	h.Keys("enter")
	if h.Quit() {
		t.Fatalf("expected rejected input to keep the session open")
	}
	assert.Equal(t, `Error. "ab" is not a valid input.`, m.ErrorMessage())
	lines := plainLines(h.View())
	assert.Equal(t, `Error. "ab" is not a valid input.`, lines[0])

	h.Type("cde")
	h.Keys("enter")
	require.True(t, h.Quit())
	got, status, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, state.StatusCommitted, status)
	assert.Equal(t, "abcde", got)
	assert.Empty(t, m.ErrorMessage())
}

func TestInputCustomErrorTemplate(t *testing.T) {
	m := NewInputModel(Options{}, InputOptions{Validator: minLength(3), ErrorTemplate: "too short: {input}"})
	h := NewHarness(m)
	h.Type("x")
	h.Keys("enter")
	assert.Equal(t, "too short: x", m.ErrorMessage())
}

func TestInputEditingKeys(t *testing.T) {
	m := NewInputModel(Options{}, InputOptions{Initial: "helo"})
	h := NewHarness(m)
	assert.Equal(t, 4, m.Text().Cursor())

	h.Keys("left")
	h.Type("l")
	assert.Equal(t, "hello", m.Text().String())

	h.Keys("home", "delete")
	assert.Equal(t, "ello", m.Text().String())
	assert.Equal(t, 0, m.Text().Cursor())

	h.Keys("end", "backspace")
	assert.Equal(t, "ell", m.Text().String())

	h.Keys("ctrl+a")
	assert.Equal(t, 0, m.Text().Cursor())
	h.Keys("ctrl+e")
	assert.Equal(t, 3, m.Text().Cursor())

	h.Type(" x")
	assert.Equal(t, "ell x", m.Text().String())
}

func TestInputPasswordMasksEntry(t *testing.T) {
	m := NewInputModel(Options{Width: 20, Height: 5}, InputOptions{Password: true})
	h := NewHarness(m)
	h.Type("secret")
	lines := plainLines(h.View())
	require.Len(t, lines, 2)
	assert.Equal(t, "****** ", lines[1])
	assert.Equal(t, "secret", m.Text().String())
}

func TestInputEntryScrollsToCursor(t *testing.T) {
	m := NewInputModel(Options{Width: 5, Height: 5}, InputOptions{Initial: "abcdefgh"})
	h := NewHarness(m)
	lines := plainLines(h.View())
	assert.Equal(t, "efgh ", lines[1])

	h.Keys("home")
	lines = plainLines(h.View())
	assert.True(t, strings.HasPrefix(lines[1], "abc"), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], "…"), lines[1])
	assert.LessOrEqual(t, ansi.StringWidth(lines[1]), 5)
}

func TestInputCancel(t *testing.T) {
	m := NewInputModel(Options{Exitable: true}, InputOptions{})
	h := NewHarness(m)
	h.Type("abc")
	h.Keys("esc")
	require.True(t, h.Quit())
	got, status, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, state.StatusCancelled, status)
	assert.Empty(t, got)
}

func TestInputCancelDisabled(t *testing.T) {
	m := NewInputModel(Options{}, InputOptions{})
	h := NewHarness(m)
	h.Keys("esc")
	if h.Quit() {
		t.Fatalf("expected esc to be ignored when not exitable")
	}
	h.Keys("enter")
	got, status, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, state.StatusCommitted, status)
	assert.Equal(t, "", got)
}

func TestInputDebugBlock(t *testing.T) {
	m := NewInputModel(Options{Debug: true, Width: 30, Height: 10}, InputOptions{})
	h := NewHarness(m)
	h.Type("hi")
	view := ansi.Strip(h.View())
	assert.Regexp(t, `cursor_pos\s+= 2\n`, view)
	assert.Regexp(t, `string\s+= hi`, view)
}

func TestInputSurfaceTooSmall(t *testing.T) {
	m := NewInputModel(Options{Debug: true, Width: 30, Height: 5}, InputOptions{})
	h := NewHarness(m)
	require.True(t, h.Quit())
	_, _, err := m.Result()
	require.ErrorIs(t, err, ErrTerminalTooSmall)
}
