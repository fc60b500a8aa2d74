package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextInsertAtCursor(t *testing.T) {
	txt := NewText("ac")
	txt.MoveBy(-1)
	require.True(t, txt.Insert('b'))
	assert.Equal(t, "abc", txt.String())
	assert.Equal(t, 2, txt.Cursor())
}

func TestTextInsertRejectsControlRunes(t *testing.T) {
	txt := NewText("")
	assert.False(t, txt.Insert('\x1b'))
	assert.False(t, txt.Insert('\n'))
	assert.Equal(t, 2, txt.InsertString("a\tb"))
	assert.Equal(t, "ab", txt.String())
}

func TestTextDeletesAtEdgesAreNoOps(t *testing.T) {
	txt := NewText("abc")
	assert.False(t, txt.Delete())
	assert.Equal(t, 3, txt.Len())
	assert.Equal(t, 3, txt.Cursor())

	txt.Home()
	assert.False(t, txt.Backspace())
	assert.Equal(t, 3, txt.Len())
	assert.Equal(t, 0, txt.Cursor())
}

func TestTextBackspaceAndDelete(t *testing.T) {
	txt := NewText("abcd")
	txt.MoveBy(-2)
	require.True(t, txt.Backspace())
	assert.Equal(t, "acd", txt.String())
	assert.Equal(t, 1, txt.Cursor())
	require.True(t, txt.Delete())
	assert.Equal(t, "ad", txt.String())
	assert.Equal(t, 1, txt.Cursor())
}

func TestTextCursorStaysInBounds(t *testing.T) {
	txt := NewText("héllo")
	for _, delta := range []int{-10, 3, 40, -1, 2} {
		txt.MoveBy(delta)
		require.GreaterOrEqual(t, txt.Cursor(), 0)
		require.LessOrEqual(t, txt.Cursor(), txt.Len())
	}
	txt.End()
	assert.Equal(t, 5, txt.Cursor())
}

func TestTextCommitValidation(t *testing.T) {
	longer := func(s string) bool { return len(s) > 4 }
	txt := NewText("")
	txt.InsertString("ab")

	_, err := txt.Commit(longer, "")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Message, "ab")
	assert.Equal(t, `Error. "ab" is not a valid input.`, verr.Message)
	assert.Equal(t, "ab", txt.String(), "rejection keeps the buffer")

	txt.InsertString("cde")
	value, err := txt.Commit(longer, "")
	require.NoError(t, err)
	assert.Equal(t, "abcde", value)
}

func TestTextCommitWithoutValidator(t *testing.T) {
	value, err := NewText("anything").Commit(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "anything", value)
}

func TestFormatErrorReplacesEveryPlaceholder(t *testing.T) {
	assert.Equal(t, "x: bad x", FormatError("{input}: bad {input}", "x"))
}
