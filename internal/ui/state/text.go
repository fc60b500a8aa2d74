package state

import (
	"strings"
	"unicode"
)

// DefaultErrorTemplate is shown when a validator rejects the input and no
// template was configured.
const DefaultErrorTemplate = `Error. "{input}" is not a valid input.`

// Validator reports whether the committed text is acceptable.
type Validator func(string) bool

// ValidationError carries the rejected input and the rendered message.
type ValidationError struct {
	Input   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// FormatError substitutes input into every {input} placeholder of template.
func FormatError(template, input string) string {
	if template == "" {
		template = DefaultErrorTemplate
	}
	return strings.ReplaceAll(template, "{input}", input)
}

// Text is an editable rune sequence with a cursor in [0, len]. Position len is
// the append slot.
type Text struct {
	runes  []rune
	cursor int
}

// NewText seeds the buffer and parks the cursor at the end.
func NewText(initial string) *Text {
	r := []rune(initial)
	return &Text{runes: r, cursor: len(r)}
}

func (t *Text) Cursor() int    { return t.cursor }
func (t *Text) Len() int       { return len(t.runes) }
func (t *Text) String() string { return string(t.runes) }

// Runes returns a copy of the buffer.
func (t *Text) Runes() []rune {
	out := make([]rune, len(t.runes))
	copy(out, t.runes)
	return out
}

// Insert places r at the cursor and advances it. Non-printable runes are
// dropped.
func (t *Text) Insert(r rune) bool {
	if !unicode.IsPrint(r) {
		return false
	}
	t.runes = append(t.runes, 0)
	copy(t.runes[t.cursor+1:], t.runes[t.cursor:])
	t.runes[t.cursor] = r
	t.cursor++
	return true
}

// InsertString inserts each printable rune of s in order.
func (t *Text) InsertString(s string) int {
	n := 0
	for _, r := range s {
		if t.Insert(r) {
			n++
		}
	}
	return n
}

// Backspace removes the rune before the cursor.
func (t *Text) Backspace() bool {
	if t.cursor == 0 {
		return false
	}
	t.runes = append(t.runes[:t.cursor-1], t.runes[t.cursor:]...)
	t.cursor--
	return true
}

// Delete removes the rune under the cursor.
func (t *Text) Delete() bool {
	if t.cursor >= len(t.runes) {
		return false
	}
	t.runes = append(t.runes[:t.cursor], t.runes[t.cursor+1:]...)
	return true
}

// MoveBy shifts the cursor by delta, saturating at either end.
func (t *Text) MoveBy(delta int) bool {
	old := t.cursor
	t.cursor = Clamp(t.cursor+delta, len(t.runes)+1)
	return old != t.cursor
}

func (t *Text) Home() bool { return t.MoveBy(-t.cursor) }
func (t *Text) End() bool  { return t.MoveBy(len(t.runes) - t.cursor) }

// Commit returns the current text if validate accepts it. A rejection yields a
// *ValidationError and leaves the buffer untouched.
func (t *Text) Commit(validate Validator, template string) (string, error) {
	value := t.String()
	if validate == nil || validate(value) {
		return value, nil
	}
	return "", &ValidationError{Input: value, Message: FormatError(template, value)}
}
