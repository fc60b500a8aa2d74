package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemesSorted(t *testing.T) {
	assert.Equal(t, []string{"black", "blue", "red", "white"}, Schemes())
}

func TestNewDefaultsToBlue(t *testing.T) {
	p, err := New("")
	require.NoError(t, err)
	assert.Equal(t, "blue", p.Name())
	assert.Equal(t, Pair{Fg: lipgloss.Color("7"), Bg: lipgloss.Color("4")}, p.Pair(Normal))
}

func TestNewIsCaseInsensitive(t *testing.T) {
	p, err := New(" RED ")
	require.NoError(t, err)
	assert.Equal(t, "red", p.Name())
	assert.Equal(t, Pair{Fg: lipgloss.Color("7"), Bg: lipgloss.Color("1")}, p.Pair(Highlighted))
}

func TestNewRejectsUnknown(t *testing.T) {
	_, err := New("mauve")
	require.ErrorIs(t, err, ErrUnknownScheme)
	assert.Contains(t, err.Error(), "black, blue, red, white")
	assert.Panics(t, func() { MustNew("mauve") })
}

func TestEverySchemeFillsEverySlot(t *testing.T) {
	for _, name := range Schemes() {
		p := MustNew(name)
		for _, id := range IDs() {
			pair := p.Pair(id)
			assert.NotEmpty(t, pair.Fg, "%s/%s", name, id)
			assert.NotEmpty(t, pair.Bg, "%s/%s", name, id)
		}
		assert.NotNil(t, p.Styles().Title)
	}
}

func TestPalettesAreIndependent(t *testing.T) {
	a := MustNew("blue")
	b := MustNew("white")
	assert.NotEqual(t, a.Pair(Normal), b.Pair(Normal))
	assert.Equal(t, "x", lipgloss.NewStyle().Render("x"))
	assert.Contains(t, a.Render(Selected, "item"), "item")
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "selected-highlighted", SelectedHighlighted.String())
	assert.Equal(t, "id(9)", ID(9).String())
}
