package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrUnknownScheme is returned for scheme names that are not registered.
var ErrUnknownScheme = errors.New("unknown colour scheme")

// DefaultScheme is used when no scheme is configured.
const DefaultScheme = "blue"

// ID enumerates the palette slots every widget draws with.
type ID int

const (
	Normal              ID = 1
	Highlighted         ID = 2
	SelectedHighlighted ID = 3
	Selected            ID = 4
)

func (id ID) String() string {
	switch id {
	case Normal:
		return "normal"
	case Highlighted:
		return "highlighted"
	case SelectedHighlighted:
		return "selected-highlighted"
	case Selected:
		return "selected"
	}
	return fmt.Sprintf("id(%d)", int(id))
}

// IDs lists the palette slots in id order.
func IDs() []ID {
	return []ID{Normal, Highlighted, SelectedHighlighted, Selected}
}

// Pair is a foreground/background colour assignment.
type Pair struct {
	Fg lipgloss.Color
	Bg lipgloss.Color
}

const (
	black  = lipgloss.Color("0")
	red    = lipgloss.Color("1")
	yellow = lipgloss.Color("3")
	blue   = lipgloss.Color("4")
	white  = lipgloss.Color("7")
)

var schemes = map[string]map[ID]Pair{
	"blue": {
		Normal:              {white, blue},
		Highlighted:         {black, blue},
		SelectedHighlighted: {blue, black},
		Selected:            {blue, white},
	},
	"red": {
		Normal:              {red, yellow},
		Highlighted:         {white, red},
		SelectedHighlighted: {yellow, red},
		Selected:            {red, white},
	},
	"black": {
		Normal:              {black, white},
		Highlighted:         {white, black},
		SelectedHighlighted: {black, white},
		Selected:            {white, black},
	},
	"white": {
		Normal:              {white, black},
		Highlighted:         {black, white},
		SelectedHighlighted: {white, black},
		Selected:            {black, white},
	},
}

// Schemes returns the registered scheme names, sorted.
func Schemes() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Styles describes the Lip Gloss styles a session renders with.
type Styles struct {
	Normal              *lipgloss.Style
	Highlighted         *lipgloss.Style
	SelectedHighlighted *lipgloss.Style
	Selected            *lipgloss.Style
	Title               *lipgloss.Style
	Error               *lipgloss.Style
	Debug               *lipgloss.Style
	Help                *lipgloss.Style
	Cursor              *lipgloss.Style
}

// Palette is built once per session and handed to every view that draws.
type Palette struct {
	name   string
	pairs  map[ID]Pair
	styles Styles
}

// New builds the palette for the named scheme. An empty name selects
// DefaultScheme.
func New(scheme string) (*Palette, error) {
	name := strings.ToLower(strings.TrimSpace(scheme))
	if name == "" {
		name = DefaultScheme
	}
	pairs, ok := schemes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (choose from %s)", ErrUnknownScheme, scheme, strings.Join(Schemes(), ", "))
	}
	p := &Palette{name: name, pairs: pairs}
	normal := pairs[Normal]
	p.styles = Styles{
		Normal:              ptr(pairStyle(pairs[Normal])),
		Highlighted:         ptr(pairStyle(pairs[Highlighted]).Bold(true)),
		SelectedHighlighted: ptr(pairStyle(pairs[SelectedHighlighted]).Bold(true)),
		Selected:            ptr(pairStyle(pairs[Selected])),
		Title:               ptr(pairStyle(normal).Bold(true)),
		Error:               ptr(pairStyle(pairs[Highlighted]).Bold(true)),
		Debug:               ptr(pairStyle(normal).Faint(true)),
		Help:                ptr(pairStyle(normal).Faint(true)),
		Cursor:              ptr(lipgloss.NewStyle().Foreground(normal.Bg).Background(normal.Fg)),
	}
	return p, nil
}

// MustNew is New for scheme names known to be valid.
func MustNew(scheme string) *Palette {
	p, err := New(scheme)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the scheme name the palette was built from.
func (p *Palette) Name() string { return p.name }

// Pair returns the colours assigned to id.
func (p *Palette) Pair(id ID) Pair { return p.pairs[id] }

// Style returns the style for a palette slot.
func (p *Palette) Style(id ID) lipgloss.Style {
	switch id {
	case Highlighted:
		return *p.styles.Highlighted
	case SelectedHighlighted:
		return *p.styles.SelectedHighlighted
	case Selected:
		return *p.styles.Selected
	default:
		return *p.styles.Normal
	}
}

// Render draws s in the style of the given slot.
func (p *Palette) Render(id ID, s string) string {
	return p.Style(id).Render(s)
}

// Styles exposes the full style set.
func (p *Palette) Styles() *Styles { return &p.styles }

func pairStyle(pair Pair) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(pair.Fg).Background(pair.Bg)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
