package ui

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/atomicstack/termpick/internal/logging/events"
	"github.com/atomicstack/termpick/internal/theme"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

var (
	// ErrInterrupted ends a session on ctrl+c regardless of exitable.
	ErrInterrupted = errors.New("interrupted")
	// ErrTerminalTooSmall means the surface cannot fit the widget body.
	ErrTerminalTooSmall = errors.New("terminal too small")
)

// SurfaceError wraps a failure of the rendering surface.
type SurfaceError struct {
	Op  string
	Err error
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *SurfaceError) Unwrap() error { return e.Err }

// Options configures a widget session.
type Options struct {
	Title    string
	Exitable bool
	Debug    bool
	// Scroll leaves scrolling to the terminal: every item is rendered and no
	// viewport windowing happens.
	Scroll bool
	// Footer shows a one-line key help below the body.
	Footer  bool
	Palette *theme.Palette
	// Width and Height pin the surface size; zero follows the terminal.
	Width  int
	Height int
}

type msgHandler func(tea.Msg) tea.Cmd

// frame holds what every widget model shares: surface geometry, palette,
// redraw bookkeeping and the typed message handler registry.
type frame struct {
	opts        Options
	palette     *theme.Palette
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	redraws     int
	err         error
	help        help.Model
	handlers    map[reflect.Type]msgHandler
}

func newFrame(opts Options) frame {
	f := frame{opts: opts, palette: opts.Palette, help: help.New()}
	if f.palette == nil {
		f.palette = theme.MustNew(theme.DefaultScheme)
	}
	if opts.Width > 0 {
		f.width = opts.Width
		f.fixedWidth = true
	}
	if opts.Height > 0 {
		f.height = opts.Height
		f.fixedHeight = true
	}
	f.help.Styles.ShortKey = *f.palette.Styles().Help
	f.help.Styles.ShortDesc = *f.palette.Styles().Help
	f.help.Styles.ShortSeparator = *f.palette.Styles().Help
	return f
}

func (f *frame) register(handlers map[reflect.Type]msgHandler) {
	f.handlers = handlers
}

func (f *frame) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || f.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := f.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := f.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (f *frame) route(msg tea.Msg) tea.Cmd {
	if f.err != nil {
		return nil
	}
	if handler := f.handlerFor(msg); handler != nil {
		return handler(msg)
	}
	return nil
}

// Err returns the error that ended the session, if any.
func (f *frame) Err() error { return f.err }

// Redraws counts rendered frames.
func (f *frame) Redraws() int { return f.redraws }

func (f *frame) resize(msg tea.WindowSizeMsg) {
	if !f.fixedWidth {
		f.width = msg.Width
	}
	if !f.fixedHeight {
		f.height = msg.Height
	}
}

func (f *frame) fail(op string, err error) tea.Cmd {
	f.err = &SurfaceError{Op: op, Err: err}
	events.App.Surface(op, err)
	return tea.Quit
}

func (f *frame) interrupt() tea.Cmd {
	f.err = ErrInterrupted
	return tea.Quit
}

// titleRows is the number of rows the title occupies at the given width.
func titleRows(title string, cols int) int {
	if title == "" {
		return 0
	}
	if cols <= 0 {
		return 1
	}
	return ansi.StringWidth(title)/cols + 1
}

// chromeRows counts rows used around the body: title plus its gap, the
// footer, and a debug block of debugRows lines plus its gap.
func (f *frame) chromeRows(debugRows int) int {
	used := 0
	if rows := titleRows(f.opts.Title, f.width); rows > 0 {
		used += rows + 1
	}
	if f.opts.Footer {
		used++
	}
	if f.opts.Debug && debugRows > 0 {
		used += debugRows + 1
	}
	return used
}

// bodyHeight returns the rows left for the body, or -1 when the surface size
// is unknown or the terminal scrolls natively.
func (f *frame) bodyHeight(debugRows int) int {
	if f.opts.Scroll || f.height <= 0 {
		return -1
	}
	return f.height - f.chromeRows(debugRows)
}

// checkSurface ends the session when fewer than minRows body rows fit.
func (f *frame) checkSurface(op string, debugRows, minRows int) tea.Cmd {
	h := f.bodyHeight(debugRows)
	if h < 0 || h >= minRows {
		return nil
	}
	return f.fail(op, fmt.Errorf("%w: %dx%d leaves %d body rows", ErrTerminalTooSmall, f.width, f.height, h))
}
