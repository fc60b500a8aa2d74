// Package termpick exposes the termpick widgets to Go programs: a single
// choice list, a multi choice list, a validated text prompt and an action
// menu. Each call runs one interactive session on the terminal and restores
// it before returning.
//
//	colour, err := termpick.Choose(ctx, []string{"red", "green"}, termpick.Options{Exitable: true}, nil)
//	if termpick.IsCancelled(err) {
//		return
//	}
package termpick

import (
	"context"
	"io"

	"github.com/atomicstack/termpick/internal/app"
	"github.com/atomicstack/termpick/internal/menu"
	"github.com/atomicstack/termpick/internal/ui"
	"github.com/atomicstack/termpick/internal/ui/state"
	"github.com/atomicstack/termpick/internal/validate"
)

var (
	// ErrCancelled is returned when the user leaves a widget without a
	// result.
	ErrCancelled = app.ErrCancelled
	// ErrEmptyContent is returned by the list widgets for an empty item
	// slice.
	ErrEmptyContent = state.ErrEmptyContent
	// ErrTerminalTooSmall is wrapped by a SurfaceError when the widget
	// cannot fit.
	ErrTerminalTooSmall = app.ErrTerminalTooSmall
)

// SurfaceError reports a failure of the terminal surface.
type SurfaceError = app.SurfaceError

// IsCancelled reports whether err means the user left without a result.
func IsCancelled(err error) bool { return app.IsCancelled(err) }

// Options configures a widget session.
type Options struct {
	Title string
	// Exitable lets esc cancel the widget. Ctrl+C always does.
	Exitable bool
	Debug    bool
	Scroll   bool
	Footer   bool
	// Scheme names a colour scheme; empty selects "blue".
	Scheme string
	Width  int
	Height int
	Input  io.Reader
	Output io.Writer
}

func (o Options) config() app.Config {
	return app.Config{
		Title:    o.Title,
		Exitable: o.Exitable,
		Debug:    o.Debug,
		Scroll:   o.Scroll,
		Footer:   o.Footer,
		Scheme:   o.Scheme,
		Width:    o.Width,
		Height:   o.Height,
		Input:    o.Input,
		Output:   o.Output,
	}
}

// Choose lets the user pick one of items. A nil label uses fmt.Sprint.
func Choose[T any](ctx context.Context, items []T, opts Options, label func(T) string) (T, error) {
	return app.RunChoice(ctx, opts.config(), items, app.ListOptions[T]{Label: label})
}

// ChooseMany lets the user pick any number of items. The result keeps the
// order in which items were toggled on; an inverted selection is in item
// order.
func ChooseMany[T any](ctx context.Context, items []T, opts Options, label func(T) string) ([]T, error) {
	return app.RunMulti(ctx, opts.config(), items, app.ListOptions[T]{Label: label})
}

// PromptOptions configures Prompt.
type PromptOptions struct {
	// Validate accepts or rejects the text on enter. Nil accepts anything.
	Validate func(string) bool
	// ErrorMessage is shown on rejection; "{input}" is replaced by the text.
	ErrorMessage string
	Password     bool
	Initial      string
}

// Prompt reads one line of text.
func Prompt(ctx context.Context, opts Options, po PromptOptions) (string, error) {
	return app.RunInput(ctx, opts.config(), ui.InputOptions{
		Validator:     po.Validate,
		ErrorTemplate: po.ErrorMessage,
		Password:      po.Password,
		Initial:       po.Initial,
	})
}

// Expr compiles a CEL expression over the variable input into a validator
// for PromptOptions.Validate.
func Expr(expr string) (func(string) bool, error) {
	compiled, err := validate.Compile(expr)
	if err != nil {
		return nil, err
	}
	return compiled.Validator(), nil
}

type (
	// Tree is a menu of named nodes.
	Tree = menu.Tree
	// Node is one menu entry.
	Node = menu.Node
	// NodeID addresses a node within its tree.
	NodeID = menu.NodeID
	// Parent is either Root or a reference to a node.
	Parent = menu.Parent
	// Action is the work bound to a node. Output written to out appears in
	// the menu's log panel.
	Action = menu.Action
)

// Root is the parent of the top-level menu nodes.
var Root = menu.Root

// NewTree returns an empty menu tree.
func NewTree() *Tree { return menu.NewTree() }

// Ref refers to an existing node as a parent.
func Ref(id NodeID) Parent { return menu.Ref(id) }

// ExitItem is a node that ends the menu with no value.
func ExitItem(name string) Node { return menu.ExitItem(name) }

// ValueItem is a node that ends the menu with value.
func ValueItem(name string, value any) Node { return menu.ValueItem(name, value) }

// LoadMenu reads a YAML or TOML menu file.
func LoadMenu(path string) (*Tree, error) {
	tree, _, err := menu.LoadFile(path)
	return tree, err
}

// MenuOptions configures Menu.
type MenuOptions struct {
	RootName string
	LogLines int
}

// Menu walks tree until a node signals completion and returns its value.
func Menu(ctx context.Context, tree *Tree, opts Options, mo MenuOptions) (any, error) {
	return app.RunMenu(ctx, opts.config(), tree, ui.MenuOptions{RootName: mo.RootName, LogLines: mo.LogLines})
}
