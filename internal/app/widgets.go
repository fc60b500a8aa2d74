package app

import (
	"context"
	"fmt"

	"github.com/atomicstack/termpick/internal/menu"
	"github.com/atomicstack/termpick/internal/ui"
	"github.com/atomicstack/termpick/internal/ui/state"
)

// ListOptions configures the choice and multi-choice runners.
type ListOptions[T any] struct {
	// Label renders an item; nil uses fmt.Sprint.
	Label ui.Labeler[T]
	// Initial positions the starting cursor on the best match for the query.
	Initial string
}

func (o ListOptions[T]) label() ui.Labeler[T] {
	if o.Label != nil {
		return o.Label
	}
	return func(item T) string { return fmt.Sprint(item) }
}

// seek moves the cursor of sel to the item best matching query.
func seek[T any](sel *state.Selection[T], label ui.Labeler[T], query string) {
	if query == "" {
		return
	}
	labels := make([]string, sel.Len())
	for i := range labels {
		labels[i] = label(sel.Item(i))
	}
	if idx := state.Seek(labels, query); idx >= 0 {
		sel.SetCursor(idx)
	}
}

// RunChoice lets the user pick one item. A cancelled session returns
// ErrCancelled.
func RunChoice[T any](ctx context.Context, cfg Config, items []T, opts ListOptions[T]) (T, error) {
	var zero T
	uiOpts, err := cfg.uiOptions()
	if err != nil {
		return zero, err
	}
	label := opts.label()
	model, err := ui.NewChoiceModel(items, uiOpts, label)
	if err != nil {
		return zero, err
	}
	seek(model.Selection(), label, opts.Initial)
	if err := run(ctx, cfg, "choice", model); err != nil {
		return zero, err
	}
	value, status, _ := model.Result()
	finish("choice", status.String())
	if status != state.StatusCommitted {
		return zero, fmt.Errorf("choice: %w", ErrCancelled)
	}
	return value, nil
}

// RunMulti lets the user pick any number of items. Committing an empty set
// returns an empty, non-nil slice.
func RunMulti[T any](ctx context.Context, cfg Config, items []T, opts ListOptions[T]) ([]T, error) {
	uiOpts, err := cfg.uiOptions()
	if err != nil {
		return nil, err
	}
	label := opts.label()
	model, err := ui.NewMultiModel(items, uiOpts, label)
	if err != nil {
		return nil, err
	}
	seek(model.Multi().Selection, label, opts.Initial)
	if err := run(ctx, cfg, "multi", model); err != nil {
		return nil, err
	}
	chosen, status, _ := model.Result()
	finish("multi", status.String())
	if status != state.StatusCommitted {
		return nil, fmt.Errorf("multi: %w", ErrCancelled)
	}
	if chosen == nil {
		chosen = []T{}
	}
	return chosen, nil
}

// RunInput reads one line of validated text.
func RunInput(ctx context.Context, cfg Config, in ui.InputOptions) (string, error) {
	uiOpts, err := cfg.uiOptions()
	if err != nil {
		return "", err
	}
	model := ui.NewInputModel(uiOpts, in)
	if err := run(ctx, cfg, "input", model); err != nil {
		return "", err
	}
	value, status, _ := model.Result()
	finish("input", status.String())
	if status != state.StatusCommitted {
		return "", fmt.Errorf("input: %w", ErrCancelled)
	}
	return value, nil
}

// RunMenu walks tree until a node signals completion and returns that node's
// value.
func RunMenu(ctx context.Context, cfg Config, tree *menu.Tree, mo ui.MenuOptions) (any, error) {
	if tree == nil {
		return nil, fmt.Errorf("menu: %w", menu.ErrInvalidMenu)
	}
	uiOpts, err := cfg.uiOptions()
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	model := ui.NewMenuModel(ctx, tree, uiOpts, mo)
	defer model.Close()
	if err := run(ctx, cfg, "menu", model); err != nil {
		return nil, err
	}
	value, status, _ := model.Result()
	finish("menu", status.String())
	if status != state.StatusCommitted {
		return nil, fmt.Errorf("menu: %w", ErrCancelled)
	}
	return value, nil
}
