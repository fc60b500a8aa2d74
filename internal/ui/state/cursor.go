package state

import "errors"

// ErrEmptyContent is returned when a selection widget is built without items.
var ErrEmptyContent = errors.New("input iterable must not be empty")

// PageStep is the cursor delta applied by page up/down.
const PageStep = 5

// Status reports where a selection session is in its lifecycle.
type Status int

const (
	// StatusActive is the initial state; keys still move the cursor.
	StatusActive Status = iota
	// StatusCommitted means the session ended with a result.
	StatusCommitted
	// StatusCancelled means the session ended without one.
	StatusCancelled
)

// String names the status for logs and diagnostics.
func (s Status) String() string {
	switch s {
	case StatusCommitted:
		return "committed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "active"
	}
}

// Selection encapsulates the cursor, viewport and lifecycle of a single-choice
// list over a fixed content sequence.
type Selection[T any] struct {
	items    []T
	cursor   int
	top      int
	exitable bool
	status   Status
}

// NewSelection copies items and positions the cursor on the first entry.
func NewSelection[T any](items []T, exitable bool) (*Selection[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptyContent
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return &Selection[T]{items: dup, exitable: exitable}, nil
}

// Len returns the number of content items.
func (s *Selection[T]) Len() int { return len(s.items) }

// Item returns the content item at idx.
func (s *Selection[T]) Item(idx int) T { return s.items[idx] }

// Items returns a copy of the content sequence.
func (s *Selection[T]) Items() []T {
	dup := make([]T, len(s.items))
	copy(dup, s.items)
	return dup
}

// Cursor returns the index under the cursor.
func (s *Selection[T]) Cursor() int { return s.cursor }

// Top returns the first visible index from the last Sync.
func (s *Selection[T]) Top() int { return s.top }

// Exitable reports whether Cancel is honoured.
func (s *Selection[T]) Exitable() bool { return s.exitable }

// Status returns the lifecycle state.
func (s *Selection[T]) Status() Status { return s.status }

// Active reports whether the session still accepts input.
func (s *Selection[T]) Active() bool { return s.status == StatusActive }

// Current returns the item under the cursor.
func (s *Selection[T]) Current() T { return s.items[s.cursor] }

// Cancelled reports whether the session ended without a result.
func (s *Selection[T]) Cancelled() bool { return s.status == StatusCancelled }

// Committed reports whether the session ended with a result.
func (s *Selection[T]) Committed() bool { return s.status == StatusCommitted }

// SetCursor places the cursor at idx, clamped to the content bounds.
func (s *Selection[T]) SetCursor(idx int) bool {
	if !s.Active() {
		return false
	}
	old := s.cursor
	s.cursor = Clamp(idx, len(s.items))
	return old != s.cursor
}

// MoveBy applies delta to the cursor. Deltas saturate at either end rather
// than wrapping.
func (s *Selection[T]) MoveBy(delta int) bool {
	return s.SetCursor(s.cursor + delta)
}

// MoveDown advances the cursor by one row.
func (s *Selection[T]) MoveDown() bool { return s.MoveBy(1) }

// MoveUp moves the cursor back by one row.
func (s *Selection[T]) MoveUp() bool { return s.MoveBy(-1) }

// MovePageDown advances the cursor by PageStep rows.
func (s *Selection[T]) MovePageDown() bool { return s.MoveBy(PageStep) }

// MovePageUp moves the cursor back by PageStep rows.
func (s *Selection[T]) MovePageUp() bool { return s.MoveBy(-PageStep) }

// MoveHome jumps to the first item.
func (s *Selection[T]) MoveHome() bool { return s.SetCursor(0) }

// MoveEnd jumps to the last item.
func (s *Selection[T]) MoveEnd() bool { return s.SetCursor(len(s.items) - 1) }

// Sync recomputes the viewport for the given visible height and remembers the
// new top for the next cycle.
func (s *Selection[T]) Sync(height int) Window {
	w := ComputeWindow(s.cursor, len(s.items), height, s.top)
	s.top = w.Top
	return w
}

// Commit ends the session with the item under the cursor.
func (s *Selection[T]) Commit() (T, bool) {
	var zero T
	if !s.Active() {
		return zero, false
	}
	s.status = StatusCommitted
	return s.items[s.cursor], true
}

// Cancel ends the session without a result. Non-exitable selections ignore it.
func (s *Selection[T]) Cancel() bool {
	if !s.Active() || !s.exitable {
		return false
	}
	s.status = StatusCancelled
	return true
}
