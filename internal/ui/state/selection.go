package state

// Multi layers a chosen-items set and an undo stack over a Selection. Members
// are tracked by content index, so the set is a subset of the content by
// construction.
type Multi[T any] struct {
	*Selection[T]
	chosen []int
	undo   [][]int
}

// NewMulti builds a multi-selection with an empty chosen set.
func NewMulti[T any](items []T, exitable bool) (*Multi[T], error) {
	sel, err := NewSelection(items, exitable)
	if err != nil {
		return nil, err
	}
	return &Multi[T]{Selection: sel}, nil
}

// IsChosen reports whether the content item at idx is in the set.
func (m *Multi[T]) IsChosen(idx int) bool {
	return m.position(idx) >= 0
}

func (m *Multi[T]) position(idx int) int {
	for i, v := range m.chosen {
		if v == idx {
			return i
		}
	}
	return -1
}

// Chosen returns the content indexes of the set in set order.
func (m *Multi[T]) Chosen() []int {
	dup := make([]int, len(m.chosen))
	copy(dup, m.chosen)
	return dup
}

// ChosenItems returns the chosen content items in set order.
func (m *Multi[T]) ChosenItems() []T {
	out := make([]T, 0, len(m.chosen))
	for _, idx := range m.chosen {
		out = append(out, m.items[idx])
	}
	return out
}

// UndoDepth returns the number of snapshots available to Undo.
func (m *Multi[T]) UndoDepth() int { return len(m.undo) }

func (m *Multi[T]) snapshot() {
	m.undo = append(m.undo, m.Chosen())
}

// Toggle flips membership of the item under the cursor. Added items go to the
// end of the set.
func (m *Multi[T]) Toggle() bool {
	return m.ToggleIndex(m.cursor)
}

// ToggleIndex flips membership of the content item at idx.
func (m *Multi[T]) ToggleIndex(idx int) bool {
	if !m.Active() || idx < 0 || idx >= len(m.items) {
		return false
	}
	m.snapshot()
	if pos := m.position(idx); pos >= 0 {
		m.chosen = append(m.chosen[:pos:pos], m.chosen[pos+1:]...)
	} else {
		m.chosen = append(m.chosen, idx)
	}
	return true
}

// Invert replaces the set with every item not currently chosen, in content
// order.
func (m *Multi[T]) Invert() bool {
	if !m.Active() {
		return false
	}
	m.snapshot()
	inverted := make([]int, 0, len(m.items)-len(m.chosen))
	for idx := range m.items {
		if !m.IsChosen(idx) {
			inverted = append(inverted, idx)
		}
	}
	m.chosen = inverted
	return true
}

// Clear empties the set.
func (m *Multi[T]) Clear() bool {
	if !m.Active() {
		return false
	}
	m.snapshot()
	m.chosen = nil
	return true
}

// Undo restores the most recent snapshot. It is a no-op on an empty stack and
// is not itself undoable.
func (m *Multi[T]) Undo() bool {
	if !m.Active() || len(m.undo) == 0 {
		return false
	}
	last := len(m.undo) - 1
	m.chosen = m.undo[last]
	m.undo = m.undo[:last]
	return true
}

// Commit ends the session with the chosen items. An empty set is a valid
// result.
func (m *Multi[T]) Commit() ([]T, bool) {
	if !m.Active() {
		return nil, false
	}
	m.status = StatusCommitted
	return m.ChosenItems(), true
}
