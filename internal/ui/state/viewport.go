package state

// Clamp bounds value to [0, length-1]. Selection cursors pass the content
// length; text cursors pass len(text)+1 so the append position stays valid.
func Clamp(value, length int) int {
	if value < 0 {
		return 0
	}
	if value >= length {
		return length - 1
	}
	return value
}

// Window is the visible slice of a content sequence, inclusive on both ends.
type Window struct {
	Top    int
	Bottom int
}

// Contains reports whether idx falls inside the window.
func (w Window) Contains(idx int) bool {
	return idx >= w.Top && idx <= w.Bottom
}

// ComputeWindow moves the window only as far as needed to keep cursor visible.
// A cursor below the window becomes the last visible row and a cursor above it
// becomes the first. Content that fits entirely keeps the window pinned at 0.
func ComputeWindow(cursor, length, height, prevTop int) Window {
	if height < 1 {
		height = 1
	}
	top := prevTop
	if cursor >= prevTop+height {
		top = cursor - height + 1
	} else if cursor < prevTop {
		top = cursor
	}
	if length <= height || top < 0 {
		top = 0
	}
	bottom := top + height - 1
	if length > 0 && bottom > length-1 {
		bottom = length - 1
	}
	return Window{Top: top, Bottom: bottom}
}
