package scroll

// Window is an inclusive index range of items to render.
// An empty window has End < Start.
type Window struct {
	Start int
	End   int
}

// EmptyWindow is the canonical degenerate range.
var EmptyWindow = Window{Start: 0, End: -1}

// Empty reports whether the window covers no indices.
func (w Window) Empty() bool {
	return w.End < w.Start
}

// Len returns the number of indices the window covers.
func (w Window) Len() int {
	if w.Empty() {
		return 0
	}
	return w.End - w.Start + 1
}

// Contains reports whether idx falls inside the window.
func (w Window) Contains(idx int) bool {
	return idx >= w.Start && idx <= w.End
}

// VisibleWindow computes the index window to render for one axis:
// the items covered by [scrollOffset, scrollOffset+viewportExtent],
// widened by buffer items on each side and clamped to [0, total-1].
// A zero total or non-positive item extent yields the empty window.
func VisibleWindow(scrollOffset, itemExtent, viewportExtent float64, total, buffer int) Window {
	if total <= 0 || itemExtent <= 0 {
		return EmptyWindow
	}
	first := int(scrollOffset / itemExtent)
	last := int((scrollOffset + viewportExtent) / itemExtent)

	first -= buffer
	last += buffer
	if first < 0 {
		first = 0
	}
	if last > total-1 {
		last = total - 1
	}
	if first > last {
		// Offset beyond content: pin to the final item.
		first = last
	}
	return Window{Start: first, End: last}
}
