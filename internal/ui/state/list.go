package state

// List tracks the selection and scroll position of a list whose rows are all
// one line tall. Methods never mutate the receiver; they return the updated
// value so callers can keep one List per view and swap it atomically.
type List struct {
	Selected int
	Offset   int
	Total    int
	Viewport int
}

// SetTotal records the number of rows and clamps selection and offset into range.
func (l List) SetTotal(n int) List {
	if n < 0 {
		n = 0
	}
	l.Total = n
	switch {
	case n == 0:
		l.Selected = 0
	case l.Selected >= n:
		l.Selected = n - 1
	case l.Selected < 0:
		l.Selected = 0
	}
	return l.clampOffset()
}

// SetViewport records how many rows are visible and re-clamps the offset.
func (l List) SetViewport(h int) List {
	if h < 0 {
		h = 0
	}
	l.Viewport = h
	return l.clampOffset()
}

// MoveNext selects the following row, wrapping to the top. The viewport moves
// one row at a time and snaps back to the top on wrap.
func (l List) MoveNext() List {
	if l.Total == 0 {
		return l
	}
	next := (l.Selected + 1) % l.Total
	if next == 0 {
		l.Offset = 0
	} else if next >= l.Offset+l.Viewport {
		l.Offset++
	}
	l.Selected = next
	return l
}

// MovePrev selects the preceding row, wrapping to the bottom. Wrapping snaps
// the viewport so the last row sits on the bottom edge.
func (l List) MovePrev() List {
	if l.Total == 0 {
		return l
	}
	if l.Selected <= 0 {
		l.Selected = l.Total - 1
		l.Offset = l.maxOffset()
		if l.Offset > l.Total-1 {
			l.Offset = l.Total - 1
		}
		return l
	}
	l.Selected--
	if l.Selected < l.Offset {
		l.Offset--
	}
	return l
}

// EnsureVisible scrolls the minimum distance needed for index to be on screen.
func (l List) EnsureVisible(index int) List {
	if l.Total == 0 {
		l.Offset = 0
		return l
	}
	index = clampIndex(index, l.Total)
	viewport := l.Viewport
	if viewport < 1 {
		viewport = 1
	}
	if index < l.Offset {
		l.Offset = index
	} else if index >= l.Offset+viewport {
		l.Offset = index - viewport + 1
	}
	return l
}

// Select moves the selection to index and scrolls it into view.
func (l List) Select(index int) List {
	if l.Total == 0 {
		return l
	}
	l.Selected = clampIndex(index, l.Total)
	return l.EnsureVisible(l.Selected)
}

// Reset returns selection and scroll to the top, keeping total and viewport.
func (l List) Reset() List {
	l.Selected = 0
	l.Offset = 0
	return l
}

// Window reports the half-open range of rows currently on screen.
func (l List) Window() (start, end int) {
	start = l.Offset
	if start > l.Total {
		start = l.Total
	}
	end = start + l.Viewport
	if end > l.Total {
		end = l.Total
	}
	return start, end
}

// CanScrollUp reports whether rows are hidden above the viewport.
func (l List) CanScrollUp() bool { return l.Offset > 0 }

// CanScrollDown reports whether rows are hidden below the viewport.
func (l List) CanScrollDown() bool { return l.Offset+l.Viewport < l.Total }

func (l List) maxOffset() int {
	if m := l.Total - l.Viewport; m > 0 {
		return m
	}
	return 0
}

func (l List) clampOffset() List {
	if max := l.maxOffset(); l.Offset > max {
		l.Offset = max
	}
	if l.Offset < 0 {
		l.Offset = 0
	}
	return l
}

func clampIndex(index, total int) int {
	if index < 0 {
		return 0
	}
	if index >= total {
		return total - 1
	}
	return index
}
