package state

// Tree tracks selection over a list of variable-height groups (sessions with
// their windows). Selection counts groups; Offset counts rendered lines.
type Tree struct {
	Selected int
	Offset   int
	Viewport int
}

// Heights returns the rendered height of each session given its window count:
// one header line, one line per window and a trailing blank separator.
func Heights(windowCounts []int) []int {
	heights := make([]int, len(windowCounts))
	for i, n := range windowCounts {
		if n < 0 {
			n = 0
		}
		heights[i] = n + 2
	}
	return heights
}

// LineOffset returns the first rendered line of group i.
func LineOffset(heights []int, i int) int {
	offset := 0
	for j := 0; j < i && j < len(heights); j++ {
		offset += heights[j]
	}
	return offset
}

// LineOffsets returns LineOffset for every group.
func LineOffsets(heights []int) []int {
	offsets := make([]int, len(heights))
	sum := 0
	for i, h := range heights {
		offsets[i] = sum
		sum += h
	}
	return offsets
}

// TotalLines returns the rendered height of every group combined.
func TotalLines(heights []int) int {
	return LineOffset(heights, len(heights))
}

// SetViewport records how many lines are visible.
func (t Tree) SetViewport(h int) Tree {
	if h < 0 {
		h = 0
	}
	t.Viewport = h
	return t
}

// Clamp brings selection and offset back into range after the groups change.
func (t Tree) Clamp(heights []int) Tree {
	n := len(heights)
	if n == 0 {
		t.Selected = 0
		t.Offset = 0
		return t
	}
	t.Selected = clampIndex(t.Selected, n)
	max := TotalLines(heights) - t.Viewport
	if max < 0 {
		max = 0
	}
	if t.Offset > max {
		t.Offset = max
	}
	if t.Offset < 0 {
		t.Offset = 0
	}
	return t
}

// MoveNext selects the following group, wrapping to the first one.
func (t Tree) MoveNext(heights []int) Tree {
	n := len(heights)
	if n == 0 {
		t.Selected = 0
		t.Offset = 0
		return t
	}
	t.Selected = (clampIndex(t.Selected, n) + 1) % n
	if t.Selected == 0 {
		t.Offset = 0
	}
	return t.follow(heights)
}

// MovePrev selects the preceding group, wrapping to the last one.
func (t Tree) MovePrev(heights []int) Tree {
	n := len(heights)
	if n == 0 {
		t.Selected = 0
		t.Offset = 0
		return t
	}
	if t.Selected <= 0 {
		t.Selected = n - 1
		t.Offset = TotalLines(heights) - t.Viewport
		if t.Offset < 0 {
			t.Offset = 0
		}
	} else {
		t.Selected = clampIndex(t.Selected-1, n)
	}
	return t.follow(heights)
}

// Select jumps to group i and scrolls it into view.
func (t Tree) Select(heights []int, i int) Tree {
	if len(heights) == 0 {
		t.Selected = 0
		t.Offset = 0
		return t
	}
	t.Selected = clampIndex(i, len(heights))
	return t.follow(heights)
}

// SelectedLine returns the first rendered line of the selected group.
func (t Tree) SelectedLine(heights []int) int {
	return LineOffset(heights, t.Selected)
}

func (t Tree) follow(heights []int) Tree {
	target := LineOffset(heights, t.Selected)
	height := heights[t.Selected]
	if target < t.Offset {
		t.Offset = target
	} else if target+height > t.Offset+t.Viewport {
		t.Offset = target + height - t.Viewport
	}
	return t
}
