package state

// Help tracks the open help category and the scroll position inside it.
type Help struct {
	Category   int
	Categories int
	List       List
}

// NewHelp returns help positioned on the first of n categories.
func NewHelp(n int) Help {
	return Help{Categories: n}
}

// SelectCategory jumps to category i. Out of range indexes are ignored.
func (h Help) SelectCategory(i int) Help {
	if i < 0 || i >= h.Categories || i == h.Category {
		return h
	}
	h.Category = i
	h.List = h.List.Reset()
	return h
}

// NextCategory cycles forward through the categories.
func (h Help) NextCategory() Help {
	if h.Categories == 0 {
		return h
	}
	return h.SelectCategory((h.Category + 1) % h.Categories)
}

// PrevCategory cycles backward through the categories.
func (h Help) PrevCategory() Help {
	if h.Categories == 0 {
		return h
	}
	return h.SelectCategory((h.Category - 1 + h.Categories) % h.Categories)
}

// ScrollDown moves the help text one line down without wrapping.
func (h Help) ScrollDown() Help {
	if h.List.CanScrollDown() {
		h.List.Offset++
	}
	return h
}

// ScrollUp moves the help text one line up without wrapping.
func (h Help) ScrollUp() Help {
	if h.List.Offset > 0 {
		h.List.Offset--
	}
	return h
}
