package state

import (
	"testing"

	"pgregory.net/rapid"
)

func newList(total, viewport int) List {
	return List{}.SetViewport(viewport).SetTotal(total)
}

func TestListMoveNextScrollsOneRow(t *testing.T) {
	l := newList(10, 3)
	for i := 0; i < 3; i++ {
		l = l.MoveNext()
	}
	if l.Selected != 3 {
		t.Fatalf("expected selected 3, got %d", l.Selected)
	}
	if l.Offset != 1 {
		t.Fatalf("expected offset 1, got %d", l.Offset)
	}
}

func TestListMoveNextWrapResetsOffset(t *testing.T) {
	l := newList(5, 2)
	for i := 0; i < 4; i++ {
		l = l.MoveNext()
	}
	if l.Selected != 4 || l.Offset != 3 {
		t.Fatalf("expected selected 4 offset 3, got %d/%d", l.Selected, l.Offset)
	}
	l = l.MoveNext()
	if l.Selected != 0 {
		t.Fatalf("expected wrap to 0, got %d", l.Selected)
	}
	if l.Offset != 0 {
		t.Fatalf("expected offset reset to 0, got %d", l.Offset)
	}
}

func TestListMovePrevWrapSnapsToBottom(t *testing.T) {
	l := newList(10, 4)
	l = l.MovePrev()
	if l.Selected != 9 {
		t.Fatalf("expected selected 9, got %d", l.Selected)
	}
	if l.Offset != 6 {
		t.Fatalf("expected offset 6, got %d", l.Offset)
	}
}

func TestListMovePrevScrollsOneRow(t *testing.T) {
	l := List{Selected: 5, Offset: 5, Total: 10, Viewport: 3}
	l = l.MovePrev()
	if l.Selected != 4 || l.Offset != 4 {
		t.Fatalf("expected selected 4 offset 4, got %d/%d", l.Selected, l.Offset)
	}
}

func TestListEmptyIsNoop(t *testing.T) {
	l := newList(0, 5)
	if got := l.MoveNext(); got != l {
		t.Fatalf("expected no-op on empty list, got %+v", got)
	}
	if got := l.MovePrev(); got != l {
		t.Fatalf("expected no-op on empty list, got %+v", got)
	}
}

func TestListSetTotalClamps(t *testing.T) {
	l := List{Selected: 8, Offset: 7, Total: 10, Viewport: 3}
	l = l.SetTotal(4)
	if l.Selected != 3 {
		t.Fatalf("expected selected clamped to 3, got %d", l.Selected)
	}
	if l.Offset != 1 {
		t.Fatalf("expected offset clamped to 1, got %d", l.Offset)
	}
	l = l.SetTotal(0)
	if l.Selected != 0 || l.Offset != 0 {
		t.Fatalf("expected zeroed list, got %+v", l)
	}
}

func TestListSetViewportClampsOffset(t *testing.T) {
	l := List{Selected: 9, Offset: 8, Total: 10, Viewport: 2}
	l = l.SetViewport(6)
	if l.Offset != 4 {
		t.Fatalf("expected offset 4, got %d", l.Offset)
	}
}

func TestListEnsureVisible(t *testing.T) {
	l := newList(20, 5)
	l = l.EnsureVisible(12)
	if l.Offset != 8 {
		t.Fatalf("expected offset 8, got %d", l.Offset)
	}
	l = l.EnsureVisible(3)
	if l.Offset != 3 {
		t.Fatalf("expected offset 3, got %d", l.Offset)
	}
	l = l.EnsureVisible(5)
	if l.Offset != 3 {
		t.Fatalf("expected offset unchanged at 3, got %d", l.Offset)
	}
}

func TestListWindow(t *testing.T) {
	l := List{Selected: 7, Offset: 6, Total: 8, Viewport: 4}
	start, end := l.Window()
	if start != 6 || end != 8 {
		t.Fatalf("expected window [6,8), got [%d,%d)", start, end)
	}
	if !l.CanScrollUp() || l.CanScrollDown() {
		t.Fatalf("unexpected scroll indicators for %+v", l)
	}
}

func drawList(t *rapid.T) List {
	total := rapid.IntRange(0, 40).Draw(t, "total")
	viewport := rapid.IntRange(0, 12).Draw(t, "viewport")
	l := newList(total, viewport)
	if total > 0 {
		l = l.Select(rapid.IntRange(0, total-1).Draw(t, "start"))
	}
	return l
}

func checkListInvariants(t *rapid.T, l List) {
	if l.Total == 0 {
		if l.Selected != 0 {
			t.Fatalf("selected %d on empty list", l.Selected)
		}
		return
	}
	if l.Selected < 0 || l.Selected >= l.Total {
		t.Fatalf("selected %d out of range for %d rows", l.Selected, l.Total)
	}
	if l.Offset < 0 || l.Offset > l.Total {
		t.Fatalf("offset %d out of range for %+v", l.Offset, l)
	}
}

func TestListPropertyFullCycleReturnsHome(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := drawList(t)
		start := l.Selected
		for i := 0; i < l.Total; i++ {
			l = l.MoveNext()
			checkListInvariants(t, l)
		}
		if l.Selected != start {
			t.Fatalf("expected to return to %d, got %d", start, l.Selected)
		}
	})
}

func TestListPropertyWrapSnapsOffset(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := drawList(t)
		if l.Total == 0 {
			return
		}
		l = l.Select(l.Total - 1).MoveNext()
		if l.Selected != 0 || l.Offset != 0 {
			t.Fatalf("expected wrap to 0/0, got %d/%d", l.Selected, l.Offset)
		}
	})
}

func TestListPropertyPrevUndoesNext(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := drawList(t)
		if l.Total < 2 || l.Selected == l.Total-1 {
			return
		}
		moved := l.MoveNext().MovePrev()
		if moved.Selected != l.Selected {
			t.Fatalf("expected selection %d restored, got %d", l.Selected, moved.Selected)
		}
	})
}

func TestListPropertyEnsureVisibleIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := drawList(t)
		if l.Total == 0 {
			return
		}
		i := rapid.IntRange(0, l.Total-1).Draw(t, "index")
		once := l.EnsureVisible(i)
		twice := once.EnsureVisible(i)
		if once.Offset != twice.Offset {
			t.Fatalf("offset changed from %d to %d", once.Offset, twice.Offset)
		}
		if once.Viewport > 0 && (i < once.Offset || i >= once.Offset+once.Viewport) {
			t.Fatalf("index %d not visible in %+v", i, once)
		}
	})
}

func TestListPropertyNavigationKeepsSelectionVisible(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := drawList(t)
		if l.Viewport == 0 {
			return
		}
		steps := rapid.SliceOf(rapid.Bool()).Draw(t, "steps")
		for _, down := range steps {
			if down {
				l = l.MoveNext()
			} else {
				l = l.MovePrev()
			}
			checkListInvariants(t, l)
			if l.Total > 0 && (l.Selected < l.Offset || l.Selected >= l.Offset+l.Viewport) {
				t.Fatalf("selection %d fell outside viewport %+v", l.Selected, l)
			}
		}
	})
}
