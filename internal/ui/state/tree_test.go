package state

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"
)

func TestHeightsAndOffsets(t *testing.T) {
	heights := Heights([]int{2, 0, 1})
	if want := []int{4, 2, 3}; !reflect.DeepEqual(heights, want) {
		t.Fatalf("expected heights %v, got %v", want, heights)
	}
	if want, got := []int{0, 4, 6}, LineOffsets(heights); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected offsets %v, got %v", want, got)
	}
	for i, want := range []int{0, 4, 6} {
		if got := LineOffset(heights, i); got != want {
			t.Fatalf("LineOffset(%d) = %d, want %d", i, got, want)
		}
	}
	if got := TotalLines(heights); got != 9 {
		t.Fatalf("expected 9 total lines, got %d", got)
	}
}

func TestTreeSelectScrollsWholeSession(t *testing.T) {
	heights := Heights([]int{2, 0, 1})
	tree := Tree{}.SetViewport(3).Select(heights, 2)
	if tree.Selected != 2 {
		t.Fatalf("expected selected 2, got %d", tree.Selected)
	}
	if tree.Offset != 6 {
		t.Fatalf("expected offset 6, got %d", tree.Offset)
	}
}

func TestTreeMoveNextFollowsSelection(t *testing.T) {
	heights := Heights([]int{2, 0, 1})
	tree := Tree{}.SetViewport(5)
	tree = tree.MoveNext(heights)
	if tree.Selected != 1 || tree.Offset != 1 {
		t.Fatalf("expected selected 1 offset 1, got %d/%d", tree.Selected, tree.Offset)
	}
	tree = tree.MoveNext(heights)
	if tree.Selected != 2 || tree.Offset != 4 {
		t.Fatalf("expected selected 2 offset 4, got %d/%d", tree.Selected, tree.Offset)
	}
	tree = tree.MoveNext(heights)
	if tree.Selected != 0 || tree.Offset != 0 {
		t.Fatalf("expected wrap to 0/0, got %d/%d", tree.Selected, tree.Offset)
	}
}

func TestTreeMovePrevWrapsToLastSession(t *testing.T) {
	heights := Heights([]int{2, 0, 1})
	tree := Tree{}.SetViewport(4).MovePrev(heights)
	if tree.Selected != 2 {
		t.Fatalf("expected selected 2, got %d", tree.Selected)
	}
	if tree.Offset != 5 {
		t.Fatalf("expected offset 5, got %d", tree.Offset)
	}
	tree = tree.MovePrev(heights)
	if tree.Selected != 1 || tree.Offset != 4 {
		t.Fatalf("expected selected 1 offset 4, got %d/%d", tree.Selected, tree.Offset)
	}
}

func TestTreeEmptyIsNoop(t *testing.T) {
	tree := Tree{Selected: 3, Offset: 7, Viewport: 4}
	for _, got := range []Tree{tree.MoveNext(nil), tree.MovePrev(nil), tree.Clamp(nil)} {
		if got.Selected != 0 || got.Offset != 0 {
			t.Fatalf("expected zeroed tree, got %+v", got)
		}
	}
}

func TestTreeClampAfterShrink(t *testing.T) {
	tree := Tree{Selected: 4, Offset: 12, Viewport: 4}
	tree = tree.Clamp(Heights([]int{1, 1}))
	if tree.Selected != 1 {
		t.Fatalf("expected selected 1, got %d", tree.Selected)
	}
	if tree.Offset != 2 {
		t.Fatalf("expected offset 2, got %d", tree.Offset)
	}
}

func TestTreePropertySelectedSessionVisible(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		counts := rapid.SliceOfN(rapid.IntRange(0, 4), 0, 12).Draw(t, "windows")
		heights := Heights(counts)
		viewport := rapid.IntRange(6, 30).Draw(t, "viewport")
		tree := Tree{}.SetViewport(viewport)
		steps := rapid.SliceOf(rapid.Bool()).Draw(t, "steps")
		for _, down := range steps {
			if down {
				tree = tree.MoveNext(heights)
			} else {
				tree = tree.MovePrev(heights)
			}
			if len(heights) == 0 {
				if tree.Selected != 0 || tree.Offset != 0 {
					t.Fatalf("expected zeroed tree, got %+v", tree)
				}
				continue
			}
			top := LineOffset(heights, tree.Selected)
			bottom := top + heights[tree.Selected]
			if top < tree.Offset || bottom > tree.Offset+tree.Viewport {
				t.Fatalf("session %d [%d,%d) not inside viewport %+v", tree.Selected, top, bottom, tree)
			}
		}
	})
}

func TestTreePropertyFullCycleReturnsHome(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		counts := rapid.SliceOfN(rapid.IntRange(0, 5), 1, 10).Draw(t, "windows")
		heights := Heights(counts)
		tree := Tree{}.SetViewport(rapid.IntRange(0, 20).Draw(t, "viewport"))
		tree = tree.Select(heights, rapid.IntRange(0, len(heights)-1).Draw(t, "start"))
		start := tree.Selected
		for range heights {
			tree = tree.MoveNext(heights)
		}
		if tree.Selected != start {
			t.Fatalf("expected to return to %d, got %d", start, tree.Selected)
		}
	})
}
