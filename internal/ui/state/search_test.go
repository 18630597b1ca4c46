package state

import (
	"reflect"
	"testing"
	"time"

	"pgregory.net/rapid"
)

var fruit = []string{"apple", "Banana", "grape"}

func typeQuery(s Search, q string, names []string, list List) (Search, List) {
	now := time.Unix(0, 0)
	for _, r := range q {
		s, list = s.Type(r, names, list, now)
	}
	return s, list
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	list := newList(len(fruit), 10)
	s := NewSearch(nil).Start(time.Unix(0, 0))
	s, list = typeQuery(s, "an", fruit, list)
	if !reflect.DeepEqual(s.Matches, []int{1}) {
		t.Fatalf("expected matches [1], got %v", s.Matches)
	}
	if list.Selected != 1 {
		t.Fatalf("expected selection to jump to 1, got %d", list.Selected)
	}
	if s.Cursor != 0 {
		t.Fatalf("expected match cursor 0, got %d", s.Cursor)
	}
}

func TestSearchEmptyQueryLeavesSelection(t *testing.T) {
	list := newList(len(fruit), 10).Select(2)
	s := NewSearch(nil).Start(time.Unix(0, 0))
	s, got := s.Recompute(fruit, list)
	if len(s.Matches) != 0 || s.Cursor != -1 {
		t.Fatalf("expected no matches, got %v cursor %d", s.Matches, s.Cursor)
	}
	if got != list {
		t.Fatalf("expected list untouched, got %+v", got)
	}
}

func TestSearchIgnoresWhitespace(t *testing.T) {
	list := newList(len(fruit), 10)
	s := NewSearch(nil).Start(time.Unix(0, 0))
	s, _ = s.Type(' ', fruit, list, time.Unix(0, 0))
	s, _ = s.Type('\t', fruit, list, time.Unix(0, 0))
	if s.Query != "" {
		t.Fatalf("expected whitespace ignored, got %q", s.Query)
	}
}

func TestSearchBackspaceKeepsActive(t *testing.T) {
	list := newList(len(fruit), 10)
	s := NewSearch(nil).Start(time.Unix(0, 0))
	s, list = typeQuery(s, "p", fruit, list)
	if !reflect.DeepEqual(s.Matches, []int{0, 2}) {
		t.Fatalf("expected matches [0 2], got %v", s.Matches)
	}
	s, list = s.Backspace(fruit, list, time.Unix(1, 0))
	if s.Query != "" || len(s.Matches) != 0 {
		t.Fatalf("expected cleared query and matches, got %q %v", s.Query, s.Matches)
	}
	if !s.Active {
		t.Fatalf("expected search to remain active")
	}
	if list.Selected != 0 {
		t.Fatalf("expected selection to stay at 0, got %d", list.Selected)
	}
}

func TestSearchNextPrevCycle(t *testing.T) {
	names := []string{"a1", "b", "a2", "c", "a3"}
	list := newList(len(names), 2)
	s := NewSearch(nil).Start(time.Unix(0, 0))
	s, list = typeQuery(s, "a", names, list)
	s = s.Commit(time.Unix(0, 0))
	if s.Active {
		t.Fatalf("expected commit to deactivate typing")
	}
	var selections []int
	for i := 0; i < 4; i++ {
		s, list = s.Next(list)
		selections = append(selections, list.Selected)
	}
	if want := []int{2, 4, 0, 2}; !reflect.DeepEqual(selections, want) {
		t.Fatalf("expected next selections %v, got %v", want, selections)
	}
	if list.Offset != 1 {
		t.Fatalf("expected offset 1 after jumping to 2, got %d", list.Offset)
	}
	s, list = s.Prev(list)
	s, list = s.Prev(list)
	if list.Selected != 4 || s.Cursor != 2 {
		t.Fatalf("expected prev to wrap to index 4 cursor 2, got %d cursor %d", list.Selected, s.Cursor)
	}
}

func TestSearchCancelDiscards(t *testing.T) {
	list := newList(len(fruit), 10)
	s := NewSearch(nil).Start(time.Unix(0, 0))
	s, list = typeQuery(s, "ap", fruit, list)
	s = s.Cancel(time.Unix(0, 0))
	if s.Active || s.Query != "" || s.Matches != nil {
		t.Fatalf("expected cancelled search, got %+v", s)
	}
	next, got := s.Next(list)
	if next.Cursor != -1 || got != list {
		t.Fatalf("expected next to be a no-op after cancel")
	}
}

func TestSearchClearMakesNavigationNoop(t *testing.T) {
	list := newList(len(fruit), 10)
	s := NewSearch(nil).Start(time.Unix(0, 0))
	s, list = typeQuery(s, "a", fruit, list)
	s = s.Clear()
	if s.Query != "" || len(s.Matches) != 0 || s.Active {
		t.Fatalf("expected cleared search, got %+v", s)
	}
	if _, got := s.Next(list); got != list {
		t.Fatalf("expected next to leave list alone")
	}
	if _, got := s.Prev(list); got != list {
		t.Fatalf("expected prev to leave list alone")
	}
}

func TestSearchVisibleLingers(t *testing.T) {
	start := time.Unix(100, 0)
	s := NewSearch(nil).Start(start)
	if !s.Visible(start.Add(time.Hour)) {
		t.Fatalf("expected active search to be visible")
	}
	s, _ = typeQuery(s, "ap", fruit, newList(3, 3))
	s = s.Commit(start)
	if !s.Visible(start.Add(time.Second)) {
		t.Fatalf("expected committed search visible within linger window")
	}
	if s.Visible(start.Add(3 * time.Second)) {
		t.Fatalf("expected committed search hidden after linger window")
	}
}

func TestSearchStatus(t *testing.T) {
	list := newList(len(fruit), 10)
	s := NewSearch(nil).Start(time.Unix(0, 0))
	s, list = typeQuery(s, "ap", fruit, list)
	if got := s.Status(); got != "/ap  (2 matches)" {
		t.Fatalf("unexpected active status %q", got)
	}
	s = s.Commit(time.Unix(0, 0))
	s, _ = s.Next(list)
	if got := s.Status(); got != "/ap  [2/2]" {
		t.Fatalf("unexpected committed status %q", got)
	}
	s = NewSearch(nil).Start(time.Unix(0, 0))
	s, _ = typeQuery(s, "zz", fruit, list)
	s = s.Commit(time.Unix(0, 0))
	if got := s.Status(); got != "/zz  (no matches)" {
		t.Fatalf("unexpected empty status %q", got)
	}
}

func TestSearchFuzzyMatcher(t *testing.T) {
	match, err := MatcherFor("fuzzy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	names := []string{"Documents", "Downloads", "src"}
	s := NewSearch(match).Start(time.Unix(0, 0))
	s, _ = typeQuery(s, "dwn", names, newList(3, 3))
	if !reflect.DeepEqual(s.Matches, []int{1}) {
		t.Fatalf("expected fuzzy matches [1], got %v", s.Matches)
	}
	if _, err := MatcherFor("regex"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestSpans(t *testing.T) {
	got := Spans("BananaSplit", "an")
	want := []Span{
		{Text: "B"},
		{Text: "an", Match: true},
		{Text: "an", Match: true},
		{Text: "aSplit"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := Spans("grape", ""); !reflect.DeepEqual(got, []Span{{Text: "grape"}}) {
		t.Fatalf("expected single plain span, got %v", got)
	}
	if got := Spans("ÄPFEL", "äp"); len(got) != 2 || got[0].Text != "ÄP" || !got[0].Match {
		t.Fatalf("expected folded unicode match, got %v", got)
	}
}

func TestSearchPropertyMatchesFaithful(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfN(rapid.StringMatching(`[a-cA-C]{0,6}`), 0, 20).Draw(t, "names")
		query := rapid.StringMatching(`[a-cA-C]{1,3}`).Draw(t, "query")
		list := newList(len(names), 5)
		s := NewSearch(nil).Start(time.Unix(0, 0))
		s, list = typeQuery(s, query, names, list)
		prev := -1
		j := 0
		for i, name := range names {
			want := SubstringMatcher(name, query)
			got := j < len(s.Matches) && s.Matches[j] == i
			if want != got {
				t.Fatalf("name %q at %d: matched=%v, in matches=%v", name, i, want, got)
			}
			if got {
				if s.Matches[j] <= prev {
					t.Fatalf("matches not ascending: %v", s.Matches)
				}
				prev = s.Matches[j]
				j++
			}
		}
		if len(s.Matches) > 0 && list.Selected != s.Matches[0] {
			t.Fatalf("expected selection on first match %d, got %d", s.Matches[0], list.Selected)
		}
	})
}
