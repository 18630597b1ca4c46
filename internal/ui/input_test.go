package ui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	uistate "github.com/atomicstack/pinta/internal/ui/state"
)

func TestSearchTypingJumpsToFirstMatch(t *testing.T) {
	dir := makeDir(t, "beta/", "Alpha/", "gamma/", "alphabet/")
	h := NewHarness(newTestModel(t, dir, nil))
	h.Type("/")
	m := h.Model()
	if m.ctl.Route() != uistate.TargetSearch {
		t.Fatalf("expected search to own input")
	}
	h.Type("AL")
	want := []int{}
	for i, name := range m.dirs.Names() {
		if name == "Alpha" || name == "alphabet" {
			want = append(want, i)
		}
	}
	if !reflect.DeepEqual(m.search.Matches, want) {
		t.Fatalf("expected matches %v, got %v", want, m.search.Matches)
	}
	if m.dirList.Selected != want[0] {
		t.Fatalf("expected selection on first match %d, got %d", want[0], m.dirList.Selected)
	}
}

func TestSearchKeysAreTextWhileTyping(t *testing.T) {
	h := NewHarness(newTestModel(t, makeDir(t, "a/"), nil))
	h.Type("/qHjn")
	m := h.Model()
	if m.search.Query != "qHjn" {
		t.Fatalf("expected bound keys to be typed, got %q", m.search.Query)
	}
	if h.Quitting() || m.ctl.HelpOpen {
		t.Fatalf("expected no quit or help while typing")
	}
	h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.search.Query != "qHjn" {
		t.Fatalf("expected space to be ignored, got %q", m.search.Query)
	}
}

func TestSearchBackspaceAndCancel(t *testing.T) {
	h := NewHarness(newTestModel(t, makeDir(t, "alpha/", "beta/"), nil))
	h.Type("/ab")
	m := h.Model()
	if len(m.search.Matches) != 0 {
		t.Fatalf("expected no matches for ab, got %v", m.search.Matches)
	}
	h.Press(tea.KeyBackspace)
	if m.search.Query != "a" || len(m.search.Matches) != 2 {
		t.Fatalf("expected query a with two matches, got %q %v", m.search.Query, m.search.Matches)
	}
	h.Press(tea.KeyBackspace)
	h.Press(tea.KeyBackspace)
	if !m.search.Active || m.search.Query != "" || len(m.search.Matches) != 0 {
		t.Fatalf("expected an empty but active search, got %+v", m.search)
	}
	h.Type("b")
	h.Press(tea.KeyEsc)
	if m.search.Active || m.search.Query != "" || len(m.search.Matches) != 0 {
		t.Fatalf("expected cancel to drop the search, got %+v", m.search)
	}
	if m.ctl.Mode() != uistate.ModeNormal {
		t.Fatalf("expected normal mode, got %s", m.ctl.Mode())
	}
}

func TestSearchCommitThenCycle(t *testing.T) {
	dir := makeDir(t, "one-x/", "two/", "three-x/", "four-x/")
	h := NewHarness(newTestModel(t, dir, nil))
	h.Type("/-x")
	h.Press(tea.KeyEnter)
	m := h.Model()
	if m.search.Active || len(m.search.Matches) != 3 || m.search.Cursor != 0 {
		t.Fatalf("expected committed search with three matches, got %+v", m.search)
	}
	matches := append([]int(nil), m.search.Matches...)
	h.Type("n")
	if m.dirList.Selected != matches[1] {
		t.Fatalf("expected n to jump to %d, got %d", matches[1], m.dirList.Selected)
	}
	h.Type("nn")
	if m.search.Cursor != 0 || m.dirList.Selected != matches[0] {
		t.Fatalf("expected n to wrap to the first match, got cursor %d", m.search.Cursor)
	}
	h.Type("N")
	if m.search.Cursor != 2 || m.dirList.Selected != matches[2] {
		t.Fatalf("expected N to wrap to the last match, got cursor %d", m.search.Cursor)
	}
}

func TestSearchOnlyFromDirectories(t *testing.T) {
	h := NewHarness(newTestModel(t, makeDir(t, "a/"), nil))
	h.Press(tea.KeyTab)
	h.Type("/")
	if h.Model().ctl.Searching {
		t.Fatalf("expected search to stay closed on the sessions tab")
	}
}
