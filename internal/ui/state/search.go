package state

import (
	"fmt"
	"time"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SearchLinger is how long the search popup stays up after typing stops.
const SearchLinger = 2 * time.Second

// Matcher reports whether name matches query.
type Matcher func(name, query string) bool

// SubstringMatcher matches when the case-folded query occurs in the case-folded name.
func SubstringMatcher(name, query string) bool {
	return indexFolded(fold(name), fold(query), 0) >= 0
}

// FuzzyMatcher matches when the query's characters appear in order in the name.
func FuzzyMatcher(name, query string) bool {
	return fuzzy.MatchNormalizedFold(query, name)
}

// MatcherFor maps a configured search mode onto its matcher.
func MatcherFor(mode string) (Matcher, error) {
	switch mode {
	case "", "substring":
		return SubstringMatcher, nil
	case "fuzzy":
		return FuzzyMatcher, nil
	default:
		return nil, fmt.Errorf("unknown search mode %q", mode)
	}
}

// Search holds the incremental search over the directory listing. Matches
// index into the listing it was computed against and must be discarded
// whenever that listing is replaced.
type Search struct {
	Query   string
	Active  bool
	Matches []int
	// Cursor indexes Matches, or is -1 when nothing is matched.
	Cursor  int
	Updated time.Time

	match Matcher
}

// NewSearch returns an idle search using match, or substring matching when nil.
func NewSearch(match Matcher) Search {
	if match == nil {
		match = SubstringMatcher
	}
	return Search{Cursor: -1, match: match}
}

// Start begins a fresh query.
func (s Search) Start(now time.Time) Search {
	s.Active = true
	s.Query = ""
	s.Matches = nil
	s.Cursor = -1
	s.Updated = now
	return s
}

// Type appends r to the query and re-runs the match. Whitespace and
// non-printable runes are ignored.
func (s Search) Type(r rune, names []string, list List, now time.Time) (Search, List) {
	if !s.Active || !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return s, list
	}
	s.Query += string(r)
	s.Updated = now
	return s.Recompute(names, list)
}

// Backspace drops the last rune of the query and re-runs the match. The
// search stays active when the query empties.
func (s Search) Backspace(names []string, list List, now time.Time) (Search, List) {
	if !s.Active || s.Query == "" {
		return s, list
	}
	runes := []rune(s.Query)
	s.Query = string(runes[:len(runes)-1])
	s.Updated = now
	return s.Recompute(names, list)
}

// Cancel abandons the search and forgets its matches.
func (s Search) Cancel(now time.Time) Search {
	s.Active = false
	s.Query = ""
	s.Matches = nil
	s.Cursor = -1
	s.Updated = now
	return s
}

// Commit stops typing but keeps the matches for n/N navigation.
func (s Search) Commit(now time.Time) Search {
	s.Active = false
	s.Updated = now
	return s
}

// Clear discards everything, including the popup timestamp. Used when the
// listing the matches refer to goes away.
func (s Search) Clear() Search {
	return NewSearch(s.match)
}

// Recompute collects the listing indices matching the query, in listing
// order, and jumps the selection to the first one.
func (s Search) Recompute(names []string, list List) (Search, List) {
	s.Matches = nil
	s.Cursor = -1
	if s.Query == "" {
		return s, list
	}
	match := s.match
	if match == nil {
		match = SubstringMatcher
	}
	for i, name := range names {
		if match(name, s.Query) {
			s.Matches = append(s.Matches, i)
		}
	}
	if len(s.Matches) == 0 {
		return s, list
	}
	s.Cursor = 0
	return s, list.Select(s.Matches[0])
}

// Next jumps to the following match, wrapping around.
func (s Search) Next(list List) (Search, List) {
	n := len(s.Matches)
	if n == 0 {
		return s, list
	}
	s.Cursor = (s.Cursor + 1) % n
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	return s, list.Select(s.Matches[s.Cursor])
}

// Prev jumps to the preceding match, wrapping around.
func (s Search) Prev(list List) (Search, List) {
	n := len(s.Matches)
	if n == 0 {
		return s, list
	}
	if s.Cursor <= 0 {
		s.Cursor = n - 1
	} else {
		s.Cursor--
	}
	return s, list.Select(s.Matches[s.Cursor])
}

// IsMatch reports whether listing index i is one of the current matches.
func (s Search) IsMatch(i int) bool {
	for _, m := range s.Matches {
		if m == i {
			return true
		}
		if m > i {
			return false
		}
	}
	return false
}

// Visible reports whether the search popup should be drawn at now.
func (s Search) Visible(now time.Time) bool {
	if s.Active {
		return true
	}
	if s.Query == "" || s.Updated.IsZero() {
		return false
	}
	return now.Sub(s.Updated) < SearchLinger
}

// Highlighting reports whether matched names should be highlighted. Single
// rune queries match too much of a listing to be worth painting.
func (s Search) Highlighting() bool {
	return len([]rune(s.Query)) > 1 && len(s.Matches) > 0
}

// Status renders the one-line summary shown in the search popup.
func (s Search) Status() string {
	if s.Active {
		return fmt.Sprintf("/%s  (%d matches)", s.Query, len(s.Matches))
	}
	if len(s.Matches) == 0 {
		return fmt.Sprintf("/%s  (no matches)", s.Query)
	}
	return fmt.Sprintf("/%s  [%d/%d]", s.Query, s.Cursor+1, len(s.Matches))
}

// Span is a run of a name that either matches the query or does not.
type Span struct {
	Text  string
	Match bool
}

// Spans splits name into alternating plain and matched runs for every
// case-insensitive occurrence of query.
func Spans(name, query string) []Span {
	if name == "" {
		return nil
	}
	q := fold(query)
	if len(q) == 0 {
		return []Span{{Text: name}}
	}
	src := []rune(name)
	folded := fold(name)
	var spans []Span
	last := 0
	for from := 0; ; {
		at := indexFolded(folded, q, from)
		if at < 0 {
			break
		}
		if at > last {
			spans = append(spans, Span{Text: string(src[last:at])})
		}
		spans = append(spans, Span{Text: string(src[at : at+len(q)]), Match: true})
		last = at + len(q)
		from = last
	}
	if last < len(src) {
		spans = append(spans, Span{Text: string(src[last:])})
	}
	return spans
}

// fold lowercases rune by rune so folded offsets line up with the original.
func fold(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

func indexFolded(haystack, needle []rune, from int) int {
	if len(needle) == 0 {
		return from
	}
	for i := from; i+len(needle) <= len(haystack); i++ {
		match := true
		for j, r := range needle {
			if haystack[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
