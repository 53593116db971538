package session

import (
	"fmt"

	"github.com/ruminaider/sift/internal/match"
)

// Entry is one visible item.
type Entry struct {
	Index    int // store index
	Text     string
	Tier     match.Tier
	Selected bool
	Marked   bool
	Spans    []match.Span
}

// View is a renderable snapshot of the session.
type View struct {
	Query   string
	Cursor  int
	Entries []Entry
	HasPrev bool
	HasNext bool
	Matched int
	Total   int
}

// Counter formats the matched/total indicator.
func (v View) Counter() string {
	return fmt.Sprintf("%d/%d", v.Matched, v.Total)
}

// View returns the current query, cursor and visible window with highlight
// spans computed for each visible entry.
func (s *Session) View() View {
	v := View{
		Query:   s.buf.Text(),
		Cursor:  s.buf.Cursor(),
		HasPrev: s.win.HasPrev(),
		HasNext: s.win.HasNext(),
		Matched: s.list.Len(),
		Total:   s.store.Len(),
	}
	if s.win.Empty() {
		return v
	}
	for pos := s.win.Curr; pos < s.win.Next; pos++ {
		idx := s.list.At(pos)
		text := s.list.Text(pos)
		v.Entries = append(v.Entries, Entry{
			Index:    idx,
			Text:     text,
			Tier:     s.list.Tier(pos),
			Selected: pos == s.sel,
			Marked:   s.store.Marked(idx),
			Spans:    match.Highlights(text, v.Query, s.opts),
		})
	}
	return v
}
