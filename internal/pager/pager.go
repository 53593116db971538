package pager

// Glyphs drawn at either end of a flow layout when more pages exist.
const (
	PrevGlyph = "<"
	NextGlyph = ">"
)

// Source is the ordered sequence being paged.
type Source interface {
	Len() int
	Text(pos int) string
}

// Layout describes the space available for entries.
//
// Grid mode is selected by Rows > 0: every entry takes one cell and a page
// holds Rows*Columns cells. Flow mode (Rows == 0) lays entries out on one line;
// each costs its measured width and a page ends when the running sum exceeds
// Width minus Reserved minus the two pager glyphs.
type Layout struct {
	Rows     int
	Columns  int
	Width    int
	Reserved int // prompt and input field width in flow mode
	Measure  func(string) int
}

// Grid reports whether the layout is a fixed grid.
func (l Layout) Grid() bool { return l.Rows > 0 }

// PageSize returns the number of cells of a grid page.
func (l Layout) PageSize() int {
	cols := l.Columns
	if cols < 1 {
		cols = 1
	}
	return l.Rows * cols
}

// Available returns the width left for entries in flow mode.
func (l Layout) Available() int {
	return l.Width - l.Reserved - l.measure(PrevGlyph) - l.measure(NextGlyph)
}

func (l Layout) measure(s string) int {
	if l.Measure == nil {
		return len(s)
	}
	return l.Measure(s)
}

// Window is the visible slice [Curr, Next) of a source plus the position that
// would become Curr when paging backward. Next equal to the source length
// means there is no next page.
type Window struct {
	Prev int
	Curr int
	Next int
	n    int
}

// Empty reports whether the window was computed over an empty source.
func (w Window) Empty() bool { return w.n == 0 }

// Visible reports whether pos lies inside [Curr, Next).
func (w Window) Visible(pos int) bool { return !w.Empty() && pos >= w.Curr && pos < w.Next }

// HasNext reports whether entries exist beyond the window.
func (w Window) HasNext() bool { return w.Next < w.n }

// HasPrev reports whether entries exist before the window.
func (w Window) HasPrev() bool { return !w.Empty() && w.Curr > 0 }

// Compute returns the window starting at curr. curr is clamped into the
// source; an empty source yields the zero window.
func Compute(src Source, curr int, l Layout) Window {
	n := src.Len()
	if n == 0 {
		return Window{}
	}
	if curr < 0 {
		curr = 0
	}
	if curr >= n {
		curr = n - 1
	}

	w := Window{Prev: curr, Curr: curr, Next: n, n: n}
	if l.Grid() {
		size := l.PageSize()
		w.Next = min(curr+size, n)
		w.Prev = max(curr-size, 0)
		return w
	}

	avail := l.Available()
	sum := 0
	for pos := curr; pos < n; pos++ {
		sum += min(l.measure(src.Text(pos)), avail)
		if sum > avail {
			w.Next = pos
			break
		}
	}
	sum = 0
	for w.Prev > 0 {
		sum += min(l.measure(src.Text(w.Prev-1)), avail)
		if sum > avail {
			break
		}
		w.Prev--
	}
	return w
}
