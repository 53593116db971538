package match

import "github.com/ruminaider/sift/internal/items"

// List is the ordered result of one matching pass: positions 0..Len()-1 map to
// store indices. It is rebuilt from scratch on every query change and never
// outlives the pass that produced it.
type List struct {
	store  *items.Store
	idx    []int
	exact  int
	prefix int
}

// Len returns the number of matches.
func (l List) Len() int { return len(l.idx) }

// Empty reports whether nothing matched.
func (l List) Empty() bool { return len(l.idx) == 0 }

// At returns the store index of the match at pos.
func (l List) At(pos int) int { return l.idx[pos] }

// Text returns the item text of the match at pos.
func (l List) Text(pos int) string { return l.store.Text(l.idx[pos]) }

// Tier returns the ordering class of the match at pos.
func (l List) Tier(pos int) Tier {
	switch {
	case pos < l.exact:
		return TierExact
	case pos < l.exact+l.prefix:
		return TierPrefix
	default:
		return TierSubstring
	}
}

// Head returns the first position, if any.
func (l List) Head() (int, bool) { return 0, len(l.idx) > 0 }

// Tail returns the last position, if any.
func (l List) Tail() (int, bool) { return len(l.idx) - 1, len(l.idx) > 0 }

// Left returns the position before pos, if any.
func (l List) Left(pos int) (int, bool) {
	if pos <= 0 || pos > len(l.idx) {
		return 0, false
	}
	return pos - 1, true
}

// Right returns the position after pos, if any.
func (l List) Right(pos int) (int, bool) {
	if pos < 0 || pos+1 >= len(l.idx) {
		return 0, false
	}
	return pos + 1, true
}

// Texts returns the matched texts in list order.
func (l List) Texts() []string {
	out := make([]string, len(l.idx))
	for pos := range l.idx {
		out[pos] = l.Text(pos)
	}
	return out
}

// CommonPrefix returns the byte-wise longest common prefix of every matched
// text, starting from the head match and narrowing.
func (l List) CommonPrefix() string {
	if len(l.idx) == 0 {
		return ""
	}
	prefix := l.Text(0)
	for pos := 1; pos < len(l.idx) && prefix != ""; pos++ {
		text := l.Text(pos)
		n := 0
		for n < len(prefix) && n < len(text) && prefix[n] == text[n] {
			n++
		}
		prefix = prefix[:n]
	}
	return prefix
}
