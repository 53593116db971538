package items

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// MaxLineBytes is the longest single input line accepted by Load.
const MaxLineBytes = 64 * 1024

// ErrCapacity is returned when the input does not fit the store.
var ErrCapacity = errors.New("item store capacity exceeded")

// Item is one unit of filterable text.
type Item struct {
	Text   string
	Marked bool
}

// Store holds the items in source order. It is never resized or reordered
// after construction; only the Marked flag of an item changes.
type Store struct {
	items []Item
}

// New builds a store from texts. A max of zero or less means unbounded.
func New(texts []string, max int) (*Store, error) {
	if max > 0 && len(texts) > max {
		return nil, fmt.Errorf("%d items, limit %d: %w", len(texts), max, ErrCapacity)
	}
	s := &Store{items: make([]Item, len(texts))}
	for i, t := range texts {
		s.items[i] = Item{Text: t}
	}
	return s, nil
}

// Load reads newline-delimited items from r. The trailing newline of each line
// is stripped; a final line without a newline is still an item.
func Load(r io.Reader, max int) (*Store, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), MaxLineBytes)
	sc.Split(scanLines)

	var texts []string
	for sc.Scan() {
		if max > 0 && len(texts) >= max {
			return nil, fmt.Errorf("more than %d items: %w", max, ErrCapacity)
		}
		texts = append(texts, sc.Text())
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("line longer than %d bytes: %w", MaxLineBytes, ErrCapacity)
		}
		return nil, fmt.Errorf("reading items: %w", err)
	}
	return New(texts, max)
}

// scanLines is bufio.ScanLines without the carriage return stripping: only
// '\n' separates items.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Len returns the number of items.
func (s *Store) Len() int { return len(s.items) }

// Text returns the text of item i.
func (s *Store) Text(i int) string { return s.items[i].Text }

// Item returns a copy of item i.
func (s *Store) Item(i int) Item { return s.items[i] }

// Marked reports whether item i has been marked.
func (s *Store) Marked(i int) bool { return s.items[i].Marked }

// SetMarked sets the marked flag of item i.
func (s *Store) SetMarked(i int, marked bool) { s.items[i].Marked = marked }

// MarkedTexts returns the text of every marked item in store order.
func (s *Store) MarkedTexts() []string {
	var out []string
	for _, it := range s.items {
		if it.Marked {
			out = append(out, it.Text)
		}
	}
	return out
}

// MaxWidth returns the widest item according to measure, or 0 for an empty
// store.
func (s *Store) MaxWidth(measure func(string) int) int {
	w := 0
	for _, it := range s.items {
		if n := measure(it.Text); n > w {
			w = n
		}
	}
	return w
}
