package editor

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultCapacity matches the fixed input buffer of the classic menu tools.
const DefaultCapacity = 8191

// ErrCapacity is returned when a buffer cannot be allocated.
var ErrCapacity = errors.New("invalid query buffer capacity")

// Buffer is a bounded single-line edit buffer with a byte-offset cursor. The
// cursor always sits on a UTF-8 code point boundary with 0 <= cursor <= Len().
type Buffer struct {
	text       []byte
	cursor     int
	capacity   int
	delimiters string
}

// New allocates a buffer holding at most capacity bytes. Word motion treats any
// rune in delimiters as a word separator.
func New(capacity int, delimiters string) (*Buffer, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("capacity %d: %w", capacity, ErrCapacity)
	}
	return &Buffer{
		text:       make([]byte, 0, min(capacity, 256)),
		capacity:   capacity,
		delimiters: delimiters,
	}, nil
}

func (b *Buffer) Text() string { return string(b.text) }
func (b *Buffer) Cursor() int  { return b.cursor }
func (b *Buffer) Len() int     { return len(b.text) }
func (b *Buffer) Cap() int     { return b.capacity }
func (b *Buffer) AtEnd() bool  { return b.cursor == len(b.text) }

// Insert inserts s at the cursor and moves the cursor past it. An insertion
// that would overflow the capacity is dropped and Insert returns false.
func (b *Buffer) Insert(s string) bool {
	if s == "" || len(b.text)+len(s) > b.capacity {
		return false
	}
	b.text = append(b.text[:b.cursor], append([]byte(s), b.text[b.cursor:]...)...)
	b.cursor += len(s)
	return true
}

// Replace swaps the whole text for s, truncated to capacity on a rune
// boundary, and puts the cursor at the end.
func (b *Buffer) Replace(s string) {
	if len(s) > b.capacity {
		n := b.capacity
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
		s = s[:n]
	}
	b.text = append(b.text[:0], s...)
	b.cursor = len(b.text)
}

// deleteRange removes text[from:to] and leaves the cursor at from.
func (b *Buffer) deleteRange(from, to int) bool {
	if from >= to {
		return false
	}
	b.text = append(b.text[:from], b.text[to:]...)
	b.cursor = from
	return true
}

// DeleteBackward removes the rune before the cursor.
func (b *Buffer) DeleteBackward() bool {
	if b.cursor == 0 {
		return false
	}
	return b.deleteRange(b.nextRune(-1), b.cursor)
}

// DeleteForward removes the rune under the cursor.
func (b *Buffer) DeleteForward() bool {
	if b.cursor == len(b.text) {
		return false
	}
	return b.deleteRange(b.cursor, b.nextRune(+1))
}

// DeleteToStart removes everything before the cursor.
func (b *Buffer) DeleteToStart() bool {
	return b.deleteRange(0, b.cursor)
}

// DeleteToEnd removes everything from the cursor on.
func (b *Buffer) DeleteToEnd() bool {
	if b.cursor == len(b.text) {
		return false
	}
	b.text = b.text[:b.cursor]
	return true
}

// DeleteWordBackward removes the word before the cursor together with any
// delimiters between it and the cursor.
func (b *Buffer) DeleteWordBackward() bool {
	end := b.cursor
	b.MoveWordEdge(-1)
	return b.deleteRange(b.cursor, end)
}

// nextRune returns the offset of the neighbouring rune boundary in direction
// dir (+1 or -1), skipping UTF-8 continuation bytes.
func (b *Buffer) nextRune(dir int) int {
	n := b.cursor + dir
	for n > 0 && n < len(b.text) && b.text[n]&0xC0 == 0x80 {
		n += dir
	}
	return max(0, min(n, len(b.text)))
}

// MoveRune moves the cursor one rune left (dir < 0) or right (dir > 0).
func (b *Buffer) MoveRune(dir int) bool {
	switch {
	case dir < 0 && b.cursor > 0:
		b.cursor = b.nextRune(-1)
	case dir > 0 && b.cursor < len(b.text):
		b.cursor = b.nextRune(+1)
	default:
		return false
	}
	return true
}

// MoveWordEdge moves to the start of the previous word (dir < 0) or the end of
// the next word (dir > 0), skipping delimiters first.
func (b *Buffer) MoveWordEdge(dir int) bool {
	start := b.cursor
	if dir < 0 {
		for b.cursor > 0 && b.isDelimiter(b.runeBefore()) {
			b.MoveRune(-1)
		}
		for b.cursor > 0 && !b.isDelimiter(b.runeBefore()) {
			b.MoveRune(-1)
		}
	} else {
		for b.cursor < len(b.text) && b.isDelimiter(b.runeAt()) {
			b.MoveRune(+1)
		}
		for b.cursor < len(b.text) && !b.isDelimiter(b.runeAt()) {
			b.MoveRune(+1)
		}
	}
	return b.cursor != start
}

// MoveToStart puts the cursor at offset 0.
func (b *Buffer) MoveToStart() bool {
	moved := b.cursor != 0
	b.cursor = 0
	return moved
}

// MoveToEnd puts the cursor after the last byte.
func (b *Buffer) MoveToEnd() bool {
	moved := b.cursor != len(b.text)
	b.cursor = len(b.text)
	return moved
}

func (b *Buffer) runeAt() rune {
	r, _ := utf8.DecodeRune(b.text[b.cursor:])
	return r
}

func (b *Buffer) runeBefore() rune {
	r, _ := utf8.DecodeRune(b.text[b.nextRune(-1):b.cursor])
	return r
}

func (b *Buffer) isDelimiter(r rune) bool {
	return strings.ContainsRune(b.delimiters, r)
}
