package session

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/ruminaider/sift/internal/editor"
	"github.com/ruminaider/sift/internal/items"
	"github.com/ruminaider/sift/internal/match"
	"github.com/ruminaider/sift/internal/pager"
)

// ErrCancelled is returned by Result.Err after a Cancel command.
var ErrCancelled = errors.New("selection cancelled")

// Config carries everything a session needs besides the items.
type Config struct {
	Match    match.Options
	Capacity int // query buffer size in bytes
	Layout   pager.Layout
}

// Result is the terminal outcome of a session.
type Result struct {
	Done      bool
	Cancelled bool
	Lines     []string // marked items in store order, then the accepted text
}

// Err returns ErrCancelled for a cancelled session and nil otherwise.
func (r Result) Err() error {
	if r.Cancelled {
		return ErrCancelled
	}
	return nil
}

// Session is the interactive filter state: query buffer, match list, page
// window and selection. Every command runs to completion, re-matching and
// re-paging as needed, before Apply returns.
//
// A Session is not safe for concurrent use; callers must serialize Apply,
// Resize and View on the same session.
type Session struct {
	store  *items.Store
	opts   match.Options
	buf    *editor.Buffer
	layout pager.Layout

	list   match.List
	win    pager.Window
	sel    int // position in list, -1 when nothing is selected
	result Result
}

// New starts a session over store with an empty query.
func New(store *items.Store, cfg Config) (*Session, error) {
	capacity := cfg.Capacity
	if capacity == 0 {
		capacity = editor.DefaultCapacity
	}
	buf, err := editor.New(capacity, cfg.Match.Delimiters)
	if err != nil {
		return nil, fmt.Errorf("creating query buffer: %w", err)
	}
	s := &Session{
		store:  store,
		opts:   cfg.Match,
		buf:    buf,
		layout: cfg.Layout,
	}
	s.rematch()
	return s, nil
}

// Apply runs one command. Once the session is done every further command is
// ignored and the final result is returned again.
func (s *Session) Apply(cmd Command) Result {
	if s.result.Done {
		return s.result
	}

	switch cmd.Op {
	case OpInsertText:
		if !hasControl(cmd.Text) {
			s.edit(s.buf.Insert(cmd.Text))
		}
	case OpPaste:
		text, _, _ := strings.Cut(cmd.Text, "\n")
		s.edit(s.buf.Insert(text))
	case OpMoveCursor:
		s.buf.MoveRune(cmd.Dir)
	case OpMoveWord:
		s.buf.MoveWordEdge(cmd.Dir)
	case OpDeleteBack:
		s.edit(s.buf.DeleteBackward())
	case OpDeleteFwd:
		s.edit(s.buf.DeleteForward())
	case OpDeleteToStart:
		s.edit(s.buf.DeleteToStart())
	case OpDeleteToEnd:
		s.edit(s.buf.DeleteToEnd())
	case OpDeleteWordBack:
		s.edit(s.buf.DeleteWordBackward())
	case OpSelectUp:
		s.selectUp()
	case OpSelectDown:
		s.selectDown()
	case OpSelectLeftCell:
		s.selectCell(-1)
	case OpSelectRightCell:
		s.selectCell(+1)
	case OpLeft:
		s.left()
	case OpRight:
		s.right()
	case OpPageUp:
		s.pageUp()
	case OpPageDown:
		s.pageDown()
	case OpJumpHome:
		s.jumpHome()
	case OpJumpEnd:
		s.jumpEnd()
	case OpTabComplete:
		s.complete()
	case OpAccept:
		s.accept(cmd.Mark)
	case OpAcceptInput:
		s.finish(s.buf.Text())
	case OpToggleMark:
		if item, ok := s.selectedItem(); ok {
			s.store.SetMarked(item, !s.store.Marked(item))
		}
	case OpCancel:
		s.result = Result{Done: true, Cancelled: true}
	}
	return s.result
}

// Resize re-pages for a new layout, keeping the selection visible.
func (s *Session) Resize(l pager.Layout) {
	s.layout = l
	s.page(s.win.Curr)
	s.follow()
}

// Query returns the current query text.
func (s *Session) Query() string { return s.buf.Text() }

// Cursor returns the byte offset of the cursor in the query.
func (s *Session) Cursor() int { return s.buf.Cursor() }

// Matches returns the current match list.
func (s *Session) Matches() match.List { return s.list }

// Window returns the current page window.
func (s *Session) Window() pager.Window { return s.win }

// Selected returns the selected position in the match list.
func (s *Session) Selected() (int, bool) { return s.sel, s.sel >= 0 }

// SelectedText returns the text of the selected item.
func (s *Session) SelectedText() (string, bool) {
	if s.sel < 0 {
		return "", false
	}
	return s.list.Text(s.sel), true
}

// Result returns the outcome so far; Done is false while the session runs.
func (s *Session) Result() Result { return s.result }

func (s *Session) edit(changed bool) {
	if changed {
		s.rematch()
	}
}

// rematch rescans the whole store for the current query and resets the
// selection and window to the head of the new list.
func (s *Session) rematch() {
	s.list = match.Match(s.store, s.buf.Text(), s.opts)
	s.sel = -1
	if head, ok := s.list.Head(); ok {
		s.sel = head
	}
	s.page(0)
}

func (s *Session) page(curr int) {
	s.win = pager.Compute(s.list, curr, s.layout)
}

// follow re-anchors the window on the selection if it has left [Curr, Next).
func (s *Session) follow() {
	if s.sel >= 0 && !s.win.Visible(s.sel) {
		s.page(s.sel)
	}
}

func (s *Session) selectedItem() (int, bool) {
	if s.sel < 0 {
		return 0, false
	}
	return s.list.At(s.sel), true
}

func (s *Session) selectUp() {
	if s.sel < 0 {
		return
	}
	left, ok := s.list.Left(s.sel)
	if !ok {
		return
	}
	s.sel = left
	if left+1 == s.win.Curr {
		s.page(s.win.Prev)
	}
	s.follow()
}

func (s *Session) selectDown() {
	if s.sel < 0 {
		return
	}
	right, ok := s.list.Right(s.sel)
	if !ok {
		return
	}
	s.sel = right
	if right == s.win.Next {
		s.page(s.win.Next)
	}
	s.follow()
}

// selectCell moves one grid column: exactly Rows links in direction dir. The
// move is refused when any link is missing or not mutually inverse, which
// keeps the selection out of a ragged last column.
func (s *Session) selectCell(dir int) {
	if !s.layout.Grid() || s.sel < 0 {
		return
	}
	step, back := s.list.Right, s.list.Left
	if dir < 0 {
		step, back = s.list.Left, s.list.Right
	}

	pos, offscreen := s.sel, false
	for i := 0; i < s.layout.Rows; i++ {
		next, ok := step(pos)
		if !ok {
			return
		}
		if prev, ok := back(next); !ok || prev != pos {
			return
		}
		if dir < 0 && pos == s.win.Curr {
			offscreen = true
		}
		pos = next
		if dir > 0 && pos == s.win.Next {
			offscreen = true
		}
	}

	s.sel = pos
	if offscreen {
		if dir < 0 {
			s.page(s.win.Prev)
		} else {
			s.page(s.win.Next)
		}
	}
	s.follow()
}

func (s *Session) multiColumn() bool {
	return s.layout.Grid() && s.layout.Columns > 1
}

// left is the arrow key: a column move in a multi-column grid, otherwise a
// cursor move, falling through to SelectUp in flow mode once the cursor
// cannot be moved in favour of the list.
func (s *Session) left() {
	if s.multiColumn() {
		s.selectCell(-1)
		return
	}
	atHead := s.sel <= 0
	if s.buf.Cursor() > 0 && (atHead || s.layout.Grid()) {
		s.buf.MoveRune(-1)
		return
	}
	if s.layout.Grid() {
		return
	}
	s.selectUp()
}

func (s *Session) right() {
	if s.multiColumn() {
		s.selectCell(+1)
		return
	}
	if !s.buf.AtEnd() {
		s.buf.MoveRune(+1)
		return
	}
	if s.layout.Grid() {
		return
	}
	s.selectDown()
}

func (s *Session) pageDown() {
	if !s.win.HasNext() {
		return
	}
	s.sel = s.win.Next
	s.page(s.win.Next)
}

func (s *Session) pageUp() {
	if s.win.Empty() {
		return
	}
	s.sel = s.win.Prev
	s.page(s.win.Prev)
}

// jumpHome selects the head of the list, or moves the cursor to the start of
// the query when the head is already selected.
func (s *Session) jumpHome() {
	if head, ok := s.list.Head(); ok && s.sel != head {
		s.sel = head
		s.page(head)
		return
	}
	s.buf.MoveToStart()
}

// jumpEnd moves the cursor to the end of the query; with the cursor already
// there it selects the tail and lays out the last page so that Prev is
// correct for paging back.
func (s *Session) jumpEnd() {
	if !s.buf.AtEnd() {
		s.buf.MoveToEnd()
		return
	}
	tail, ok := s.list.Tail()
	if !ok {
		return
	}
	if s.win.HasNext() {
		s.page(tail)
		s.page(s.win.Prev)
		for s.win.HasNext() && s.win.Curr < tail {
			s.page(s.win.Curr + 1)
		}
	}
	s.sel = tail
	s.follow()
}

func (s *Session) complete() {
	if s.list.Empty() {
		return
	}
	s.buf.Replace(s.list.CommonPrefix())
	s.rematch()
}

func (s *Session) accept(mark bool) {
	item, ok := s.selectedItem()
	if mark {
		if ok {
			s.store.SetMarked(item, true)
		}
		return
	}
	if ok {
		s.finish(s.store.Text(item))
		return
	}
	s.finish(s.buf.Text())
}

func (s *Session) finish(text string) {
	lines := s.store.MarkedTexts()
	s.result = Result{Done: true, Lines: append(lines, text)}
}

func hasControl(text string) bool {
	for _, r := range text {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}
