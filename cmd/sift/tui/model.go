package tui

import (
	"fmt"
	"log"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/ruminaider/sift/internal/pager"
	"github.com/ruminaider/sift/internal/session"
)

// Measure is the width oracle handed to the pager: the display width of an
// entry plus one cell of padding on each side, matching the rendered styles.
func Measure(s string) int {
	return runewidth.StringWidth(s) + 2
}

// Options configures the menu.
type Options struct {
	Prompt    string
	Lines     int // grid rows; 0 selects the single-line flow layout
	Columns   int
	Bottom    bool
	ItemWidth int // widest item, bounds the flow input field
	Styles    Styles
	Keys      KeyMap

	// ReadClipboard defaults to the system clipboard.
	ReadClipboard func() (string, error)
}

// clipboardMsg carries the result of a clipboard read.
type clipboardMsg struct {
	text string
	err  error
}

// Model is the bubbletea model driving a session.
type Model struct {
	sess   *session.Session
	opts   Options
	total  int
	width  int
	height int
	ready  bool // set after first WindowSizeMsg
	result session.Result
}

// New wraps a session. The session is re-paged on every resize.
func New(sess *session.Session, opts Options) Model {
	if opts.ReadClipboard == nil {
		opts.ReadClipboard = clipboard.ReadAll
	}
	if opts.Lines > 0 && opts.Columns < 1 {
		opts.Columns = 1
	}
	return Model{
		sess:  sess,
		opts:  opts,
		total: sess.View().Total,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Result returns the session outcome once the program has quit.
func (m Model) Result() session.Result { return m.result }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.sess.Resize(m.layout())
		return m, nil

	case tea.KeyMsg:
		b, ok := m.opts.Keys.lookup(msg)
		if !ok {
			return m, nil
		}
		if b.paste {
			return m, m.readClipboard()
		}
		log.Printf("key %q -> op %d", msg.String(), b.cmd.Op)
		return m.apply(b.cmd)

	case clipboardMsg:
		if msg.err != nil {
			log.Printf("clipboard: %v", msg.err)
			return m, nil
		}
		return m.apply(session.Paste(msg.text))
	}
	return m, nil
}

func (m Model) apply(cmd session.Command) (tea.Model, tea.Cmd) {
	res := m.sess.Apply(cmd)
	if res.Done {
		m.result = res
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) readClipboard() tea.Cmd {
	read := m.opts.ReadClipboard
	return func() tea.Msg {
		text, err := read()
		return clipboardMsg{text: text, err: err}
	}
}

// rows returns the number of grid rows that fit the terminal.
func (m Model) rows() int {
	rows := m.opts.Lines
	if m.height > 1 && rows > m.height-1 {
		rows = m.height - 1
	}
	return rows
}

func (m Model) promptWidth() int {
	if m.opts.Prompt == "" {
		return 0
	}
	return Measure(m.opts.Prompt)
}

// inputWidth is the width of the query field on the flow line: the widest
// item, capped at a third of the terminal.
func (m Model) inputWidth() int {
	w := m.opts.ItemWidth + 1
	if third := m.width / 3; w > third {
		w = third
	}
	if w < 1 {
		w = 1
	}
	return w
}

func (m Model) counterWidth() int {
	return Measure(fmt.Sprintf("%d/%d", m.total, m.total))
}

func (m Model) layout() pager.Layout {
	if m.opts.Lines > 0 {
		return pager.Layout{
			Rows:    m.rows(),
			Columns: m.opts.Columns,
			Width:   m.width,
			Measure: Measure,
		}
	}
	return pager.Layout{
		Width:    m.width,
		Reserved: m.promptWidth() + m.inputWidth() + m.counterWidth(),
		Measure:  Measure,
	}
}
