package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/ruminaider/sift/internal/pager"
	"github.com/ruminaider/sift/internal/session"
)

const ellipsis = "…"

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready || m.result.Done {
		return ""
	}
	v := m.sess.View()

	var lines []string
	if m.opts.Lines > 0 {
		lines = m.gridLines(v)
	} else {
		lines = []string{m.flowLine(v)}
	}

	if m.opts.Bottom && m.height > len(lines) {
		pad := make([]string, m.height-len(lines), m.height)
		lines = append(pad, lines...)
	}
	return strings.Join(lines, "\n")
}

func render(style lipgloss.Style, s string) string {
	if s == "" {
		return ""
	}
	return style.Render(s)
}

// flowLine draws prompt, input field, the visible entries between the pager
// glyphs, and the counter on one line.
func (m Model) flowLine(v session.View) string {
	var b strings.Builder
	b.WriteString(render(m.opts.Styles.Prompt, m.opts.Prompt))
	b.WriteString(m.renderInput(v.Query, v.Cursor, m.inputWidth()))

	b.WriteString(m.arrow(pager.PrevGlyph, v.HasPrev))
	for _, e := range v.Entries {
		b.WriteString(m.renderEntry(e, 0))
	}
	b.WriteString(m.arrow(pager.NextGlyph, v.HasNext))
	b.WriteString(m.opts.Styles.Counter.Render(v.Counter()))

	return ansi.Truncate(b.String(), m.width, "")
}

func (m Model) arrow(glyph string, show bool) string {
	if !show {
		return strings.Repeat(" ", Measure(glyph))
	}
	return m.opts.Styles.Arrow.Render(glyph)
}

// gridLines draws the input line followed by the page laid out column-major.
func (m Model) gridLines(v session.View) []string {
	head := render(m.opts.Styles.Prompt, m.opts.Prompt)
	counter := m.opts.Styles.Counter.Render(v.Counter())
	inputW := m.width - ansi.StringWidth(head) - ansi.StringWidth(counter)
	head += m.renderInput(v.Query, v.Cursor, inputW) + counter

	rows, cols := m.rows(), m.opts.Columns
	cellW := m.width / cols
	cells := make([][]string, rows)
	for i := range cells {
		cells[i] = make([]string, cols)
	}
	for i, e := range v.Entries {
		col, row := i/rows, i%rows
		if col >= cols {
			break
		}
		cell := m.renderEntry(e, cellW-2)
		if gap := cellW - ansi.StringWidth(cell); gap > 0 {
			cell += strings.Repeat(" ", gap)
		}
		cells[row][col] = cell
	}

	lines := []string{ansi.Truncate(head, m.width, "")}
	for _, row := range cells {
		lines = append(lines, strings.TrimRight(strings.Join(row, ""), " "))
	}
	return lines
}

// renderInput draws the query with a block cursor, scrolled so the cursor
// stays inside width cells and padded to exactly width.
func (m Model) renderInput(query string, cursor, width int) string {
	st := m.opts.Styles
	before := query[:cursor]
	at, after := " ", ""
	if r, size := utf8.DecodeRuneInString(query[cursor:]); size > 0 {
		at, after = string(r), query[cursor+size:]
	}
	s := render(st.Input, before) + st.Cursor.Render(at) + render(st.Input, after)
	if width <= 0 {
		return s
	}

	col := runewidth.StringWidth(before) + runewidth.StringWidth(at)
	if col > width {
		s = ansi.TruncateLeft(s, col-width, "")
	}
	s = ansi.Truncate(s, width, "")
	if gap := width - ansi.StringWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

// renderEntry draws one entry with its matched spans highlighted. A positive
// width clips the text, not counting the padding.
func (m Model) renderEntry(e session.Entry, width int) string {
	st := m.opts.Styles
	style := st.Normal
	switch {
	case e.Selected:
		style = st.Selected
	case e.Marked:
		style = st.Marked
	}
	base := style.UnsetPadding()
	hl := st.Highlight.Inherit(base)

	// Spans of different tokens may interleave or overlap.
	lit := make([]bool, len(e.Text))
	for _, sp := range e.Spans {
		for i := sp.Start; i < sp.End() && i < len(lit); i++ {
			lit[i] = true
		}
	}

	var b strings.Builder
	for start := 0; start < len(e.Text); {
		end := start + 1
		for end < len(e.Text) && lit[end] == lit[start] {
			end++
		}
		if lit[start] {
			b.WriteString(render(hl, e.Text[start:end]))
		} else {
			b.WriteString(render(base, e.Text[start:end]))
		}
		start = end
	}

	body := b.String()
	if width > 0 && ansi.StringWidth(body) > width {
		body = ansi.Truncate(body, width, ellipsis)
	}
	pad := base.Render(" ")
	return pad + body + pad
}
