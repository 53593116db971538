package match

// Span marks one occurrence of a query token inside an item's text.
type Span struct {
	Token string
	Start int // byte offset into the text
	Len   int // byte length
}

// End returns the byte offset just past the span.
func (s Span) End() int { return s.Start + s.Len }

// Highlights returns the spans of text matched by the tokens of query, grouped
// by token in query order. Occurrences of one token never overlap; the scan for
// a token stops once the text left after a hit is shorter than the token.
func Highlights(text, query string, opts Options) []Span {
	var spans []Span
	for _, tok := range Tokenize(query, opts.Delimiters) {
		off := 0
		for {
			i := index(text[off:], tok, opts.CaseInsensitive)
			if i < 0 {
				break
			}
			start := off + i
			spans = append(spans, Span{Token: tok, Start: start, Len: len(tok)})
			off = start + len(tok)
			if len(text)-off < len(tok) {
				break
			}
		}
	}
	return spans
}
