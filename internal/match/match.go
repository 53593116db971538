package match

import (
	"strings"
	"unicode/utf8"

	"github.com/ruminaider/sift/internal/items"
)

// DefaultDelimiters separates query tokens when no delimiter set is configured.
const DefaultDelimiters = " "

// Options configures tokenizing and matching. It is passed explicitly to every
// call; there is no package-level state.
type Options struct {
	Delimiters      string // runes that split the query into tokens
	PrefixOnly      bool   // drop the substring tier
	CaseInsensitive bool
}

// DefaultOptions returns substring mode, case-sensitive, space-delimited.
func DefaultOptions() Options {
	return Options{Delimiters: DefaultDelimiters}
}

// Tier is the ordering class of a match.
type Tier int

const (
	TierExact Tier = iota
	TierPrefix
	TierSubstring
)

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierPrefix:
		return "prefix"
	default:
		return "substring"
	}
}

// Tokenize splits query on any rune in delimiters. Empty fragments are dropped,
// so leading, trailing and repeated delimiters never produce tokens.
func Tokenize(query, delimiters string) []string {
	return strings.FieldsFunc(query, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	})
}

// Match scans every item of store in order and returns the ordered match list
// for query. An item survives when every token is a substring of its text.
// Survivors are ordered exact, then prefix, then substring (unless
// opts.PrefixOnly), keeping store order within a tier.
func Match(store *items.Store, query string, opts Options) List {
	tokens := Tokenize(query, opts.Delimiters)
	fold := opts.CaseInsensitive

	var exact, prefix, substr []int
	for i := 0; i < store.Len(); i++ {
		text := store.Text(i)
		if !containsAll(text, tokens, fold) {
			continue
		}
		switch {
		case len(tokens) == 0 || equal(query, text, fold):
			exact = append(exact, i)
		case hasPrefix(text, tokens[0], fold):
			prefix = append(prefix, i)
		case !opts.PrefixOnly:
			substr = append(substr, i)
		}
	}

	idx := make([]int, 0, len(exact)+len(prefix)+len(substr))
	idx = append(idx, exact...)
	idx = append(idx, prefix...)
	idx = append(idx, substr...)
	return List{store: store, idx: idx, exact: len(exact), prefix: len(prefix)}
}

func containsAll(text string, tokens []string, fold bool) bool {
	for _, tok := range tokens {
		if index(text, tok, fold) < 0 {
			return false
		}
	}
	return true
}

// index returns the byte offset of the first occurrence of sub in s, or -1.
// Case folding compares equal-length byte windows starting on rune boundaries.
func index(s, sub string, fold bool) int {
	if !fold {
		return strings.Index(s, sub)
	}
	if sub == "" {
		return 0
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if i > 0 && !utf8.RuneStart(s[i]) {
			continue
		}
		if strings.EqualFold(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

func hasPrefix(s, prefix string, fold bool) bool {
	if len(s) < len(prefix) {
		return false
	}
	return equal(s[:len(prefix)], prefix, fold)
}

func equal(a, b string, fold bool) bool {
	if fold {
		return strings.EqualFold(a, b)
	}
	return a == b
}
