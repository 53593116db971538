package match_test

import (
	"strings"
	"testing"

	"github.com/ruminaider/sift/internal/items"
	"github.com/ruminaider/sift/internal/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, texts ...string) *items.Store {
	t.Helper()
	s, err := items.New(texts, 0)
	require.NoError(t, err)
	return s
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		query string
		delim string
		want  []string
	}{
		{"empty", "", " ", nil},
		{"single", "abc", " ", []string{"abc"}},
		{"two tokens", "ab cd", " ", []string{"ab", "cd"}},
		{"leading and trailing", "  ab cd  ", " ", []string{"ab", "cd"}},
		{"duplicate delimiters", "ab   cd", " ", []string{"ab", "cd"}},
		{"only delimiters", "   ", " ", nil},
		{"delimiter set", "a/b:c", "/:", []string{"a", "b", "c"}},
		{"no delimiters configured", "a b", "", []string{"a b"}},
		{"multibyte", "ünï cødé", " ", []string{"ünï", "cødé"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := match.Tokenize(tt.query, tt.delim)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatch_TierOrder(t *testing.T) {
	store := newStore(t, "abc", "xaby", "ab")

	t.Run("substring mode", func(t *testing.T) {
		l := match.Match(store, "ab", match.DefaultOptions())
		assert.Equal(t, []string{"ab", "abc", "xaby"}, l.Texts())
		assert.Equal(t, match.TierExact, l.Tier(0))
		assert.Equal(t, match.TierPrefix, l.Tier(1))
		assert.Equal(t, match.TierSubstring, l.Tier(2))
	})

	t.Run("prefix mode", func(t *testing.T) {
		opts := match.DefaultOptions()
		opts.PrefixOnly = true
		l := match.Match(store, "ab", opts)
		assert.Equal(t, []string{"ab", "abc"}, l.Texts())
	})
}

func TestMatch_EmptyQueryPassesThrough(t *testing.T) {
	store := newStore(t, "c", "a", "b")
	for _, q := range []string{"", "   "} {
		l := match.Match(store, q, match.DefaultOptions())
		assert.Equal(t, []string{"c", "a", "b"}, l.Texts(), "query %q", q)
		for pos := 0; pos < l.Len(); pos++ {
			assert.Equal(t, match.TierExact, l.Tier(pos))
		}
	}
}

func TestMatch_PrefixScenario(t *testing.T) {
	store := newStore(t, "apple", "apricot", "banana")
	opts := match.DefaultOptions()
	opts.PrefixOnly = true
	l := match.Match(store, "ap", opts)
	assert.Equal(t, []string{"apple", "apricot"}, l.Texts())
	assert.Equal(t, 0, l.At(0))
	assert.Equal(t, 1, l.At(1))
}

func TestMatch_EveryTokenMustMatch(t *testing.T) {
	texts := []string{"foo bar", "bar foo", "foo", "bar", "foobar", "baz qux"}
	store := newStore(t, texts...)
	queries := []string{"foo", "foo bar", "o b", "qux baz", "zzz", " foo  ", "a"}

	for _, q := range queries {
		l := match.Match(store, q, match.DefaultOptions())
		tokens := match.Tokenize(q, " ")
		inList := map[int]bool{}
		for pos := 0; pos < l.Len(); pos++ {
			inList[l.At(pos)] = true
		}
		for i, text := range texts {
			all := true
			for _, tok := range tokens {
				if !strings.Contains(text, tok) {
					all = false
				}
			}
			assert.Equal(t, all, inList[i], "query %q item %q", q, text)
		}
	}
}

func TestMatch_StoreOrderWithinTier(t *testing.T) {
	store := newStore(t, "xfoo2", "foo2", "xfoo1", "foo1")
	l := match.Match(store, "foo", match.DefaultOptions())
	assert.Equal(t, []string{"foo2", "foo1", "xfoo2", "xfoo1"}, l.Texts())
}

func TestMatch_LiteralQueryIsTieBreakOnly(t *testing.T) {
	store := newStore(t, "ab", "ab cd", "cd ab")

	t.Run("trailing delimiter", func(t *testing.T) {
		l := match.Match(store, "ab ", match.DefaultOptions())
		// Token filter decides membership; "ab " equals no item so nothing is exact.
		assert.Equal(t, []string{"ab", "ab cd", "cd ab"}, l.Texts())
		assert.Equal(t, match.TierPrefix, l.Tier(0))
	})

	t.Run("leading delimiter", func(t *testing.T) {
		l := match.Match(store, " ab", match.DefaultOptions())
		assert.Equal(t, []string{"ab", "ab cd", "cd ab"}, l.Texts())
		assert.Equal(t, match.TierSubstring, l.Tier(2))
	})

	t.Run("duplicate delimiters", func(t *testing.T) {
		l := match.Match(store, "ab  cd", match.DefaultOptions())
		assert.Equal(t, []string{"ab cd", "cd ab"}, l.Texts())
		assert.Equal(t, match.TierPrefix, l.Tier(0))
	})

	t.Run("literal equality with delimiter", func(t *testing.T) {
		l := match.Match(store, "cd ab", match.DefaultOptions())
		assert.Equal(t, []string{"cd ab", "ab cd"}, l.Texts())
		assert.Equal(t, match.TierExact, l.Tier(0))
		assert.Equal(t, match.TierSubstring, l.Tier(1))
	})
}

func TestMatch_CaseSensitivity(t *testing.T) {
	store := newStore(t, "Apple", "apple", "PINEAPPLE")

	l := match.Match(store, "apple", match.DefaultOptions())
	assert.Equal(t, []string{"apple"}, l.Texts())

	opts := match.DefaultOptions()
	opts.CaseInsensitive = true
	l = match.Match(store, "apple", opts)
	assert.Equal(t, []string{"Apple", "apple", "PINEAPPLE"}, l.Texts())
	assert.Equal(t, match.TierExact, l.Tier(0))
	assert.Equal(t, match.TierExact, l.Tier(1))
	assert.Equal(t, match.TierSubstring, l.Tier(2))
}

func TestMatch_Deterministic(t *testing.T) {
	store := newStore(t, "one", "two", "three", "four")
	a := match.Match(store, "o", match.DefaultOptions())
	b := match.Match(store, "o", match.DefaultOptions())
	assert.Equal(t, a.Texts(), b.Texts())
}

func TestList_Navigation(t *testing.T) {
	store := newStore(t, "a1", "a2", "a3")
	l := match.Match(store, "a", match.DefaultOptions())

	head, ok := l.Head()
	require.True(t, ok)
	assert.Equal(t, 0, head)
	tail, ok := l.Tail()
	require.True(t, ok)
	assert.Equal(t, 2, tail)

	_, ok = l.Left(head)
	assert.False(t, ok)
	_, ok = l.Right(tail)
	assert.False(t, ok)

	// Left and Right are inverses.
	for pos := 0; pos < l.Len(); pos++ {
		if r, ok := l.Right(pos); ok {
			back, ok := l.Left(r)
			require.True(t, ok)
			assert.Equal(t, pos, back)
		}
	}

	empty := match.Match(store, "zzz", match.DefaultOptions())
	assert.True(t, empty.Empty())
	_, ok = empty.Head()
	assert.False(t, ok)
	_, ok = empty.Tail()
	assert.False(t, ok)
}

func TestList_CommonPrefix(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		query string
		want  string
	}{
		{"shared stem", []string{"apple", "apricot", "banana"}, "ap", "ap"},
		{"single match", []string{"apple", "banana"}, "ban", "banana"},
		{"no shared prefix", []string{"xab", "abc"}, "ab", ""},
		{"no matches", []string{"apple"}, "zzz", ""},
		{"multibyte", []string{"über-a", "über-b"}, "über", "über-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := match.Match(newStore(t, tt.texts...), tt.query, match.DefaultOptions())
			assert.Equal(t, tt.want, l.CommonPrefix())
		})
	}
}

func TestHighlights(t *testing.T) {
	t.Run("each token", func(t *testing.T) {
		spans := match.Highlights("foo bar foo", "foo bar", match.DefaultOptions())
		assert.Equal(t, []match.Span{
			{Token: "foo", Start: 0, Len: 3},
			{Token: "foo", Start: 8, Len: 3},
			{Token: "bar", Start: 4, Len: 3},
		}, spans)
	})

	t.Run("non overlapping", func(t *testing.T) {
		spans := match.Highlights("aaaa", "aa", match.DefaultOptions())
		require.Len(t, spans, 2)
		assert.Equal(t, 0, spans[0].Start)
		assert.Equal(t, 2, spans[1].Start)
		assert.Equal(t, 4, spans[1].End())
	})

	t.Run("stops when tail shorter than token", func(t *testing.T) {
		spans := match.Highlights("abcab", "abc", match.DefaultOptions())
		require.Len(t, spans, 1)
	})

	t.Run("case insensitive offsets in original text", func(t *testing.T) {
		opts := match.DefaultOptions()
		opts.CaseInsensitive = true
		spans := match.Highlights("xFOOx", "foo", opts)
		require.Len(t, spans, 1)
		assert.Equal(t, 1, spans[0].Start)
		assert.Equal(t, "FOO", "xFOOx"[spans[0].Start:spans[0].End()])
	})

	t.Run("multibyte", func(t *testing.T) {
		text := "naïve café"
		spans := match.Highlights(text, "café", match.DefaultOptions())
		require.Len(t, spans, 1)
		assert.Equal(t, "café", text[spans[0].Start:spans[0].End()])
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Empty(t, match.Highlights("abc", "", match.DefaultOptions()))
	})
}
