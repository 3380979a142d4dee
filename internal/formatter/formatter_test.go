package formatter

import (
	"iter"
	"strings"
	"testing"

	"github.com/lumenhl/rosettes/internal/token"
	"github.com/stretchr/testify/require"
)

func tokensOf(toks ...token.Token) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for _, t := range toks {
			if !yield(t) {
				return
			}
		}
	}
}

func TestNullIsIdentity(t *testing.T) {
	toks := tokensOf(
		token.Token{Category: token.CategoryKeyword, Text: "def", Line: 1, Column: 1},
		token.Token{Category: token.CategoryWhitespace, Text: " ", Line: 1, Column: 4},
		token.Token{Category: token.CategoryName, Text: "f", Line: 1, Column: 5},
	)
	out, err := NewNull().FormatString(toks, FormatConfig{}, HighlightConfig{})
	require.NoError(t, err)
	require.Equal(t, "def f", out)
}

func TestHTMLEscapesDangerousText(t *testing.T) {
	toks := tokensOf(token.Token{Category: token.CategoryStringDouble, Text: `<script>"'&</script>`, Line: 1, Column: 1})
	out, err := NewHTML().FormatString(toks, FormatConfig{}, HighlightConfig{})
	require.NoError(t, err)
	require.NotContains(t, out, "<script>")
	require.Contains(t, out, "&lt;script&gt;")
	require.Contains(t, out, "&quot;")
	require.Contains(t, out, "&#39;")
	require.Contains(t, out, "&amp;")
}

func TestHTMLClassStyleSemanticVsCompatibility(t *testing.T) {
	toks := tokensOf(token.Token{Category: token.CategoryNameFunction, Text: "f", Line: 1, Column: 1})
	semantic, err := NewHTML().FormatString(toks, FormatConfig{ClassStyle: ClassStyleSemantic}, HighlightConfig{})
	require.NoError(t, err)
	require.Contains(t, semantic, `class="syntax-function"`)

	toks2 := tokensOf(token.Token{Category: token.CategoryNameFunction, Text: "f", Line: 1, Column: 1})
	compat, err := NewHTML().FormatString(toks2, FormatConfig{ClassStyle: ClassStyleCompatibility}, HighlightConfig{})
	require.NoError(t, err)
	require.Contains(t, compat, `class="nf"`)
}

func TestHTMLLineNumbersAndHighlight(t *testing.T) {
	toks := tokensOf(
		token.Token{Category: token.CategoryText, Text: "a\n", Line: 1, Column: 1},
		token.Token{Category: token.CategoryText, Text: "b\n", Line: 2, Column: 1},
	)
	out, err := NewHTML().FormatString(toks, FormatConfig{}, HighlightConfig{
		ShowLineNumbers:  true,
		HighlightedLines: map[int]bool{2: true},
	})
	require.NoError(t, err)
	require.Contains(t, out, "line-highlighted")
	require.Equal(t, 2, strings.Count(out, `class="line-number"`))
}

func TestHTMLWhitespaceAndTextHaveNoSpan(t *testing.T) {
	toks := tokensOf(
		token.Token{Category: token.CategoryKeyword, Text: "def", Line: 1, Column: 1},
		token.Token{Category: token.CategoryWhitespace, Text: "  ", Line: 1, Column: 4},
		token.Token{Category: token.CategoryText, Text: "plain", Line: 1, Column: 6},
	)
	out, err := NewHTML().FormatString(toks, FormatConfig{}, HighlightConfig{})
	require.NoError(t, err)
	require.Contains(t, out, `class="syntax-keyword">def</span>  plain`)
	require.NotContains(t, out, "syntax-text")
	require.NotContains(t, out, "syntax-whitespace")
}

func TestHTMLDeterministic(t *testing.T) {
	toks := func() iter.Seq[token.Token] {
		return tokensOf(token.Token{Category: token.CategoryKeyword, Text: "if", Line: 1, Column: 1})
	}
	a, err := NewHTML().FormatString(toks(), FormatConfig{}, HighlightConfig{})
	require.NoError(t, err)
	b, err := NewHTML().FormatString(toks(), FormatConfig{}, HighlightConfig{})
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestFastAndSlowPathAgree(t *testing.T) {
	full := tokensOf(
		token.Token{Category: token.CategoryKeyword, Text: "return", Line: 1, Column: 1},
		token.Token{Category: token.CategoryWhitespace, Text: " ", Line: 1, Column: 7},
		token.Token{Category: token.CategoryNumberInteger, Text: "1", Line: 1, Column: 8},
	)
	fast := func(yield func(token.Category, string) bool) {
		for _, tok := range []token.Token{
			{Category: token.CategoryKeyword, Text: "return"},
			{Category: token.CategoryWhitespace, Text: " "},
			{Category: token.CategoryNumberInteger, Text: "1"},
		} {
			if !yield(tok.Category, tok.Text) {
				return
			}
		}
	}

	slowOut, err := NewNull().FormatString(full, FormatConfig{}, HighlightConfig{})
	require.NoError(t, err)
	fastOut, err := NewNull().FormatStringFast(fast, FormatConfig{})
	require.NoError(t, err)
	require.Equal(t, slowOut, fastOut)
}
