package languages

import (
	"testing"

	"github.com/lumenhl/rosettes/internal/lexertest"
	"github.com/lumenhl/rosettes/internal/token"
	"github.com/stretchr/testify/require"
)

func TestBashInvariants(t *testing.T) {
	lexertest.CheckInvariants(t, NewBash())
}

func TestBashFastMatchesFull(t *testing.T) {
	snippets := []string{
		"#!/bin/bash\nfor f in *.go; do\n  echo \"file: $f in ${DIR}\"\ndone\n",
		"x='literal $not_expanded'\n",
	}
	for _, s := range snippets {
		lexertest.CheckFastMatchesFull(t, NewBash(), s)
	}
}

func collectBash(t *testing.T, src string) []token.Token {
	t.Helper()
	var toks []token.Token
	runes := []rune(src)
	for tok := range NewBash().Tokenize(src, 0, len(runes)) {
		toks = append(toks, tok)
	}
	return toks
}

func TestBashSingleQuoteNoInterpolation(t *testing.T) {
	toks := collectBash(t, `x='$literal'`)
	found := false
	for _, tok := range toks {
		if tok.Category == token.CategoryStringSingle {
			require.Equal(t, `'$literal'`, tok.Text)
			found = true
		}
	}
	require.True(t, found)
}

func TestBashDoubleQuoteInterpolation(t *testing.T) {
	toks := collectBash(t, `echo "hi $name!"`)
	var cats []token.Category
	for _, tok := range toks {
		cats = append(cats, tok.Category)
	}
	require.Contains(t, cats, token.CategoryStringInterpolated)
	require.Contains(t, cats, token.CategoryStringInterpol)
}

func TestBashKeywordAndBuiltin(t *testing.T) {
	toks := collectBash(t, "if true; then echo hi; fi")
	require.Equal(t, token.CategoryKeyword, toks[0].Category)
}

// TestBashDoubleQuotePositionsAdvancePastExpansion guards against a
// segment after an interpolation reusing the opening quote's line/col:
// "b c" here must start strictly after the "$a" expansion token, not
// back at column 1 where the string began.
func TestBashDoubleQuotePositionsAdvancePastExpansion(t *testing.T) {
	toks := collectBash(t, `"$a b c"`)

	var prevLine, prevCol int
	for i, tok := range toks {
		if i == 0 {
			prevLine, prevCol = tok.Line, tok.Column
			continue
		}
		require.False(t, tok.Line < prevLine || (tok.Line == prevLine && tok.Column < prevCol),
			"token %d (%q at %d:%d) is not monotonic after previous token at %d:%d", i, tok.Text, tok.Line, tok.Column, prevLine, prevCol)
		prevLine, prevCol = tok.Line, tok.Column
	}

	var interpolCol int
	for _, tok := range toks {
		if tok.Category == token.CategoryStringInterpol || (tok.Category == token.CategoryNameVariable && tok.Text == "$a") {
			interpolCol = tok.Column
		}
	}
	require.NotZero(t, interpolCol)

	for _, tok := range toks {
		if tok.Category == token.CategoryStringInterpolated && tok.Text == " b c\"" {
			require.Greater(t, tok.Column, interpolCol, "trailing literal segment must be positioned after the expansion, not reused from the opening quote")
		}
	}
}

func TestBashBraceExpansion(t *testing.T) {
	toks := collectBash(t, "echo ${HOME}")
	found := false
	for _, tok := range toks {
		if tok.Category == token.CategoryNameVariable {
			require.Equal(t, "${HOME}", tok.Text)
			found = true
		}
	}
	require.True(t, found)
}
