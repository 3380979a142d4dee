package languages

import (
	"testing"

	"github.com/lumenhl/rosettes/internal/lexertest"
	"github.com/lumenhl/rosettes/internal/token"
	"github.com/stretchr/testify/require"
)

func TestJSONInvariants(t *testing.T) {
	lexertest.CheckInvariants(t, NewJSON())
}

func TestJSONFastMatchesFull(t *testing.T) {
	snippets := []string{
		`{"a": 1, "b": [true, false, null], "c": -1.5e10}`,
		`[]`,
	}
	for _, s := range snippets {
		lexertest.CheckFastMatchesFull(t, NewJSON(), s)
	}
}

func TestJSONLiterals(t *testing.T) {
	var toks []token.Token
	src := `{"k": -3.5}`
	runes := []rune(src)
	for tok := range NewJSON().Tokenize(src, 0, len(runes)) {
		toks = append(toks, tok)
	}
	var sawNumber, sawString bool
	for _, tok := range toks {
		if tok.Category == token.CategoryStringDouble {
			sawString = true
		}
		if tok.Category.IsNumber() {
			sawNumber = true
			require.Equal(t, "-3.5", tok.Text)
		}
	}
	require.True(t, sawNumber)
	require.True(t, sawString)
}
