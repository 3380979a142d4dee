package languages

import (
	"testing"

	"github.com/lumenhl/rosettes/internal/lexertest"
	"github.com/lumenhl/rosettes/internal/token"
	"github.com/stretchr/testify/require"
)

func TestPythonInvariants(t *testing.T) {
	lexertest.CheckInvariants(t, NewPython())
}

func TestPythonFastMatchesFull(t *testing.T) {
	snippets := []string{
		`def f(x):\n    return x + 1\n`,
		`class Foo:\n    """doc"""\n    pass\n`,
		`name = f"hello {1 + 2}!"\n`,
		`# comment\nx = 0x1F_FF\n`,
	}
	for _, s := range snippets {
		lexertest.CheckFastMatchesFull(t, NewPython(), s)
	}
}

func collectPython(t *testing.T, src string) []token.Token {
	t.Helper()
	var toks []token.Token
	runes := []rune(src)
	for tok := range NewPython().Tokenize(src, 0, len(runes)) {
		toks = append(toks, tok)
	}
	return toks
}

func TestPythonKeywordsAndBuiltins(t *testing.T) {
	toks := collectPython(t, "def foo(): return None")
	require.Equal(t, token.CategoryKeywordDeclaration, toks[0].Category)
	require.Equal(t, token.CategoryKeywordConstant, toks[len(toks)-1].Category)
}

func TestPythonDecorator(t *testing.T) {
	toks := collectPython(t, "@app.route\ndef f(): pass")
	require.Equal(t, token.CategoryNameDecorator, toks[0].Category)
	require.Equal(t, "@app", toks[0].Text)
}

func TestPythonTripleQuotedString(t *testing.T) {
	toks := collectPython(t, `x = """hi\nthere"""`)
	found := false
	for _, tok := range toks {
		if tok.Category == token.CategoryStringTriple {
			found = true
		}
	}
	require.True(t, found)
}

func TestPythonUnterminatedTripleQuoteIsError(t *testing.T) {
	toks := collectPython(t, `"""never closed`)
	require.Equal(t, token.CategoryError, toks[0].Category)
}

func TestPythonFStringInterpolation(t *testing.T) {
	toks := collectPython(t, `f"a{1+2}b"`)
	var cats []token.Category
	for _, tok := range toks {
		cats = append(cats, tok.Category)
	}
	require.Contains(t, cats, token.CategoryStringInterpolated)
	require.Contains(t, cats, token.CategoryStringInterpol)
	require.Contains(t, cats, token.CategoryNumberInteger)
}

func TestPythonRawString(t *testing.T) {
	toks := collectPython(t, `r"\d+"`)
	require.Equal(t, token.CategoryStringRaw, toks[0].Category)
	require.Equal(t, `r"\d+"`, toks[0].Text)
}
