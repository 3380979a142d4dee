package languages

import (
	"testing"

	"github.com/lumenhl/rosettes/internal/lexertest"
	"github.com/lumenhl/rosettes/internal/token"
	"github.com/stretchr/testify/require"
)

func TestJavascriptInvariants(t *testing.T) {
	lexertest.CheckInvariants(t, NewJavascript())
}

func TestJavascriptFastMatchesFull(t *testing.T) {
	snippets := []string{
		"const x = 1 / 2;\nconst re = /ab+c/gi;\n",
		"function greet(name) {\n  return `hello ${name}`;\n}\n",
		"class Foo extends Bar {\n  static get x() { return 1; }\n}\n",
	}
	for _, s := range snippets {
		lexertest.CheckFastMatchesFull(t, NewJavascript(), s)
	}
}

func collectJavascript(t *testing.T, src string) []token.Token {
	t.Helper()
	var toks []token.Token
	runes := []rune(src)
	for tok := range NewJavascript().Tokenize(src, 0, len(runes)) {
		toks = append(toks, tok)
	}
	return toks
}

func TestJavascriptRegexVsDivision(t *testing.T) {
	toks := collectJavascript(t, "const re = /ab+c/gi;\n")
	found := false
	for _, tok := range toks {
		if tok.Category == token.CategoryString && tok.Text == "/ab+c/gi" {
			found = true
		}
	}
	require.True(t, found, "expected /ab+c/gi to scan as a regex literal, got %+v", toks)

	toks = collectJavascript(t, "a / b\n")
	sawDivision := false
	for _, tok := range toks {
		require.NotEqual(t, token.CategoryString, tok.Category, "division should not scan as a regex literal")
		if tok.Category == token.CategoryOperator && tok.Text == "/" {
			sawDivision = true
		}
	}
	require.True(t, sawDivision, "expected a bare '/' division operator, got %+v", toks)
}

// TestJavascriptTemplateInterpolation pins the `hello ${name}` scenario:
// the literal run (including the opening backtick) is one
// String.Interpolated span, `${`/`}` are String.Interpol delimiters, and
// the interpolated identifier recurses through the normal scanner.
func TestJavascriptTemplateInterpolation(t *testing.T) {
	toks := collectJavascript(t, "`hello ${name}`")

	require.Equal(t, token.CategoryStringInterpolated, toks[0].Category)
	require.Equal(t, "`hello ", toks[0].Text)

	require.Equal(t, token.CategoryStringInterpol, toks[1].Category)
	require.Equal(t, "${", toks[1].Text)

	require.Equal(t, token.CategoryName, toks[2].Category)
	require.Equal(t, "name", toks[2].Text)

	require.Equal(t, token.CategoryStringInterpol, toks[3].Category)
	require.Equal(t, "}", toks[3].Text)

	require.Equal(t, token.CategoryStringInterpolated, toks[4].Category)
	require.Equal(t, "`", toks[4].Text)

	var rebuilt string
	for _, tok := range toks {
		rebuilt += tok.Text
	}
	require.Equal(t, "`hello ${name}`", rebuilt)
}

func TestJavascriptDocComment(t *testing.T) {
	toks := collectJavascript(t, "/** doc */\nfunction f() {}\n")
	require.Equal(t, token.CategoryCommentDoc, toks[0].Category)
}
