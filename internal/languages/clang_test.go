package languages

import (
	"testing"

	"github.com/lumenhl/rosettes/internal/lexertest"
	"github.com/lumenhl/rosettes/internal/token"
	"github.com/stretchr/testify/require"
)

func TestClangInvariants(t *testing.T) {
	lexertest.CheckInvariants(t, NewClang())
}

func TestClangFastMatchesFull(t *testing.T) {
	snippets := []string{
		"#include <stdio.h>\nint main() {\n    printf(\"hi\\n\");\n    return 0;\n}\n",
		"/* block */\nchar c = 'x';\n",
	}
	for _, s := range snippets {
		lexertest.CheckFastMatchesFull(t, NewClang(), s)
	}
}

func collectClang(t *testing.T, src string) []token.Token {
	t.Helper()
	var toks []token.Token
	runes := []rune(src)
	for tok := range NewClang().Tokenize(src, 0, len(runes)) {
		toks = append(toks, tok)
	}
	return toks
}

func TestClangPreprocessorDirective(t *testing.T) {
	toks := collectClang(t, "#include <stdio.h>\n")
	require.Equal(t, token.CategoryKeywordNamespace, toks[0].Category)
	require.Equal(t, "#include <stdio.h>", toks[0].Text)
}

func TestClangCharLiteral(t *testing.T) {
	toks := collectClang(t, "char c = 'x';")
	last := toks[len(toks)-2]
	require.Equal(t, token.CategoryStringSingle, last.Category)
}

func TestClangNumberWithSuffix(t *testing.T) {
	toks := collectClang(t, "long x = 10L;")
	found := false
	for _, tok := range toks {
		if tok.Category.IsNumber() {
			require.Equal(t, "10L", tok.Text)
			found = true
		}
	}
	require.True(t, found)
}
