package rosettes_test

import (
	"testing"

	"github.com/lumenhl/rosettes"
	"github.com/stretchr/testify/require"
)

func TestHighlightPublicAPI(t *testing.T) {
	out, err := rosettes.Highlight("def f(): return 1\n", rosettes.WithLanguage("python"))
	require.NoError(t, err)
	require.Contains(t, out, "syntax-keyword")
}

func TestLanguagesAndFormattersListed(t *testing.T) {
	require.Contains(t, rosettes.Languages(), "python")
	require.Contains(t, rosettes.Languages(), "golang")
	require.Contains(t, rosettes.Formatters(), "html")
	require.Contains(t, rosettes.Formatters(), "terminal")
}

func TestTokenizeYieldsPositions(t *testing.T) {
	seq, err := rosettes.Tokenize("x = 1\n", rosettes.WithLanguage("python"))
	require.NoError(t, err)
	var first rosettes.Token
	for tok := range seq {
		first = tok
		break
	}
	require.Equal(t, 1, first.Line)
	require.Equal(t, 1, first.Column)
}
