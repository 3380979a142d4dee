package lexer

import (
	"testing"

	"github.com/lumenhl/rosettes/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanString(input string, spec StringSpec) []token.Token {
	c := NewCursor(input, 0, len([]rune(input)))
	var got []token.Token
	ScanSimpleString(c, spec, func(tok token.Token) { got = append(got, tok) })
	return got
}

func TestScanSimpleStringNoEscapes(t *testing.T) {
	toks := scanString(`"hello"`, StringSpec{Quote: '"', BodyCategory: token.CategoryStringDouble, AllowEscapes: true})
	require.Len(t, toks, 1)
	assert.Equal(t, `"hello"`, toks[0].Text)
	assert.Equal(t, token.CategoryStringDouble, toks[0].Category)
}

func TestScanSimpleStringWithEscape(t *testing.T) {
	toks := scanString(`"a\nb"`, StringSpec{Quote: '"', BodyCategory: token.CategoryStringDouble, AllowEscapes: true})
	require.Len(t, toks, 3)
	assert.Equal(t, `"a`, toks[0].Text)
	assert.Equal(t, token.CategoryStringDouble, toks[0].Category)
	assert.Equal(t, `\n`, toks[1].Text)
	assert.Equal(t, token.CategoryStringEscape, toks[1].Category)
	assert.Equal(t, `b"`, toks[2].Text)
	assert.Equal(t, token.CategoryStringDouble, toks[2].Category)
}

func TestScanSimpleStringEscapesDisallowed(t *testing.T) {
	toks := scanString(`'a\b'`, StringSpec{Quote: '\'', BodyCategory: token.CategoryStringSingle, AllowEscapes: false})
	require.Len(t, toks, 1)
	assert.Equal(t, `'a\b'`, toks[0].Text)
}

func TestScanSimpleStringUnterminatedEmitsError(t *testing.T) {
	toks := scanString(`"abc`, StringSpec{Quote: '"', BodyCategory: token.CategoryStringDouble, AllowEscapes: true})
	require.Len(t, toks, 1)
	assert.Equal(t, token.CategoryError, toks[0].Category)
	assert.Equal(t, `"abc`, toks[0].Text)
}

func TestScanSimpleStringUnterminatedAfterEscapeEmitsTailOnly(t *testing.T) {
	toks := scanString("\"a\\nb", StringSpec{Quote: '"', BodyCategory: token.CategoryStringDouble, AllowEscapes: true})
	require.Len(t, toks, 3)
	assert.Equal(t, `"a`, toks[0].Text)
	assert.Equal(t, token.CategoryStringDouble, toks[0].Category)
	assert.Equal(t, `\n`, toks[1].Text)
	assert.Equal(t, token.CategoryStringEscape, toks[1].Category)
	assert.Equal(t, `b`, toks[2].Text)
	assert.Equal(t, token.CategoryError, toks[2].Category)

	var rebuilt string
	for _, tok := range toks {
		rebuilt += tok.Text
	}
	assert.Equal(t, "\"a\\nb", rebuilt)
}

func TestScanSimpleStringRoundTrips(t *testing.T) {
	for _, in := range []string{`"plain"`, `"esc\tape\\d"`, `"unterminated`, `""`, "\"a\\nb", "\"a\\"} {
		toks := scanString(in, StringSpec{Quote: '"', BodyCategory: token.CategoryStringDouble, AllowEscapes: true})
		var rebuilt string
		for _, tok := range toks {
			rebuilt += tok.Text
		}
		assert.Equal(t, in, rebuilt)
	}
}
