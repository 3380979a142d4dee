package lexer

import (
	"testing"

	"github.com/lumenhl/rosettes/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaintextRoundTrips(t *testing.T) {
	p := NewPlaintext()
	input := "a\nb\n\nc"
	var rebuilt string
	var toks []token.Token
	for tok := range p.Tokenize(input, 0, len([]rune(input))) {
		rebuilt += tok.Text
		toks = append(toks, tok)
	}
	assert.Equal(t, input, rebuilt)

	// scenario 3 from spec §8: positions for a, b, c are (1,1) (2,1) (4,1).
	var lines []token.Token
	for _, tok := range toks {
		if tok.Category == token.CategoryText {
			lines = append(lines, tok)
		}
	}
	require.Len(t, lines, 3)
	assert.Equal(t, token.Token{Category: token.CategoryText, Text: "a", Line: 1, Column: 1}, lines[0])
	assert.Equal(t, token.Token{Category: token.CategoryText, Text: "b", Line: 2, Column: 1}, lines[1])
	assert.Equal(t, token.Token{Category: token.CategoryText, Text: "c", Line: 4, Column: 1}, lines[2])
}

func TestPlaintextNeverEmitsEmptyToken(t *testing.T) {
	p := NewPlaintext()
	for tok := range p.Tokenize("", 0, 0) {
		t.Fatalf("unexpected token from empty input: %+v", tok)
	}
}

func TestPlaintextNameAndAliases(t *testing.T) {
	p := NewPlaintext()
	assert.Equal(t, "plaintext", p.Name())
	assert.Contains(t, p.Aliases(), "text")
}
