package lexer

import (
	"testing"

	"github.com/lumenhl/rosettes/internal/token"
	"github.com/stretchr/testify/assert"
)

func scanOneNumber(input string, underscores bool) (string, token.Category, string) {
	c := NewCursor(input, 0, len([]rune(input)))
	text, cat := ScanNumber(c, underscores)
	return text, cat, c.Slice(c.Pos(), len(c.Runes()))
}

func TestScanNumberInteger(t *testing.T) {
	text, cat, rest := scanOneNumber("123abc", false)
	assert.Equal(t, "123", text)
	assert.Equal(t, token.CategoryNumberInteger, cat)
	assert.Equal(t, "abc", rest)
}

func TestScanNumberHex(t *testing.T) {
	text, cat, _ := scanOneNumber("0xFF_00", true)
	assert.Equal(t, "0xFF_00", text)
	assert.Equal(t, token.CategoryNumberHex, cat)
}

func TestScanNumberHexPrefixWithoutDigitsFallsBackToZero(t *testing.T) {
	text, cat, rest := scanOneNumber("0xyz", false)
	assert.Equal(t, "0", text)
	assert.Equal(t, token.CategoryNumberInteger, cat)
	assert.Equal(t, "xyz", rest)
}

func TestScanNumberOctalAndBinary(t *testing.T) {
	text, cat, _ := scanOneNumber("0o17", false)
	assert.Equal(t, "0o17", text)
	assert.Equal(t, token.CategoryNumberOctal, cat)

	text, cat, _ = scanOneNumber("0b1010", false)
	assert.Equal(t, "0b1010", text)
	assert.Equal(t, token.CategoryNumberBinary, cat)
}

func TestScanNumberFloat(t *testing.T) {
	text, cat, _ := scanOneNumber("3.14", false)
	assert.Equal(t, "3.14", text)
	assert.Equal(t, token.CategoryNumberFloat, cat)
}

func TestScanNumberDotWithoutDigitStaysInteger(t *testing.T) {
	text, cat, rest := scanOneNumber("3.foo", false)
	assert.Equal(t, "3", text)
	assert.Equal(t, token.CategoryNumberInteger, cat)
	assert.Equal(t, ".foo", rest)
}

func TestScanNumberScientific(t *testing.T) {
	text, cat, _ := scanOneNumber("6.02e23", false)
	assert.Equal(t, "6.02e23", text)
	assert.Equal(t, token.CategoryNumberScientific, cat)

	text, cat, _ = scanOneNumber("1e-10", false)
	assert.Equal(t, "1e-10", text)
	assert.Equal(t, token.CategoryNumberScientific, cat)
}

func TestScanNumberExponentWithoutDigitsStaysAsIs(t *testing.T) {
	text, cat, rest := scanOneNumber("1e", false)
	assert.Equal(t, "1", text)
	assert.Equal(t, token.CategoryNumberInteger, cat)
	assert.Equal(t, "e", rest)
}
