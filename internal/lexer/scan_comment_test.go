package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanLineComment(t *testing.T) {
	c := NewCursor("// hi\nnext", 0, 10)
	start := c.Mark()
	c.Advance()
	c.Advance() // consume "//"
	text := ScanLineComment(c, start)
	assert.Equal(t, "// hi", text)
	r, _ := c.Peek()
	assert.Equal(t, '\n', r)
}

func TestScanBlockCommentTerminated(t *testing.T) {
	c := NewCursor("/* hi */rest", 0, 12)
	start := c.Mark()
	c.Advance()
	c.Advance() // consume "/*"
	text, terminated := ScanBlockComment(c, start, []rune("*/"))
	assert.True(t, terminated)
	assert.Equal(t, "/* hi */", text)
}

func TestScanBlockCommentUnterminatedConsumesToEOF(t *testing.T) {
	c := NewCursor("/* incomplete", 0, 13)
	start := c.Mark()
	c.Advance()
	c.Advance()
	text, terminated := ScanBlockComment(c, start, []rune("*/"))
	assert.False(t, terminated)
	assert.Equal(t, "/* incomplete", text)
	assert.True(t, c.AtEnd())
}
