package lexer

// ScanLineComment consumes from the cursor (positioned just after the
// comment-opening delimiter has already been consumed by the caller) up to
// but not including the next line break, or end of input. It returns the
// full comment text including whatever delimiter text the caller already
// consumed, by taking startMark as the delimiter's own start position.
func ScanLineComment(c *Cursor, startMark int) string {
	for {
		r, ok := c.Peek()
		if !ok || IsNewline(r) {
			break
		}
		c.Advance()
	}
	return c.Slice(startMark, c.Pos())
}

// ScanBlockComment consumes a bracketed comment given its closing
// delimiter, starting immediately after the caller has consumed the
// opening delimiter (startMark marks the opening delimiter's start). If
// the closer is never found, per spec §4.2 the scanner consumes to
// end-of-input and reports the comment as unterminated without emitting an
// Error token — this preserves the round-trip invariant.
func ScanBlockComment(c *Cursor, startMark int, closer []rune) (text string, terminated bool) {
	for !c.AtEnd() {
		if matchesAt(c, closer) {
			for range closer {
				c.Advance()
			}
			return c.Slice(startMark, c.Pos()), true
		}
		c.Advance()
	}
	return c.Slice(startMark, c.Pos()), false
}

func matchesAt(c *Cursor, want []rune) bool {
	for i, w := range want {
		r, ok := c.PeekAt(i)
		if !ok || r != w {
			return false
		}
	}
	return true
}
