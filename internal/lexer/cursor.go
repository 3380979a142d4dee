package lexer

// Cursor is the per-tokenization scanning state every language lexer
// drives: a code-point position plus a running (line, column) cursor. It
// is strictly local to one Tokenize call — nothing in it is shared across
// goroutines, which is what makes concurrent tokenization safe (spec §5).
//
// The input is decoded to runes once, up front. This makes Peek/PeekAt/
// Advance O(1) and keeps every sub-scanner a simple index walk, at the
// cost of an O(n) up-front decode — still linear overall, and it means
// column accounting is code-point accurate for free without re-decoding
// UTF-8 on every step. Invalid byte sequences are replaced by the Unicode
// replacement character during this decode (Go's string-range decoding
// behavior), which is the "lossy UTF-8 decode" spec §7 requires: the
// round-trip invariant then holds against the decoded text.
type Cursor struct {
	runes []rune
	end   int // exclusive rune index this cursor will not scan past
	pos   int
	line  int
	col   int
}

// NewCursor decodes input and returns a Cursor scanning the code-point
// range [start, end). start and end are rune indices, not byte offsets.
func NewCursor(input string, start, end int) *Cursor {
	runes := []rune(input)
	if start < 0 {
		start = 0
	}
	if end > len(runes) || end < start {
		end = len(runes)
	}
	return &Cursor{runes: runes, pos: start, end: end, line: 1, col: 1}
}

// Runes exposes the fully decoded input, for scanners that need to slice
// spans they've already walked past (e.g. to build a Token.Text).
func (c *Cursor) Runes() []rune { return c.runes }

// Pos is the current rune index.
func (c *Cursor) Pos() int { return c.pos }

// Line is the 1-based line of the next unread rune.
func (c *Cursor) Line() int { return c.line }

// Column is the 1-based, code-point-counted column of the next unread rune.
func (c *Cursor) Column() int { return c.col }

// AtEnd reports whether the cursor has consumed the whole requested range.
func (c *Cursor) AtEnd() bool { return c.pos >= c.end }

// Peek returns the current rune without consuming it. ok is false at end
// of input.
func (c *Cursor) Peek() (rune, bool) {
	return c.PeekAt(0)
}

// PeekAt returns the rune offset code points ahead of the cursor without
// consuming anything. offset must be a small compile-time-bounded constant
// in callers — this is the "at most one code-point lookahead" the scanner
// contract allows, generalized to a fixed handful of positions for
// multi-character delimiters (e.g. matching `"""`).
func (c *Cursor) PeekAt(offset int) (rune, bool) {
	i := c.pos + offset
	if i < 0 || i >= c.end {
		return 0, false
	}
	return c.runes[i], true
}

// Advance consumes and returns the current rune, updating line/column.
// A \r\n pair is treated as a single line break: the line counter
// advances on the \n, not the \r.
func (c *Cursor) Advance() (rune, bool) {
	r, ok := c.Peek()
	if !ok {
		return 0, false
	}
	c.pos++

	switch r {
	case '\n':
		c.line++
		c.col = 1
	case '\r':
		if next, ok := c.Peek(); !ok || next != '\n' {
			c.line++
			c.col = 1
		}
	default:
		c.col++
	}
	return r, true
}

// Mark returns the cursor's current rune index (line and column are not
// part of it, so it cannot restore a cursor). Combined with Slice, this is how sub-scanners capture the text of what they just
// walked.
func (c *Cursor) Mark() int { return c.pos }

// Slice returns the decoded text between two rune indices previously
// obtained from Mark/Pos.
func (c *Cursor) Slice(start, stop int) string {
	if start < 0 {
		start = 0
	}
	if stop > len(c.runes) {
		stop = len(c.runes)
	}
	if stop < start {
		return ""
	}
	return string(c.runes[start:stop])
}
