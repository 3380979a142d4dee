package lexer

import "github.com/lumenhl/rosettes/internal/token"

// StringSpec parametrizes ScanSimpleString for a single-delimiter,
// non-interpolating quoted string (the shape most languages' single- and
// double-quoted strings share). Languages needing interpolation (JS
// template literals, bash double-quoted strings) drive the cursor
// directly instead — see internal/languages — since that requires
// recursively invoking the top-level scanner per spec §4.2.
type StringSpec struct {
	Quote        rune
	BodyCategory token.Category
	AllowEscapes bool
}

// ScanSimpleString scans a quoted string starting at the cursor
// (positioned on the opening quote) and emits one or more Tokens via
// emit: plain body runs (opening/closing quote glyphs folded into the
// adjacent body run) as BodyCategory, and — when AllowEscapes is set —
// each "\x" pair split out as its own Category.StringEscape token.
//
// An unterminated string (no matching close before end of input) emits
// whatever body/escape tokens already flushed, followed by a single Error
// token spanning only the unflushed tail up to end of input. This is a
// deliberate exception to the usual one-code-point Error rule: spec §9
// calls out unterminated strings as their own open question and resolves
// it as "Error for the unclosed tail" rather than a partial String token —
// see DESIGN.md. The Error must start where the last flush left off, not
// at the opening quote, or its text would duplicate already-emitted body
// and escape tokens and break the round-trip law.
func ScanSimpleString(c *Cursor, spec StringSpec, emit func(token.Token)) {
	stringLine, stringCol := c.Line(), c.Column()
	stringStart := c.Mark()
	c.Advance() // opening quote

	segStart := stringStart
	segLine, segCol := stringLine, stringCol

	flush := func(end int) {
		if end > segStart {
			emit(token.Token{Category: spec.BodyCategory, Text: c.Slice(segStart, end), Line: segLine, Column: segCol})
		}
	}

	for {
		r, ok := c.Peek()
		if !ok {
			if c.Pos() > segStart {
				emit(token.Token{Category: token.CategoryError, Text: c.Slice(segStart, c.Pos()), Line: segLine, Column: segCol})
			}
			return
		}

		if r == spec.Quote {
			c.Advance()
			flush(c.Pos())
			return
		}

		if spec.AllowEscapes && r == '\\' {
			flush(c.Pos())
			escLine, escCol := c.Line(), c.Column()
			escStart := c.Mark()
			c.Advance() // backslash
			if _, ok := c.Peek(); ok {
				c.Advance() // escaped code point, whatever it is
			}
			emit(token.Token{Category: token.CategoryStringEscape, Text: c.Slice(escStart, c.Pos()), Line: escLine, Column: escCol})
			segStart = c.Mark()
			segLine, segCol = c.Line(), c.Column()
			continue
		}

		c.Advance()
	}
}
