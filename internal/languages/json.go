package languages

import (
	"iter"

	"github.com/lumenhl/rosettes/internal/lexer"
	"github.com/lumenhl/rosettes/internal/token"
)

const jsonPunct = "{}[],:"

// JSON is the exemplar scanner for strict JSON: objects, arrays, strings
// with escapes, numbers, and the three literal keywords. There are no
// comments or identifiers in the grammar, so unrecognized bareword runs
// fall through to Error, one code point at a time.
type JSON struct{}

func NewJSON() *JSON { return &JSON{} }

func (j *JSON) Name() string      { return "json" }
func (j *JSON) Aliases() []string { return []string{"jsonc"} }

func (j *JSON) Tokenize(input string, start, end int) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		c := lexer.NewCursor(input, start, end)
		for !c.AtEnd() {
			if !jsonStep(c, yield) {
				return
			}
		}
	}
}

func (j *JSON) TokenizeFast(input string, start, end int) iter.Seq2[token.Category, string] {
	return lexer.FastFromFull(j.Tokenize(input, start, end))
}

func jsonStep(c *lexer.Cursor, yield func(token.Token) bool) bool {
	line, col := c.Line(), c.Column()

	if nl, ok := lexer.ScanNewline(c); ok {
		return yield(token.Token{Category: token.CategoryWhitespace, Text: nl, Line: line, Column: col})
	}
	if r, _ := c.Peek(); lexer.IsASCIISpace(r) {
		return yield(token.Token{Category: token.CategoryWhitespace, Text: lexer.ScanWhitespaceRun(c), Line: line, Column: col})
	}
	if r, _ := c.Peek(); r == '"' {
		first := true
		propagate := true
		lexer.ScanSimpleString(c, lexer.StringSpec{Quote: '"', BodyCategory: token.CategoryStringDouble, AllowEscapes: true}, func(tok token.Token) {
			if first {
				tok.Line, tok.Column = line, col
				first = false
			}
			if !yield(tok) {
				propagate = false
			}
		})
		return propagate
	}
	if r, _ := c.Peek(); r == '-' || lexer.IsASCIIDigit(r) {
		// A '-' starts a number only when a digit follows it.
		if next, ok := c.PeekAt(1); r != '-' || (ok && lexer.IsASCIIDigit(next)) {
			start := c.Mark()
			if r == '-' {
				c.Advance()
			}
			_, cat := lexer.ScanNumber(c, false)
			return yield(token.Token{Category: cat, Text: c.Slice(start, c.Mark()), Line: line, Column: col})
		}
	}
	if word, cat, ok := jsonTryKeyword(c); ok {
		return yield(token.Token{Category: cat, Text: word, Line: line, Column: col})
	}
	if r, _ := c.Peek(); containsRune(jsonPunct, r) {
		c.Advance()
		return yield(token.Token{Category: token.CategoryPunctuation, Text: string(r), Line: line, Column: col})
	}

	r, _ := c.Advance()
	return yield(token.Token{Category: token.CategoryError, Text: string(r), Line: line, Column: col})
}

func jsonTryKeyword(c *lexer.Cursor) (string, token.Category, bool) {
	for word, cat := range map[string]token.Category{
		"true": token.CategoryBoolean, "false": token.CategoryBoolean, "null": token.CategoryKeywordConstant,
	} {
		matched := true
		for i, w := range word {
			r, ok := c.PeekAt(i)
			if !ok || r != w {
				matched = false
				break
			}
		}
		if matched {
			for range word {
				c.Advance()
			}
			return word, cat, true
		}
	}
	return "", token.CategoryError, false
}
