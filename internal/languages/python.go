// Package languages holds the exemplar per-language scanners: independent
// state machines built entirely out of internal/lexer's shared primitives.
// Per spec §1, only a handful of exemplar languages are implemented here —
// the framework accepts more via the same lexer.Lexer + registry.LexerSpec
// shape without any change to the core.
package languages

import (
	"iter"

	"github.com/lumenhl/rosettes/internal/lexer"
	"github.com/lumenhl/rosettes/internal/token"
)

var pythonKeywords = lexer.KeywordTable{
	Keywords: map[string]token.Category{
		"def": token.CategoryKeywordDeclaration, "class": token.CategoryKeywordDeclaration,
		"lambda": token.CategoryKeywordDeclaration,
		"import": token.CategoryKeywordNamespace, "from": token.CategoryKeywordNamespace,
		"as": token.CategoryKeywordNamespace,
		"if": token.CategoryKeyword, "elif": token.CategoryKeyword, "else": token.CategoryKeyword,
		"for": token.CategoryKeyword, "while": token.CategoryKeyword, "break": token.CategoryKeyword,
		"continue": token.CategoryKeyword, "pass": token.CategoryKeyword, "return": token.CategoryKeyword,
		"yield": token.CategoryKeyword, "raise": token.CategoryKeyword, "try": token.CategoryKeyword,
		"except": token.CategoryKeyword, "finally": token.CategoryKeyword, "with": token.CategoryKeyword,
		"assert": token.CategoryKeyword, "del": token.CategoryKeyword, "global": token.CategoryKeyword,
		"nonlocal": token.CategoryKeyword, "in": token.CategoryKeyword, "is": token.CategoryKeyword,
		"not": token.CategoryKeyword, "and": token.CategoryOperatorWord, "or": token.CategoryOperatorWord,
		"async": token.CategoryKeywordReserved, "await": token.CategoryKeywordReserved,
		"None": token.CategoryKeywordConstant,
		"True": token.CategoryBoolean, "False": token.CategoryBoolean,
	},
	Builtins: setOf("print", "len", "range", "str", "int", "float", "list", "dict", "set",
		"tuple", "bool", "type", "isinstance", "super", "self", "enumerate", "zip", "map", "filter"),
}

var pythonOperators = lexer.NewOperatorTable([]string{
	"**=", "//=", "<<=", ">>=", "->", ":=",
	"==", "!=", "<=", ">=", "**", "//", "<<", ">>", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"+", "-", "*", "/", "%", "<", ">", "=", "&", "|", "^", "~",
})

const pythonPunct = "()[]{},:;."

// Python is the exemplar scanner for an indentation-insensitive subset of
// Python: keywords, decorators, triple-quoted strings, f-string
// interpolation, single-line comments, and the full numeric literal
// grammar from spec §4.2.
type Python struct{}

func NewPython() *Python { return &Python{} }

func (p *Python) Name() string      { return "python" }
func (p *Python) Aliases() []string { return []string{"py", "py3"} }

func (p *Python) Tokenize(input string, start, end int) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		c := lexer.NewCursor(input, start, end)
		for !c.AtEnd() {
			if !pythonStep(c, yield) {
				return
			}
		}
	}
}

func (p *Python) TokenizeFast(input string, start, end int) iter.Seq2[token.Category, string] {
	return lexer.FastFromFull(p.Tokenize(input, start, end))
}

func pythonStep(c *lexer.Cursor, yield func(token.Token) bool) bool {
	line, col := c.Line(), c.Column()

	if nl, ok := lexer.ScanNewline(c); ok {
		return yield(token.Token{Category: token.CategoryWhitespace, Text: nl, Line: line, Column: col})
	}
	if r, _ := c.Peek(); lexer.IsASCIISpace(r) {
		ws := lexer.ScanWhitespaceRun(c)
		return yield(token.Token{Category: token.CategoryWhitespace, Text: ws, Line: line, Column: col})
	}
	if r, _ := c.Peek(); r == '#' {
		start := c.Mark()
		c.Advance()
		text := lexer.ScanLineComment(c, start)
		return yield(token.Token{Category: token.CategoryCommentSingle, Text: text, Line: line, Column: col})
	}
	if r, _ := c.Peek(); r == '@' {
		if next, ok := c.PeekAt(1); ok && lexer.DefaultIdentStart(next) {
			start := c.Mark()
			c.Advance() // @
			c.Advance() // ident start
			for {
				r, ok := c.Peek()
				if !ok || !lexer.DefaultIdentContinue(r) {
					break
				}
				c.Advance()
			}
			return yield(token.Token{Category: token.CategoryNameDecorator, Text: c.Slice(start, c.Pos()), Line: line, Column: col})
		}
	}
	if quoted, ok := pythonTryString(c, line, col, yield); ok {
		return quoted
	}
	if r, _ := c.Peek(); lexer.DefaultIdentStart(r) {
		word := lexer.ScanIdentifier(c, lexer.DefaultIdentContinue)
		return yield(token.Token{Category: pythonKeywords.Classify(word), Text: word, Line: line, Column: col})
	}
	if r, _ := c.Peek(); lexer.IsASCIIDigit(r) {
		text, cat := lexer.ScanNumber(c, true)
		return yield(token.Token{Category: cat, Text: text, Line: line, Column: col})
	}
	if op, ok := pythonOperators.Match(c); ok {
		return yield(token.Token{Category: token.CategoryOperator, Text: op, Line: line, Column: col})
	}
	if r, _ := c.Peek(); containsRune(pythonPunct, r) {
		c.Advance()
		return yield(token.Token{Category: token.CategoryPunctuation, Text: string(r), Line: line, Column: col})
	}

	r, _ := c.Advance()
	return yield(token.Token{Category: token.CategoryError, Text: string(r), Line: line, Column: col})
}

// pythonTryString handles plain, raw, triple-quoted, and f-string forms.
// It returns (result, true) if the cursor was positioned on a string
// opener (result is the yield propagation value); (_, false) if it
// wasn't, in which case the cursor is untouched.
func pythonTryString(c *lexer.Cursor, line, col int, yield func(token.Token) bool) (bool, bool) {
	r, present := c.Peek()
	if !present {
		return false, false
	}

	var prefix rune
	offset := 0
	if r == 'f' || r == 'F' || r == 'r' || r == 'R' {
		if q, ok := c.PeekAt(1); ok && (q == '"' || q == '\'') {
			prefix = r
			offset = 1
		}
	}

	quote, present := c.PeekAt(offset)
	if !present || (quote != '"' && quote != '\'') {
		return false, false
	}

	start := c.Mark()
	isRaw := prefix == 'r' || prefix == 'R'
	isF := prefix == 'f' || prefix == 'F'

	triple := false
	if q2, ok := c.PeekAt(offset + 1); ok && q2 == quote {
		if q3, ok := c.PeekAt(offset + 2); ok && q3 == quote {
			triple = true
		}
	}

	if offset == 1 {
		c.Advance() // prefix letter
	}

	if triple {
		c.Advance()
		c.Advance()
		c.Advance() // the three opening quotes
		closer := []rune{quote, quote, quote}
		if isF {
			return pythonScanFStringBody(c, start, line, col, closer, yield), true
		}
		_, terminated := lexer.ScanBlockComment(c, start, closer)
		cat := token.CategoryStringTriple
		if !terminated {
			cat = token.CategoryError
		}
		return yield(token.Token{Category: cat, Text: c.Slice(start, c.Pos()), Line: line, Column: col}), true
	}

	if isRaw {
		c.Advance() // opening quote
		for {
			rr, ok := c.Peek()
			if !ok {
				return yield(token.Token{Category: token.CategoryError, Text: c.Slice(start, c.Pos()), Line: line, Column: col}), true
			}
			c.Advance()
			if rr == quote {
				break
			}
		}
		return yield(token.Token{Category: token.CategoryStringRaw, Text: c.Slice(start, c.Pos()), Line: line, Column: col}), true
	}

	if isF {
		c.Advance() // opening quote
		return pythonScanFStringBody(c, start, line, col, []rune{quote}, yield), true
	}

	cat := token.CategoryStringDouble
	if quote == '\'' {
		cat = token.CategoryStringSingle
	}
	first := true
	propagate := true
	lexer.ScanSimpleString(c, lexer.StringSpec{Quote: quote, BodyCategory: cat, AllowEscapes: true}, func(tok token.Token) {
		if first {
			tok.Line, tok.Column = line, col
			first = false
		}
		if !yield(tok) {
			propagate = false
		}
	})
	return propagate, true
}

// pythonScanFStringBody drives the cursor directly (rather than
// ScanSimpleString) because f-strings need the recursive
// "emit String.Interpol, tokenize the interpolated expression with the
// top-level scanner, emit closing String.Interpol" shape spec §4.2
// describes.
func pythonScanFStringBody(c *lexer.Cursor, openStart, line, col int, closer []rune, yield func(token.Token) bool) bool {
	segStart := openStart
	segLine, segCol := line, col
	flush := func(end int) bool {
		if end > segStart {
			return yield(token.Token{Category: token.CategoryStringInterpolated, Text: c.Slice(segStart, end), Line: segLine, Column: segCol})
		}
		return true
	}

	for {
		if c.AtEnd() {
			return yield(token.Token{Category: token.CategoryError, Text: c.Slice(segStart, c.Pos()), Line: segLine, Column: segCol})
		}
		if matchesCloser(c, closer) {
			for range closer {
				c.Advance()
			}
			return flush(c.Pos())
		}
		r, _ := c.Peek()
		if r == '{' {
			if !flush(c.Pos()) {
				return false
			}
			openLine, openCol := c.Line(), c.Column()
			openBraceStart := c.Mark()
			c.Advance()
			if !yield(token.Token{Category: token.CategoryStringInterpol, Text: c.Slice(openBraceStart, c.Pos()), Line: openLine, Column: openCol}) {
				return false
			}
			for {
				r2, ok := c.Peek()
				if !ok || r2 == '}' {
					break
				}
				if !pythonStep(c, yield) {
					return false
				}
			}
			if r2, ok := c.Peek(); ok && r2 == '}' {
				closeLine, closeCol := c.Line(), c.Column()
				closeStart := c.Mark()
				c.Advance()
				if !yield(token.Token{Category: token.CategoryStringInterpol, Text: c.Slice(closeStart, c.Pos()), Line: closeLine, Column: closeCol}) {
					return false
				}
			}
			segStart = c.Mark()
			segLine, segCol = c.Line(), c.Column()
			continue
		}
		c.Advance()
	}
}

func matchesCloser(c *lexer.Cursor, closer []rune) bool {
	for i, w := range closer {
		r, ok := c.PeekAt(i)
		if !ok || r != w {
			return false
		}
	}
	return true
}

func setOf(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
