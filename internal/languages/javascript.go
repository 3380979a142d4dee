package languages

import (
	"iter"

	"github.com/lumenhl/rosettes/internal/lexer"
	"github.com/lumenhl/rosettes/internal/token"
)

var javascriptKeywords = lexer.KeywordTable{
	Keywords: map[string]token.Category{
		"function": token.CategoryKeywordDeclaration, "class": token.CategoryKeywordDeclaration,
		"const": token.CategoryKeywordDeclaration, "let": token.CategoryKeywordDeclaration,
		"var": token.CategoryKeywordDeclaration, "extends": token.CategoryKeywordDeclaration,
		"import": token.CategoryKeywordNamespace, "export": token.CategoryKeywordNamespace,
		"from": token.CategoryKeywordNamespace, "as": token.CategoryKeywordNamespace,
		"if": token.CategoryKeyword, "else": token.CategoryKeyword, "for": token.CategoryKeyword,
		"while": token.CategoryKeyword, "do": token.CategoryKeyword, "switch": token.CategoryKeyword,
		"case": token.CategoryKeyword, "default": token.CategoryKeyword, "break": token.CategoryKeyword,
		"continue": token.CategoryKeyword, "return": token.CategoryKeyword, "throw": token.CategoryKeyword,
		"try": token.CategoryKeyword, "catch": token.CategoryKeyword, "finally": token.CategoryKeyword,
		"new": token.CategoryKeyword, "delete": token.CategoryKeyword, "typeof": token.CategoryKeyword,
		"instanceof": token.CategoryKeyword, "in": token.CategoryKeyword, "of": token.CategoryKeyword,
		"yield": token.CategoryKeyword, "async": token.CategoryKeywordReserved, "await": token.CategoryKeywordReserved,
		"static": token.CategoryKeywordReserved, "get": token.CategoryKeywordReserved, "set": token.CategoryKeywordReserved,
		"this": token.CategoryKeywordConstant, "super": token.CategoryKeywordConstant,
		"null": token.CategoryKeywordConstant, "undefined": token.CategoryKeywordConstant,
		"true": token.CategoryBoolean, "false": token.CategoryBoolean,
	},
	Builtins: setOf("console", "Object", "Array", "Promise", "Map", "Set", "Symbol", "JSON", "Math", "Number", "String"),
}

var javascriptOperators = lexer.NewOperatorTable([]string{
	"===", "!==", "**=", "<<=", ">>=", ">>>", "&&=", "||=", "??=", "...",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "?.", "++", "--", "**",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>",
	"+", "-", "*", "/", "%", "<", ">", "=", "&", "|", "^", "!", "~", "?",
})

const javascriptPunct = "()[]{},:;."

// Javascript is the exemplar scanner for JavaScript/ES2020+: keywords,
// template literals with ${...} interpolation, single and double quoted
// strings, regex literals, and line/block comments.
type Javascript struct{}

func NewJavascript() *Javascript { return &Javascript{} }

func (j *Javascript) Name() string      { return "javascript" }
func (j *Javascript) Aliases() []string { return []string{"js", "node"} }

func (j *Javascript) Tokenize(input string, start, end int) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		c := lexer.NewCursor(input, start, end)
		state := &javascriptState{}
		for !c.AtEnd() {
			if !javascriptStep(c, state, yield) {
				return
			}
		}
	}
}

func (j *Javascript) TokenizeFast(input string, start, end int) iter.Seq2[token.Category, string] {
	return lexer.FastFromFull(j.Tokenize(input, start, end))
}

// javascriptState tracks whether the previous significant token permits a
// regex literal to start (after a value-producing token a '/' is division,
// so no regex literal can start there).
type javascriptState struct {
	regexAllowed bool
}

func javascriptStep(c *lexer.Cursor, st *javascriptState, yield func(token.Token) bool) bool {
	line, col := c.Line(), c.Column()

	if nl, ok := lexer.ScanNewline(c); ok {
		return yield(token.Token{Category: token.CategoryWhitespace, Text: nl, Line: line, Column: col})
	}
	if r, _ := c.Peek(); lexer.IsASCIISpace(r) {
		return yield(token.Token{Category: token.CategoryWhitespace, Text: lexer.ScanWhitespaceRun(c), Line: line, Column: col})
	}
	if r, _ := c.Peek(); r == '/' {
		if next, ok := c.PeekAt(1); ok && next == '/' {
			start := c.Mark()
			c.Advance()
			c.Advance()
			text := lexer.ScanLineComment(c, start)
			return yield(token.Token{Category: token.CategoryCommentSingle, Text: text, Line: line, Column: col})
		}
		if next, ok := c.PeekAt(1); ok && next == '*' {
			start := c.Mark()
			c.Advance()
			c.Advance()
			text, _ := lexer.ScanBlockComment(c, start, []rune("*/"))
			cat := token.CategoryCommentMultiline
			if len(text) >= 3 && text[2] == '*' {
				cat = token.CategoryCommentDoc
			}
			return yield(token.Token{Category: cat, Text: text, Line: line, Column: col})
		}
		if st.regexAllowed {
			if tok, ok := javascriptScanRegex(c, line, col); ok {
				st.regexAllowed = false
				return yield(tok)
			}
		}
	}
	if r, _ := c.Peek(); r == '`' {
		st.regexAllowed = false
		start := c.Mark()
		c.Advance()
		return javascriptScanTemplate(c, start, line, col, yield)
	}
	if r, _ := c.Peek(); r == '"' || r == '\'' {
		st.regexAllowed = false
		cat := token.CategoryStringDouble
		if r == '\'' {
			cat = token.CategoryStringSingle
		}
		first := true
		propagate := true
		lexer.ScanSimpleString(c, lexer.StringSpec{Quote: r, BodyCategory: cat, AllowEscapes: true}, func(tok token.Token) {
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
	if r, _ := c.Peek(); lexer.DefaultIdentStart(r) || r == '$' {
		word := lexer.ScanIdentifier(c, func(rr rune) bool { return lexer.DefaultIdentContinue(rr) || rr == '$' })
		cat := javascriptKeywords.Classify(word)
		st.regexAllowed = cat != token.CategoryName && cat != token.CategoryNameBuiltin
		return yield(token.Token{Category: cat, Text: word, Line: line, Column: col})
	}
	if r, _ := c.Peek(); lexer.IsASCIIDigit(r) {
		st.regexAllowed = false
		text, cat := lexer.ScanNumber(c, true)
		return yield(token.Token{Category: cat, Text: text, Line: line, Column: col})
	}
	if op, ok := javascriptOperators.Match(c); ok {
		st.regexAllowed = op != "++" && op != "--"
		return yield(token.Token{Category: token.CategoryOperator, Text: op, Line: line, Column: col})
	}
	if r, _ := c.Peek(); containsRune(javascriptPunct, r) {
		c.Advance()
		st.regexAllowed = r != ')' && r != ']'
		return yield(token.Token{Category: token.CategoryPunctuation, Text: string(r), Line: line, Column: col})
	}

	r, _ := c.Advance()
	st.regexAllowed = true
	return yield(token.Token{Category: token.CategoryError, Text: string(r), Line: line, Column: col})
}

func javascriptScanRegex(c *lexer.Cursor, line, col int) (token.Token, bool) {
	save := *c
	start := c.Mark()
	c.Advance() // opening /
	inClass := false
	for {
		r, ok := c.Peek()
		if !ok || r == '\n' {
			*c = save
			return token.Token{}, false
		}
		if r == '\\' {
			c.Advance()
			if _, ok := c.Peek(); ok {
				c.Advance()
			}
			continue
		}
		if r == '[' {
			inClass = true
		} else if r == ']' {
			inClass = false
		} else if r == '/' && !inClass {
			c.Advance()
			break
		}
		c.Advance()
	}
	for {
		r, ok := c.Peek()
		if !ok || !lexer.DefaultIdentContinue(r) {
			break
		}
		c.Advance()
	}
	// The closed category taxonomy has no dedicated regex slot; the generic
	// String category is the closest fit for a literal that isn't quoted.
	return token.Token{Category: token.CategoryString, Text: c.Slice(start, c.Pos()), Line: line, Column: col}, true
}

// javascriptScanTemplate mirrors the Python f-string recursive shape: a
// literal segment is flushed as String.Interpolated, ${ and } are emitted
// as String.Interpol, and the interpolated expression recurses through
// javascriptStep.
func javascriptScanTemplate(c *lexer.Cursor, openStart, line, col int, yield func(token.Token) bool) bool {
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
		r, _ := c.Peek()
		if r == '`' {
			c.Advance()
			return flush(c.Pos())
		}
		if r == '\\' {
			c.Advance()
			if _, ok := c.Peek(); ok {
				c.Advance()
			}
			continue
		}
		if r == '$' {
			if next, ok := c.PeekAt(1); ok && next == '{' {
				if !flush(c.Pos()) {
					return false
				}
				openLine, openCol := c.Line(), c.Column()
				interpStart := c.Mark()
				c.Advance()
				c.Advance()
				if !yield(token.Token{Category: token.CategoryStringInterpol, Text: c.Slice(interpStart, c.Pos()), Line: openLine, Column: openCol}) {
					return false
				}
				st := &javascriptState{}
				for {
					r2, ok := c.Peek()
					if !ok || r2 == '}' {
						break
					}
					if !javascriptStep(c, st, yield) {
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
		}
		c.Advance()
	}
}
