package languages

import (
	"iter"

	"github.com/lumenhl/rosettes/internal/lexer"
	"github.com/lumenhl/rosettes/internal/token"
)

var golangKeywords = lexer.KeywordTable{
	Keywords: map[string]token.Category{
		"func": token.CategoryKeywordDeclaration, "var": token.CategoryKeywordDeclaration,
		"const": token.CategoryKeywordDeclaration, "type": token.CategoryKeywordDeclaration,
		"struct": token.CategoryKeywordDeclaration, "interface": token.CategoryKeywordDeclaration,
		"package": token.CategoryKeywordNamespace, "import": token.CategoryKeywordNamespace,
		"if": token.CategoryKeyword, "else": token.CategoryKeyword, "for": token.CategoryKeyword,
		"range": token.CategoryKeyword, "switch": token.CategoryKeyword, "case": token.CategoryKeyword,
		"default": token.CategoryKeyword, "break": token.CategoryKeyword, "continue": token.CategoryKeyword,
		"return": token.CategoryKeyword, "go": token.CategoryKeyword, "defer": token.CategoryKeyword,
		"select": token.CategoryKeyword, "chan": token.CategoryKeywordType, "map": token.CategoryKeywordType,
		"goto": token.CategoryKeyword, "fallthrough": token.CategoryKeyword,
		"int": token.CategoryKeywordType, "int8": token.CategoryKeywordType, "int16": token.CategoryKeywordType,
		"int32": token.CategoryKeywordType, "int64": token.CategoryKeywordType, "uint": token.CategoryKeywordType,
		"byte": token.CategoryKeywordType, "rune": token.CategoryKeywordType, "string": token.CategoryKeywordType,
		"bool": token.CategoryKeywordType, "float32": token.CategoryKeywordType, "float64": token.CategoryKeywordType,
		"error": token.CategoryKeywordType,
		"true":  token.CategoryBoolean, "false": token.CategoryBoolean,
		"nil": token.CategoryKeywordConstant,
	},
	Builtins: setOf("len", "cap", "make", "new", "append", "copy", "delete", "panic", "recover", "print", "println"),
}

var golangOperators = lexer.NewOperatorTable([]string{
	"<<=", ">>=", "&^=", "...", "&&", "||", "<-", "++", "--", "==", "!=", "<=", ">=", ":=",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>", "&^",
	"+", "-", "*", "/", "%", "<", ">", "=", "&", "|", "^", "!", "~",
})

const golangPunct = "()[]{},;:."

// Golang is the exemplar scanner for Go: keywords, raw (backtick) strings
// with no escapes, interpreted strings with escapes, rune literals, line
// and block comments, and numeric literals with underscore separators.
type Golang struct{}

func NewGolang() *Golang { return &Golang{} }

func (g *Golang) Name() string      { return "golang" }
func (g *Golang) Aliases() []string { return []string{"go"} }

func (g *Golang) Tokenize(input string, start, end int) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		c := lexer.NewCursor(input, start, end)
		for !c.AtEnd() {
			if !golangStep(c, yield) {
				return
			}
		}
	}
}

func (g *Golang) TokenizeFast(input string, start, end int) iter.Seq2[token.Category, string] {
	return lexer.FastFromFull(g.Tokenize(input, start, end))
}

func golangStep(c *lexer.Cursor, yield func(token.Token) bool) bool {
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
			return yield(token.Token{Category: token.CategoryCommentMultiline, Text: text, Line: line, Column: col})
		}
	}
	if r, _ := c.Peek(); r == '`' {
		start := c.Mark()
		c.Advance()
		for {
			rr, ok := c.Peek()
			if !ok {
				return yield(token.Token{Category: token.CategoryError, Text: c.Slice(start, c.Pos()), Line: line, Column: col})
			}
			c.Advance()
			if rr == '`' {
				break
			}
		}
		return yield(token.Token{Category: token.CategoryStringRaw, Text: c.Slice(start, c.Pos()), Line: line, Column: col})
	}
	if r, _ := c.Peek(); r == '"' {
		propagate := true
		first := true
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
	if r, _ := c.Peek(); r == '\'' {
		start := c.Mark()
		c.Advance()
		if rr, ok := c.Peek(); ok && rr == '\\' {
			c.Advance()
			if _, ok := c.Peek(); ok {
				c.Advance()
			}
		} else if ok {
			c.Advance()
		}
		if rr, ok := c.Peek(); ok && rr == '\'' {
			c.Advance()
			return yield(token.Token{Category: token.CategoryStringSingle, Text: c.Slice(start, c.Pos()), Line: line, Column: col})
		}
		return yield(token.Token{Category: token.CategoryError, Text: c.Slice(start, c.Pos()), Line: line, Column: col})
	}
	if r, _ := c.Peek(); lexer.DefaultIdentStart(r) {
		word := lexer.ScanIdentifier(c, lexer.DefaultIdentContinue)
		return yield(token.Token{Category: golangKeywords.Classify(word), Text: word, Line: line, Column: col})
	}
	if r, _ := c.Peek(); lexer.IsASCIIDigit(r) {
		text, cat := lexer.ScanNumber(c, true)
		return yield(token.Token{Category: cat, Text: text, Line: line, Column: col})
	}
	if op, ok := golangOperators.Match(c); ok {
		return yield(token.Token{Category: token.CategoryOperator, Text: op, Line: line, Column: col})
	}
	if r, _ := c.Peek(); containsRune(golangPunct, r) {
		c.Advance()
		return yield(token.Token{Category: token.CategoryPunctuation, Text: string(r), Line: line, Column: col})
	}

	r, _ := c.Advance()
	return yield(token.Token{Category: token.CategoryError, Text: string(r), Line: line, Column: col})
}
