package languages

import (
	"iter"

	"github.com/lumenhl/rosettes/internal/lexer"
	"github.com/lumenhl/rosettes/internal/token"
)

var clangKeywords = lexer.KeywordTable{
	Keywords: map[string]token.Category{
		"struct": token.CategoryKeywordDeclaration, "union": token.CategoryKeywordDeclaration,
		"enum": token.CategoryKeywordDeclaration, "typedef": token.CategoryKeywordDeclaration,
		"class": token.CategoryKeywordDeclaration, "namespace": token.CategoryKeywordNamespace,
		"using": token.CategoryKeywordNamespace, "template": token.CategoryKeywordReserved,
		"public": token.CategoryKeywordReserved, "private": token.CategoryKeywordReserved,
		"protected": token.CategoryKeywordReserved, "virtual": token.CategoryKeywordReserved,
		"static": token.CategoryKeywordReserved, "const": token.CategoryKeywordReserved,
		"extern": token.CategoryKeywordReserved, "inline": token.CategoryKeywordReserved,
		"volatile": token.CategoryKeywordReserved,
		"if": token.CategoryKeyword, "else": token.CategoryKeyword, "for": token.CategoryKeyword,
		"while": token.CategoryKeyword, "do": token.CategoryKeyword, "switch": token.CategoryKeyword,
		"case": token.CategoryKeyword, "default": token.CategoryKeyword, "break": token.CategoryKeyword,
		"continue": token.CategoryKeyword, "return": token.CategoryKeyword, "goto": token.CategoryKeyword,
		"sizeof": token.CategoryKeyword, "new": token.CategoryKeyword, "delete": token.CategoryKeyword,
		"int": token.CategoryKeywordType, "char": token.CategoryKeywordType, "float": token.CategoryKeywordType,
		"double": token.CategoryKeywordType, "void": token.CategoryKeywordType, "long": token.CategoryKeywordType,
		"short": token.CategoryKeywordType, "unsigned": token.CategoryKeywordType, "signed": token.CategoryKeywordType,
		"bool": token.CategoryKeywordType, "size_t": token.CategoryKeywordType,
		"NULL": token.CategoryKeywordConstant, "nullptr": token.CategoryKeywordConstant,
		"true": token.CategoryBoolean, "false": token.CategoryBoolean,
	},
	Builtins: setOf("printf", "scanf", "malloc", "free", "memcpy", "strlen", "strcpy"),
}

var clangOperators = lexer.NewOperatorTable([]string{
	"<<=", ">>=", "->", "::", "==", "!=", "<=", ">=", "&&", "||", "++", "--", "<<", ">>",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"+", "-", "*", "/", "%", "<", ">", "=", "&", "|", "^", "!", "~",
})

const clangPunct = "()[]{},:;."

// Clang is the exemplar scanner for the C/C++ family: keywords,
// preprocessor directives as one token from # to end of line, char
// literals, string literals with escapes, line and block comments, and
// numeric literals including hex/octal prefixes and type suffixes.
type Clang struct{}

func NewClang() *Clang { return &Clang{} }

func (l *Clang) Name() string      { return "clang" }
func (l *Clang) Aliases() []string { return []string{"c", "cpp", "c++", "cc", "h", "hpp"} }

func (l *Clang) Tokenize(input string, start, end int) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		c := lexer.NewCursor(input, start, end)
		for !c.AtEnd() {
			if !clangStep(c, yield) {
				return
			}
		}
	}
}

func (l *Clang) TokenizeFast(input string, start, end int) iter.Seq2[token.Category, string] {
	return lexer.FastFromFull(l.Tokenize(input, start, end))
}

func clangStep(c *lexer.Cursor, yield func(token.Token) bool) bool {
	line, col := c.Line(), c.Column()

	if nl, ok := lexer.ScanNewline(c); ok {
		return yield(token.Token{Category: token.CategoryWhitespace, Text: nl, Line: line, Column: col})
	}
	if r, _ := c.Peek(); lexer.IsASCIISpace(r) {
		return yield(token.Token{Category: token.CategoryWhitespace, Text: lexer.ScanWhitespaceRun(c), Line: line, Column: col})
	}
	if r, _ := c.Peek(); r == '#' {
		start := c.Mark()
		c.Advance()
		for {
			r, ok := c.Peek()
			if !ok || lexer.IsNewline(r) {
				break
			}
			if r == '\\' {
				c.Advance()
				lexer.ScanNewline(c)
				continue
			}
			c.Advance()
		}
		return yield(token.Token{Category: token.CategoryKeywordNamespace, Text: c.Slice(start, c.Mark()), Line: line, Column: col})
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
	if r, _ := c.Peek(); r == '\'' {
		start := c.Mark()
		c.Advance()
		if r2, ok := c.Peek(); ok && r2 == '\\' {
			c.Advance()
			if _, ok := c.Peek(); ok {
				c.Advance()
			}
		} else if ok {
			c.Advance()
		}
		if r2, ok := c.Peek(); ok && r2 == '\'' {
			c.Advance()
			return yield(token.Token{Category: token.CategoryStringSingle, Text: c.Slice(start, c.Mark()), Line: line, Column: col})
		}
		return yield(token.Token{Category: token.CategoryError, Text: c.Slice(start, c.Mark()), Line: line, Column: col})
	}
	if r, _ := c.Peek(); lexer.DefaultIdentStart(r) {
		word := lexer.ScanIdentifier(c, lexer.DefaultIdentContinue)
		return yield(token.Token{Category: clangKeywords.Classify(word), Text: word, Line: line, Column: col})
	}
	if r, _ := c.Peek(); lexer.IsASCIIDigit(r) {
		start := c.Mark()
		_, cat := lexer.ScanNumber(c, false)
		for {
			r2, ok := c.Peek()
			if !ok || !containsRune("uUlLfF", r2) {
				break
			}
			c.Advance()
		}
		return yield(token.Token{Category: cat, Text: c.Slice(start, c.Mark()), Line: line, Column: col})
	}
	if op, ok := clangOperators.Match(c); ok {
		return yield(token.Token{Category: token.CategoryOperator, Text: op, Line: line, Column: col})
	}
	if r, _ := c.Peek(); containsRune(clangPunct, r) {
		c.Advance()
		return yield(token.Token{Category: token.CategoryPunctuation, Text: string(r), Line: line, Column: col})
	}

	r, _ := c.Advance()
	return yield(token.Token{Category: token.CategoryError, Text: string(r), Line: line, Column: col})
}
