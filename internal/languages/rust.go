package languages

import (
	"iter"

	"github.com/lumenhl/rosettes/internal/lexer"
	"github.com/lumenhl/rosettes/internal/token"
)

var rustKeywords = lexer.KeywordTable{
	Keywords: map[string]token.Category{
		"fn": token.CategoryKeywordDeclaration, "struct": token.CategoryKeywordDeclaration,
		"enum": token.CategoryKeywordDeclaration, "trait": token.CategoryKeywordDeclaration,
		"impl": token.CategoryKeywordDeclaration, "let": token.CategoryKeywordDeclaration,
		"const": token.CategoryKeywordDeclaration, "static": token.CategoryKeywordDeclaration,
		"type": token.CategoryKeywordDeclaration, "mod": token.CategoryKeywordNamespace,
		"use": token.CategoryKeywordNamespace, "crate": token.CategoryKeywordNamespace,
		"pub": token.CategoryKeywordReserved, "unsafe": token.CategoryKeywordReserved,
		"async": token.CategoryKeywordReserved, "await": token.CategoryKeywordReserved,
		"move": token.CategoryKeywordReserved, "dyn": token.CategoryKeywordReserved,
		"if": token.CategoryKeyword, "else": token.CategoryKeyword, "match": token.CategoryKeyword,
		"for": token.CategoryKeyword, "while": token.CategoryKeyword, "loop": token.CategoryKeyword,
		"break": token.CategoryKeyword, "continue": token.CategoryKeyword, "return": token.CategoryKeyword,
		"where": token.CategoryKeyword, "as": token.CategoryKeyword, "in": token.CategoryKeyword,
		"i8": token.CategoryKeywordType, "i16": token.CategoryKeywordType, "i32": token.CategoryKeywordType,
		"i64": token.CategoryKeywordType, "isize": token.CategoryKeywordType, "u8": token.CategoryKeywordType,
		"u16": token.CategoryKeywordType, "u32": token.CategoryKeywordType, "u64": token.CategoryKeywordType,
		"usize": token.CategoryKeywordType, "f32": token.CategoryKeywordType, "f64": token.CategoryKeywordType,
		"bool": token.CategoryKeywordType, "str": token.CategoryKeywordType, "char": token.CategoryKeywordType,
		"Self": token.CategoryKeywordType, "self": token.CategoryKeywordConstant,
		"true": token.CategoryBoolean, "false": token.CategoryBoolean,
		"None": token.CategoryKeywordConstant, "Some": token.CategoryNameBuiltin,
	},
	Builtins: setOf("Vec", "String", "Box", "Option", "Result", "Rc", "Arc", "HashMap", "println", "vec", "format"),
}

var rustOperators = lexer.NewOperatorTable([]string{
	"..=", "->", "=>", "::", "&&", "||", "==", "!=", "<=", ">=", "<<", ">>",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "..",
	"+", "-", "*", "/", "%", "<", ">", "=", "&", "|", "^", "!", "?",
})

const rustPunct = "()[]{},:;."

// Rust is the exemplar scanner for Rust: keywords, raw strings (r"...",
// r#"..."#), byte strings (b"..."), lifetimes as Name.Attribute, doc
// comments (/// and //!) as Comment.Doc, nested block comments, and
// underscore-separated numeric literals with type suffixes.
type Rust struct{}

func NewRust() *Rust { return &Rust{} }

func (r *Rust) Name() string      { return "rust" }
func (r *Rust) Aliases() []string { return []string{"rs"} }

func (r *Rust) Tokenize(input string, start, end int) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		c := lexer.NewCursor(input, start, end)
		for !c.AtEnd() {
			if !rustStep(c, yield) {
				return
			}
		}
	}
}

func (r *Rust) TokenizeFast(input string, start, end int) iter.Seq2[token.Category, string] {
	return lexer.FastFromFull(r.Tokenize(input, start, end))
}

func rustStep(c *lexer.Cursor, yield func(token.Token) bool) bool {
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
			cat := token.CategoryCommentSingle
			if len(text) >= 3 && (text[2] == '/' || text[2] == '!') {
				cat = token.CategoryCommentDoc
			}
			return yield(token.Token{Category: cat, Text: text, Line: line, Column: col})
		}
		if next, ok := c.PeekAt(1); ok && next == '*' {
			startMark := c.Mark()
			c.Advance()
			c.Advance()
			text := rustScanNestedComment(c, startMark)
			return yield(token.Token{Category: token.CategoryCommentMultiline, Text: text, Line: line, Column: col})
		}
	}
	if r, _ := c.Peek(); r == '\'' {
		if tok, ok := rustTryLifetime(c, line, col); ok {
			return yield(tok)
		}
		if tok, ok := rustTryCharLiteral(c, line, col); ok {
			return yield(tok)
		}
	}
	if r, _ := c.Peek(); (r == 'r' || r == 'b') {
		if tok, ok := rustTryPrefixedString(c, line, col); ok {
			return yield(tok)
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
	if r, _ := c.Peek(); lexer.DefaultIdentStart(r) {
		word := lexer.ScanIdentifier(c, lexer.DefaultIdentContinue)
		return yield(token.Token{Category: rustKeywords.Classify(word), Text: word, Line: line, Column: col})
	}
	if r, _ := c.Peek(); lexer.IsASCIIDigit(r) {
		start := c.Mark()
		_, cat := lexer.ScanNumber(c, true)
		for {
			rr, ok := c.Peek()
			if !ok || !lexer.DefaultIdentContinue(rr) {
				break
			}
			c.Advance()
		}
		return yield(token.Token{Category: cat, Text: c.Slice(start, c.Mark()), Line: line, Column: col})
	}
	if op, ok := rustOperators.Match(c); ok {
		return yield(token.Token{Category: token.CategoryOperator, Text: op, Line: line, Column: col})
	}
	if r, _ := c.Peek(); containsRune(rustPunct, r) {
		c.Advance()
		return yield(token.Token{Category: token.CategoryPunctuation, Text: string(r), Line: line, Column: col})
	}

	r, _ := c.Advance()
	return yield(token.Token{Category: token.CategoryError, Text: string(r), Line: line, Column: col})
}

// rustScanNestedComment tracks nesting depth so /* /* */ */ closes exactly
// on the outer terminator, unlike a plain closer scan. startMark is the
// position of the opening "/*", already consumed by the caller.
func rustScanNestedComment(c *lexer.Cursor, startMark int) string {
	start := startMark
	depth := 1
	for depth > 0 {
		if c.AtEnd() {
			break
		}
		if matchesCloser(c, []rune("/*")) {
			c.Advance()
			c.Advance()
			depth++
			continue
		}
		if matchesCloser(c, []rune("*/")) {
			c.Advance()
			c.Advance()
			depth--
			continue
		}
		c.Advance()
	}
	return c.Slice(start, c.Mark())
}

// rustTryLifetime distinguishes 'a (a lifetime, Name.Attribute) from 'a'
// (a char literal) by checking whether a closing quote follows the ident.
func rustTryLifetime(c *lexer.Cursor, line, col int) (token.Token, bool) {
	if next, ok := c.PeekAt(1); !ok || !lexer.DefaultIdentStart(next) {
		return token.Token{}, false
	}
	save := *c
	start := c.Mark()
	c.Advance() // '
	c.Advance() // first ident char
	for {
		r, ok := c.Peek()
		if !ok || !lexer.DefaultIdentContinue(r) {
			break
		}
		c.Advance()
	}
	if r, ok := c.Peek(); ok && r == '\'' {
		*c = save
		return token.Token{}, false
	}
	return token.Token{Category: token.CategoryNameAttribute, Text: c.Slice(start, c.Mark()), Line: line, Column: col}, true
}

func rustTryCharLiteral(c *lexer.Cursor, line, col int) (token.Token, bool) {
	save := *c
	start := c.Mark()
	c.Advance() // opening '
	if r, ok := c.Peek(); ok && r == '\\' {
		c.Advance()
		if _, ok := c.Peek(); ok {
			c.Advance()
		}
	} else if ok {
		c.Advance()
	}
	if r, ok := c.Peek(); ok && r == '\'' {
		c.Advance()
		return token.Token{Category: token.CategoryStringSingle, Text: c.Slice(start, c.Mark()), Line: line, Column: col}, true
	}
	*c = save
	return token.Token{}, false
}

// rustTryPrefixedString handles b"...", r"...", br"...", and raw strings
// with # delimiters (r#"..."#). Only b"..." skips over backslash escapes;
// the raw forms do not interpret escapes.
func rustTryPrefixedString(c *lexer.Cursor, line, col int) (token.Token, bool) {
	start := c.Mark()
	offset := 0
	isByte := false
	if r, _ := c.PeekAt(0); r == 'b' {
		isByte = true
		offset = 1
	}
	if r, ok := c.PeekAt(offset); ok && r == 'r' {
		offset++
	} else if isByte {
		if r, ok := c.PeekAt(offset); !ok || r != '"' {
			return token.Token{}, false
		}
		for i := 0; i < offset; i++ {
			c.Advance()
		}
		c.Advance() // opening quote
		for {
			r, ok := c.Peek()
			if !ok {
				return token.Token{Category: token.CategoryError, Text: c.Slice(start, c.Mark()), Line: line, Column: col}, true
			}
			if r == '\\' {
				c.Advance()
				if _, ok := c.Peek(); ok {
					c.Advance()
				}
				continue
			}
			c.Advance()
			if r == '"' {
				break
			}
		}
		return token.Token{Category: token.CategoryStringDouble, Text: c.Slice(start, c.Mark()), Line: line, Column: col}, true
	} else {
		return token.Token{}, false
	}

	hashes := 0
	for {
		r, ok := c.PeekAt(offset + hashes)
		if !ok || r != '#' {
			break
		}
		hashes++
	}
	if r, ok := c.PeekAt(offset + hashes); !ok || r != '"' {
		return token.Token{}, false
	}
	for i := 0; i < offset+hashes+1; i++ {
		c.Advance()
	}
	closer := append([]rune{'"'}, []rune(repeatHash(hashes))...)
	for {
		if c.AtEnd() {
			return token.Token{Category: token.CategoryError, Text: c.Slice(start, c.Mark()), Line: line, Column: col}, true
		}
		if matchesCloser(c, closer) {
			for range closer {
				c.Advance()
			}
			break
		}
		c.Advance()
	}
	return token.Token{Category: token.CategoryStringRaw, Text: c.Slice(start, c.Mark()), Line: line, Column: col}, true
}

func repeatHash(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '#'
	}
	return string(b)
}
