package languages

import (
	"iter"

	"github.com/lumenhl/rosettes/internal/lexer"
	"github.com/lumenhl/rosettes/internal/token"
)

var bashKeywords = lexer.KeywordTable{
	Keywords: map[string]token.Category{
		"if": token.CategoryKeyword, "then": token.CategoryKeyword, "else": token.CategoryKeyword,
		"elif": token.CategoryKeyword, "fi": token.CategoryKeyword, "for": token.CategoryKeyword,
		"while": token.CategoryKeyword, "until": token.CategoryKeyword, "do": token.CategoryKeyword,
		"done": token.CategoryKeyword, "case": token.CategoryKeyword, "esac": token.CategoryKeyword,
		"in": token.CategoryKeyword, "function": token.CategoryKeywordDeclaration,
		"return": token.CategoryKeyword, "break": token.CategoryKeyword, "continue": token.CategoryKeyword,
		"local": token.CategoryKeywordDeclaration, "export": token.CategoryKeywordNamespace,
		"readonly": token.CategoryKeywordDeclaration, "declare": token.CategoryKeywordDeclaration,
	},
	Builtins: setOf("echo", "cd", "pwd", "exit", "test", "read", "printf", "set", "shift", "source", "eval"),
}

const bashPunct = "(){}[];|&<>"

// Bash is the exemplar scanner for POSIX shell scripts: single-quoted
// strings (no interpolation), double-quoted strings with $var and ${...}
// interpolation, unquoted $VAR and ${VAR} expansion, line comments, and
// keyword/builtin classification of bareword commands.
type Bash struct{}

func NewBash() *Bash { return &Bash{} }

func (b *Bash) Name() string      { return "bash" }
func (b *Bash) Aliases() []string { return []string{"sh", "shell", "zsh"} }

func (b *Bash) Tokenize(input string, start, end int) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		c := lexer.NewCursor(input, start, end)
		for !c.AtEnd() {
			if !bashStep(c, yield) {
				return
			}
		}
	}
}

func (b *Bash) TokenizeFast(input string, start, end int) iter.Seq2[token.Category, string] {
	return lexer.FastFromFull(b.Tokenize(input, start, end))
}

func bashStep(c *lexer.Cursor, yield func(token.Token) bool) bool {
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
		text := lexer.ScanLineComment(c, start)
		return yield(token.Token{Category: token.CategoryCommentSingle, Text: text, Line: line, Column: col})
	}
	if r, _ := c.Peek(); r == '\'' {
		start := c.Mark()
		c.Advance()
		for {
			r2, ok := c.Peek()
			if !ok {
				return yield(token.Token{Category: token.CategoryError, Text: c.Slice(start, c.Mark()), Line: line, Column: col})
			}
			c.Advance()
			if r2 == '\'' {
				break
			}
		}
		return yield(token.Token{Category: token.CategoryStringSingle, Text: c.Slice(start, c.Mark()), Line: line, Column: col})
	}
	if r, _ := c.Peek(); r == '"' {
		return bashScanDoubleQuoted(c, line, col, yield)
	}
	if r, _ := c.Peek(); r == '$' {
		if tok, ok := bashTryExpansion(c, line, col); ok {
			return yield(tok)
		}
	}
	if r, _ := c.Peek(); lexer.DefaultIdentStart(r) {
		word := lexer.ScanIdentifier(c, lexer.DefaultIdentContinue)
		return yield(token.Token{Category: bashKeywords.Classify(word), Text: word, Line: line, Column: col})
	}
	if r, _ := c.Peek(); lexer.IsASCIIDigit(r) {
		text, cat := lexer.ScanNumber(c, false)
		return yield(token.Token{Category: cat, Text: text, Line: line, Column: col})
	}
	if r, _ := c.Peek(); containsRune(bashPunct, r) {
		c.Advance()
		return yield(token.Token{Category: token.CategoryPunctuation, Text: string(r), Line: line, Column: col})
	}

	r, _ := c.Advance()
	return yield(token.Token{Category: token.CategoryError, Text: string(r), Line: line, Column: col})
}

// bashScanDoubleQuoted flushes literal runs as String.Interpolated and
// $var / ${var} expansions as String.Interpol, the same shape the
// f-string and template-literal scanners use, without any nested
// re-tokenization since shell expansions aren't full expressions.
func bashScanDoubleQuoted(c *lexer.Cursor, line, col int, yield func(token.Token) bool) bool {
	start := c.Mark()
	c.Advance() // opening quote
	segStart := start
	segLine, segCol := line, col

	flush := func(end int) bool {
		if end > segStart {
			return yield(token.Token{Category: token.CategoryStringInterpolated, Text: c.Slice(segStart, end), Line: segLine, Column: segCol})
		}
		return true
	}

	for {
		r, ok := c.Peek()
		if !ok {
			if c.Mark() > segStart {
				return yield(token.Token{Category: token.CategoryError, Text: c.Slice(segStart, c.Mark()), Line: segLine, Column: segCol})
			}
			return true
		}
		if r == '\\' {
			c.Advance()
			if _, ok := c.Peek(); ok {
				c.Advance()
			}
			continue
		}
		if r == '"' {
			c.Advance()
			return flush(c.Mark())
		}
		if r == '$' {
			if !flush(c.Mark()) {
				return false
			}
			expLine, expCol := c.Line(), c.Column()
			tok, ok := bashTryExpansion(c, expLine, expCol)
			if !ok {
				c.Advance()
				segStart = c.Mark() - 1
				segLine, segCol = expLine, expCol
				continue
			}
			tok.Category = token.CategoryStringInterpol
			if !yield(tok) {
				return false
			}
			segStart = c.Mark()
			segLine, segCol = c.Line(), c.Column()
			continue
		}
		c.Advance()
	}
}

// bashTryExpansion scans $NAME or ${...}. For a $ followed by neither, it
// consumes nothing and reports false.
func bashTryExpansion(c *lexer.Cursor, line, col int) (token.Token, bool) {
	start := c.Mark()
	if r, ok := c.PeekAt(0); !ok || r != '$' {
		return token.Token{}, false
	}
	if next, ok := c.PeekAt(1); ok && next == '{' {
		c.Advance()
		c.Advance()
		for {
			r, ok := c.Peek()
			if !ok {
				return token.Token{Category: token.CategoryError, Text: c.Slice(start, c.Mark()), Line: line, Column: col}, true
			}
			c.Advance()
			if r == '}' {
				break
			}
		}
		return token.Token{Category: token.CategoryNameVariable, Text: c.Slice(start, c.Mark()), Line: line, Column: col}, true
	}
	if next, ok := c.PeekAt(1); ok && (lexer.DefaultIdentStart(next) || lexer.IsASCIIDigit(next)) {
		c.Advance() // $
		for {
			r, ok := c.Peek()
			if !ok || !lexer.DefaultIdentContinue(r) {
				break
			}
			c.Advance()
		}
		return token.Token{Category: token.CategoryNameVariable, Text: c.Slice(start, c.Mark()), Line: line, Column: col}, true
	}
	return token.Token{}, false
}
