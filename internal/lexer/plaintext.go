package lexer

import (
	"iter"

	"github.com/lumenhl/rosettes/internal/token"
)

// Plaintext is the mandatory always-present fallback lexer spec §7
// requires: it emits one Text token per line plus one Whitespace token
// per newline, trivially satisfying every scanner invariant (round-trip,
// monotonic position, totality) for any input.
type Plaintext struct{}

// NewPlaintext constructs the plaintext lexer.
func NewPlaintext() *Plaintext { return &Plaintext{} }

func (p *Plaintext) Name() string      { return "plaintext" }
func (p *Plaintext) Aliases() []string { return []string{"text", "plain"} }

func (p *Plaintext) Tokenize(input string, start, end int) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		c := NewCursor(input, start, end)
		for !c.AtEnd() {
			nlLine, nlCol := c.Line(), c.Column()
			if nl, ok := ScanNewline(c); ok {
				if !yield(token.Token{Category: token.CategoryWhitespace, Text: nl, Line: nlLine, Column: nlCol}) {
					return
				}
				continue
			}
			line, col := c.Line(), c.Column()
			lineStart := c.Mark()
			for {
				r, ok := c.Peek()
				if !ok || IsNewline(r) {
					break
				}
				c.Advance()
			}
			text := c.Slice(lineStart, c.Pos())
			if text == "" {
				continue
			}
			if !yield(token.Token{Category: token.CategoryText, Text: text, Line: line, Column: col}) {
				return
			}
		}
	}
}

func (p *Plaintext) TokenizeFast(input string, start, end int) iter.Seq2[token.Category, string] {
	return FastFromFull(p.Tokenize(input, start, end))
}
