// Package lexer holds the scanning primitives shared by every per-language
// state machine: the code-point cursor, character classification, and the
// reusable identifier/number/string/comment sub-scanners. Concrete
// languages live in internal/languages and are built entirely out of the
// pieces in this package.
package lexer

import (
	"iter"

	"github.com/lumenhl/rosettes/internal/token"
)

// Config is reserved for per-lexer tuning. It carries no fields, and no
// lexer constructor or Lexer method takes it.
type Config struct{}

// Lexer is the contract every per-language scanner implements. Every
// implementation is a single-pass finite automaton over the input's code
// points with at most one code point of lookahead: no regular expressions
// in the hot path, no backtracking, O(1) work per character.
//
// The iterators returned by Tokenize and TokenizeFast build a fresh cursor
// each time they are ranged over, so ranging over one again rescans the
// input from start.
type Lexer interface {
	// Tokenize emits fully classified tokens, with correct Line/Column,
	// for the code points of input from index start to end (rune indices,
	// not byte offsets).
	Tokenize(input string, start, end int) iter.Seq[token.Token]

	// TokenizeFast emits (category, text) pairs for the same code-point
	// range without position tracking, for formatters that don't need it.
	TokenizeFast(input string, start, end int) iter.Seq2[token.Category, string]

	// Name is the lexer's canonical registry name.
	Name() string

	// Aliases are additional names that resolve to this lexer.
	Aliases() []string
}

// FastFromFull derives a TokenizeFast implementation from a Tokenize
// implementation by discarding position fields. This keeps every exemplar
// scanner in internal/languages single-sourced: the state machine is
// written once, in Tokenize, and the fast path is a thin projection of it.
// A scanner with cheap position bookkeeping can safely share this; one
// where position tracking dominates cost should implement TokenizeFast
// directly instead (none of the exemplars need to).
func FastFromFull(tokens iter.Seq[token.Token]) iter.Seq2[token.Category, string] {
	return func(yield func(token.Category, string) bool) {
		for tok := range tokens {
			if !yield(tok.Category, tok.Text) {
				return
			}
		}
	}
}
