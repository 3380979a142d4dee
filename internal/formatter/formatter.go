// Package formatter renders a stream of classified tokens into an output
// representation: HTML markup, ANSI-colored terminal text, or the tokens
// themselves unchanged. Every formatter accepts the same iterator shapes
// internal/lexer produces, so the engine can drive any of them identically.
package formatter

import (
	"io"
	"iter"

	"github.com/lumenhl/rosettes/internal/token"
)

// Formatter renders a token stream to an io.Writer. Format takes the full,
// position-carrying token sequence; FormatFast takes the category/text-only
// fast-path sequence for formatters that don't need positions (e.g.
// terminal output, which doesn't do line-aware wrapping).
type Formatter interface {
	Name() string
	Aliases() []string
	SupportsFast() bool
	Format(w io.Writer, tokens iter.Seq[token.Token], cfg FormatConfig, hl HighlightConfig) error
	FormatFast(w io.Writer, tokens iter.Seq2[token.Category, string], cfg FormatConfig) error
	FormatString(tokens iter.Seq[token.Token], cfg FormatConfig, hl HighlightConfig) (string, error)
	FormatStringFast(tokens iter.Seq2[token.Category, string], cfg FormatConfig) (string, error)
}
