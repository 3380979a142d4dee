// Package engine is rosettes' façade: it drives a registered lexer with a
// registered formatter and applies the fast/slow dispatch rule (skip
// position tracking whenever the caller doesn't need line/column data).
package engine

import (
	"iter"

	"github.com/lumenhl/rosettes/internal/formatter"
	"github.com/lumenhl/rosettes/internal/lexer"
	"github.com/lumenhl/rosettes/internal/log"
	"github.com/lumenhl/rosettes/internal/registry"
	"github.com/lumenhl/rosettes/internal/token"
)

// Options collects every knob Highlight/Tokenize accept, built up through
// functional Option values so new options never break existing call sites.
type Options struct {
	Language   string
	Formatter  string
	Format     formatter.FormatConfig
	Highlight  formatter.HighlightConfig
	Fast       bool
	RangeStart int
	RangeEnd   int
	hasRange   bool
}

// Option mutates an in-progress Options during Highlight/Tokenize.
type Option func(*Options)

// WithLanguage selects the language to tokenize with, by name or alias.
func WithLanguage(name string) Option {
	return func(o *Options) { o.Language = name }
}

// WithFormatter selects the output formatter by name or alias. Defaults to
// "html".
func WithFormatter(name string) Option {
	return func(o *Options) { o.Formatter = name }
}

// WithFormatConfig sets container/class-style options passed to the
// formatter.
func WithFormatConfig(cfg formatter.FormatConfig) Option {
	return func(o *Options) { o.Format = cfg }
}

// WithHighlightConfig sets line-highlighting and gutter options; only
// honored by formatters that support line-aware rendering.
func WithHighlightConfig(cfg formatter.HighlightConfig) Option {
	return func(o *Options) { o.Highlight = cfg }
}

// WithFast forces the position-free fast path even when the formatter
// would otherwise use the full one. Useful for terminal output, which
// never needs line/column data.
func WithFast(fast bool) Option {
	return func(o *Options) { o.Fast = fast }
}

// WithRange restricts tokenization to the code-point range [start, end)
// instead of the whole input, per the incremental-highlighting use case.
func WithRange(start, end int) Option {
	return func(o *Options) { o.RangeStart, o.RangeEnd, o.hasRange = start, end, true }
}

func newOptions(opts []Option) Options {
	o := Options{Formatter: "html"}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func resolveRange(o Options, runeLen int) (int, int) {
	if !o.hasRange {
		return 0, runeLen
	}
	start, end := o.RangeStart, o.RangeEnd
	if start < 0 {
		start = 0
	}
	if end > runeLen {
		end = runeLen
	}
	if end < start {
		end = start
	}
	return start, end
}

// Highlight tokenizes input with the named language and renders it through
// the named formatter, returning the formatted string. The fast path is
// used automatically whenever the formatter reports it doesn't need
// positions and the caller hasn't asked for line highlighting (which needs
// to know where lines start).
func Highlight(input string, opts ...Option) (string, error) {
	o := newOptions(opts)

	lx, err := registry.ResolveLexer(o.Language)
	if err != nil {
		return "", err
	}
	f, err := registry.ResolveFormatter(o.Formatter)
	if err != nil {
		return "", err
	}

	runeLen := len([]rune(input))
	start, end := resolveRange(o, runeLen)

	useFast := f.SupportsFast() && (o.Fast || (len(o.Highlight.HighlightedLines) == 0 && !o.Highlight.ShowLineNumbers))
	log.Debug(log.CatEngine, "highlight", "language", o.Language, "formatter", o.Formatter, "fast", useFast)

	if useFast {
		return f.FormatStringFast(lx.TokenizeFast(input, start, end), o.Format)
	}
	return f.FormatString(lx.Tokenize(input, start, end), o.Format, o.Highlight)
}

// Tokenize returns the raw classified token sequence for input without any
// formatting, for callers that want to build their own renderer.
func Tokenize(input string, opts ...Option) (iter.Seq[token.Token], error) {
	o := newOptions(opts)
	lx, err := registry.ResolveLexer(o.Language)
	if err != nil {
		return nil, err
	}
	runeLen := len([]rune(input))
	start, end := resolveRange(o, runeLen)
	return lx.Tokenize(input, start, end), nil
}

// TokenizeFast is Tokenize's category/text-only counterpart.
func TokenizeFast(input string, opts ...Option) (iter.Seq2[token.Category, string], error) {
	o := newOptions(opts)
	lx, err := registry.ResolveLexer(o.Language)
	if err != nil {
		return nil, err
	}
	runeLen := len([]rune(input))
	start, end := resolveRange(o, runeLen)
	return lx.TokenizeFast(input, start, end), nil
}

// Lexer exposes the resolved lexer.Lexer for a language name, letting
// advanced callers bypass Options entirely.
func Lexer(name string) (lexer.Lexer, error) {
	return registry.ResolveLexer(name)
}
