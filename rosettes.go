// Package rosettes highlights source code in a fixed set of languages,
// producing either fully classified tokens or rendered HTML/terminal
// output. It guarantees linear-time scanning, exact round-tripping of the
// original text, and totality on arbitrary input, including invalid UTF-8.
package rosettes

import (
	"context"
	"iter"

	"github.com/lumenhl/rosettes/internal/engine"
	"github.com/lumenhl/rosettes/internal/formatter"
	"github.com/lumenhl/rosettes/internal/registry"
	"github.com/lumenhl/rosettes/internal/token"
	"github.com/lumenhl/rosettes/internal/tracing"
)

// Category classifies a single token, e.g. Keyword, NameFunction, String.
type Category = token.Category

// Token is one classified span of source text.
type Token = token.Token

// Option configures a Highlight or Tokenize call.
type Option = engine.Option

// FormatConfig carries formatter-wide rendering options.
type FormatConfig = formatter.FormatConfig

// HighlightConfig carries line-level rendering options.
type HighlightConfig = formatter.HighlightConfig

// ClassStyle picks the HTML class-naming convention.
type ClassStyle = formatter.ClassStyle

const (
	ClassStyleSemantic      = formatter.ClassStyleSemantic
	ClassStyleCompatibility = formatter.ClassStyleCompatibility
)

var (
	WithLanguage        = engine.WithLanguage
	WithFormatter       = engine.WithFormatter
	WithFormatConfig    = engine.WithFormatConfig
	WithHighlightConfig = engine.WithHighlightConfig
	WithFast            = engine.WithFast
	WithRange           = engine.WithRange
)

// Highlight tokenizes and renders input in one call. See Option for the
// available configuration.
func Highlight(input string, opts ...Option) (string, error) {
	return engine.Highlight(input, opts...)
}

// Tokenize returns the classified token sequence for input without
// rendering it.
func Tokenize(input string, opts ...Option) (iter.Seq[Token], error) {
	return engine.Tokenize(input, opts...)
}

// TokenizeFast is Tokenize's position-free counterpart, for callers who
// only need category and text.
func TokenizeFast(input string, opts ...Option) (iter.Seq2[Category, string], error) {
	return engine.TokenizeFast(input, opts...)
}

// Languages lists every registered language's canonical name.
func Languages() []string { return registry.Lexers.Names() }

// Formatters lists every registered formatter's canonical name.
func Formatters() []string { return registry.Formatters.Names() }

// BatchItem pairs an input with the options to render it with, for
// HighlightMany/TokenizeMany.
type BatchItem = engine.Item

// BatchResult pairs one batch item's rendered output with its error.
type BatchResult = engine.Result

// TracingProvider wraps an OpenTelemetry TracerProvider for batch calls.
// Pass nil to run without tracing.
type TracingProvider = tracing.Provider

// NewTracingProvider builds a TracingProvider; disabled configs return a
// genuine no-op tracer with zero overhead.
func NewTracingProvider(cfg tracing.Config) (*TracingProvider, error) {
	return tracing.NewProvider(cfg)
}

// HighlightMany renders a batch of inputs concurrently, preserving input
// order in the result regardless of completion order.
func HighlightMany(ctx context.Context, provider *TracingProvider, items []BatchItem) []BatchResult {
	return engine.HighlightMany(ctx, provider, items)
}

// TokenizeMany tokenizes a batch of inputs concurrently, returning one
// error per item (nil on success).
func TokenizeMany(ctx context.Context, provider *TracingProvider, items []BatchItem) []error {
	return engine.TokenizeMany(ctx, provider, items)
}
