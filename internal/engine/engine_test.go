package engine

import (
	"context"
	"testing"

	"github.com/lumenhl/rosettes/internal/formatter"
	"github.com/stretchr/testify/require"
)

func TestHighlightHTMLEmitsSemanticClassesAndContainer(t *testing.T) {
	out, err := Highlight("def f(): pass\n", WithLanguage("python"), WithFormatter("html"))
	require.NoError(t, err)
	require.Contains(t, out, "syntax-keyword")
	require.Contains(t, out, "rosettes")
}

func TestHighlightNullIsIdentity(t *testing.T) {
	src := "x = 1 + 2\n"
	out, err := Highlight(src, WithLanguage("python"), WithFormatter("null"))
	require.NoError(t, err)
	require.Equal(t, src, out)
}

func TestHighlightUnknownLanguageErrors(t *testing.T) {
	_, err := Highlight("x", WithLanguage("cobol"))
	require.Error(t, err)
}

func TestHighlightUnknownFormatterErrors(t *testing.T) {
	_, err := Highlight("x", WithLanguage("python"), WithFormatter("pdf"))
	require.Error(t, err)
}

func TestFastPathUsedWithoutLineFeatures(t *testing.T) {
	out, err := Highlight("x = 1\n", WithLanguage("python"), WithFormatter("terminal"))
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestHighlightManyPreservesOrder(t *testing.T) {
	items := make([]Item, 0, 20)
	for i := 0; i < 20; i++ {
		lang := "python"
		if i%2 == 0 {
			lang = "golang"
		}
		items = append(items, Item{Input: "x = 1\n", Opts: []Option{WithLanguage(lang), WithFormatter("null")}})
	}
	results := HighlightMany(context.Background(), nil, items)
	require.Len(t, results, 20)
	for _, r := range results {
		require.NoError(t, r.Err)
		require.Equal(t, "x = 1\n", r.Output)
	}
}

func TestHighlightManySequentialBelowThreshold(t *testing.T) {
	items := []Item{
		{Input: "a\n", Opts: []Option{WithLanguage("plaintext"), WithFormatter("null")}},
		{Input: "b\n", Opts: []Option{WithLanguage("plaintext"), WithFormatter("null")}},
	}
	results := HighlightMany(context.Background(), nil, items)
	require.Equal(t, "a\n", results[0].Output)
	require.Equal(t, "b\n", results[1].Output)
}

func TestWithRangeRestrictsTokenization(t *testing.T) {
	src := "abcdef"
	seq, err := Tokenize(src, WithLanguage("plaintext"), WithRange(2, 4))
	require.NoError(t, err)
	var got string
	for tok := range seq {
		got += tok.Text
	}
	require.Equal(t, "cd", got)
}

func TestFormatConfigContainerClassPropagates(t *testing.T) {
	out, err := Highlight("x\n", WithLanguage("plaintext"), WithFormatter("html"),
		WithFormatConfig(formatter.FormatConfig{ContainerClass: "custom"}))
	require.NoError(t, err)
	require.Contains(t, out, `class="custom"`)
}
