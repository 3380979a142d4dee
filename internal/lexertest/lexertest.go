// Package lexertest holds the property-based invariant checks every
// registered language scanner must satisfy (spec §8's "universal
// invariants"). It is shared, non-test-file code — like the standard
// library's httptest — so each language's own _test.go can call
// CheckInvariants with a handful of pgregory.net/rapid generators without
// duplicating the check logic per language.
package lexertest

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/lumenhl/rosettes/internal/lexer"
	"github.com/lumenhl/rosettes/internal/token"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// CheckInvariants runs spec §8's universal invariants against lx for
// random printable-ASCII fragments (with tabs and newlines) and random byte
// soup, using pgregory.net/rapid. Round-trip failures report a
// character-level diff via go-diff so a failing case is readable instead of
// a wall of runes.
func CheckInvariants(t *testing.T, lx lexer.Lexer) {
	t.Helper()

	t.Run("round-trip and position invariants", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			input := rapid.StringMatching(`[ -~\n\t]{0,80}`).Draw(rt, "input")
			checkOne(rt, lx, input)
		})
	})

	t.Run("total on arbitrary bytes", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			raw := rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(rt, "raw")
			// Lossy-decode exactly the way Cursor does, so the invariant is
			// checked against what the scanner actually sees.
			input := strings.ToValidUTF8(string(raw), string(utf8.RuneError))
			checkOne(rt, lx, input)
		})
	})
}

// checkOne accepts any testing.TB-like object with Fatalf so it works from
// both rapid's *rapid.T and a plain *testing.T call site.
type fataler interface {
	Fatalf(format string, args ...any)
}

func checkOne(t fataler, lx lexer.Lexer, input string) {
	runes := []rune(input)
	var rebuilt strings.Builder
	var prevLine, prevCol, prevBreaks int
	var prevEndsInNewline bool
	first := true

	for tok := range lx.Tokenize(input, 0, len(runes)) {
		if tok.Text == "" {
			t.Fatalf("empty token emitted: %+v", tok)
		}
		if tok.Line < 1 || tok.Column < 1 {
			t.Fatalf("invalid position: %+v", tok)
		}
		if !first {
			if tok.Line == prevLine && !prevEndsInNewline {
				if tok.Column < prevCol {
					t.Fatalf("non-monotonic column: prev col=%d, tok=%+v", prevCol, tok)
				}
			}
			// A token may span several lines (a triple-quoted string, a
			// string with embedded newlines): the next token starts on the
			// line after the last break inside it.
			if prevEndsInNewline && tok.Line != prevLine+prevBreaks {
				t.Fatalf("line accounting broke after newline: prev line=%d, breaks=%d, tok=%+v", prevLine, prevBreaks, tok)
			}
			if prevEndsInNewline && tok.Column != 1 {
				t.Fatalf("column did not reset after newline: %+v", tok)
			}
		}
		rebuilt.WriteString(tok.Text)
		prevLine, prevCol = tok.Line, tok.Column
		prevBreaks = strings.Count(tok.Text, "\n") + strings.Count(tok.Text, "\r") - strings.Count(tok.Text, "\r\n")
		prevEndsInNewline = strings.HasSuffix(tok.Text, "\n") || strings.HasSuffix(tok.Text, "\r")
		first = false
	}

	got := rebuilt.String()
	want := string(runes)
	if got != want {
		t.Fatalf("round-trip mismatch for %s:\n%s", lx.Name(), unifiedDiff(want, got))
	}
}

// CheckFastMatchesFull asserts TokenizeFast produces the same
// (category, text) sequence as Tokenize with positions stripped, since
// every exemplar in internal/languages derives one from the other.
func CheckFastMatchesFull(t *testing.T, lx lexer.Lexer, input string) {
	t.Helper()
	runes := []rune(input)

	var full []token.Token
	for tok := range lx.Tokenize(input, 0, len(runes)) {
		full = append(full, tok)
	}

	var fastCats []token.Category
	var fastText []string
	for cat, text := range lx.TokenizeFast(input, 0, len(runes)) {
		fastCats = append(fastCats, cat)
		fastText = append(fastText, text)
	}

	require.Len(t, fastCats, len(full))
	for i, tok := range full {
		require.Equal(t, tok.Category, fastCats[i])
		require.Equal(t, tok.Text, fastText[i])
	}
}
