package formatter

import (
	"iter"
	"strings"

	"github.com/lumenhl/rosettes/internal/token"
)

// renderedLine is one output line's worth of per-category spans holding raw
// token text (the HTML formatter escapes each span as it writes it), split
// from a token stream at every newline. A token that itself
// contains embedded newlines (e.g. a triple-quoted string) is split across
// lines so each rendered line gets its own <span> run, matching how every
// mainstream HTML highlighter presents multi-line tokens.
type renderedLine struct {
	spans []span
}

type span struct {
	category token.Category
	text     string
}

// splitIntoLines walks tokens once and buckets them into per-source-line
// spans. It intentionally ignores token.Line/Column: it derives line
// boundaries from '\n' bytes in token text, so it works even for a token
// sequence sliced from the middle of a larger input.
func splitIntoLines(tokens iter.Seq[token.Token]) []renderedLine {
	var lines []renderedLine
	cur := renderedLine{}

	flushLine := func() {
		lines = append(lines, cur)
		cur = renderedLine{}
	}

	for tok := range tokens {
		text := tok.Text
		for {
			idx := strings.IndexByte(text, '\n')
			if idx < 0 {
				if text != "" {
					cur.spans = append(cur.spans, span{tok.Category, text})
				}
				break
			}
			if idx > 0 {
				cur.spans = append(cur.spans, span{tok.Category, text[:idx]})
			}
			flushLine()
			text = text[idx+1:]
		}
	}
	// A trailing '\n' already flushed the last real line; don't manufacture
	// a phantom empty line after it unless the whole input was empty.
	if len(cur.spans) > 0 || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}

