package formatter

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/lumenhl/rosettes/internal/token"
)

// HTML renders tokens as <span class="..."> markup wrapped in a <pre><code>
// block, in the two class-name flavors ClassStyle chooses between, with
// optional per-line highlighting and a line-number gutter.
type HTML struct{}

func NewHTML() *HTML { return &HTML{} }

func (h *HTML) Name() string       { return "html" }
func (h *HTML) Aliases() []string  { return []string{"htm"} }
func (h *HTML) SupportsFast() bool { return true }

func (h *HTML) classFor(cat token.Category, cfg FormatConfig) string {
	if cfg.ClassStyle == ClassStyleCompatibility {
		return cat.ShortTag()
	}
	return cat.LongTag()
}

func (h *HTML) Format(w io.Writer, tokens iter.Seq[token.Token], cfg FormatConfig, hl HighlightConfig) error {
	lines := splitIntoLines(tokens)
	return h.renderLines(w, lines, cfg, hl)
}

func (h *HTML) FormatFast(w io.Writer, tokens iter.Seq2[token.Category, string], cfg FormatConfig) error {
	full := func(yield func(token.Token) bool) {
		for cat, text := range tokens {
			if !yield(token.Token{Category: cat, Text: text}) {
				return
			}
		}
	}
	return h.Format(w, full, cfg, HighlightConfig{})
}

func (h *HTML) FormatString(tokens iter.Seq[token.Token], cfg FormatConfig, hl HighlightConfig) (string, error) {
	var buf bytes.Buffer
	if err := h.Format(&buf, tokens, cfg, hl); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (h *HTML) FormatStringFast(tokens iter.Seq2[token.Category, string], cfg FormatConfig) (string, error) {
	var buf bytes.Buffer
	if err := h.FormatFast(&buf, tokens, cfg); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (h *HTML) renderLines(w io.Writer, lines []renderedLine, cfg FormatConfig, hl HighlightConfig) error {
	var b strings.Builder

	containerClass := cfg.ContainerClass
	if containerClass == "" {
		containerClass = "rosettes"
	}
	fmt.Fprintf(&b, `<div class="%s"`, escapeHTML(containerClass))
	if cfg.DataLanguage != "" {
		fmt.Fprintf(&b, ` data-language="%s"`, escapeHTML(cfg.DataLanguage))
	}
	b.WriteString(">\n<pre><code>")

	lineClass := hl.LineClass
	if lineClass == "" {
		lineClass = "line"
	}
	highlightedClass := hl.HighlightedLineClass
	if highlightedClass == "" {
		highlightedClass = "line-highlighted"
	}
	lineNumberClass := hl.LineNumberClass
	if lineNumberClass == "" {
		lineNumberClass = "line-number"
	}

	for i, line := range lines {
		lineNo := i + 1
		classes := lineClass
		if hl.isHighlighted(lineNo) {
			classes = lineClass + " " + highlightedClass
		}
		fmt.Fprintf(&b, `<span class="%s">`, escapeHTML(classes))
		if hl.ShowLineNumbers {
			fmt.Fprintf(&b, `<span class="%s">%s</span>`, escapeHTML(lineNumberClass), strconv.Itoa(lineNo))
		}
		for _, sp := range line.spans {
			if sp.category == token.CategoryWhitespace || sp.category == token.CategoryText {
				b.WriteString(escapeHTML(sp.text))
				continue
			}
			fmt.Fprintf(&b, `<span class="%s">%s</span>`, escapeHTML(h.classFor(sp.category, cfg)), escapeHTML(sp.text))
		}
		b.WriteString("</span>")
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}

	b.WriteString("</code></pre>\n</div>")

	_, err := io.WriteString(w, b.String())
	return err
}
