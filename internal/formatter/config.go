package formatter

// ClassStyle picks between compact Pygments-style short class names
// ("k", "nf", "s") and the more legible semantic names rosettes' own
// stylesheet ships ("syntax-keyword", "syntax-function"). Neither the
// original spec's data model nor its prose settles this explicitly for
// every formatter; ClassStyle resolves it as an explicit, documented
// choice rather than a hidden default (see DESIGN.md).
type ClassStyle int

const (
	ClassStyleSemantic ClassStyle = iota
	ClassStyleCompatibility
)

// FormatConfig carries formatter-wide rendering options that apply
// regardless of which lines, if any, are highlighted.
type FormatConfig struct {
	ContainerClass string
	DataLanguage   string
	ClassStyle     ClassStyle
}

// HighlightConfig controls line-level presentation: which lines get a
// highlight class, whether a line-number gutter is rendered, and the CSS
// classes used for each. Only meaningful for formatters that support
// line-aware rendering (currently HTML).
type HighlightConfig struct {
	HighlightedLines     map[int]bool
	ShowLineNumbers      bool
	HighlightedLineClass string
	LineNumberClass      string
	LineClass            string
}

func (h HighlightConfig) isHighlighted(line int) bool {
	if h.HighlightedLines == nil {
		return false
	}
	return h.HighlightedLines[line]
}
