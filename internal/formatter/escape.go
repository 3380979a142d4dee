package formatter

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escapeHTML escapes the five characters that matter inside HTML text and
// double-quoted attribute values. It never needs to escape more than that
// since rosettes never emits unquoted attributes.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
