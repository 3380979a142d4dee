package lexer

import "github.com/lumenhl/rosettes/internal/token"

// ScanIdentifier consumes the longest run of continue-predicate code
// points following the code point already known to satisfy the start
// predicate (the caller peeked it to decide to call this), and returns the
// consumed text.
func ScanIdentifier(c *Cursor, isContinue func(rune) bool) string {
	start := c.Mark()
	c.Advance() // the identifier-start rune itself
	for {
		r, ok := c.Peek()
		if !ok || !isContinue(r) {
			break
		}
		c.Advance()
	}
	return c.Slice(start, c.Pos())
}

// KeywordTable maps a language's exact keyword and builtin spellings to
// their token category. Classify applies the tie-break spec §4.2
// mandates: an exact keyword-table hit reclassifies the identifier as the
// matched subcategory, a builtin-table hit becomes Name.Builtin, otherwise
// it stays Name.
type KeywordTable struct {
	Keywords map[string]token.Category
	Builtins map[string]struct{}
}

// Classify applies the keyword/builtin/plain-name tie-break to word.
func (k KeywordTable) Classify(word string) token.Category {
	if cat, ok := k.Keywords[word]; ok {
		return cat
	}
	if _, ok := k.Builtins[word]; ok {
		return token.CategoryNameBuiltin
	}
	return token.CategoryName
}
