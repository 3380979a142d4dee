package lexer

import "sort"

// OperatorTable holds a language's operator spellings, longest first, so
// Match can do a greedy longest-prefix match per spec §4.2.
type OperatorTable struct {
	sorted []string
}

// NewOperatorTable builds an OperatorTable from an unordered operator list.
func NewOperatorTable(ops []string) OperatorTable {
	sorted := append([]string(nil), ops...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	return OperatorTable{sorted: sorted}
}

// Match consumes the longest operator in the table starting at the
// cursor, if any, and returns its text. ok is false if no operator in the
// table matches at the current position, and the cursor is left
// untouched.
func (t OperatorTable) Match(c *Cursor) (string, bool) {
	for _, op := range t.sorted {
		if matchesAt(c, []rune(op)) {
			for range op {
				c.Advance()
			}
			return op, true
		}
	}
	return "", false
}
