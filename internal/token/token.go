package token

// Token is an immutable classified fragment of source text. Text is a
// substring of the code-point sequence the owning lexer was given;
// concatenating Text over every token emitted for an input, in emission
// order, reproduces that input exactly.
//
// Line and Column are 1-based and refer to the position of the token's
// first code point. Column counts code points, not bytes.
type Token struct {
	Category Category
	Text     string
	Line     int
	Column   int
}

// Empty reports whether the token carries no text. A well-formed scanner
// never emits one of these except possibly as a final sentinel.
func (t Token) Empty() bool {
	return len(t.Text) == 0
}
