// Package token defines the classified lexical token emitted by every
// language scanner: its category taxonomy, the tag tables stylers key off
// of, and the role table color palettes key off of.
package token

// Category is a leaf value in the closed token taxonomy. The zero value is
// CategoryError so that a Token left uninitialized is treated as the least
// trusted classification rather than silently rendered as plain text.
type Category int

const (
	CategoryError Category = iota
	CategoryText
	CategoryWhitespace
	CategoryPunctuation

	CategoryKeyword
	CategoryKeywordConstant
	CategoryKeywordDeclaration
	CategoryKeywordNamespace
	CategoryKeywordType
	CategoryKeywordReserved

	CategoryName
	CategoryNameFunction
	CategoryNameClass
	CategoryNameDecorator
	CategoryNameBuiltin
	CategoryNameVariable
	CategoryNameAttribute
	CategoryNameTag
	CategoryNameNamespace

	CategoryString
	CategoryStringSingle
	CategoryStringDouble
	CategoryStringTriple
	CategoryStringRaw
	CategoryStringInterpolated
	CategoryStringEscape
	CategoryStringInterpol

	CategoryNumberInteger
	CategoryNumberFloat
	CategoryNumberHex
	CategoryNumberOctal
	CategoryNumberBinary
	CategoryNumberScientific

	CategoryBoolean

	CategoryCommentSingle
	CategoryCommentMultiline
	CategoryCommentDoc

	CategoryOperator
	CategoryOperatorWord

	categoryCount
)

// Role is the semantic group a category belongs to for the purposes of
// color palettes; several categories share a role (all string variants
// share RoleString) so themes stay decoupled from the finer-grained
// category taxonomy.
type Role int

const (
	RoleError Role = iota
	RoleText
	RoleWhitespace
	RolePunctuation
	RoleKeyword
	RoleName
	RoleFunction
	RoleClass
	RoleDecorator
	RoleBuiltin
	RoleVariable
	RoleAttribute
	RoleTag
	RoleNamespace
	RoleString
	RoleStringEscape
	RoleNumber
	RoleBoolean
	RoleCommentPlain
	RoleCommentDoc
	RoleOperator
)

type tagInfo struct {
	short string
	long  string
	role  Role
}

var tags = [categoryCount]tagInfo{
	CategoryError:       {"err", "syntax-error", RoleError},
	CategoryText:        {"x", "syntax-text", RoleText},
	CategoryWhitespace:  {"w", "syntax-whitespace", RoleWhitespace},
	CategoryPunctuation: {"p", "syntax-punctuation", RolePunctuation},

	CategoryKeyword:            {"k", "syntax-keyword", RoleKeyword},
	CategoryKeywordConstant:    {"kc", "syntax-keyword-constant", RoleKeyword},
	CategoryKeywordDeclaration: {"kd", "syntax-keyword-declaration", RoleKeyword},
	CategoryKeywordNamespace:   {"kn", "syntax-keyword-namespace", RoleKeyword},
	CategoryKeywordType:        {"kt", "syntax-keyword-type", RoleKeyword},
	CategoryKeywordReserved:    {"kr", "syntax-keyword-reserved", RoleKeyword},

	CategoryName:          {"n", "syntax-name", RoleName},
	CategoryNameFunction:  {"nf", "syntax-function", RoleFunction},
	CategoryNameClass:     {"nc", "syntax-class", RoleClass},
	CategoryNameDecorator: {"nd", "syntax-decorator", RoleDecorator},
	CategoryNameBuiltin:   {"nb", "syntax-builtin", RoleBuiltin},
	CategoryNameVariable:  {"nv", "syntax-variable", RoleVariable},
	CategoryNameAttribute: {"na", "syntax-attribute", RoleAttribute},
	CategoryNameTag:       {"nt", "syntax-tag", RoleTag},
	CategoryNameNamespace: {"nn", "syntax-namespace", RoleNamespace},

	CategoryString:             {"s", "syntax-string", RoleString},
	CategoryStringSingle:       {"ss", "syntax-string-single", RoleString},
	CategoryStringDouble:       {"sd", "syntax-string-double", RoleString},
	CategoryStringTriple:       {"st", "syntax-string-triple", RoleString},
	CategoryStringRaw:          {"sr", "syntax-string-raw", RoleString},
	CategoryStringInterpolated: {"si", "syntax-string-interpolated", RoleString},
	CategoryStringEscape:       {"se", "syntax-string-escape", RoleStringEscape},
	CategoryStringInterpol:     {"sx", "syntax-string-interpol", RolePunctuation},

	CategoryNumberInteger:    {"mi", "syntax-number-integer", RoleNumber},
	CategoryNumberFloat:      {"mf", "syntax-number-float", RoleNumber},
	CategoryNumberHex:        {"mh", "syntax-number-hex", RoleNumber},
	CategoryNumberOctal:      {"mo", "syntax-number-octal", RoleNumber},
	CategoryNumberBinary:     {"mb", "syntax-number-binary", RoleNumber},
	CategoryNumberScientific: {"me", "syntax-number-scientific", RoleNumber},

	CategoryBoolean: {"bo", "syntax-boolean", RoleBoolean},

	CategoryCommentSingle:    {"c1", "syntax-comment-single", RoleCommentPlain},
	CategoryCommentMultiline: {"cm", "syntax-comment-multiline", RoleCommentPlain},
	CategoryCommentDoc:       {"cd", "syntax-comment-doc", RoleCommentDoc},

	CategoryOperator:     {"o", "syntax-operator", RoleOperator},
	CategoryOperatorWord: {"ow", "syntax-operator-word", RoleOperator},
}

// ShortTag is the compact class name used by the HTML "compatibility"
// class style, e.g. "k", "nf", "s", "mi".
func (c Category) ShortTag() string {
	if c < 0 || c >= categoryCount {
		return tags[CategoryError].short
	}
	return tags[c].short
}

// LongTag is the descriptive class name used by the HTML "semantic" class
// style, e.g. "syntax-keyword", "syntax-function".
func (c Category) LongTag() string {
	if c < 0 || c >= categoryCount {
		return tags[CategoryError].long
	}
	return tags[c].long
}

// Role is the semantic color-palette group this category renders under.
func (c Category) Role() Role {
	if c < 0 || c >= categoryCount {
		return RoleError
	}
	return tags[c].role
}

// IsKeyword reports whether c is any Keyword.* subcategory.
func (c Category) IsKeyword() bool {
	return c >= CategoryKeyword && c <= CategoryKeywordReserved
}

// IsString reports whether c is any Literal.String.* subcategory.
func (c Category) IsString() bool {
	return c >= CategoryString && c <= CategoryStringInterpol
}

// IsNumber reports whether c is any Literal.Number.* subcategory.
func (c Category) IsNumber() bool {
	return c >= CategoryNumberInteger && c <= CategoryNumberScientific
}

// IsComment reports whether c is any Comment.* subcategory.
func (c Category) IsComment() bool {
	return c >= CategoryCommentSingle && c <= CategoryCommentDoc
}

// String renders the category by its long tag, for logging and test
// failure messages.
func (c Category) String() string {
	return c.LongTag()
}
