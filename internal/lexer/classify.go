package lexer

import "unicode"

// IsASCIISpace reports whether r is a horizontal whitespace character that
// participates in run-collapsing (space or tab). Newlines are handled
// separately since each one is its own token (see ScanNewline).
func IsASCIISpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// IsNewline reports whether r begins a line break.
func IsNewline(r rune) bool {
	return r == '\n' || r == '\r'
}

// IsASCIIDigit reports whether r is 0-9.
func IsASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsASCIILetter reports whether r is an ASCII letter.
func IsASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsHexDigit reports whether r is a valid hexadecimal digit.
func IsHexDigit(r rune) bool {
	return IsASCIIDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// IsOctalDigit reports whether r is 0-7.
func IsOctalDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

// IsBinaryDigit reports whether r is 0 or 1.
func IsBinaryDigit(r rune) bool {
	return r == '0' || r == '1'
}

// DefaultIdentStart is the identifier-start predicate most languages use:
// ASCII letter or underscore. Languages needing broader Unicode identifier
// support pass a different predicate to ScanIdentifier; DefaultIdentStart
// itself stays ASCII-only per spec §4.2's "Unicode identifier support is
// optional per language."
func DefaultIdentStart(r rune) bool {
	return IsASCIILetter(r) || r == '_'
}

// DefaultIdentContinue is the identifier-continue predicate most languages
// use: identifier-start or digit.
func DefaultIdentContinue(r rune) bool {
	return DefaultIdentStart(r) || IsASCIIDigit(r)
}

// UnicodeIdentStart allows any letter Unicode considers a letter, plus
// underscore, for languages that declare Unicode identifier support.
func UnicodeIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// UnicodeIdentContinue allows any Unicode letter or digit, plus underscore.
func UnicodeIdentContinue(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
