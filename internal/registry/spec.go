package registry

import (
	"github.com/lumenhl/rosettes/internal/formatter"
	"github.com/lumenhl/rosettes/internal/lexer"
)

// LexerSpec describes a registrable language: a canonical name, its
// aliases, and a factory. The factory is called at most once per process,
// the first time the language is resolved, and the result is memoized.
type LexerSpec struct {
	Name    string
	Aliases []string
	New     func() lexer.Lexer
}

// FormatterSpec is LexerSpec's counterpart for output formatters.
type FormatterSpec struct {
	Name    string
	Aliases []string
	New     func() formatter.Formatter
}
