package registry

import (
	"github.com/lumenhl/rosettes/internal/languages"
	"github.com/lumenhl/rosettes/internal/lexer"
)

// Lexers is the process-wide language registry, pre-populated with every
// exemplar scanner. It is safe to call Resolve on from many goroutines
// concurrently, including the same language name from all of them.
var Lexers = newLexerRegistry()

func newLexerRegistry() *Registry[lexer.Lexer] {
	r := NewRegistry[lexer.Lexer]()

	specs := []LexerSpec{
		{Name: "plaintext", Aliases: []string{"text", "plain"}, New: func() lexer.Lexer { return lexer.NewPlaintext() }},
		{Name: "python", Aliases: []string{"py", "py3"}, New: func() lexer.Lexer { return languages.NewPython() }},
		{Name: "golang", Aliases: []string{"go"}, New: func() lexer.Lexer { return languages.NewGolang() }},
		{Name: "javascript", Aliases: []string{"js", "node"}, New: func() lexer.Lexer { return languages.NewJavascript() }},
		{Name: "json", Aliases: []string{"jsonc"}, New: func() lexer.Lexer { return languages.NewJSON() }},
		{Name: "rust", Aliases: []string{"rs"}, New: func() lexer.Lexer { return languages.NewRust() }},
		{Name: "clang", Aliases: []string{"c", "cpp", "c++", "cc", "h", "hpp"}, New: func() lexer.Lexer { return languages.NewClang() }},
		{Name: "bash", Aliases: []string{"sh", "shell", "zsh"}, New: func() lexer.Lexer { return languages.NewBash() }},
	}

	for _, spec := range specs {
		r.Register(spec.Name, spec.Aliases, spec.New)
	}
	return r
}

// ResolveLexer looks up a lexer by name or alias.
func ResolveLexer(name string) (lexer.Lexer, error) {
	lx, ok := Lexers.Resolve(name)
	if !ok {
		return nil, &ErrUnknownLanguage{Name: name}
	}
	return lx, nil
}
