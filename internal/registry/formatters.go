package registry

import (
	"github.com/lumenhl/rosettes/internal/formatter"
)

// Formatters is the process-wide formatter registry, pre-populated with
// html, terminal, and null.
var Formatters = newFormatterRegistry()

func newFormatterRegistry() *Registry[formatter.Formatter] {
	r := NewRegistry[formatter.Formatter]()

	specs := []FormatterSpec{
		{Name: "html", Aliases: []string{"htm"}, New: func() formatter.Formatter { return formatter.NewHTML() }},
		{Name: "terminal", Aliases: []string{"ansi", "term", "tty"}, New: func() formatter.Formatter { return formatter.NewTerminal() }},
		{Name: "null", Aliases: []string{"identity", "none", "plain"}, New: func() formatter.Formatter { return formatter.NewNull() }},
	}

	for _, spec := range specs {
		r.Register(spec.Name, spec.Aliases, spec.New)
	}
	return r
}

// ResolveFormatter looks up a formatter by name or alias.
func ResolveFormatter(name string) (formatter.Formatter, error) {
	f, ok := Formatters.Resolve(name)
	if !ok {
		return nil, &ErrUnknownFormatter{Name: name}
	}
	return f, nil
}
