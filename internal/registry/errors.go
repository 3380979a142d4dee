package registry

import "fmt"

// ErrUnknownLanguage is returned when a name or alias doesn't match any
// registered LexerSpec.
type ErrUnknownLanguage struct {
	Name string
}

func (e *ErrUnknownLanguage) Error() string {
	return fmt.Sprintf("rosettes: unknown language %q", e.Name)
}

// ErrUnknownFormatter is returned when a name or alias doesn't match any
// registered FormatterSpec.
type ErrUnknownFormatter struct {
	Name string
}

func (e *ErrUnknownFormatter) Error() string {
	return fmt.Sprintf("rosettes: unknown formatter %q", e.Name)
}
