package formatter

import (
	"bytes"
	"io"
	"iter"

	"github.com/lumenhl/rosettes/internal/token"
)

// Null writes back exactly the original text with no markup at all. It
// exists to prove the round-trip invariant end to end through the
// formatter layer, not just the lexer, and to give callers a formatter
// that's a true identity function when they only want validated tokens.
type Null struct{}

func NewNull() *Null { return &Null{} }

func (n *Null) Name() string       { return "null" }
func (n *Null) Aliases() []string  { return []string{"identity", "none", "plain"} }
func (n *Null) SupportsFast() bool { return true }

func (n *Null) Format(w io.Writer, tokens iter.Seq[token.Token], cfg FormatConfig, hl HighlightConfig) error {
	for tok := range tokens {
		if _, err := io.WriteString(w, tok.Text); err != nil {
			return err
		}
	}
	return nil
}

func (n *Null) FormatFast(w io.Writer, tokens iter.Seq2[token.Category, string], cfg FormatConfig) error {
	for _, text := range tokens {
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
	}
	return nil
}

func (n *Null) FormatString(tokens iter.Seq[token.Token], cfg FormatConfig, hl HighlightConfig) (string, error) {
	var buf bytes.Buffer
	if err := n.Format(&buf, tokens, cfg, hl); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (n *Null) FormatStringFast(tokens iter.Seq2[token.Category, string], cfg FormatConfig) (string, error) {
	var buf bytes.Buffer
	if err := n.FormatFast(&buf, tokens, cfg); err != nil {
		return "", err
	}
	return buf.String(), nil
}
