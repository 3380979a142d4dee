package formatter

import (
	"bytes"
	"io"
	"iter"

	"github.com/charmbracelet/lipgloss"
	"github.com/lumenhl/rosettes/internal/token"
	"github.com/muesli/termenv"
)

// Terminal renders tokens as ANSI-escaped text for direct display in a
// shell. It precomputes one lipgloss.Style per role, not per category, so
// two categories that map to the same role (all Literal.String.* variants,
// for instance) render identically without a 39-entry style table.
type Terminal struct {
	renderer *lipgloss.Renderer
	styles   [roleCount]lipgloss.Style
}

const roleCount = int(token.RoleOperator) + 1

// NewTerminal builds a Terminal formatter using termenv's environment-
// detected color profile (respects NO_COLOR, CI, and terminfo).
func NewTerminal() *Terminal {
	return NewTerminalWithProfile(termenv.ColorProfile())
}

// NewTerminalWithProfile lets callers force a specific profile (e.g.
// termenv.Ascii for --no-color, or termenv.TrueColor for CI logs that
// support it) instead of relying on environment detection.
func NewTerminalWithProfile(profile termenv.Profile) *Terminal {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	t := &Terminal{renderer: r}
	t.styles = defaultRoleStyles(r)
	return t
}

func (t *Terminal) Name() string       { return "terminal" }
func (t *Terminal) Aliases() []string  { return []string{"ansi", "term", "tty"} }
func (t *Terminal) SupportsFast() bool { return true }

func (t *Terminal) styleFor(cat token.Category) lipgloss.Style {
	role := cat.Role()
	if int(role) < 0 || int(role) >= roleCount {
		return t.styles[token.RoleError]
	}
	return t.styles[role]
}

func (t *Terminal) Format(w io.Writer, tokens iter.Seq[token.Token], cfg FormatConfig, hl HighlightConfig) error {
	for tok := range tokens {
		if _, err := io.WriteString(w, t.styleFor(tok.Category).Render(tok.Text)); err != nil {
			return err
		}
	}
	return nil
}

func (t *Terminal) FormatFast(w io.Writer, tokens iter.Seq2[token.Category, string], cfg FormatConfig) error {
	for cat, text := range tokens {
		if _, err := io.WriteString(w, t.styleFor(cat).Render(text)); err != nil {
			return err
		}
	}
	return nil
}

func (t *Terminal) FormatString(tokens iter.Seq[token.Token], cfg FormatConfig, hl HighlightConfig) (string, error) {
	var buf bytes.Buffer
	if err := t.Format(&buf, tokens, cfg, hl); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (t *Terminal) FormatStringFast(tokens iter.Seq2[token.Category, string], cfg FormatConfig) (string, error) {
	var buf bytes.Buffer
	if err := t.FormatFast(&buf, tokens, cfg); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// defaultRoleStyles is rosettes' built-in dark-background palette. It is
// intentionally small and unthemed beyond bold/faint accents, and nothing
// overrides individual roles (internal/config's theme table is not applied).
func defaultRoleStyles(r *lipgloss.Renderer) [roleCount]lipgloss.Style {
	var s [roleCount]lipgloss.Style
	s[token.RoleError] = r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	s[token.RoleText] = r.NewStyle()
	s[token.RoleWhitespace] = r.NewStyle()
	s[token.RolePunctuation] = r.NewStyle().Foreground(lipgloss.Color("7"))
	s[token.RoleKeyword] = r.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	s[token.RoleName] = r.NewStyle()
	s[token.RoleFunction] = r.NewStyle().Foreground(lipgloss.Color("12"))
	s[token.RoleClass] = r.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	s[token.RoleDecorator] = r.NewStyle().Foreground(lipgloss.Color("11"))
	s[token.RoleBuiltin] = r.NewStyle().Foreground(lipgloss.Color("12"))
	s[token.RoleVariable] = r.NewStyle().Foreground(lipgloss.Color("15"))
	s[token.RoleAttribute] = r.NewStyle().Foreground(lipgloss.Color("11"))
	s[token.RoleTag] = r.NewStyle().Foreground(lipgloss.Color("13"))
	s[token.RoleNamespace] = r.NewStyle().Foreground(lipgloss.Color("13"))
	s[token.RoleString] = r.NewStyle().Foreground(lipgloss.Color("10"))
	s[token.RoleStringEscape] = r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	s[token.RoleNumber] = r.NewStyle().Foreground(lipgloss.Color("6"))
	s[token.RoleBoolean] = r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	s[token.RoleCommentPlain] = r.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	s[token.RoleCommentDoc] = r.NewStyle().Foreground(lipgloss.Color("8")).Italic(true).Bold(true)
	s[token.RoleOperator] = r.NewStyle().Foreground(lipgloss.Color("7"))
	return s
}
