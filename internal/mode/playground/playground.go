// Package playground provides an interactive TUI for trying rosettes'
// languages and formatters against a small editable source buffer.
package playground

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumenhl/rosettes"
)

var focusedBorder = lipgloss.Color("212")
var mutedBorder = lipgloss.Color("240")

// FocusPane names which pane currently receives key input.
type FocusPane int

const (
	FocusEditor FocusPane = iota
	FocusPreview
)

var languages = rosettes.Languages()

// Model holds the playground's editor buffer, selected language, and
// rendered preview.
type Model struct {
	editor   textarea.Model
	preview  viewport.Model
	focus    FocusPane
	langIdx  int
	width    int
	height   int
	quitting bool
}

// New builds a playground seeded with a short Go sample.
func New() Model {
	ta := textarea.New()
	ta.Placeholder = "type source code here..."
	ta.SetValue("func add(a, b int) int {\n\treturn a + b\n}\n")
	ta.Focus()

	vp := viewport.New(40, 10)

	m := Model{
		editor:  ta,
		preview: vp,
		focus:   FocusEditor,
		langIdx: indexOf(languages, "golang"),
	}
	m.renderPreview()
	return m
}

func indexOf(items []string, target string) int {
	for i, s := range items {
		if s == target {
			return i
		}
	}
	return 0
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) currentLanguage() string {
	if len(languages) == 0 {
		return "plaintext"
	}
	return languages[m.langIdx%len(languages)]
}

func (m *Model) renderPreview() {
	out, err := rosettes.Highlight(m.editor.Value(),
		rosettes.WithLanguage(m.currentLanguage()),
		rosettes.WithFormatter("terminal"),
	)
	if err != nil {
		m.preview.SetContent("error: " + err.Error())
		return
	}
	m.preview.SetContent(out)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		half := m.width/2 - 4
		m.editor.SetWidth(half)
		m.editor.SetHeight(m.height - 4)
		m.preview.Width = half
		m.preview.Height = m.height - 4
		m.renderPreview()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		if m.focus == FocusEditor {
			m.focus = FocusPreview
			m.editor.Blur()
		} else {
			m.focus = FocusEditor
			m.editor.Focus()
		}
		return m, nil
	case "ctrl+l":
		m.langIdx++
		m.renderPreview()
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == FocusEditor {
		m.editor, cmd = m.editor.Update(msg)
		m.renderPreview()
		return m, cmd
	}
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	editorBorder := mutedBorder
	previewBorder := mutedBorder
	if m.focus == FocusEditor {
		editorBorder = focusedBorder
	} else {
		previewBorder = focusedBorder
	}

	editorPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(editorBorder).
		Render(m.editor.View())

	previewPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(previewBorder).
		Render(m.preview.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, editorPane, "  ", previewPane)
	footer := lipgloss.NewStyle().Foreground(mutedBorder).Render(
		strings.Join([]string{
			"Tab: switch panes",
			"Ctrl+L: cycle language (" + m.currentLanguage() + ")",
			"Ctrl+C: quit",
		}, "  |  "),
	)
	return body + "\n" + footer
}
