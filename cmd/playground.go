package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lumenhl/rosettes/internal/mode/playground"
)

var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Interactive playground for trying languages and formatters",
	Long:  "Playground opens a split-pane TUI with an editable source buffer on the left and a live-rendered preview on the right.",
	RunE:  runPlayground,
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
}

func runPlayground(cmd *cobra.Command, args []string) error {
	// Probe the terminal background before bubbletea starts its own
	// input loop; querying it after risks racing bubbletea's OSC-11
	// handshake and eating the reply meant for us.
	lipgloss.HasDarkBackground()

	model := playground.New()
	p := tea.NewProgram(&model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running playground: %w", err)
	}
	return nil
}
