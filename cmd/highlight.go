package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumenhl/rosettes"
)

var (
	highlightLanguage  string
	highlightFormatter string
	highlightClass     string
	highlightLines     []int
	highlightGutter    bool
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [file]",
	Short: "Highlight a file or stdin",
	Long:  "Highlight tokenizes and renders a file (or stdin, if no file is given) using the language and formatter selected by flags.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHighlight,
}

func init() {
	highlightCmd.Flags().StringVarP(&highlightLanguage, "language", "l", "", "language to highlight as (required)")
	highlightCmd.Flags().StringVarP(&highlightFormatter, "formatter", "f", "", "output formatter (default from config)")
	highlightCmd.Flags().StringVar(&highlightClass, "container-class", "", "override the HTML container class")
	highlightCmd.Flags().IntSliceVar(&highlightLines, "highlight-line", nil, "line number to mark as highlighted (repeatable)")
	highlightCmd.Flags().BoolVar(&highlightGutter, "line-numbers", false, "render a line-number gutter (html only)")
	_ = highlightCmd.MarkFlagRequired("language")
	rootCmd.AddCommand(highlightCmd)
}

func runHighlight(cmd *cobra.Command, args []string) error {
	src, err := readHighlightInput(args)
	if err != nil {
		return err
	}

	formatterName := highlightFormatter
	if formatterName == "" {
		formatterName = cfg.DefaultFormatter
	}

	classStyle := rosettes.ClassStyleSemantic
	if cfg.ClassStyle == "compatibility" {
		classStyle = rosettes.ClassStyleCompatibility
	}
	containerClass := cfg.ContainerClass
	if highlightClass != "" {
		containerClass = highlightClass
	}

	lines := make(map[int]bool, len(highlightLines))
	for _, n := range highlightLines {
		lines[n] = true
	}

	out, err := rosettes.Highlight(src,
		rosettes.WithLanguage(highlightLanguage),
		rosettes.WithFormatter(formatterName),
		rosettes.WithFormatConfig(rosettes.FormatConfig{
			ContainerClass: containerClass,
			DataLanguage:   highlightLanguage,
			ClassStyle:     classStyle,
		}),
		rosettes.WithHighlightConfig(rosettes.HighlightConfig{
			HighlightedLines: lines,
			ShowLineNumbers:  highlightGutter,
		}),
	)
	if err != nil {
		return fmt.Errorf("highlight: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func readHighlightInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
