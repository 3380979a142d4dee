package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumenhl/rosettes"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List registered languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range rosettes.Languages() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
