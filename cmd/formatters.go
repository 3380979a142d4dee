package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumenhl/rosettes"
)

var formattersCmd = &cobra.Command{
	Use:   "formatters",
	Short: "List registered output formatters",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range rosettes.Formatters() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formattersCmd)
}
