// Package cmd implements the rosettes CLI: highlight a file or stdin, list registered languages and formatters, run a batch manifest,
// watch a file for changes, or open an interactive playground.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lumenhl/rosettes/internal/config"
	"github.com/lumenhl/rosettes/internal/log"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "rosettes",
	Short:   "Highlight source code from the command line",
	Long:    "rosettes tokenizes and renders source code in a fixed set of languages, as HTML, ANSI terminal text, or raw tokens.",
	Version: version,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.config/rosettes/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging to stderr")
}

func initConfig() {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		// Any load error, including a missing or unreadable --config
		// file, is dropped here and the built-in defaults are used.
		loaded = config.Default()
	}
	cfg = loaded

	if debug, _ := rootCmd.PersistentFlags().GetBool("debug"); debug {
		log.Init(os.Stderr)
		log.SetMinLevel(log.LevelDebug)
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by --version, called from
// main with ldflags-injected build information.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
