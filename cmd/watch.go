package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/lumenhl/rosettes"
	"github.com/lumenhl/rosettes/internal/log"
)

var (
	watchLanguage  string
	watchFormatter string
	watchDebounce  time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-highlight a file each time it changes",
	Long:  "Watch renders a file once, then watches its directory and re-renders it on every debounced write.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchLanguage, "language", "l", "", "language to highlight as (required)")
	watchCmd.Flags().StringVarP(&watchFormatter, "formatter", "f", "", "output formatter (default from config)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "delay after a write before re-rendering")
	_ = watchCmd.MarkFlagRequired("language")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(absPath), err)
	}

	render := func() error {
		out, err := renderFile(cmd, absPath)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "render %s: %v\n", absPath, err)
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	if err := render(); err != nil {
		return err
	}

	var timer *time.Timer
	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(absPath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(watchDebounce, func() { _ = render() })
			} else {
				timer.Reset(watchDebounce)
			}
		case werr, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.ErrorErr(log.CatWatcher, "watch error", werr)
		}
	}
}

func renderFile(cmd *cobra.Command, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	formatterName := watchFormatter
	if formatterName == "" {
		formatterName = cfg.DefaultFormatter
	}
	return rosettes.Highlight(string(data),
		rosettes.WithLanguage(watchLanguage),
		rosettes.WithFormatter(formatterName),
	)
}
