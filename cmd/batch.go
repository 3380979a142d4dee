package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lumenhl/rosettes"
	"github.com/lumenhl/rosettes/internal/tracing"
)

// batchManifest is the YAML shape batchCmd reads: a flat list of files to
// highlight, each with its own language and (optionally) formatter override.
type batchManifest struct {
	Formatter string      `yaml:"formatter"`
	Items     []batchItem `yaml:"items"`
}

type batchItem struct {
	File      string `yaml:"file"`
	Language  string `yaml:"language"`
	Formatter string `yaml:"formatter"`
}

var (
	batchManifestPath string
	batchTrace        bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Highlight a manifest of files concurrently",
	Long:  "Batch reads a YAML manifest listing files and languages, highlights them concurrently, and prints one rendered block per item in manifest order.",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchManifestPath, "manifest", "m", "", "path to the YAML batch manifest (required)")
	batchCmd.Flags().BoolVar(&batchTrace, "trace", false, "emit an OpenTelemetry trace of the batch run to stdout")
	_ = batchCmd.MarkFlagRequired("manifest")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(batchManifestPath)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}
	var manifest batchManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}

	items := make([]rosettes.BatchItem, len(manifest.Items))
	for i, m := range manifest.Items {
		src, err := os.ReadFile(m.File)
		if err != nil {
			return fmt.Errorf("read %s: %w", m.File, err)
		}
		formatterName := m.Formatter
		if formatterName == "" {
			formatterName = manifest.Formatter
		}
		if formatterName == "" {
			formatterName = cfg.DefaultFormatter
		}
		items[i] = rosettes.BatchItem{
			Input: string(src),
			Opts: []rosettes.Option{
				rosettes.WithLanguage(m.Language),
				rosettes.WithFormatter(formatterName),
			},
		}
	}

	var provider *rosettes.TracingProvider
	if batchTrace {
		tc := tracing.DefaultConfig()
		tc.Enabled = true
		tc.Exporter = "stdout"
		p, err := rosettes.NewTracingProvider(tc)
		if err != nil {
			return fmt.Errorf("start tracer: %w", err)
		}
		provider = p
		defer provider.Shutdown(context.Background())
	}

	results := rosettes.HighlightMany(context.Background(), provider, items)
	for i, r := range results {
		if r.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", manifest.Items[i].File, r.Err)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), r.Output)
	}
	return nil
}
