package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kharmon/genbench/internal/dataset"
	"github.com/kharmon/genbench/internal/worker"
)

var (
	convertFormat      string
	convertOutputDir   string
	convertConcurrency int
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <file> [file...]",
	Short: "Convert GEDCOM files to person-dataset CSV or Parquet",
	Long: `Convert parses one or more GEDCOM files, projects each into the flat
person dataset (ID, full name, gender, birth/death dates, parent names),
and writes one output file per input.

Example:
  genbench convert ancestry.ged
  genbench convert *.ged --format parquet --output-dir out/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertFormat, "format", "csv", "output format (csv, parquet)")
	convertCmd.Flags().StringVar(&convertOutputDir, "output-dir", ".", "directory for output files")
	convertCmd.Flags().IntVar(&convertConcurrency, "concurrency", 4, "files converted in parallel")
}

type convertResult struct {
	input  string
	output string
	people int
	err    error
}

func runConvert(cmd *cobra.Command, args []string) error {
	switch convertFormat {
	case "csv", "parquet":
	default:
		return fmt.Errorf("unknown format %q (want csv or parquet)", convertFormat)
	}

	if err := os.MkdirAll(convertOutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Converting %d file(s) to %s\n", len(args), convertFormat)
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════\n\n")

	results := worker.Run(cmd.Context(), convertConcurrency, args, convertOne)

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", r.input, r.err)
			continue
		}
		fmt.Fprintf(os.Stderr, "✓ %s → %s (%d people)\n", r.input, r.output, r.people)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(args))
	}
	return nil
}

func convertOne(_ context.Context, input string) convertResult {
	rows, err := dataset.NewLoader(input).Load()
	if err != nil {
		return convertResult{input: input, err: err}
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	output := filepath.Join(convertOutputDir, base+"."+convertFormat)

	f, err := os.Create(output)
	if err != nil {
		return convertResult{input: input, err: err}
	}

	switch convertFormat {
	case "parquet":
		err = dataset.WriteParquet(f, rows)
	default:
		err = dataset.WriteCSV(f, rows)
	}
	if err != nil {
		f.Close()
		return convertResult{input: input, err: err}
	}
	if err := f.Close(); err != nil {
		return convertResult{input: input, err: err}
	}
	return convertResult{input: input, output: output, people: len(rows)}
}
