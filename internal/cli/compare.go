package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kharmon/genbench/internal/pipeline"
)

var (
	policy         string
	nameThreshold  int
	yearTolerance  int
	matchThreshold float64
	noFilter       bool
	outCSV         string
	outJSON        string
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <source> <target>",
	Short: "Find people in the source dataset missing from the target",
	Long: `Compare loads two person datasets and reports every source person with
no acceptable target match. Inputs may be GEDCOM files (.ged, .txt),
person-dataset CSVs, or Parquet files, in any combination.

Two policies are available:
  threshold  name ratio must clear --name-threshold, and birth/death years
             (when both sides have them) must agree within --year-tolerance;
             the first acceptable candidate wins
  weighted   a 0-100 score from weighted name, birth, death, and parent
             factors; a person is missing when no candidate reaches
             --match-threshold

Example:
  genbench compare ancestry.ged familysearch.ged
  genbench compare ancestry.ged familysearch.csv --policy threshold
  genbench compare a.ged b.ged --csv missing.csv --json report.json`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&policy, "policy", pipeline.PolicyWeighted, "matching policy (threshold, weighted)")
	compareCmd.Flags().IntVar(&nameThreshold, "name-threshold", 85, "minimum name similarity 0-100 (threshold policy)")
	compareCmd.Flags().IntVar(&yearTolerance, "year-tolerance", 1, "+/- years allowed on birth and death (threshold policy)")
	compareCmd.Flags().Float64Var(&matchThreshold, "match-threshold", 70, "minimum total score 0-100 (weighted policy)")
	compareCmd.Flags().BoolVar(&noFilter, "no-filter", false, "disable birth-year candidate filtering (weighted policy)")

	compareCmd.Flags().StringVar(&outCSV, "csv", "missing.csv", "output CSV path (empty to skip)")
	compareCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
}

func runCompare(cmd *cobra.Command, args []string) error {
	sourcePath, targetPath := args[0], args[1]

	cfg := loadConfig()
	cfg.Output.Verbose = verbose
	if cmd.Flags().Changed("name-threshold") {
		cfg.Matching.NameThreshold = nameThreshold
	}
	if cmd.Flags().Changed("year-tolerance") {
		cfg.Matching.YearTolerance = yearTolerance
	}
	if cmd.Flags().Changed("match-threshold") {
		cfg.Matching.MatchThreshold = matchThreshold
	}
	if noFilter {
		cfg.Matching.Filter = false
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Source: %s\n", sourcePath)
		fmt.Fprintf(os.Stderr, "Target: %s\n", targetPath)
		fmt.Fprintf(os.Stderr, "Policy: %s\n", policy)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)
	report, err := p.Compare(sourcePath, targetPath, policy)
	if err != nil {
		return fmt.Errorf("compare failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Loaded %d source and %d target people\n", report.SourceCount, report.TargetCount)
		fmt.Fprintf(os.Stderr, "✓ Scored %d candidate pairs\n", report.Stats.Comparisons)
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(report, outCSV, outJSON, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}
