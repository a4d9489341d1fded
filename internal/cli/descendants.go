package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kharmon/genbench/internal/dataset"
)

var (
	descRoot        string
	descGenerations int
	descCSV         string
)

// descendantsCmd represents the descendants command
var descendantsCmd = &cobra.Command{
	Use:   "descendants <file.ged>",
	Short: "List the descendants of one individual",
	Long: `Descendants walks the family graph downward from a root individual,
following spouse-family and child pointers, and writes the resulting
people as a person-dataset CSV.

Example:
  genbench descendants ancestry.ged --root I1
  genbench descendants ancestry.ged --root @I1@ --generations 4 --csv line.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runDescendants,
}

func init() {
	rootCmd.AddCommand(descendantsCmd)

	descendantsCmd.Flags().StringVar(&descRoot, "root", "", "ID of the root individual (required)")
	descendantsCmd.Flags().IntVar(&descGenerations, "generations", 7, "maximum generations to descend")
	descendantsCmd.Flags().StringVar(&descCSV, "csv", "", "output CSV path (default stdout)")
	_ = descendantsCmd.MarkFlagRequired("root")
}

func runDescendants(cmd *cobra.Command, args []string) (err error) {
	individuals, families, err := dataset.NewLoader(args[0]).LoadRecords()
	if err != nil {
		return fmt.Errorf("load %s: %w", args[0], err)
	}

	rootID := strings.Trim(strings.TrimSpace(descRoot), "@")
	if _, ok := individuals[rootID]; !ok {
		return fmt.Errorf("individual %q not found in %s", descRoot, args[0])
	}

	keep := dataset.Descendants(individuals, families, rootID, descGenerations)

	rows := dataset.Project(individuals, families)
	n := 0
	for _, row := range rows {
		if keep[row.ID] {
			rows[n] = row
			n++
		}
	}
	rows = rows[:n]

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ %d descendants of %s within %d generations\n", len(rows), descRoot, descGenerations)
	}

	out := os.Stdout
	if descCSV != "" {
		f, createErr := os.Create(descCSV)
		if createErr != nil {
			return fmt.Errorf("create %s: %w", descCSV, createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", descCSV, closeErr)
			}
		}()
		out = f
	}
	return dataset.WriteCSV(out, rows)
}
