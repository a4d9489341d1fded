package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/kharmon/genbench/internal/model"
)

// Renderer writes comparison reports in the supported output formats.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON writes the full report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderCSV writes the missing-persons table: one row per missing person,
// with best-match identity and the per-factor score breakdown when the
// weighted policy produced them.
func (r *Renderer) RenderCSV(report *model.Report, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close report file: %w", closeErr)
		}
	}()

	w := csv.NewWriter(f)
	scored := report.Policy == PolicyWeighted

	header := append([]string{}, model.PersonRowHeader...)
	if scored {
		header = append(header,
			"Best Match ID", "Best Match Name",
			"Name Score", "Birth Score", "Death Score", "Parents Score", "Total Score")
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, rec := range report.Missing {
		fields := rec.Person.Fields()
		if scored {
			if bm := rec.BestMatch; bm != nil {
				fields = append(fields,
					bm.ID, bm.FullName,
					formatScore(bm.Scores.Name), formatScore(bm.Scores.Birth),
					formatScore(bm.Scores.Death), formatScore(bm.Scores.Parents),
					formatScore(bm.Scores.Total))
			} else {
				fields = append(fields, "", "", "", "", "", "", "")
			}
		}
		if err := w.Write(fields); err != nil {
			return fmt.Errorf("write row %s: %w", rec.Person.ID, err)
		}
	}

	w.Flush()
	return w.Error()
}

// RenderSummary prints a short comparison summary to stdout.
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("  Comparison Summary")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("  Source:       %s (%d people)\n", report.SourceName, report.SourceCount)
	fmt.Printf("  Target:       %s (%d people)\n", report.TargetName, report.TargetCount)
	fmt.Printf("  Policy:       %s\n", report.Policy)
	fmt.Printf("  Matched:      %d\n", report.Stats.Matched)
	fmt.Printf("  Missing:      %d\n", report.Stats.Missing)
	fmt.Printf("  Comparisons:  %d\n", report.Stats.Comparisons)
	fmt.Println()
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
