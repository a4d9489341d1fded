package pipeline

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kharmon/genbench/internal/dataset"
	"github.com/kharmon/genbench/internal/match"
	"github.com/kharmon/genbench/internal/model"
)

// Comparison policies.
const (
	PolicyThreshold = "threshold"
	PolicyWeighted  = "weighted"
)

// Pipeline orchestrates a comparison run: load both datasets, match, report.
type Pipeline struct {
	engine   *match.Engine
	renderer *Renderer
	config   *model.Config
}

// NewPipeline creates a pipeline with the given configuration.
func NewPipeline(cfg *model.Config) *Pipeline {
	return &Pipeline{
		engine:   match.NewEngine(cfg.Matching),
		renderer: NewRenderer(),
		config:   cfg,
	}
}

// Compare loads the source and target datasets from disk and reports the
// source people missing from the target under the chosen policy.
func (p *Pipeline) Compare(sourcePath, targetPath, policy string) (*model.Report, error) {
	source, err := dataset.NewLoader(sourcePath).Load()
	if err != nil {
		return nil, fmt.Errorf("load source: %w", err)
	}
	target, err := dataset.NewLoader(targetPath).Load()
	if err != nil {
		return nil, fmt.Errorf("load target: %w", err)
	}
	return p.CompareRows(source, target, filepath.Base(sourcePath), filepath.Base(targetPath), policy)
}

// CompareRows runs the match engine over already-loaded datasets. The engine
// only reads both datasets; neither is mutated.
func (p *Pipeline) CompareRows(source, target []model.PersonRow, sourceName, targetName, policy string) (*model.Report, error) {
	var (
		missing []model.MissingRecord
		stats   model.CompareStats
	)

	switch policy {
	case PolicyThreshold:
		missing, stats = p.engine.FindMissing(source, target)
	case PolicyWeighted, "":
		policy = PolicyWeighted
		missing, stats = p.engine.FindMissingScored(source, target)
	default:
		return nil, fmt.Errorf("unknown policy %q (want %s or %s)", policy, PolicyThreshold, PolicyWeighted)
	}

	return &model.Report{
		SourceName:  sourceName,
		TargetName:  targetName,
		Policy:      policy,
		GeneratedAt: time.Now().UTC(),
		SourceCount: len(source),
		TargetCount: len(target),
		Missing:     missing,
		Stats:       stats,
	}, nil
}

// RenderReport renders the report to the requested outputs and prints a
// summary to stdout.
func (p *Pipeline) RenderReport(report *model.Report, csvPath, jsonPath string, verbose bool) error {
	if csvPath != "" {
		if err := p.renderer.RenderCSV(report, csvPath); err != nil {
			return fmt.Errorf("render CSV: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote CSV: %s\n", csvPath)
		}
	}

	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}
