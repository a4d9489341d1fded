package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kharmon/genbench/internal/model"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCompare_EndToEnd_FuzzyNameMatch(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "source.ged",
		"0 @I1@ INDI\n1 NAME Jane /Smith/\n1 BIRT\n2 DATE 1 JAN 1900\n0 TRLR\n")
	target := writeFile(t, dir, "target.ged",
		"0 @I1@ INDI\n1 NAME Jane /Smyth/\n1 BIRT\n2 DATE 1 JAN 1900\n0 TRLR\n")

	p := NewPipeline(model.DefaultConfig())
	report, err := p.Compare(source, target, PolicyThreshold)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	// "Jane Smith" vs "Jane Smyth" is a 90 ratio, above the 85 threshold.
	if len(report.Missing) != 0 {
		t.Errorf("expected zero missing, got %+v", report.Missing)
	}
	if report.Stats.Matched != 1 {
		t.Errorf("Matched = %d, want 1", report.Stats.Matched)
	}
}

func TestCompare_MixedInputFormats(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "source.ged",
		"0 @I1@ INDI\n1 NAME Jane /Smith/\n1 BIRT\n2 DATE 1900\n1 DEAT\n2 DATE 1970\n"+
			"0 @I2@ INDI\n1 NAME Robert /Brown/\n0 TRLR\n")
	target := writeFile(t, dir, "target.csv",
		"ID,Full Name,Birth Date,Death Date\nT1,Jane Smith,1900-01-01,1970-01-01\n")

	p := NewPipeline(model.DefaultConfig())
	report, err := p.Compare(source, target, PolicyWeighted)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if len(report.Missing) != 1 || report.Missing[0].Person.FullName != "Robert Brown" {
		t.Errorf("Missing = %+v, want only Robert Brown", report.Missing)
	}
}

func TestCompare_UnknownPolicy(t *testing.T) {
	p := NewPipeline(model.DefaultConfig())
	if _, err := p.CompareRows(nil, nil, "a", "b", "psychic"); err == nil {
		t.Error("expected an error for an unknown policy")
	}
}

func TestRenderReport_CSVAndJSON(t *testing.T) {
	dir := t.TempDir()
	report := &model.Report{
		SourceName: "a.ged", TargetName: "b.ged", Policy: PolicyWeighted,
		SourceCount: 1, TargetCount: 1,
		Missing: []model.MissingRecord{{
			Person: model.PersonRow{ID: "I1", FullName: "Jane Smith", BirthDate: "1900-01-01"},
			BestMatch: &model.MatchCandidate{
				ID: "T1", FullName: "Janet Smythe",
				Scores: model.FactorScores{Name: 30, Birth: 25, Total: 55},
			},
		}},
		Stats: model.CompareStats{Missing: 1},
	}

	csvPath := filepath.Join(dir, "missing.csv")
	jsonPath := filepath.Join(dir, "report.json")
	if err := NewPipeline(model.DefaultConfig()).RenderReport(report, csvPath, jsonPath, false); err != nil {
		t.Fatalf("RenderReport: %v", err)
	}

	csvData, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(csvData)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "Best Match ID") {
		t.Errorf("weighted header missing best-match columns: %s", lines[0])
	}
	if !strings.Contains(lines[1], "Jane Smith") || !strings.Contains(lines[1], "55.0") {
		t.Errorf("row = %s", lines[1])
	}

	jsonData, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	var decoded model.Report
	if err := json.Unmarshal(jsonData, &decoded); err != nil {
		t.Fatalf("report JSON does not parse: %v", err)
	}
	if decoded.Missing[0].BestMatch.ID != "T1" {
		t.Errorf("decoded best match = %+v", decoded.Missing[0].BestMatch)
	}
}
