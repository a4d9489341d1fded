package match

import (
	"testing"

	"github.com/kharmon/genbench/internal/model"
)

func defaultEngine() *Engine {
	return NewEngine(model.DefaultConfig().Matching)
}

func TestFindMissing_IdenticalRowMatches(t *testing.T) {
	row := model.PersonRow{
		ID:        "I1",
		FullName:  "Jane Smith",
		BirthDate: "1900-01-01",
		DeathDate: "1970-06-15",
	}

	missing, stats := defaultEngine().FindMissing([]model.PersonRow{row}, []model.PersonRow{row})
	if len(missing) != 0 {
		t.Fatalf("identical row reported missing: %+v", missing)
	}
	if stats.Matched != 1 {
		t.Errorf("Matched = %d, want 1", stats.Matched)
	}
}

func TestFindMissing_FuzzyNameWithinThreshold(t *testing.T) {
	// "jane smith" vs "jane smyth" is a 90 ratio, above the default 85.
	source := []model.PersonRow{{ID: "S1", FullName: "Jane Smith", BirthDate: "1900-01-01"}}
	target := []model.PersonRow{{ID: "T1", FullName: "Jane Smyth", BirthDate: "1900-01-01"}}

	missing, _ := defaultEngine().FindMissing(source, target)
	if len(missing) != 0 {
		t.Fatalf("expected fuzzy match, got missing: %+v", missing)
	}
}

func TestFindMissing_NameBelowThresholdIsMissing(t *testing.T) {
	source := []model.PersonRow{{ID: "S1", FullName: "Jane Smith"}}
	target := []model.PersonRow{{ID: "T1", FullName: "Robert Brown"}}

	missing, stats := defaultEngine().FindMissing(source, target)
	if len(missing) != 1 || missing[0].Person.ID != "S1" {
		t.Fatalf("expected S1 missing, got %+v", missing)
	}
	if stats.Missing != 1 {
		t.Errorf("Missing = %d, want 1", stats.Missing)
	}
}

func TestFindMissing_BirthYearVeto(t *testing.T) {
	source := []model.PersonRow{{ID: "S1", FullName: "Jane Smith", BirthDate: "1900-01-01"}}
	target := []model.PersonRow{{ID: "T1", FullName: "Jane Smith", BirthDate: "1905-01-01"}}

	missing, _ := defaultEngine().FindMissing(source, target)
	if len(missing) != 1 {
		t.Fatal("expected birth-year difference beyond tolerance to veto the match")
	}
}

func TestFindMissing_YearToleranceAllowsOffByOne(t *testing.T) {
	source := []model.PersonRow{{ID: "S1", FullName: "Jane Smith", BirthDate: "1900-01-01"}}
	target := []model.PersonRow{{ID: "T1", FullName: "Jane Smith", BirthDate: "1901-01-01"}}

	missing, _ := defaultEngine().FindMissing(source, target)
	if len(missing) != 0 {
		t.Fatal("expected a 1-year birth difference to be tolerated")
	}
}

func TestFindMissing_MissingDatesDoNotVeto(t *testing.T) {
	// The year check only applies when both sides have a resolvable year.
	source := []model.PersonRow{{ID: "S1", FullName: "Jane Smith", BirthDate: "1900-01-01"}}
	target := []model.PersonRow{{ID: "T1", FullName: "Jane Smith"}}

	missing, _ := defaultEngine().FindMissing(source, target)
	if len(missing) != 0 {
		t.Fatal("expected match when the target has no dates")
	}
}

func TestFindMissing_DeathYearVetoIndependent(t *testing.T) {
	source := []model.PersonRow{{
		ID: "S1", FullName: "Jane Smith", BirthDate: "1900-01-01", DeathDate: "1970-01-01",
	}}
	target := []model.PersonRow{{
		ID: "T1", FullName: "Jane Smith", BirthDate: "1900-01-01", DeathDate: "1980-01-01",
	}}

	missing, _ := defaultEngine().FindMissing(source, target)
	if len(missing) != 1 {
		t.Fatal("expected death-year difference beyond tolerance to veto the match")
	}
}

func TestFindMissing_FirstAcceptableMatchStopsScan(t *testing.T) {
	source := []model.PersonRow{{ID: "S1", FullName: "Jane Smith"}}
	target := []model.PersonRow{
		{ID: "T1", FullName: "Jane Smith"},
		{ID: "T2", FullName: "Jane Smith"},
		{ID: "T3", FullName: "Jane Smith"},
	}

	_, stats := defaultEngine().FindMissing(source, target)
	if stats.Comparisons != 1 {
		t.Errorf("Comparisons = %d, want 1 (first acceptable match stops scanning)", stats.Comparisons)
	}
}

func TestFindMissing_EmptyDatasets(t *testing.T) {
	eng := defaultEngine()

	missing, _ := eng.FindMissing(nil, nil)
	if len(missing) != 0 {
		t.Errorf("empty source should yield no missing records, got %d", len(missing))
	}

	source := []model.PersonRow{{ID: "S1", FullName: "Jane Smith"}}
	missing, _ = eng.FindMissing(source, nil)
	if len(missing) != 1 {
		t.Errorf("empty target should report every source row missing, got %d", len(missing))
	}
}
