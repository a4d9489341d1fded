package match

import (
	"strings"

	"github.com/kharmon/genbench/internal/cache"
	"github.com/kharmon/genbench/internal/gedcom"
	"github.com/kharmon/genbench/internal/model"
)

// Engine compares a source person dataset against a target dataset and
// reports the source people with no acceptable target match. It never
// mutates either dataset; the only state it carries between rows is a
// parsed-year memoization cache that is safe to discard at any time.
type Engine struct {
	cfg   model.MatchingConfig
	years *cache.Memo
}

// NewEngine creates an engine with the given matching configuration.
func NewEngine(cfg model.MatchingConfig) *Engine {
	return &Engine{
		cfg:   cfg,
		years: cache.NewMemo(),
	}
}

// noYear marks a date string that resolved to no usable year.
const noYear = -1 << 30

// yearOf resolves a date string to a year, memoizing both hits and misses.
func (e *Engine) yearOf(dateStr string) (int, bool) {
	if dateStr == "" {
		return 0, false
	}
	if y, found := e.years.GetInt(dateStr); found {
		if y == noYear {
			return 0, false
		}
		return y, true
	}
	y, ok := gedcom.Year(dateStr)
	if !ok {
		e.years.SetInt(dateStr, noYear)
		return 0, false
	}
	e.years.SetInt(dateStr, y)
	return y, true
}

// candidate is a target row pre-processed for repeated comparison.
type candidate struct {
	row      model.PersonRow
	name     string // lowercased, trimmed
	birth    int
	death    int
	hasBirth bool
	hasDeath bool
}

func (e *Engine) prepare(rows []model.PersonRow) []candidate {
	out := make([]candidate, len(rows))
	for i, row := range rows {
		c := candidate{row: row, name: strings.ToLower(strings.TrimSpace(row.FullName))}
		c.birth, c.hasBirth = e.yearOf(row.BirthDate)
		c.death, c.hasDeath = e.yearOf(row.DeathDate)
		out[i] = c
	}
	return out
}

// FindMissing applies the threshold/veto policy: a target candidate is
// rejected when its name ratio falls below NameThreshold, or when both sides
// have a resolvable birth (or death) year differing by more than
// YearTolerance. The first surviving candidate is accepted and scanning
// stops; a source person with no surviving candidate is reported missing.
func (e *Engine) FindMissing(source, target []model.PersonRow) ([]model.MissingRecord, model.CompareStats) {
	var stats model.CompareStats
	targets := e.prepare(target)

	var missing []model.MissingRecord
	for _, src := range e.prepare(source) {
		found := false
		for _, tgt := range targets {
			stats.Comparisons++
			if Ratio(src.name, tgt.name) < float64(e.cfg.NameThreshold) {
				continue
			}
			if src.hasBirth && tgt.hasBirth && abs(src.birth-tgt.birth) > e.cfg.YearTolerance {
				continue
			}
			if src.hasDeath && tgt.hasDeath && abs(src.death-tgt.death) > e.cfg.YearTolerance {
				continue
			}
			found = true
			break
		}
		if found {
			stats.Matched++
		} else {
			stats.Missing++
			missing = append(missing, model.MissingRecord{Person: src.row})
		}
	}
	return missing, stats
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
