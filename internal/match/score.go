package match

import (
	"strings"

	"github.com/kharmon/genbench/internal/model"
)

// parentAgreementFloor is the token-sort similarity at which a parent-name
// pair counts as corroborating.
const parentAgreementFloor = 80

// FindMissingScored applies the weighted scoring policy: every (source,
// target) pair gets a continuous 0-100 score from four weighted factors, and
// a source person is missing when the best score over all candidates falls
// below MatchThreshold.
//
// When Filter is enabled, target rows are bucketed by birth year and a
// source row with a known birth year scans candidates within +/-YearWindow
// first, then every target row lacking a birth year, then the remaining
// buckets if nothing has matched yet; scanning a source row stops early once
// a candidate reaches ShortCircuit. Filtering changes the scan order, never
// the missing set. Rows without a usable birth year on either side fall back
// to the full scan.
func (e *Engine) FindMissingScored(source, target []model.PersonRow) ([]model.MissingRecord, model.CompareStats) {
	var stats model.CompareStats
	targets := e.prepare(target)

	// Bucket target indices by birth year; rows without a year are scanned
	// for every source row.
	buckets := make(map[int][]int)
	var unbucketed []int
	for i, tgt := range targets {
		if tgt.hasBirth {
			buckets[tgt.birth] = append(buckets[tgt.birth], i)
		} else {
			unbucketed = append(unbucketed, i)
		}
	}

	shortCircuit := e.cfg.ShortCircuit
	if shortCircuit < e.cfg.MatchThreshold {
		// Stopping below the acceptance threshold would mis-report matches.
		shortCircuit = e.cfg.MatchThreshold
	}

	var missing []model.MissingRecord
	for _, src := range e.prepare(source) {
		var (
			best    model.FactorScores
			bestIdx = -1
		)

		scan := func(indices []int) bool {
			for _, i := range indices {
				stats.Comparisons++
				scores := e.scorePair(src, targets[i])
				if bestIdx == -1 || scores.Total > best.Total {
					best = scores
					bestIdx = i
				}
				if best.Total >= shortCircuit {
					return true
				}
			}
			return false
		}

		if e.cfg.Filter && src.hasBirth {
			lo, hi := src.birth-e.cfg.YearWindow, src.birth+e.cfg.YearWindow
			done := false
			for y := lo; y <= hi && !done; y++ {
				done = scan(buckets[y])
			}
			if !done {
				done = scan(unbucketed)
			}
			// The window is only a scan-order heuristic. A candidate outside
			// it can still clear the threshold on name, death, and parents
			// alone, so an unmatched row keeps scanning the remaining
			// buckets; the result is always identical to a full scan.
			if !done && (bestIdx == -1 || best.Total < e.cfg.MatchThreshold) {
				for y, indices := range buckets {
					if y >= lo && y <= hi {
						continue
					}
					if scan(indices) {
						break
					}
				}
			}
		} else {
			all := make([]int, len(targets))
			for i := range targets {
				all[i] = i
			}
			scan(all)
		}

		if bestIdx >= 0 && best.Total >= e.cfg.MatchThreshold {
			stats.Matched++
			continue
		}

		stats.Missing++
		rec := model.MissingRecord{Person: src.row}
		if bestIdx >= 0 {
			rec.BestMatch = &model.MatchCandidate{
				ID:       targets[bestIdx].row.ID,
				FullName: targets[bestIdx].row.FullName,
				Scores:   best,
			}
		}
		missing = append(missing, rec)
	}
	return missing, stats
}

// scorePair computes the per-factor breakdown for one candidate pair.
func (e *Engine) scorePair(src, tgt candidate) model.FactorScores {
	w := e.cfg.Weights
	scores := model.FactorScores{
		Name: NameScore(src.name, tgt.name) / 100 * w.Name,
	}

	if src.hasBirth && tgt.hasBirth {
		scores.Birth = yearAgreement(src.birth, tgt.birth) * w.Birth
	}
	if src.hasDeath && tgt.hasDeath {
		scores.Death = yearAgreement(src.death, tgt.death) * w.Death
	}

	half := w.Parents / 2
	if parentsAgree(src.row.FatherName, tgt.row.FatherName) {
		scores.Parents += half
	}
	if parentsAgree(src.row.MotherName, tgt.row.MotherName) {
		scores.Parents += half
	}

	scores.Total = scores.Name + scores.Birth + scores.Death + scores.Parents
	return scores
}

// yearAgreement maps an absolute year difference onto a [0,1] factor: full
// agreement at 0, 0.8 at 1 year, 0.6 at 2, 0.3 out to 5, nothing beyond.
func yearAgreement(a, b int) float64 {
	switch diff := abs(a - b); {
	case diff == 0:
		return 1.0
	case diff == 1:
		return 0.8
	case diff == 2:
		return 0.6
	case diff <= 5:
		return 0.3
	default:
		return 0
	}
}

// parentsAgree reports whether two parent names corroborate a match. Missing
// values and the literal "nan" (a relic of spreadsheet round-trips)
// contribute nothing.
func parentsAgree(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" || a == "nan" || b == "nan" {
		return false
	}
	return TokenSortRatio(a, b) >= parentAgreementFloor
}
