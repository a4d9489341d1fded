package model

import "time"

// Report is the complete outcome of one comparison run.
type Report struct {
	SourceName  string    `json:"source_name"` // file the source dataset came from
	TargetName  string    `json:"target_name"` // file the target dataset came from
	Policy      string    `json:"policy"`      // "threshold" or "weighted"
	GeneratedAt time.Time `json:"generated_at"`

	SourceCount int `json:"source_count"`
	TargetCount int `json:"target_count"`

	Missing []MissingRecord `json:"missing"`
	Stats   CompareStats    `json:"stats"`
}

// CompareStats contains aggregate statistics about the comparison.
type CompareStats struct {
	Matched     int `json:"matched"`
	Missing     int `json:"missing"`
	Comparisons int `json:"comparisons"` // candidate pairs actually scored
}
