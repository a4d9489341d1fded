package model

// PersonRow is one row of a projected person dataset. Dates are normalized
// to YYYY-MM-DD; an empty string means the value was absent or unparseable.
// FullName is empty only when the underlying record had no NAME tag.
type PersonRow struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	Gender     string `json:"gender,omitempty"`
	BirthDate  string `json:"birth_date,omitempty"`
	DeathDate  string `json:"death_date,omitempty"`
	FatherName string `json:"father_name,omitempty"`
	MotherName string `json:"mother_name,omitempty"`
}

// PersonRowHeader is the canonical column order for tabular person datasets
// (CSV import/export and report rendering share it).
var PersonRowHeader = []string{
	"ID",
	"Full Name",
	"Gender",
	"Birth Date",
	"Death Date",
	"Father's Full Name",
	"Mother's Full Name",
}

// Fields returns the row's values in PersonRowHeader order.
func (p PersonRow) Fields() []string {
	return []string{p.ID, p.FullName, p.Gender, p.BirthDate, p.DeathDate, p.FatherName, p.MotherName}
}

// FactorScores is the transparent per-factor breakdown of a weighted match
// score. Each factor is already scaled onto its configured weight.
type FactorScores struct {
	Name    float64 `json:"name"`
	Birth   float64 `json:"birth"`
	Death   float64 `json:"death"`
	Parents float64 `json:"parents"`
	Total   float64 `json:"total"`
}

// MatchCandidate identifies the best-scoring target row for a source person
// under the weighted policy.
type MatchCandidate struct {
	ID       string       `json:"id"`
	FullName string       `json:"full_name"`
	Scores   FactorScores `json:"scores"`
}

// MissingRecord is one entry of the missing-persons report: a source person
// for whom no acceptable target match was found. BestMatch is populated only
// by the weighted policy (the threshold policy stops at the first acceptable
// match and keeps no runner-up).
type MissingRecord struct {
	Person    PersonRow       `json:"person"`
	BestMatch *MatchCandidate `json:"best_match,omitempty"`
}
