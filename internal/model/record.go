package model

// RecordKind classifies a top-level GEDCOM record
type RecordKind string

const (
	KindIndividual RecordKind = "INDI" // 0 @I..@ INDI
	KindFamily     RecordKind = "FAM"  // 0 @F..@ FAM
)

// Record holds the tag data of a single GEDCOM record: a mapping from tag
// name to the ordered list of values seen for that tag. Repeated tags (e.g.
// multiple FAMS entries) accumulate; structured sub-tags are flattened to
// compound keys such as BIRT_DATE. Pointer values (FAMC, HUSB, WIFE, CHIL)
// keep their @-wrapping; stripping is the projection step's job.
type Record map[string][]string

// First returns the first value recorded for tag, or "" if the tag is absent.
func (r Record) First(tag string) string {
	vals := r[tag]
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

// All returns every value recorded for tag, in input order.
func (r Record) All(tag string) []string {
	return r[tag]
}
