package gedcom

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// GEDCOM date qualifiers stripped before parsing. BET ranges keep only the
// first bound.
var (
	qualifierRe = regexp.MustCompile(`(?i)^(ABT|EST|CAL|INT|BEF|AFT|FROM|TO)\s+`)
	betweenRe   = regexp.MustCompile(`(?i)^BET\s+(.*?)\s+AND.*`)
)

// Layouts tried in order when parsing a cleaned GEDCOM date.
var dateLayouts = []string{
	"2 Jan 2006",
	"Jan 2006",
	"2006",
	"2006-01-02",
	"2006-01",
	"2 January 2006",
	"January 2006",
}

// FormatDate normalizes a GEDCOM date string to YYYY-MM-DD. Qualifier
// keywords are stripped, BET ranges collapse to their first bound, and
// partial dates default the missing month/day to January 1st ("ABT 1850"
// becomes "1850-01-01"). Returns false when the value is empty or does not
// parse; an unparseable date is never an error.
func FormatDate(dateStr string) (string, bool) {
	s := strings.TrimSpace(dateStr)
	if s == "" {
		return "", false
	}

	if m := betweenRe.FindStringSubmatch(s); m != nil {
		s = m[1]
	} else {
		s = qualifierRe.ReplaceAllString(s, "")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	cleaned := normalizeMonthCase(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// Year extracts the year from a normalized or raw date string. It first
// tries FormatDate, then falls back to a leading 4-digit year.
func Year(dateStr string) (int, bool) {
	if normalized, ok := FormatDate(dateStr); ok {
		y, err := strconv.Atoi(normalized[:4])
		if err == nil {
			return y, true
		}
	}
	s := strings.TrimSpace(dateStr)
	if len(s) >= 4 {
		if y, err := strconv.Atoi(s[:4]); err == nil {
			return y, true
		}
	}
	return 0, false
}

// normalizeMonthCase rewrites alphabetic tokens to title case so that
// GEDCOM's uppercase month names ("4 JUL 1826") satisfy time.Parse.
func normalizeMonthCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		if isAlpha(f) && len(f) > 1 {
			fields[i] = strings.ToUpper(f[:1]) + strings.ToLower(f[1:])
		}
	}
	return strings.Join(fields, " ")
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return len(s) > 0
}
