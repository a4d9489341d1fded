package match

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Ratio computes a normalized Levenshtein similarity between two strings on
// a 0-100 scale. Two empty strings score 0, not 100: an absent name can
// never corroborate a match.
func Ratio(a, b string) float64 {
	aLen := len([]rune(a))
	bLen := len([]rune(b))

	maxLen := aLen
	if bLen > maxLen {
		maxLen = bLen
	}
	if maxLen == 0 {
		return 0
	}
	if a == b {
		return 100
	}

	dist := levenshteinDistance(a, b)
	return 100 * (1 - float64(dist)/float64(maxLen))
}

// TokenSortRatio computes Ratio after sorting each string's words
// alphabetically, making the comparison insensitive to word order
// ("Smith John" vs "John Smith").
func TokenSortRatio(a, b string) float64 {
	return Ratio(sortTokens(a), sortTokens(b))
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// NameScore is the best of three similarity measures: the direct ratio, the
// order-independent token-sort ratio, and the ratio of the two names with
// interior given names collapsed to initials ("John Michael Smith" ->
// "john m smith"). Inputs are lowercased and stripped of diacritics first,
// so "José" and "Jose" compare equal.
func NameScore(a, b string) float64 {
	a = stripDiacritics(strings.ToLower(strings.TrimSpace(a)))
	b = stripDiacritics(strings.ToLower(strings.TrimSpace(b)))

	best := Ratio(a, b)
	if s := TokenSortRatio(a, b); s > best {
		best = s
	}
	if s := Ratio(collapseMiddles(a), collapseMiddles(b)); s > best {
		best = s
	}
	return best
}

// collapseMiddles reduces every token between the first and last to its
// initial letter.
func collapseMiddles(name string) string {
	tokens := strings.Fields(name)
	if len(tokens) < 3 {
		return strings.Join(tokens, " ")
	}
	out := make([]string, 0, len(tokens))
	out = append(out, tokens[0])
	for _, t := range tokens[1 : len(tokens)-1] {
		out = append(out, string([]rune(t)[:1]))
	}
	out = append(out, tokens[len(tokens)-1])
	return strings.Join(out, " ")
}

// stripDiacritics removes accent marks by decomposing to NFD and dropping
// combining marks.
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var out strings.Builder
	out.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

// levenshteinDistance computes the minimum number of single-character edits
// (insertions, deletions, substitutions) transforming a into b. Two rows are
// kept instead of the full matrix.
func levenshteinDistance(a, b string) int {
	aRunes := []rune(a)
	bRunes := []rune(b)
	aLen := len(aRunes)
	bLen := len(bRunes)

	if aLen == 0 {
		return bLen
	}
	if bLen == 0 {
		return aLen
	}

	if aLen > bLen {
		aRunes, bRunes = bRunes, aRunes
		aLen, bLen = bLen, aLen
	}

	prevRow := make([]int, aLen+1)
	currRow := make([]int, aLen+1)
	for i := 0; i <= aLen; i++ {
		prevRow[i] = i
	}

	for j := 1; j <= bLen; j++ {
		currRow[0] = j
		for i := 1; i <= aLen; i++ {
			cost := 1
			if aRunes[i-1] == bRunes[j-1] {
				cost = 0
			}

			deletion := prevRow[i] + 1
			insertion := currRow[i-1] + 1
			substitution := prevRow[i-1] + cost

			currRow[i] = min3(deletion, insertion, substitution)
		}
		prevRow, currRow = currRow, prevRow
	}

	return prevRow[aLen]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
