package dataset

import (
	"strings"

	"github.com/kharmon/genbench/internal/model"
)

// Descendants walks FAMS -> family -> CHIL breadth-first from startID and
// returns the set of descendant IDs (the start person included), stopping
// after maxGenerations. Dangling pointers resolve to nothing.
func Descendants(individuals, families map[string]model.Record, startID string, maxGenerations int) map[string]bool {
	startID = strings.Trim(strings.TrimSpace(startID), "@")
	if startID == "" {
		return map[string]bool{}
	}

	type step struct {
		id         string
		generation int
	}

	found := make(map[string]bool)
	seen := map[string]bool{startID: true}
	queue := []step{{startID, 1}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		found[cur.id] = true
		if cur.generation >= maxGenerations {
			continue
		}

		for _, famID := range individuals[cur.id].All("FAMS") {
			family := families[strings.Trim(famID, "@")]
			for _, childID := range family.All("CHIL") {
				childID = strings.Trim(childID, "@")
				if childID != "" && !seen[childID] {
					seen[childID] = true
					queue = append(queue, step{childID, cur.generation + 1})
				}
			}
		}
	}
	return found
}
