package dataset

import (
	"sort"
	"strings"

	"github.com/kharmon/genbench/internal/cache"
	"github.com/kharmon/genbench/internal/gedcom"
	"github.com/kharmon/genbench/internal/model"
)

// Project flattens parsed GEDCOM records into per-person rows. For every
// individual it resolves the first FAMC pointer to the owning family, the
// family's HUSB/WIFE pointers to parent names (GEDCOM's /surname/ slashes
// stripped), and normalizes the first BIRT_DATE/DEAT_DATE value to
// YYYY-MM-DD. Name and date lookups are memoized for the duration of the
// call: the same parent is looked up once per child.
//
// Rows come back sorted by ID so repeated projections of the same input are
// identical.
func Project(individuals, families map[string]model.Record) []model.PersonRow {
	memo := cache.NewMemo()

	personName := func(id string) string {
		id = strings.Trim(strings.TrimSpace(id), "@")
		if id == "" {
			return ""
		}
		key := "name:" + id
		if name, found := memo.GetString(key); found {
			return name
		}
		name := strings.ReplaceAll(individuals[id].First("NAME"), "/", "")
		memo.SetString(key, name)
		return name
	}

	formatDate := func(raw string) string {
		if raw == "" {
			return ""
		}
		key := "date:" + raw
		if d, found := memo.GetString(key); found {
			return d
		}
		d, _ := gedcom.FormatDate(raw)
		memo.SetString(key, d)
		return d
	}

	ids := make([]string, 0, len(individuals))
	for id := range individuals {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([]model.PersonRow, 0, len(ids))
	for _, id := range ids {
		data := individuals[id]

		// Only the first FAMC is resolved; an adopted individual with a
		// second family keeps the parents of the first.
		var fatherID, motherID string
		if famcID := strings.Trim(data.First("FAMC"), "@"); famcID != "" {
			family := families[famcID]
			fatherID = family.First("HUSB")
			motherID = family.First("WIFE")
		}

		rows = append(rows, model.PersonRow{
			ID:         id,
			FullName:   personName(id),
			Gender:     data.First("SEX"),
			BirthDate:  formatDate(data.First("BIRT_DATE")),
			DeathDate:  formatDate(data.First("DEAT_DATE")),
			FatherName: personName(fatherID),
			MotherName: personName(motherID),
		})
	}
	return rows
}
