package gedcom

import (
	"strconv"
	"strings"

	"github.com/kharmon/genbench/internal/model"
)

// lastTag remembers the level-1 tag most recently opened on the current
// record. Deeper lines are interpreted relative to it: CONC/CONT extend the
// value at the remembered slot, any other tag becomes a compound key. Only
// one level of nesting context is tracked, so a level-3 line is treated
// exactly like a level-2 line under the same level-1 tag.
type lastTag struct {
	tag   string
	index int
	ok    bool
}

// Parse converts raw GEDCOM text into two record maps, individuals and
// families, keyed by record ID (the level-0 pointer with @ delimiters
// stripped). Only INDI and FAM records are kept; HEAD, TRLR, SOUR and every
// other record kind contributes nothing. Blank lines and lines whose first
// token is not an integer level are skipped silently.
func Parse(text string) (map[string]model.Record, map[string]model.Record) {
	individuals := make(map[string]model.Record)
	families := make(map[string]model.Record)

	var (
		currentID   string
		currentKind model.RecordKind
		records     model.Record
		last        lastTag
	)

	finalize := func() {
		if currentID == "" {
			return
		}
		switch currentKind {
		case model.KindIndividual:
			individuals[currentID] = records
		case model.KindFamily:
			families[currentID] = records
		}
	}

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, " ", 3)
		level, err := strconv.Atoi(parts[0])
		if err != nil || len(parts) < 2 {
			continue // malformed line
		}

		if level == 0 {
			finalize()
			if len(parts) > 2 && (parts[2] == "INDI" || parts[2] == "FAM") {
				currentID = strings.Trim(parts[1], "@")
				currentKind = model.RecordKind(parts[2])
				records = make(model.Record)
				last = lastTag{}
			} else {
				// HEAD, TRLR, SOUR, ... close the open record without
				// starting a new one.
				currentID, currentKind = "", ""
			}
			continue
		}

		if currentID == "" {
			continue
		}

		tag := strings.TrimSpace(parts[1])
		value := ""
		if len(parts) > 2 {
			value = parts[2]
		}

		switch {
		case level == 1:
			records[tag] = append(records[tag], value)
			last = lastTag{tag: tag, index: len(records[tag]) - 1, ok: true}
		case level > 1 && last.ok:
			switch tag {
			case "CONC":
				records[last.tag][last.index] += value
			case "CONT":
				records[last.tag][last.index] += "\n" + value
			default:
				full := last.tag + "_" + tag
				records[full] = append(records[full], value)
			}
		}
	}

	finalize()
	return individuals, families
}
