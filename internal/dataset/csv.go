package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kharmon/genbench/internal/model"
)

// WriteCSV writes a person dataset with the canonical PersonRow header.
func WriteCSV(w io.Writer, rows []model.PersonRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(model.PersonRowHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.Fields()); err != nil {
			return fmt.Errorf("write row %s: %w", row.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a person dataset from CSV bytes. Columns are matched to
// PersonRow fields by header name; unknown columns are ignored and short
// rows are padded. Real-world exports are messy, so quoting is lax and rows
// may vary in width.
func ReadCSV(data []byte) ([]model.PersonRow, error) {
	text, _, err := DetectAndDecode(data)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	headers, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty file: no header row found")
		}
		return nil, fmt.Errorf("read header row: %w", err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	field := func(row []string, name string) string {
		i, ok := index[strings.ToLower(name)]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var rows []model.PersonRow
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rows = append(rows, model.PersonRow{
			ID:         field(record, "ID"),
			FullName:   field(record, "Full Name"),
			Gender:     field(record, "Gender"),
			BirthDate:  field(record, "Birth Date"),
			DeathDate:  field(record, "Death Date"),
			FatherName: field(record, "Father's Full Name"),
			MotherName: field(record, "Mother's Full Name"),
		})
	}
	return rows, nil
}
