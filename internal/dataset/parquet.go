package dataset

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/kharmon/genbench/internal/model"
)

// personParquetRow is the Parquet schema for a person dataset.
type personParquetRow struct {
	ID         string `parquet:"id"`
	FullName   string `parquet:"full_name"`
	Gender     string `parquet:"gender"`
	BirthDate  string `parquet:"birth_date"`
	DeathDate  string `parquet:"death_date"`
	FatherName string `parquet:"father_name"`
	MotherName string `parquet:"mother_name"`
}

// WriteParquet writes a person dataset as a Parquet file.
func WriteParquet(w io.Writer, rows []model.PersonRow) error {
	pw := parquet.NewGenericWriter[personParquetRow](w)

	records := make([]personParquetRow, len(rows))
	for i, row := range rows {
		records[i] = personParquetRow{
			ID:         row.ID,
			FullName:   row.FullName,
			Gender:     row.Gender,
			BirthDate:  row.BirthDate,
			DeathDate:  row.DeathDate,
			FatherName: row.FatherName,
			MotherName: row.MotherName,
		}
	}

	if _, err := pw.Write(records); err != nil {
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}

// ReadParquet loads a person dataset from a Parquet file.
func ReadParquet(path string) ([]model.PersonRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	slog.Debug("parquet file opened", "path", path, "num_rows", pf.NumRows())

	reader := parquet.NewGenericReader[personParquetRow](pf)
	defer reader.Close()

	var rows []model.PersonRow
	batch := make([]personParquetRow, 128)
	for {
		n, err := reader.Read(batch)
		for _, rec := range batch[:n] {
			rows = append(rows, model.PersonRow{
				ID:         rec.ID,
				FullName:   rec.FullName,
				Gender:     rec.Gender,
				BirthDate:  rec.BirthDate,
				DeathDate:  rec.DeathDate,
				FatherName: rec.FatherName,
				MotherName: rec.MotherName,
			})
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read parquet rows: %w", err)
		}
	}
	return rows, nil
}
