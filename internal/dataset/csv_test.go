package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/kharmon/genbench/internal/model"
)

var sampleRows = []model.PersonRow{
	{
		ID: "I1", FullName: "John Smith", Gender: "M",
		BirthDate: "1826-07-04", DeathDate: "1901-01-01",
		FatherName: "William Smith", MotherName: "Sarah Brown",
	},
	{ID: "I2", FullName: "Mary, the Elder", Gender: "F"},
}

func TestCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	got, err := ReadCSV(buf.Bytes())
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if !reflect.DeepEqual(got, sampleRows) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, sampleRows)
	}
}

func TestReadCSV_IgnoresUnknownColumnsAndShortRows(t *testing.T) {
	data := []byte("Full Name,ID,Notes\nJane Smith,I1,some note\nRobert Brown,I2\n")
	rows, err := ReadCSV(data)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ID != "I1" || rows[0].FullName != "Jane Smith" {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].BirthDate != "" {
		t.Errorf("missing column should read as absent, got %q", rows[1].BirthDate)
	}
}

func TestReadCSV_EmptyFile(t *testing.T) {
	if _, err := ReadCSV([]byte("")); err == nil {
		t.Error("expected an error for a file with no header row")
	}
}

func TestParquetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.parquet")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteParquet(f, sampleRows); err != nil {
		t.Fatalf("WriteParquet: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := ReadParquet(path)
	if err != nil {
		t.Fatalf("ReadParquet: %v", err)
	}
	if !reflect.DeepEqual(got, sampleRows) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, sampleRows)
	}
}

func TestLoader_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	gedPath := filepath.Join(dir, "tree.ged")
	if err := os.WriteFile(gedPath, []byte("0 @I1@ INDI\n1 NAME Jane /Doe/\n0 TRLR\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rows, err := NewLoader(gedPath).Load()
	if err != nil {
		t.Fatalf("load .ged: %v", err)
	}
	if len(rows) != 1 || rows[0].FullName != "Jane Doe" {
		t.Errorf("loaded rows = %+v", rows)
	}

	csvPath := filepath.Join(dir, "people.csv")
	if err := os.WriteFile(csvPath, []byte("ID,Full Name\nI9,Someone Else\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rows, err = NewLoader(csvPath).Load()
	if err != nil {
		t.Fatalf("load .csv: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "I9" {
		t.Errorf("loaded rows = %+v", rows)
	}

	if _, err := NewLoader(filepath.Join(dir, "people.xlsx")).Load(); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}
