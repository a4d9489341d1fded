package dataset

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kharmon/genbench/internal/gedcom"
	"github.com/kharmon/genbench/internal/model"
)

// Loader loads a person dataset from disk, dispatching on file extension:
// .ged/.txt files are parsed and projected, .csv and .parquet files are read
// as already-projected datasets.
type Loader struct {
	path string
}

// NewLoader creates a loader for the given path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the file and returns its person rows.
func (l *Loader) Load() ([]model.PersonRow, error) {
	switch ext := strings.ToLower(filepath.Ext(l.path)); ext {
	case ".ged", ".txt":
		individuals, families, err := l.parseGedcom()
		if err != nil {
			return nil, err
		}
		return Project(individuals, families), nil
	case ".csv":
		data, err := os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("read dataset file: %w", err)
		}
		return ReadCSV(data)
	case ".parquet":
		return ReadParquet(l.path)
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .ged, .txt, .csv, .parquet)", ext)
	}
}

// LoadRecords parses a GEDCOM file into its raw individual and family
// records, for callers that need the record graph (descendant tracing)
// rather than the flat dataset.
func (l *Loader) LoadRecords() (individuals, families map[string]model.Record, err error) {
	return l.parseGedcom()
}

func (l *Loader) parseGedcom() (map[string]model.Record, map[string]model.Record, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, nil, fmt.Errorf("read gedcom file: %w", err)
	}

	text, encoding, err := DetectAndDecode(data)
	if err != nil {
		return nil, nil, fmt.Errorf("decode gedcom file: %w", err)
	}
	slog.Debug("decoded gedcom file", "path", l.path, "encoding", encoding, "bytes", len(data))

	individuals, families := gedcom.Parse(text)
	slog.Debug("parsed gedcom file", "individuals", len(individuals), "families", len(families))
	return individuals, families, nil
}
