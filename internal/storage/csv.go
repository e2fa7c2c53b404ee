package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/dmarinho/interacoes/internal/models"
)

// CSVSource reads interaction rows from a delimited file whose first line is
// a header naming the columns. It is read-only: exported sheets are a
// snapshot, not a place to append.
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) ListRows(ctx context.Context) ([]models.RawRow, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", s.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading header of %s: %w", s.path, err)
	}

	var rows []models.RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", s.path, err)
		}

		row := models.RawRow{}
		for i, column := range header {
			if i < len(record) {
				row[column] = models.StringCell(record[i])
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
