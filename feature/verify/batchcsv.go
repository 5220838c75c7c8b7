package verify

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Field is one named cell of a batch row.
type Field struct {
	Name  string
	Value string
}

// BatchCSV is a batch ingest manifest: a `title,email` line, a line of
// field names, then one row per media object.
type BatchCSV struct {
	Title  string
	Email  string
	Fields []string
	Rows   [][]Field
}

// ReadBatchCSV parses a batch manifest.
func ReadBatchCSV(r io.Reader) (*BatchCSV, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	first, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("batch file is empty")
		}
		return nil, fmt.Errorf("failed to read batch title line: %w", err)
	}
	if len(first) != 2 {
		return nil, fmt.Errorf("batch title line has %d values, want title,email", len(first))
	}

	fields, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("batch file has no field names")
		}
		return nil, fmt.Errorf("failed to read batch field names: %w", err)
	}

	batch := &BatchCSV{
		Title:  strings.TrimSpace(first[0]),
		Email:  strings.TrimSpace(first[1]),
		Fields: fields,
	}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read batch row %d: %w", len(batch.Rows)+1, err)
		}

		n := min(len(fields), len(record))
		row := make([]Field, n)
		for i := 0; i < n; i++ {
			row[i] = Field{Name: fields[i], Value: record[i]}
		}
		batch.Rows = append(batch.Rows, row)
	}

	return batch, nil
}

// PID returns the identifier following the last cell whose value is marker,
// or the empty string when the row has none.
func PID(row []Field, marker string) string {
	pid := ""
	for i, f := range row {
		if f.Value == marker && i+1 < len(row) {
			pid = row[i+1].Value
		}
	}
	return pid
}
