package batchload

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"media-batchload/core/utils"

	"gorm.io/gorm"
)

// Catalog is a source of catalog rows: a header followed by records.
type Catalog interface {
	// Header returns the column names in order. Names may repeat.
	Header() []string
	// Next returns the next record and the 1-based source line it starts on,
	// or io.EOF. Sources without lines count the header as line 1 and each
	// row as one line.
	Next() (record []string, line int, err error)
	Close() error
}

// CSVCatalog reads a catalog table from CSV with a header row.
type CSVCatalog struct {
	reader *csv.Reader
	header []string
}

// NewCSVCatalog reads the header row from r.
func NewCSVCatalog(r io.Reader) (*CSVCatalog, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catalog is empty")
		}
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}
	// Every record must be as wide as the header.
	reader.FieldsPerRecord = len(header)

	return &CSVCatalog{reader: reader, header: header}, nil
}

func (c *CSVCatalog) Header() []string {
	return c.header
}

func (c *CSVCatalog) Next() ([]string, int, error) {
	record, err := c.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, io.EOF
		}
		return nil, 0, fmt.Errorf("failed to read catalog: %w", err)
	}
	// Quoted cells may span lines, so ask the reader where the record began.
	line, _ := c.reader.FieldPos(0)
	return record, line, nil
}

func (c *CSVCatalog) Close() error {
	return nil
}

// SQLCatalog streams catalog rows from a query result. Column order and
// duplicate column names are preserved, so the query must alias the
// repeated slot columns (e.g. `file_1 AS File, label_1 AS Label`).
type SQLCatalog struct {
	rows   *sql.Rows
	header []string
	line   int
}

// NewSQLCatalog runs query and prepares to stream its rows.
func NewSQLCatalog(ctx context.Context, db *gorm.DB, query string) (*SQLCatalog, error) {
	if db == nil {
		return nil, fmt.Errorf("no catalog database configured")
	}
	if query == "" {
		return nil, fmt.Errorf("no catalog query configured")
	}

	rows, err := db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}

	columns, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	return &SQLCatalog{rows: rows, header: columns, line: 1}, nil
}

func (c *SQLCatalog) Header() []string {
	return c.header
}

func (c *SQLCatalog) Next() ([]string, int, error) {
	if !c.rows.Next() {
		if err := c.rows.Err(); err != nil {
			return nil, 0, fmt.Errorf("failed to read catalog rows: %w", err)
		}
		return nil, 0, io.EOF
	}

	values := make([]interface{}, len(c.header))
	valuePtrs := make([]interface{}, len(c.header))
	for i := range values {
		valuePtrs[i] = &values[i]
	}
	if err := c.rows.Scan(valuePtrs...); err != nil {
		return nil, 0, fmt.Errorf("failed to scan row: %w", err)
	}

	record := make([]string, len(values))
	for i, v := range values {
		record[i] = utils.ToString(v)
	}
	c.line++
	return record, c.line, nil
}

func (c *SQLCatalog) Close() error {
	return c.rows.Close()
}
