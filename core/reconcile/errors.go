package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrGoverningIdentifierNotFound is returned when none of a record's
	// identifier columns carries the namespace prefix.
	ErrGoverningIdentifierNotFound = errors.New("governing identifier not found")

	// ErrNoAvailableSlot is returned when a record has more assets than
	// remaining slot columns.
	ErrNoAvailableSlot = errors.New("no available file slot")

	// ErrRecordWidth is returned when a record is not aligned with the schema.
	ErrRecordWidth = errors.New("record width does not match schema")
)

// RecordError reports a fatal condition for one catalog record.
type RecordError struct {
	// Row is the 1-based line of the record in its source table.
	Row int
	// Identifier is the governing identifier, if it was found.
	Identifier string
	Err        error
}

func (e *RecordError) Error() string {
	if e.Identifier != "" {
		return fmt.Sprintf("row %d (%s): %v", e.Row, e.Identifier, e.Err)
	}
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
