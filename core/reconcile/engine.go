package reconcile

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Schema describes the catalog columns after extension.
type Schema struct {
	// Header is the full header including the extension columns.
	Header []string

	// Base is the number of columns preceding the extension columns.
	Base int

	// Width is the number of columns of the input header, and so of every
	// input record. It equals len(Header) only when the input was already
	// extended.
	Width int

	// IdentifierColumns holds the indexes of identifier-bearing columns.
	IdentifierColumns []int

	// TermsColumn is the index of the terms-of-use column.
	TermsColumn int
}

// NewSchema extends header with the extension columns. A header that already
// ends with them (an enriched table being reprocessed) is reused as is.
func NewSchema(header []string, policy Policy) (Schema, error) {
	base := len(header)
	if hasExtension(header) {
		base -= len(ExtensionColumns)
	}

	extended := make([]string, 0, base+len(ExtensionColumns))
	extended = append(extended, header[:base]...)
	extended = append(extended, ExtensionColumns...)

	s := Schema{Header: extended, Base: base, Width: len(header), TermsColumn: -1}
	for i, h := range extended[:base] {
		switch h {
		case policy.IdentifierHeader:
			s.IdentifierColumns = append(s.IdentifierColumns, i)
		case policy.TermsHeader:
			if s.TermsColumn < 0 {
				s.TermsColumn = i
			}
		}
	}
	if s.TermsColumn < 0 {
		return Schema{}, fmt.Errorf("catalog header has no %q column", policy.TermsHeader)
	}
	return s, nil
}

func hasExtension(header []string) bool {
	n := len(ExtensionColumns)
	if len(header) < n {
		return false
	}
	for i, col := range ExtensionColumns {
		if header[len(header)-n+i] != col {
			return false
		}
	}
	return true
}

// AccessNote returns the note for a terms-of-use value: the restricted note
// when value equals the restricted marker, the public note otherwise.
func AccessNote(value string, policy Policy) string {
	if value == policy.RestrictedMarker {
		return policy.RestrictedNote
	}
	return policy.PublicNote
}

// Engine enriches catalog records with the assets of an AssetIndex.
// It is not safe for concurrent use; build one engine per run.
type Engine struct {
	policy     Policy
	index      *AssetIndex
	schema     Schema
	classifier *Classifier
	slots      *SlotAllocator
	logger     *zap.Logger
	summary    Summary
}

// NewEngine prepares an engine for a catalog with the given header.
func NewEngine(header []string, index *AssetIndex, policy Policy, logger *zap.Logger) (*Engine, error) {
	schema, err := NewSchema(header, policy)
	if err != nil {
		return nil, err
	}
	classifier, err := NewClassifier(policy.Rules)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		policy:     policy,
		index:      index,
		schema:     schema,
		classifier: classifier,
		slots:      NewSlotAllocator(schema.Header[:schema.Base], policy.SlotHeader, policy.Layout, policy.Label),
		logger:     logger,
	}, nil
}

// Header returns the extended header to write before any record.
func (e *Engine) Header() []string {
	return e.schema.Header
}

// Schema returns the extended schema.
func (e *Engine) Schema() Schema {
	return e.schema
}

// SlotCapacity returns the number of slot pairs available to each record.
func (e *Engine) SlotCapacity() int {
	return e.slots.Capacity()
}

// Summary returns the running totals.
func (e *Engine) Summary() Summary {
	return e.summary
}

// GoverningIdentifier returns the first identifier column value carrying the
// namespace prefix.
func (e *Engine) GoverningIdentifier(record []string) (string, bool) {
	for _, col := range e.schema.IdentifierColumns {
		if col < len(record) && strings.HasPrefix(record[col], e.policy.NamespacePrefix) {
			return record[col], true
		}
	}
	return "", false
}

// Process enriches one record. row is the record's line in its source and is
// only used for diagnostics. The returned record is a new slice aligned with
// Header; the input is left untouched.
func (e *Engine) Process(row int, record []string) ([]string, error) {
	if len(record) != e.schema.Width {
		return nil, &RecordError{Row: row, Err: fmt.Errorf("%w: got %d values, want %d", ErrRecordWidth, len(record), e.schema.Width)}
	}

	governing, ok := e.GoverningIdentifier(record)
	if !ok {
		return nil, &RecordError{Row: row, Err: ErrGoverningIdentifierNotFound}
	}
	l := e.logger.With(zap.Int("row", row), zap.String("identifier", governing))
	l.Info("Processing record")

	assets := e.index.Ordered(governing)

	out := make([]string, 0, len(e.schema.Header))
	out = append(out, record[:e.schema.Base]...)

	e.classifier.Apply(out, e.schema.IdentifierColumns)

	out = append(out, e.policy.NoteType, AccessNote(record[e.schema.TermsColumn], e.policy))
	out = append(out, e.policy.Offset)

	var (
		cursor int
		err    error
		sized  int
		bytes  int64
	)
	for _, asset := range assets {
		cursor, err = e.slots.Place(out, cursor, asset)
		if err != nil {
			return nil, &RecordError{Row: row, Identifier: governing, Err: err}
		}
		l.Debug("Placed file", zap.String("path", asset.ResolvedPath), zap.Int("cursor", cursor))
		if asset.SizeBytes != nil {
			sized++
			bytes += *asset.SizeBytes
		}
	}

	e.summary.Records++
	e.summary.Files += len(assets)
	e.summary.SizedFiles += sized
	e.summary.Bytes += bytes
	if len(assets) == 0 {
		e.summary.EmptyRecords++
	}

	names := make([]string, len(assets))
	for i, a := range assets {
		names[i] = a.Filename
	}
	l.Info("Record enriched", zap.Int("files", len(assets)), zap.Strings("filenames", names))

	return out, nil
}
