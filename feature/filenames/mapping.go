package filenames

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// MappingHeader is the header of a name mapping table.
var MappingHeader = []string{"umdm", "umam", "old_name_base", "new_name_base"}

// NameMapping pairs a file's current base name with its assigned one.
type NameMapping struct {
	Umdm        string
	Umam        string
	OldNameBase string
	NewNameBase string
}

func (m NameMapping) record() []string {
	return []string{m.Umdm, m.Umam, m.OldNameBase, m.NewNameBase}
}

// Mapper assigns convention names to streaming masters.
//
// Each governing object (umdm) receives an autonumber the first time it is
// seen: the base plus the row's position in the input. Its files are then
// numbered from 1 in input order.
type Mapper struct {
	prefix      string
	base        int
	row         int
	autonumbers map[string]int
	counts      map[string]int
}

// NewMapper creates a mapper numbering from base.
func NewMapper(prefix string, base int) *Mapper {
	return &Mapper{
		prefix:      prefix,
		base:        base,
		autonumbers: make(map[string]int),
		counts:      make(map[string]int),
	}
}

// Next maps one input row.
func (m *Mapper) Next(streamingMaster, umdm, umam string) NameMapping {
	if _, ok := m.autonumbers[umdm]; !ok {
		m.autonumbers[umdm] = m.base + m.row
	}
	m.row++
	m.counts[umdm]++

	name := fmt.Sprintf("%s-%06d-%04d", m.prefix, m.autonumbers[umdm], m.counts[umdm])
	return NameMapping{
		Umdm:        umdm,
		Umam:        umam,
		OldNameBase: strings.TrimSuffix(streamingMaster, path.Ext(streamingMaster)),
		NewNameBase: path.Join(pidPath(umdm), pidPath(umam), name),
	}
}

func pidPath(pid string) string {
	return strings.ReplaceAll(pid, ":", "_")
}

// MapNames reads a CSV with streaming_master, umdm and umam columns from r
// and writes the name mapping table to w. It returns the number of rows mapped.
func (m *Mapper) MapNames(r io.Reader, w io.Writer) (int, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("input is empty")
		}
		return 0, fmt.Errorf("failed to read header: %w", err)
	}
	cols, err := columnIndex(header, "streaming_master", "umdm", "umam")
	if err != nil {
		return 0, err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(MappingHeader); err != nil {
		return 0, err
	}

	n := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return n, fmt.Errorf("failed to read row %d: %w", n+2, err)
		}
		mapping := m.Next(record[cols[0]], record[cols[1]], record[cols[2]])
		if err := writer.Write(mapping.record()); err != nil {
			return n, err
		}
		n++
	}

	writer.Flush()
	return n, writer.Error()
}

// columnIndex returns the position of each named column in header.
func columnIndex(header []string, names ...string) ([]int, error) {
	cols := make([]int, len(names))
	for i, name := range names {
		cols[i] = -1
		for j, h := range header {
			if strings.TrimSpace(h) == name {
				cols[i] = j
				break
			}
		}
		if cols[i] < 0 {
			return nil, fmt.Errorf("input has no %q column", name)
		}
	}
	return cols, nil
}
