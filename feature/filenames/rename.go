package filenames

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Target is a directory holding one rendition of every file, identified by
// its extension (e.g. `masters=.mov`).
type Target struct {
	Dir string
	Ext string
}

// ParseTarget parses a `dir=.ext` argument.
func ParseTarget(s string) (Target, error) {
	dir, ext, found := strings.Cut(s, "=")
	if !found || dir == "" {
		return Target{}, fmt.Errorf("invalid target %q, expected dir=.ext", s)
	}
	return Target{Dir: dir, Ext: ext}, nil
}

// Move is one planned rename.
type Move struct {
	From string `json:"from"`
	To   string `json:"to"`
	// Found is false when no regular file exists at From.
	Found bool `json:"found"`
	// Renamed is true once the file has been moved.
	Renamed bool `json:"renamed"`
}

// Renamer applies a name mapping table to files on disk.
type Renamer struct {
	fs     afero.Fs
	dryRun bool
	logger *zap.Logger
}

// NewRenamer creates a renamer over fs. With dryRun set no file is touched.
func NewRenamer(fs afero.Fs, dryRun bool, logger *zap.Logger) *Renamer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renamer{fs: fs, dryRun: dryRun, logger: logger}
}

// Rename reads a mapping table (old_name_base, new_name_base) from r and moves
// every matching file in each target. Rows missing either name are skipped.
func (rn *Renamer) Rename(r io.Reader, targets []Target) ([]Move, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("input is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols, err := columnIndex(header, "old_name_base", "new_name_base")
	if err != nil {
		return nil, err
	}

	var moves []Move
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return moves, fmt.Errorf("failed to read mapping: %w", err)
		}
		oldBase, newBase := field(record, cols[0]), field(record, cols[1])
		if oldBase == "" || newBase == "" {
			continue
		}

		for _, t := range targets {
			move, err := rn.move(filepath.Join(t.Dir, oldBase+t.Ext), filepath.Join(t.Dir, newBase+t.Ext))
			moves = append(moves, move)
			if err != nil {
				return moves, err
			}
		}
	}

	return moves, nil
}

func (rn *Renamer) move(from, to string) (Move, error) {
	m := Move{From: from, To: to}

	info, err := rn.fs.Stat(from)
	if err != nil || !info.Mode().IsRegular() {
		rn.logger.Debug("Source not found", zap.String("from", from))
		return m, nil
	}
	m.Found = true

	if rn.dryRun {
		rn.logger.Info("Would rename", zap.String("from", from), zap.String("to", to))
		return m, nil
	}

	if err := rn.fs.MkdirAll(filepath.Dir(to), 0o755); err != nil {
		return m, fmt.Errorf("failed to create %s: %w", filepath.Dir(to), err)
	}
	if err := rn.fs.Rename(from, to); err != nil {
		return m, fmt.Errorf("failed to rename %s: %w", from, err)
	}
	m.Renamed = true
	rn.logger.Info("Renamed", zap.String("from", from), zap.String("to", to))
	return m, nil
}

func field(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}
