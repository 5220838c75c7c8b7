package verify

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// PIDMarker is the identifier type preceding a row's pid in a batch manifest.
const PIDMarker = "fedora2"

// RowResult is the verification outcome of one batch row.
type RowResult struct {
	Row     int           `json:"row"`
	PID     string        `json:"pid"`
	Matches []MediaObject `json:"matches"`
}

// Report is the outcome of verifying a batch manifest.
type Report struct {
	Name      string      `json:"name"`
	Title     string      `json:"title"`
	Email     string      `json:"email"`
	Rows      int         `json:"rows"`
	IndexDocs int         `json:"index_docs"`
	PIDs      int         `json:"pids"`
	Results   []RowResult `json:"results"`
}

// Missing returns the rows with no matching media object.
func (r Report) Missing() []RowResult {
	var missing []RowResult
	for _, res := range r.Results {
		if len(res.Matches) == 0 {
			missing = append(missing, res)
		}
	}
	return missing
}

// Write renders the report as text.
func (r Report) Write(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Input CSV: %s\n", r.Name)
	fmt.Fprintf(&b, "    Title: '%s'\n", r.Title)
	fmt.Fprintf(&b, "    Email: '%s'\n", r.Email)
	fmt.Fprintf(&b, " Num Rows: %d\n", r.Rows)
	fmt.Fprintf(&b, "Solr recs: %d\n", r.IndexDocs)
	fmt.Fprintf(&b, " Num PIDs: %d\n\n", r.PIDs)

	for _, res := range r.Results {
		urls := make([]string, len(res.Matches))
		for i, m := range res.Matches {
			urls[i] = fmt.Sprintf("%s (%d)", m.URL, m.Parts)
		}
		fmt.Fprintf(&b, "%4d. %s => %d %s\n", res.Row, res.PID, len(res.Matches), strings.Join(urls, ";"))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Service verifies batch manifests against a media object source.
type Service struct {
	source Source
	logger *zap.Logger
}

// NewService creates a verification service.
func NewService(source Source, logger *zap.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// Verify matches every row of the manifest read from r with the indexed
// media objects sharing its pid.
func (s *Service) Verify(name string, r io.Reader) (Report, error) {
	batch, err := ReadBatchCSV(r)
	if err != nil {
		return Report{}, err
	}

	objects, err := s.source.MediaObjects()
	if err != nil {
		return Report{}, err
	}

	byPID := make(map[string][]MediaObject)
	for _, obj := range objects {
		if obj.PID == "" {
			continue
		}
		byPID[obj.PID] = append(byPID[obj.PID], obj)
	}

	report := Report{
		Name:      name,
		Title:     batch.Title,
		Email:     batch.Email,
		Rows:      len(batch.Rows),
		IndexDocs: len(objects),
		PIDs:      len(byPID),
	}
	for i, row := range batch.Rows {
		pid := PID(row, PIDMarker)
		res := RowResult{Row: i + 1, PID: pid, Matches: []MediaObject{}}
		if pid != "" {
			res.Matches = append(res.Matches, byPID[pid]...)
		}
		report.Results = append(report.Results, res)
	}

	s.logger.Info("Batch verified",
		zap.String("batch", name),
		zap.Int("rows", report.Rows),
		zap.Int("index_docs", report.IndexDocs),
		zap.Int("missing", len(report.Missing())),
	)
	return report, nil
}
