package filenames

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
)

// Validator checks filenames against the collection naming convention
// `<collection>-<6 digits>-<4 digits>.<3 char extension>`.
type Validator struct {
	pattern *regexp.Regexp
}

// NewValidator builds a validator accepting the given collection codes.
func NewValidator(collections []string) (*Validator, error) {
	if len(collections) == 0 {
		return nil, fmt.Errorf("no collections configured")
	}
	quoted := make([]string, len(collections))
	for i, c := range collections {
		quoted[i] = regexp.QuoteMeta(strings.TrimSpace(c))
	}

	pattern, err := regexp.Compile(`^(` + strings.Join(quoted, "|") + `)-(\d{6})-(\d{4})\.[a-z0-9]{3}`)
	if err != nil {
		return nil, fmt.Errorf("invalid collection list: %w", err)
	}
	return &Validator{pattern: pattern}, nil
}

// IsValid reports whether filename follows the convention. Only the start of
// the name is checked, so trailing text after the extension is tolerated.
func (v *Validator) IsValid(filename string) bool {
	return v.pattern.MatchString(filename)
}

// ScanResult is the outcome of scanning a list of paths.
type ScanResult struct {
	Checked int      `json:"checked"`
	Invalid []string `json:"invalid"`
}

// Scan reads one path per line from r and collects the paths whose base
// name is invalid. Blank lines are ignored.
func (v *Validator) Scan(r io.Reader) (ScanResult, error) {
	result := ScanResult{Invalid: []string{}}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p := strings.TrimRight(scanner.Text(), "\r")
		if p == "" {
			continue
		}
		result.Checked++
		if !v.IsValid(filepath.Base(p)) {
			result.Invalid = append(result.Invalid, p)
		}
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("failed to read paths: %w", err)
	}

	return result, nil
}
