package reconcile

import (
	"fmt"
	"regexp"
)

type compiledRule struct {
	re    *regexp.Regexp
	label string
}

// Classifier labels identifier columns using ordered pattern rules.
type Classifier struct {
	rules []compiledRule
}

// NewClassifier compiles rules in order. Patterns are matched at the start
// of the value.
func NewClassifier(rules []Rule) (*Classifier, error) {
	c := &Classifier{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		re, err := regexp.Compile("^(?:" + r.Pattern + ")")
		if err != nil {
			return nil, fmt.Errorf("invalid identifier pattern %q: %w", r.Pattern, err)
		}
		c.rules = append(c.rules, compiledRule{re: re, label: r.Label})
	}
	return c, nil
}

// Label returns the label of the first rule matching value.
func (c *Classifier) Label(value string) (string, bool) {
	for _, r := range c.rules {
		if r.re.MatchString(value) {
			return r.label, true
		}
	}
	return "", false
}

// Apply writes the matching label into the column preceding each identifier
// column. Unmatched columns keep their existing label. It returns the number
// of columns labeled.
func (c *Classifier) Apply(record []string, columns []int) int {
	labeled := 0
	for _, col := range columns {
		if col <= 0 || col >= len(record) {
			continue
		}
		if label, ok := c.Label(record[col]); ok {
			record[col-1] = label
			labeled++
		}
	}
	return labeled
}
