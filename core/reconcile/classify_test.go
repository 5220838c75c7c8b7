package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_Label(t *testing.T) {
	c, err := NewClassifier([]Rule{
		{Pattern: "umd:", Label: "fedora2"},
		{Pattern: "umd:[0-9]+", Label: "never"},
		{Pattern: "hdl:", Label: "handle"},
	})
	require.NoError(t, err)

	tests := []struct {
		value string
		label string
		ok    bool
	}{
		{"umd:123", "fedora2", true},
		{"hdl:1903.1/4", "handle", true},
		{"x-umd:1", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			label, ok := c.Label(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.label, label)
		})
	}
}

func TestClassifier_Apply(t *testing.T) {
	c, err := NewClassifier(testPolicy().Rules)
	require.NoError(t, err)

	record := []string{"label-a", "umd:1", "old-label", "something else", "label-c", "hdl:1903/2"}
	labeled := c.Apply(record, []int{1, 3, 5})

	assert.Equal(t, 2, labeled)
	assert.Equal(t, "fedora2", record[0])
	assert.Equal(t, "old-label", record[2], "unmatched value keeps its label")
	assert.Equal(t, "handle", record[4])
}

func TestClassifier_ApplyFirstColumn(t *testing.T) {
	c, err := NewClassifier(testPolicy().Rules)
	require.NoError(t, err)

	record := []string{"umd:1", "x"}
	assert.Equal(t, 0, c.Apply(record, []int{0, 7}))
	assert.Equal(t, []string{"umd:1", "x"}, record)
}

func TestNewClassifier_InvalidPattern(t *testing.T) {
	_, err := NewClassifier([]Rule{{Pattern: "[", Label: "broken"}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid identifier pattern")
}
