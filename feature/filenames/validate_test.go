package filenames

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var collections = []string{"bcast", "histmss", "labor", "litmss", "lms", "ntl", "prange", "scpa", "univarch"}

func TestValidator_IsValid(t *testing.T) {
	v, err := NewValidator(collections)
	require.NoError(t, err)

	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{"Convention", "lms-000123-0001.mov", true},
		{"OtherCollection", "univarch-000001-0042.wav", true},
		{"TrailingText", "scpa-000001-0001.mp4.bak", true},
		{"UnknownCollection", "foo-000001-0001.mov", false},
		{"ShortAutonumber", "lms-00123-0001.mov", false},
		{"UppercaseExtension", "lms-000123-0001.MOV", false},
		{"LeadingText", "old_lms-000123-0001.mov", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.IsValid(tt.filename))
		})
	}
}

func TestValidator_Scan(t *testing.T) {
	v, err := NewValidator(collections)
	require.NoError(t, err)

	input := "/masters/lms-000001-0001.mov\n" +
		"/masters/reel 1.mov\n" +
		"\n" +
		"/lms-000001-0001/bad.wav\r\n"

	result, err := v.Scan(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Checked)
	assert.Equal(t, []string{"/masters/reel 1.mov", "/lms-000001-0001/bad.wav"}, result.Invalid)
}

func TestNewValidator_NoCollections(t *testing.T) {
	_, err := NewValidator(nil)
	assert.Error(t, err)
}
