package verify

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) MediaObjects() ([]MediaObject, error) {
	args := m.Called()
	if objs, ok := args.Get(0).([]MediaObject); ok {
		return objs, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestService_Verify(t *testing.T) {
	source := new(mockSource)
	source.On("MediaObjects").Return([]MediaObject{
		{ID: "a", PID: "umd:1", URL: "https://av/a", Parts: 2},
		{ID: "b", PID: "umd:1", URL: "https://av/b", Parts: 1},
		{ID: "c", URL: "https://av/c"},
	}, nil)

	report, err := NewService(source, zap.NewNop()).Verify("batch.csv", strings.NewReader(batchManifest))
	require.NoError(t, err)

	assert.Equal(t, 3, report.Rows)
	assert.Equal(t, 3, report.IndexDocs)
	assert.Equal(t, 1, report.PIDs)
	require.Len(t, report.Results, 3)
	assert.Len(t, report.Results[0].Matches, 2)
	assert.Equal(t, "", report.Results[1].PID)
	assert.Equal(t, "umd:2", report.Results[2].PID)
	assert.Len(t, report.Missing(), 2)

	var out bytes.Buffer
	require.NoError(t, report.Write(&out))
	assert.Contains(t, out.String(), "   1. umd:1 => 2 https://av/a (2);https://av/b (1)")
	assert.Contains(t, out.String(), "   3. umd:2 => 0 ")
	source.AssertExpectations(t)
}

func TestService_VerifySourceError(t *testing.T) {
	source := new(mockSource)
	source.On("MediaObjects").Return(nil, errors.New("connection refused"))

	_, err := NewService(source, zap.NewNop()).Verify("batch.csv", strings.NewReader(batchManifest))
	assert.Error(t, err)
}
