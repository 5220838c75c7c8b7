package reconcile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slotHeader = []string{"Title", "File", "Label", "Notes", "File", "Label"}

func TestSlotAllocator_Place(t *testing.T) {
	s := NewSlotAllocator(slotHeader, "File", LayoutValueLabel, LabelBasename)
	record := []string{"t", "", "", "n", "", ""}

	next, err := s.Place(record, 0, AssetDescriptor{Filename: "reel01.mov", ParentIdentifier: "umd:5", ResolvedPath: "umd_1/umd_5/reel01.mov"})
	require.NoError(t, err)
	assert.Equal(t, 3, next)

	next, err = s.Place(record, next, AssetDescriptor{Filename: "reel02.mov", ParentIdentifier: "umd:6", ResolvedPath: "umd_1/umd_6/reel02.mov"})
	require.NoError(t, err)
	assert.Equal(t, 6, next)

	assert.Equal(t, []string{"t", "umd_1/umd_5/reel01.mov", "reel01", "n", "umd_1/umd_6/reel02.mov", "reel02"}, record)

	_, err = s.Place(record, next, AssetDescriptor{Filename: "reel03.mov"})
	assert.True(t, errors.Is(err, ErrNoAvailableSlot))
}

func TestSlotAllocator_LabelPolicy(t *testing.T) {
	asset := AssetDescriptor{Filename: "reel01.mov", ParentIdentifier: "umd:5", ResolvedPath: "/x/umd_1/umd_5/reel01.mov"}

	assert.Equal(t, "umd:5", LabelParent.Value(asset))
	assert.Equal(t, "reel01", LabelBasename.Value(asset))
	assert.Equal(t, "umd:5", LabelPolicy("").Value(asset))
}

func TestSlotAllocator_LabelValueLayout(t *testing.T) {
	header := []string{"Label", "File", "Title", "Label", "File"}
	s := NewSlotAllocator(header, "File", LayoutLabelValue, LabelParent)
	record := make([]string, len(header))

	next, err := s.Place(record, 0, AssetDescriptor{ParentIdentifier: "umd:5", ResolvedPath: "a.mov"})
	require.NoError(t, err)
	assert.Equal(t, 2, next)

	next, err = s.Place(record, next, AssetDescriptor{ParentIdentifier: "umd:6", ResolvedPath: "b.mov"})
	require.NoError(t, err)
	assert.Equal(t, 5, next)

	assert.Equal(t, []string{"umd:5", "a.mov", "", "umd:6", "b.mov"}, record)
}

// Adjacent File columns in label-value layout: the second File column's label
// is the first File column, which already holds a path.
func TestSlotAllocator_LabelValueAdjacentSlots(t *testing.T) {
	s := NewSlotAllocator([]string{"Label", "File", "File"}, "File", LayoutLabelValue, LabelBasename)
	record := make([]string, 3)

	next, err := s.Place(record, 0, AssetDescriptor{ResolvedPath: "x/a.mov"})
	require.NoError(t, err)
	assert.Equal(t, 2, next)

	_, err = s.Place(record, next, AssetDescriptor{ResolvedPath: "x/b.mov"})
	assert.ErrorIs(t, err, ErrNoAvailableSlot)
	assert.Equal(t, []string{"a", "x/a.mov", ""}, record)
	assert.Equal(t, 1, s.Capacity())
}

func TestSlotAllocator_TrailingSlotWithoutLabel(t *testing.T) {
	s := NewSlotAllocator([]string{"Title", "File"}, "File", LayoutValueLabel, LabelBasename)
	record := []string{"t", ""}

	_, err := s.Place(record, 0, AssetDescriptor{ResolvedPath: "a.mov"})
	assert.ErrorIs(t, err, ErrNoAvailableSlot)
	assert.Equal(t, []string{"t", ""}, record)
}

func TestSlotAllocator_Capacity(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		layout SlotLayout
		want   int
	}{
		{"TwoPairs", slotHeader, LayoutValueLabel, 2},
		{"None", []string{"Title"}, LayoutValueLabel, 0},
		{"TrailingFile", []string{"File", "Label", "File"}, LayoutValueLabel, 1},
		{"LeadingFileLabelFirst", []string{"File", "Label", "File"}, LayoutLabelValue, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlotAllocator(tt.header, "File", tt.layout, LabelBasename)
			assert.Equal(t, tt.want, s.Capacity())
		})
	}
}
