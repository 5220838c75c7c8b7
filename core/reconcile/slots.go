package reconcile

import (
	"fmt"
	"path"
	"strings"
)

// Value returns the label written next to asset's path.
func (p LabelPolicy) Value(asset AssetDescriptor) string {
	if p == LabelBasename {
		base := path.Base(asset.ResolvedPath)
		return strings.TrimSuffix(base, path.Ext(base))
	}
	return asset.ParentIdentifier
}

// SlotAllocator writes asset references into reserved slot column pairs.
//
// The header doubles as the search key: slots are found by a linear scan for
// the first column named like the marker at or after a cursor. Threading the
// returned cursor through successive calls consumes pairs left to right.
type SlotAllocator struct {
	header []string
	marker string
	layout SlotLayout
	label  LabelPolicy
}

// NewSlotAllocator creates an allocator over header.
func NewSlotAllocator(header []string, marker string, layout SlotLayout, label LabelPolicy) *SlotAllocator {
	return &SlotAllocator{
		header: header,
		marker: marker,
		layout: layout,
		label:  label,
	}
}

// Capacity returns the number of usable slot pairs in the header.
func (s *SlotAllocator) Capacity() int {
	n := 0
	for cursor := 0; ; n++ {
		_, _, next, ok := s.find(cursor)
		if !ok {
			return n
		}
		cursor = next
	}
}

// Place writes asset into the next free slot at or after cursor and returns
// the cursor for the following call.
func (s *SlotAllocator) Place(record []string, cursor int, asset AssetDescriptor) (int, error) {
	value, label, next, ok := s.find(cursor)
	if !ok {
		return cursor, fmt.Errorf("%w: no %q column at or after column %d", ErrNoAvailableSlot, s.marker, cursor)
	}
	record[value] = asset.ResolvedPath
	record[label] = s.label.Value(asset)
	return next, nil
}

// find locates the next slot pair, returning the value and label column
// indexes and the cursor just past the pair.
func (s *SlotAllocator) find(cursor int) (value, label, next int, ok bool) {
	if cursor < 0 {
		cursor = 0
	}
	for i := cursor; i < len(s.header); i++ {
		if s.header[i] != s.marker {
			continue
		}
		if s.layout == LayoutLabelValue {
			// The label column precedes the value and must not be consumed yet.
			if i-1 < cursor {
				continue
			}
			return i, i - 1, i + 1, true
		}
		if i+1 >= len(s.header) {
			return 0, 0, 0, false
		}
		return i, i + 1, i + 2, true
	}
	return 0, 0, 0, false
}
