package reconcile

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// AssetIndex maps governing identifiers to the assets discovered for them.
// It is built once by an IndexBuilder and is read-only afterwards.
type AssetIndex struct {
	entries map[string][]AssetDescriptor
	assets  int
	skipped int
}

// Ordered returns a sorted copy of the assets indexed under identifier.
// Unknown identifiers yield an empty slice.
func (x *AssetIndex) Ordered(identifier string) []AssetDescriptor {
	found := x.entries[identifier]
	ordered := make([]AssetDescriptor, len(found))
	copy(ordered, found)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].less(ordered[j])
	})
	return ordered
}

// Identifiers returns all governing identifiers in sorted order.
func (x *AssetIndex) Identifiers() []string {
	ids := make([]string, 0, len(x.entries))
	for id := range x.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of governing identifiers in the index.
func (x *AssetIndex) Len() int {
	return len(x.entries)
}

// Assets returns the number of indexed descriptors.
func (x *AssetIndex) Assets() int {
	return x.assets
}

// Skipped returns the number of feed entries that did not match the path pattern.
func (x *AssetIndex) Skipped() int {
	return x.skipped
}

// IndexBuilder parses discovery feed entries into asset descriptors.
type IndexBuilder struct {
	pattern *regexp.Regexp
	prefix  string
	from    string
	to      string
}

// NewIndexBuilder compiles the policy's path pattern. The pattern is matched
// at the start of the path and must have at least three capture groups.
func NewIndexBuilder(policy Policy) (*IndexBuilder, error) {
	re, err := regexp.Compile("^(?:" + policy.PathPattern + ")")
	if err != nil {
		return nil, fmt.Errorf("invalid path pattern %q: %w", policy.PathPattern, err)
	}
	if re.NumSubexp() < 3 {
		return nil, fmt.Errorf("path pattern %q needs 3 capture groups, has %d", policy.PathPattern, re.NumSubexp())
	}

	return &IndexBuilder{
		pattern: re,
		prefix:  strings.TrimRight(policy.LocationPrefix, "/"),
		from:    policy.SeparatorFrom,
		to:      policy.SeparatorTo,
	}, nil
}

// Parse extracts the governing identifier and descriptor from a feed entry.
// ok is false when the path does not match the pattern.
func (b *IndexBuilder) Parse(raw RawPath) (governing string, asset AssetDescriptor, ok bool) {
	m := b.pattern.FindStringSubmatch(raw.Path)
	if m == nil {
		return "", AssetDescriptor{}, false
	}
	container, item, filename := m[1], m[2], m[3]

	resolved := container + "/" + item + "/" + filename
	if b.prefix != "" {
		resolved = b.prefix + "/" + resolved
	}

	asset = AssetDescriptor{
		Filename:         filename,
		ParentIdentifier: b.canonical(item),
		ResolvedPath:     resolved,
		SizeBytes:        raw.Size,
	}
	return b.canonical(container), asset, true
}

// Build indexes every matching entry of the feed. Entries that do not match
// are dropped silently; duplicates are kept.
func (b *IndexBuilder) Build(paths []RawPath) *AssetIndex {
	index := &AssetIndex{entries: make(map[string][]AssetDescriptor)}
	for _, raw := range paths {
		governing, asset, ok := b.Parse(raw)
		if !ok {
			index.skipped++
			continue
		}
		index.entries[governing] = append(index.entries[governing], asset)
		index.assets++
	}
	return index
}

func (b *IndexBuilder) canonical(id string) string {
	if b.from == "" {
		return id
	}
	return strings.ReplaceAll(id, b.from, b.to)
}
