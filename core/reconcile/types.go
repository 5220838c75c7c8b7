package reconcile

import "fmt"

// AssetDescriptor represents one digitized file discovered on storage.
// Descriptors are created once while the index is built and never modified.
type AssetDescriptor struct {
	// Filename is the basename of the discovered path.
	Filename string `json:"filename"`

	// ParentIdentifier is the identifier of the immediate container of the
	// file (e.g., the reel or part), with the canonical separator restored.
	ParentIdentifier string `json:"parent_identifier"`

	// ResolvedPath is the storage path written into the catalog record.
	ResolvedPath string `json:"resolved_path"`

	// SizeBytes is only set when the discovery feed supplies file sizes.
	SizeBytes *int64 `json:"size_bytes,omitempty"`
}

// less orders descriptors by (filename, parent identifier, resolved path).
func (a AssetDescriptor) less(b AssetDescriptor) bool {
	if a.Filename != b.Filename {
		return a.Filename < b.Filename
	}
	if a.ParentIdentifier != b.ParentIdentifier {
		return a.ParentIdentifier < b.ParentIdentifier
	}
	return a.ResolvedPath < b.ResolvedPath
}

// RawPath is a single entry of the asset discovery feed.
type RawPath struct {
	// Path is the discovered path as reported by the feed.
	Path string

	// Size is the byte size of the file, nil when the feed has none.
	Size *int64
}

// LabelPolicy selects what is written into the label column of a slot.
type LabelPolicy string

const (
	// LabelParent writes the asset's parent identifier.
	LabelParent LabelPolicy = "parent"
	// LabelBasename writes the extension-stripped basename of the resolved path.
	LabelBasename LabelPolicy = "basename"
)

// SlotLayout selects where the label column sits relative to the slot column.
type SlotLayout string

const (
	// LayoutValueLabel places the label column directly after the slot column.
	LayoutValueLabel SlotLayout = "value-label"
	// LayoutLabelValue places the label column directly before the slot column.
	LayoutLabelValue SlotLayout = "label-value"
)

// Rule maps identifier values matching Pattern to Label.
type Rule struct {
	Pattern string `mapstructure:"pattern" json:"pattern"`
	Label   string `mapstructure:"label" json:"label"`
}

// Policy is the injected configuration for one reconciliation run.
type Policy struct {
	// PathPattern extracts (container, sub-item, filename) from a discovered path.
	PathPattern string
	// LocationPrefix is prepended to every resolved path when non-empty.
	LocationPrefix string
	// SeparatorFrom is the filesystem-safe stand-in for SeparatorTo in paths.
	SeparatorFrom string
	SeparatorTo   string

	// NamespacePrefix marks the governing identifier among identifier columns.
	NamespacePrefix string
	// IdentifierHeader is the header name of identifier-bearing columns.
	IdentifierHeader string
	// SlotHeader is the header name of reserved slot columns.
	SlotHeader string
	// TermsHeader is the header name of the terms-of-use column.
	TermsHeader string

	RestrictedMarker string
	RestrictedNote   string
	PublicNote       string
	NoteType         string

	// Offset is appended verbatim; empty means an empty placeholder.
	Offset string

	Rules  []Rule
	Label  LabelPolicy
	Layout SlotLayout
}

// ExtensionColumns are appended to the catalog schema at run start.
var ExtensionColumns = []string{"Note Type", "Note", "Offset"}

// Summary provides running totals for a reconciliation run.
type Summary struct {
	// Records counts processed catalog records.
	Records int `json:"records"`

	// Files counts asset references written into slots.
	Files int `json:"files"`

	// SizedFiles counts placed assets whose size was known.
	SizedFiles int `json:"sized_files"`

	// Bytes sums the sizes of placed assets whose size was known.
	Bytes int64 `json:"bytes"`

	// EmptyRecords counts records with no matching assets.
	EmptyRecords int `json:"empty_records"`
}

// String renders a one-line summary for logs.
func (s Summary) String() string {
	return fmt.Sprintf("records=%d files=%d bytes=%d empty=%d", s.Records, s.Files, s.Bytes, s.EmptyRecords)
}
