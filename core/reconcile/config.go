package reconcile

// Config holds the batch settings loaded by core/config.
type Config struct {
	// PathPattern extracts container, sub-item and filename from discovered paths.
	PathPattern string `mapstructure:"path_pattern" default:"(?:.*/)?(umd_[0-9]+)/(umd_[0-9]+)/([^/]+)$"`
	// BinariesLocation is prepended to every resolved path.
	BinariesLocation string `mapstructure:"binaries_location" default:""`
	// SeparatorFrom and SeparatorTo undo the filesystem-safe identifier encoding.
	SeparatorFrom string `mapstructure:"separator_from" default:"_"`
	SeparatorTo   string `mapstructure:"separator_to" default:":"`
	// NamespacePrefix marks the governing identifier.
	NamespacePrefix  string `mapstructure:"namespace_prefix" default:"umd:"`
	IdentifierHeader string `mapstructure:"identifier_header" default:"Other Identifier"`
	SlotHeader       string `mapstructure:"slot_header" default:"File"`
	TermsHeader      string `mapstructure:"terms_header" default:"Terms of Use"`
	// CampusFlag is the terms-of-use value restricting access to campus.
	CampusFlag   string `mapstructure:"campus_flag" default:"campus"`
	AccessCampus string `mapstructure:"access_campus" default:"Access to this item is restricted to campus."`
	AccessPublic string `mapstructure:"access_public" default:"Access to this item is public."`
	NoteType     string `mapstructure:"note_type" default:"access"`
	// Offset is written into the Offset column of every record when set.
	Offset      string `mapstructure:"offset" default:""`
	LabelPolicy string `mapstructure:"label_policy" default:"basename"`
	SlotLayout  string `mapstructure:"slot_layout" default:"value-label"`
	// FeedDelimiter separates a path from its size in discovery feeds.
	FeedDelimiter string `mapstructure:"feed_delimiter" default:"\t"`
	// IDMappings are the identifier classification rules, in order.
	IDMappings []Rule `mapstructure:"id_mappings"`
	// CatalogQuery selects catalog rows when reading from the database.
	CatalogQuery string `mapstructure:"catalog_query" default:""`
	// CacheTTLSeconds controls how long bucket listings are reused by the API.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// Policy converts the configuration into an engine policy.
func (c Config) Policy() Policy {
	label := LabelPolicy(c.LabelPolicy)
	if label != LabelParent {
		label = LabelBasename
	}
	layout := SlotLayout(c.SlotLayout)
	if layout != LayoutLabelValue {
		layout = LayoutValueLabel
	}

	return Policy{
		PathPattern:      c.PathPattern,
		LocationPrefix:   c.BinariesLocation,
		SeparatorFrom:    c.SeparatorFrom,
		SeparatorTo:      c.SeparatorTo,
		NamespacePrefix:  c.NamespacePrefix,
		IdentifierHeader: c.IdentifierHeader,
		SlotHeader:       c.SlotHeader,
		TermsHeader:      c.TermsHeader,
		RestrictedMarker: c.CampusFlag,
		RestrictedNote:   c.AccessCampus,
		PublicNote:       c.AccessPublic,
		NoteType:         c.NoteType,
		Offset:           c.Offset,
		Rules:            c.IDMappings,
		Label:            label,
		Layout:           layout,
	}
}
