package verify

// Config holds the search index settings used to verify loaded batches.
type Config struct {
	// SolrURL is the select handler of the media object core.
	SolrURL string `mapstructure:"solr_url" default:"http://localhost:8983/solr/avalon/select"`
	// MediaObjectURL is prepended to a media object id to build its public URL.
	MediaObjectURL string `mapstructure:"media_object_url" default:"https://av.lib.umd.edu/media_objects/"`
	// Rows caps the number of media objects fetched.
	Rows int `mapstructure:"rows" default:"100000"`
	// TimeoutSeconds bounds the index request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
