package config

import (
	"os"
	"path/filepath"
	"testing"

	"media-batchload/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "binaries", cfg.Storage.Bucket)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
	assert.Equal(t, "Other Identifier", cfg.Batch.IdentifierHeader)
	assert.Equal(t, "File", cfg.Batch.SlotHeader)
	assert.Equal(t, "umd:", cfg.Batch.NamespacePrefix)
	assert.Equal(t, "\t", cfg.Batch.FeedDelimiter)
	assert.Equal(t, 300, cfg.Batch.CacheTTLSeconds)
	assert.Empty(t, cfg.Batch.IDMappings)
	assert.Equal(t, "lms", cfg.Filenames.AutonumberPrefix)
	assert.Contains(t, cfg.Filenames.Collections, "univarch")
	assert.Equal(t, 1, cfg.Filenames.AutonumberBase)
	assert.Equal(t, "https://av.lib.umd.edu/media_objects/", cfg.Index.MediaObjectURL)
	assert.Equal(t, 100000, cfg.Index.Rows)
}

func TestLoadConfig_YAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
batch:
  binaries_location: /mnt/binaries
  campus_flag: UMD Campus Only
  access_campus: Campus access only
  access_public: Public access
  offset: "00:00:00"
  id_mappings:
    - pattern: "umd:"
      label: fedora2
    - pattern: "hdl:"
      label: handle
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BATCH_LABEL_POLICY=parent\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("BATCH_LABEL_POLICY") })
	t.Setenv("BATCH_NOTE_TYPE", "rights")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/mnt/binaries", cfg.Batch.BinariesLocation)
	assert.Equal(t, "00:00:00", cfg.Batch.Offset)
	assert.Equal(t, "rights", cfg.Batch.NoteType)
	assert.Equal(t, []reconcile.Rule{
		{Pattern: "umd:", Label: "fedora2"},
		{Pattern: "hdl:", Label: "handle"},
	}, cfg.Batch.IDMappings)

	policy := cfg.Batch.Policy()
	assert.Equal(t, reconcile.LabelParent, policy.Label)
	assert.Equal(t, "UMD Campus Only", policy.RestrictedMarker)
	assert.Equal(t, "Campus access only", policy.RestrictedNote)
	assert.Equal(t, "Public access", policy.PublicNote)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("batch: [unclosed"), 0o644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
