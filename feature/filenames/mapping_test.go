package filenames

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapper_MapNames(t *testing.T) {
	input := "streaming_master,umdm,umam\n" +
		"reel1.mov,umd:1,umd:10\n" +
		"reel2.mov,umd:1,umd:11\n" +
		"tape.wav,umd:2,umd:12\n" +
		"reel3.mov,umd:1,umd:13\n"

	var out bytes.Buffer
	n, err := NewMapper("lms", 1).MapNames(strings.NewReader(input), &out)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	want := "umdm,umam,old_name_base,new_name_base\n" +
		"umd:1,umd:10,reel1,umd_1/umd_10/lms-000001-0001\n" +
		"umd:1,umd:11,reel2,umd_1/umd_11/lms-000001-0002\n" +
		"umd:2,umd:12,tape,umd_2/umd_12/lms-000003-0001\n" +
		"umd:1,umd:13,reel3,umd_1/umd_13/lms-000001-0003\n"
	assert.Equal(t, want, out.String())
}

func TestMapper_Base(t *testing.T) {
	m := NewMapper("univarch", 500)

	first := m.Next("dir/a.b.mov", "umd:7", "")
	assert.Equal(t, "dir/a.b", first.OldNameBase)
	assert.Equal(t, "umd_7/univarch-000500-0001", first.NewNameBase)

	second := m.Next("c.mov", "umd:8", "umd:9")
	assert.Equal(t, "umd_8/umd_9/univarch-000501-0001", second.NewNameBase)
}

func TestMapper_MissingColumn(t *testing.T) {
	_, err := NewMapper("lms", 1).MapNames(strings.NewReader("umdm,umam\numd:1,umd:2\n"), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "streaming_master")
}
