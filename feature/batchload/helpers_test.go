package batchload

import (
	"io"
	"strings"

	"media-batchload/core/reconcile"
	"media-batchload/core/storage"
	"media-batchload/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const catalogCSV = "Title,Other Identifier Type,Other Identifier,Terms of Use,File,Label,File,Label\n" +
	"Reel,,umd:1,campus,,,,\n" +
	"Tape,,umd:2,,,,,\n"

func testConfig() reconcile.Config {
	return reconcile.Config{
		PathPattern:      "(?:.*/)?(umd_[0-9]+)/(umd_[0-9]+)/([^/]+)$",
		SeparatorFrom:    "_",
		SeparatorTo:      ":",
		NamespacePrefix:  "umd:",
		IdentifierHeader: "Other Identifier",
		SlotHeader:       "File",
		TermsHeader:      "Terms of Use",
		CampusFlag:       "campus",
		AccessCampus:     "Campus only",
		AccessPublic:     "Public",
		NoteType:         "access",
		LabelPolicy:      "basename",
		SlotLayout:       "value-label",
		FeedDelimiter:    "\t",
		IDMappings:       []reconcile.Rule{{Pattern: "umd:", Label: "fedora2"}},
		CacheTTLSeconds:  60,
	}
}

func objects(infos ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(infos))
	for _, info := range infos {
		ch <- info
	}
	close(ch)
	return ch
}

func newTestService(client *mocks.Client) *Service {
	if client == nil {
		return NewService(nil, storage.Config{Bucket: "binaries"}, nil, testConfig(), zap.NewNop())
	}
	return NewService(client, storage.Config{Bucket: "binaries"}, nil, testConfig(), zap.NewNop())
}

func expectListing(client *mocks.Client, prefix string, infos ...minio.ObjectInfo) {
	client.On("BucketExists", mock.Anything, "binaries").Return(true, nil).Once()
	client.On("ListObjects", mock.Anything, "binaries", minio.ListObjectsOptions{Prefix: prefix, Recursive: true}).
		Return(objects(infos...)).Once()
}


func readCloser(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}
