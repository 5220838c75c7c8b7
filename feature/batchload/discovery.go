package batchload

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"media-batchload/core/reconcile"
	"media-batchload/core/storage"
	"media-batchload/core/utils"

	"github.com/minio/minio-go/v7"
)

// ReadFeed parses a line-oriented discovery feed. Each line holds a path,
// optionally followed by delim and a byte size. Blank lines are ignored and
// an unparsable or negative size leaves the size unknown.
func ReadFeed(r io.Reader, delim string) ([]reconcile.RawPath, error) {
	var paths []reconcile.RawPath

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		raw := reconcile.RawPath{Path: strings.TrimSpace(line)}
		if delim != "" {
			if p, s, found := strings.Cut(line, delim); found {
				raw.Path = strings.TrimSpace(p)
				if n, ok := utils.ToInt64(s); ok && n >= 0 {
					raw.Size = &n
				}
			}
		}
		paths = append(paths, raw)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read discovery feed: %w", err)
	}

	return paths, nil
}

// ListBucket builds a discovery feed from every object under prefix.
// Object keys become paths and object sizes become byte sizes.
func ListBucket(ctx context.Context, client storage.Client, bucket, prefix string) ([]reconcile.RawPath, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}

	var paths []reconcile.RawPath
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects in %s/%s: %w", bucket, prefix, obj.Err)
		}
		// Skip folder markers
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		raw := reconcile.RawPath{Path: obj.Key}
		if obj.Size >= 0 {
			size := obj.Size
			raw.Size = &size
		}
		paths = append(paths, raw)
	}

	return paths, nil
}
