// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide the handful of operations the batch
// loader needs: listing digitized files (the asset discovery feed), reading
// feed files and storing enriched catalogs. This abstraction supports both
// AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - PutObject: Uploads an enriched catalog.
//   - GetObject: Retrieves a discovery feed as a stream.
//   - ListObjects: Lists digitized files with their sizes (prefix/recursive).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "binaries")
package storage
