package batchload

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"media-batchload/core/logger"
	"media-batchload/core/reconcile"
	"media-batchload/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs batch enrichment: it builds asset indices from discovery
// feeds, reads catalogs and writes enriched catalogs.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	db     *gorm.DB
	cfg    reconcile.Config
	cache  *reconcile.IndexCache
	logger *zap.Logger
}

// NewService creates a batch service. client and db may be nil when the
// corresponding sources are not used.
func NewService(client storage.Client, storageCfg storage.Config, db *gorm.DB, cfg reconcile.Config, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: storageCfg.Bucket,
		prefix: storageCfg.Prefix,
		db:     db,
		cfg:    cfg,
		cache:  reconcile.NewIndexCache(time.Duration(cfg.CacheTTLSeconds) * time.Second),
		logger: logger,
	}
}

// Policy returns the reconciliation policy in effect.
func (s *Service) Policy() reconcile.Policy {
	return s.cfg.Policy()
}

func (s *Service) buildIndex(paths []reconcile.RawPath) (*reconcile.AssetIndex, error) {
	builder, err := reconcile.NewIndexBuilder(s.Policy())
	if err != nil {
		return nil, err
	}
	index := builder.Build(paths)

	s.logger.Info("Asset index built",
		zap.Int("paths", len(paths)),
		zap.Int("identifiers", index.Len()),
		zap.Int("assets", index.Assets()),
	)
	return index, nil
}

// FeedIndex builds an asset index from a line-oriented discovery feed.
func (s *Service) FeedIndex(r io.Reader) (*reconcile.AssetIndex, error) {
	paths, err := ReadFeed(r, s.cfg.FeedDelimiter)
	if err != nil {
		return nil, err
	}
	return s.buildIndex(paths)
}

// ObjectFeedIndex builds an asset index from a discovery feed stored as an
// object in the bucket.
func (s *Service) ObjectFeedIndex(ctx context.Context, objectName string) (*reconcile.AssetIndex, error) {
	if s.client == nil {
		return nil, fmt.Errorf("no storage configured")
	}
	reader, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get feed object %s: %w", objectName, err)
	}
	defer reader.Close()

	return s.FeedIndex(reader)
}

// BucketIndex builds an asset index by listing the bucket under prefix
// (the configured prefix when empty). Listings are cached.
func (s *Service) BucketIndex(ctx context.Context, prefix string) (*reconcile.AssetIndex, error) {
	if s.client == nil {
		return nil, fmt.Errorf("no storage configured")
	}
	if prefix == "" {
		prefix = s.prefix
	}

	return s.cache.GetOrBuild(ctx, s.bucket+"|"+prefix, func(ctx context.Context) (*reconcile.AssetIndex, error) {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to check bucket existence: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("bucket %s does not exist", s.bucket)
		}

		paths, err := ListBucket(ctx, s.client, s.bucket, prefix)
		if err != nil {
			return nil, err
		}
		return s.buildIndex(paths)
	})
}

// SQLCatalog opens the configured catalog query.
func (s *Service) SQLCatalog(ctx context.Context) (Catalog, error) {
	return NewSQLCatalog(ctx, s.db, s.cfg.CatalogQuery)
}

// Enrich reconciles every record of catalog against index and writes the
// enriched table to w. Nothing is written unless every record succeeds.
func (s *Service) Enrich(ctx context.Context, index *reconcile.AssetIndex, catalog Catalog, w io.Writer) (reconcile.Summary, error) {
	l := logger.WithRunID(s.logger, uuid.NewString())

	engine, err := reconcile.NewEngine(catalog.Header(), index, s.Policy(), l)
	if err != nil {
		return reconcile.Summary{}, err
	}

	l.Info("Batch started",
		zap.Int("columns", len(engine.Header())),
		zap.Int("slots", engine.SlotCapacity()),
	)

	records := [][]string{engine.Header()}
	for {
		if err := ctx.Err(); err != nil {
			return engine.Summary(), err
		}

		record, row, err := catalog.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return engine.Summary(), err
		}

		out, err := engine.Process(row, record)
		if err != nil {
			l.Error("Batch aborted", zap.Error(err))
			return engine.Summary(), err
		}
		records = append(records, out)
	}

	writer := csv.NewWriter(w)
	if err := writer.WriteAll(records); err != nil {
		return engine.Summary(), fmt.Errorf("failed to write enriched catalog: %w", err)
	}

	summary := engine.Summary()
	l.Info("Batch complete",
		zap.Int("records", summary.Records),
		zap.Int("files", summary.Files),
		zap.Int64("bytes", summary.Bytes),
		zap.Int("empty_records", summary.EmptyRecords),
		zap.Int("unmatched_paths", index.Skipped()),
	)
	return summary, nil
}

// Upload stores an enriched catalog in the bucket.
func (s *Service) Upload(ctx context.Context, objectName string, data []byte) error {
	if s.client == nil {
		return fmt.Errorf("no storage configured")
	}
	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectName, err)
	}
	s.logger.Info("Uploaded enriched catalog", zap.String("object", objectName), zap.Int("bytes", len(data)))
	return nil
}
