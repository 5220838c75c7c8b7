package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"

	"media-batchload/core/database"
	"media-batchload/core/reconcile"
	"media-batchload/core/storage"
	"media-batchload/feature/batchload"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// Flags for enrich command
	enrichFiles        string
	enrichFeedObject   string
	enrichBucketPrefix string
	enrichInput        string
	enrichOutput       string
	enrichSQL          bool
	enrichUpload       string
)

// enrichCmd joins a catalog with the discovered digitized files.
var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Add file paths and access notes to a catalog batch",
	Long: `Reads the list of discovered files and the catalog table, and writes the
catalog with every record's files placed in its File/Label columns and the
Note Type, Note and Offset columns appended.

The batch is all or nothing: the first record without a governing identifier
or without a free File column aborts the run and nothing is written.

Examples:
  # File list on disk, catalog on stdin, enriched catalog on stdout
  enrich --files files.txt < batch.csv > enriched.csv

  # Discover files in the storage bucket and read the catalog from the database
  enrich --bucket-prefix av/2024/ --sql --output enriched.csv`,
	RunE: runEnrich,
}

func init() {
	enrichCmd.Flags().StringVar(&enrichFiles, "files", "", "Discovery feed file: one path per line, optionally followed by a size")
	enrichCmd.Flags().StringVar(&enrichFeedObject, "feed-object", "", "Discovery feed stored as an object in the bucket")
	enrichCmd.Flags().StringVar(&enrichBucketPrefix, "bucket-prefix", "", "Discover files by listing the bucket under this prefix")
	enrichCmd.Flags().StringVarP(&enrichInput, "input", "i", "-", "Catalog CSV (- for stdin)")
	enrichCmd.Flags().StringVarP(&enrichOutput, "output", "o", "-", "Enriched catalog CSV (- for stdout)")
	enrichCmd.Flags().BoolVar(&enrichSQL, "sql", false, "Read the catalog from the database using batch.catalog_query")
	enrichCmd.Flags().StringVar(&enrichUpload, "upload", "", "Also store the enriched catalog in the bucket under this name")

	RootCmd.AddCommand(enrichCmd)
}

func runEnrich(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	useBucket := cmd.Flags().Changed("bucket-prefix") || enrichFeedObject != "" || enrichUpload != ""
	if enrichFiles == "" && !useBucket {
		return fmt.Errorf("one of --files, --feed-object or --bucket-prefix is required")
	}

	var client storage.Client
	if useBucket {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		client = c
	}

	var db *gorm.DB
	if enrichSQL {
		if db, err = database.Connect(cfg.Database); err != nil {
			return err
		}
	}

	svc := batchload.NewService(client, cfg.Storage, db, cfg.Batch, l)

	index, err := buildEnrichIndex(ctx, svc)
	if err != nil {
		return err
	}

	var catalog batchload.Catalog
	if enrichSQL {
		catalog, err = svc.SQLCatalog(ctx)
	} else {
		in, openErr := openInput(enrichInput)
		if openErr != nil {
			return openErr
		}
		defer in.Close()
		catalog, err = batchload.NewCSVCatalog(in)
	}
	if err != nil {
		return err
	}
	defer catalog.Close()

	var out bytes.Buffer
	summary, err := svc.Enrich(ctx, index, catalog, &out)
	if err != nil {
		return err
	}

	if err := writeOutput(enrichOutput, out.Bytes()); err != nil {
		return err
	}
	if enrichUpload != "" {
		if err := svc.Upload(ctx, enrichUpload, out.Bytes()); err != nil {
			return err
		}
	}

	l.Info("Enrichment summary", zap.Stringer("summary", summary))
	return nil
}

func buildEnrichIndex(ctx context.Context, svc *batchload.Service) (*reconcile.AssetIndex, error) {
	switch {
	case enrichFiles != "":
		in, err := openInput(enrichFiles)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		return svc.FeedIndex(in)
	case enrichFeedObject != "":
		return svc.ObjectFeedIndex(ctx, enrichFeedObject)
	default:
		return svc.BucketIndex(ctx, enrichBucketPrefix)
	}
}
