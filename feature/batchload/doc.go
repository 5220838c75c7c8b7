// Package batchload runs catalog enrichment batches.
//
// It reads the asset discovery feed (a text file, a feed object in the
// bucket, or a recursive bucket listing), reads the catalog (CSV or a SQL
// query), drives the reconcile engine over every record and writes the
// enriched CSV. A batch is all or nothing: the first fatal record error
// aborts it before anything is written.
//
// The same service backs the HTTP routes under /batch.
package batchload
