// Package reconcile joins catalog records with digitized asset files and
// injects the file references into reserved slot columns of each record.
//
// Records come from a cataloging system as rows of a table; assets come from
// an independent discovery pass over storage. Both carry a hierarchical
// identifier: records list it in one of their "Other Identifier" columns,
// assets embed it in their path (with ':' encoded as '_').
//
// # Architecture
//
// The package consists of four components:
//
// 1. IndexBuilder: parses discovered paths into AssetDescriptors and groups
// them by governing identifier into a read-only AssetIndex.
//
// 2. Classifier: applies ordered (pattern, label) rules to identifier columns
// and writes the label into the column preceding each identifier.
//
// 3. SlotAllocator: finds the next reserved (File, label) column pair from a
// cursor and writes an asset reference into it.
//
// 4. Engine: per-record orchestration. It locates the governing identifier,
// orders the matching assets, drives the allocator, appends the access note
// and offset columns and keeps running totals.
//
// # Failure Semantics
//
// A record without a governing identifier, or with more assets than free
// slots, is fatal for the whole batch. Callers should stop at the first
// RecordError. Unmatched paths, unmatched identifiers and records without
// assets are tolerated silently.
//
// # Usage Example
//
//	builder, err := reconcile.NewIndexBuilder(policy)
//	index := builder.Build(paths)
//
//	engine, err := reconcile.NewEngine(header, index, policy, logger)
//	for n, record := range records {
//	    out, err := engine.Process(n+2, record)
//	    ...
//	}
//	log.Info("done", zap.Stringer("summary", engine.Summary()))
package reconcile
