// Package logger provides a structured logging facility based on Zap.
//
// Logs are diagnostics only: they are written to stderr so that the enriched
// catalog on stdout stays clean.
//
// # Context Awareness
//
// Batch runs attach a run_id field to every entry. HTTP requests carry a
// RayID (Request ID); WithRayID extracts it from a Fiber context and attaches
// it to the log entry so that all logs of a request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Batch started", zap.String("run_id", runID))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Enrichment failed", zap.Error(err))
package logger
