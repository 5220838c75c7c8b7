// Package server holds the HTTP server configuration.
//
// The serve command exposes the batch loader over HTTP; this package defines
// its listen port and API key and is embedded into core/config.
package server
