// Package loader registers the HTTP features of the batch loader.
//
// A feature bundles a service with its routes and decides for itself whether
// it can run (the batch feature needs a storage client, the filenames
// feature a valid collection list). The serve command registers every
// feature with a Manager, which mounts the enabled ones in registration
// order and reports their names at startup.
package loader
