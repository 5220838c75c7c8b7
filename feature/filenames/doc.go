// Package filenames enforces the digitized file naming convention.
//
// Files are named `<collection>-<autonumber>-<index>.<ext>`, where the
// autonumber identifies the governing object and the index numbers its files.
// The package validates existing names, assigns convention names to streaming
// masters, and renames files on disk from a mapping table.
package filenames
