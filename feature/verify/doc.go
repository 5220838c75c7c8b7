// Package verify checks that a loaded batch reached the media repository.
//
// It reads the batch manifest, fetches the repository's media objects from
// its Solr index and reports, row by row, which media objects carry the
// row's pid, with their public URLs and part counts.
package verify
