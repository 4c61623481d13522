// Package input loads the single sequence a run operates on.
//
// Both readers decompress transparently (gzip, xz, zstd, bzip2) and accept
// "-" for stdin. Empty input is an empty sequence, not an error.
package input
