// Package kmer turns a byte stream into per-position canonical window values.
//
// Encoders are rolling: each Push costs O(1) regardless of the window length.
// The package is domain-only; it never imports readers, writers or CLI code.
package kmer
