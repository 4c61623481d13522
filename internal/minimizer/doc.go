// Package minimizer selects window minima from a stream of canonical values.
//
// It depends only on kmer; keep it free of I/O, CLI and encoding concerns.
package minimizer
