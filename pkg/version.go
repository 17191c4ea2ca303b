// Package gnt2t decorates phylogenetic trees with taxonomic names taken
// from noisy per-tip classification strings.
package gnt2t

var (
	// Version of gnt2t, set during build.
	Version = "v0.1.0"
	// Build timestamp, set during build.
	Build = "n/a"
)
