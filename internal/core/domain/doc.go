// Package domain defines the core business entities for kioku.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - VideoRecord: A video in the knowledge base with optional overrides
//   - Snapshot: Decoded records plus a LoadReport of malformed input
//   - SearchResult: A scored hit
//   - AppSettings: User configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
package domain
