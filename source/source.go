// Package source defines the interface for institution export adapters and
// the decoding of raw export files into untyped records.
package source

import (
	"path/filepath"
	"strings"

	"github.com/scholardata/scholartab/record"
)

// Adapter normalizes one institution export shape into canonical records.
type Adapter interface {
	// Name returns the adapter identifier (e.g., "standard", "portal")
	Name() string

	// Description returns a human-readable description of the source shape
	Description() string

	// Detect returns true if this adapter recognizes the given sample record
	Detect(sample map[string]any) bool

	// Normalize projects one raw record into the canonical schema. It is a
	// pure function: missing source fields become empty canonical fields,
	// never an error.
	Normalize(raw map[string]any) *record.Record
}

// FallbackAdapter is the adapter used when no fingerprint matches.
const FallbackAdapter = "standard"

// Institution derives the institution name from a source file path: the
// file name without extension, with the trailing marker suffix stripped.
// The suffix match is exact and case-sensitive.
func Institution(path, suffix string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if suffix != "" {
		name = strings.TrimSuffix(name, suffix)
	}
	return name
}
