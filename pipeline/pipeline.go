// Package pipeline runs the batch transform from raw institution exports to
// the two relational output tables: normalize, resolve identity, resolve
// tags, project.
package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/scholardata/scholartab/record"
	"github.com/scholardata/scholartab/source"
	"github.com/scholardata/scholartab/tabular"
	"github.com/scholardata/scholartab/tagindex"
)

// Options configures a pipeline run.
type Options struct {
	// SourcesDir is the directory of per-institution JSON exports
	SourcesDir string

	// SourceSuffix is the trailing marker stripped from file names to get
	// the institution name (e.g., "_tag_data")
	SourceSuffix string

	// Index is the tag vocabulary index; required for Run
	Index *tagindex.Index

	// Registry is the adapter registry; defaults to source.DefaultRegistry
	Registry *source.Registry
}

// DefaultSourceSuffix is the trailing marker on institution export files.
const DefaultSourceSuffix = "_tag_data"

// Sourced is one institution's raw records in input order.
type Sourced struct {
	Institution string
	SourceFile  string
	Records     []map[string]any
}

// Identified is a canonical record that passed identity resolution.
type Identified struct {
	Record     *record.Record
	PrimaryKey string
	TagIDs     []tagindex.ResolvedTag
}

// Result is the output of a full pipeline run.
type Result struct {
	Profiles []tabular.ProfileRow
	Tags     []tabular.TagRow
	Stats    Stats
	Findings Findings
}

// Run executes the full pipeline over a source directory.
func Run(opts Options) (*Result, error) {
	if opts.Index == nil {
		return nil, fmt.Errorf("tag index is required")
	}
	registry := opts.Registry
	if registry == nil {
		registry = source.DefaultRegistry
	}

	result := &Result{}
	stats := &result.Stats
	findings := &result.Findings

	sources, err := ReadSources(opts.SourcesDir, opts.SourceSuffix, stats)
	if err != nil {
		return nil, err
	}

	var records []*record.Record
	for _, src := range sources {
		records = append(records, NormalizeSource(src, registry, stats)...)
	}

	identified := Identify(records, stats, findings)
	identified = ResolveTags(identified, opts.Index, stats, findings)
	result.Profiles, result.Tags = Project(identified, stats, findings)

	return result, nil
}

// ReadSources loads every institution export from dir in lexical file
// order. A missing or unreadable directory is fatal, as is a file that does
// not parse as JSON at the top level; non-object entries inside a file are
// counted and skipped.
func ReadSources(dir, suffix string, stats *Stats) ([]Sourced, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading sources directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("no source files in %s", dir)
	}

	var sources []Sourced
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading source file %s: %w", name, err)
		}

		records, malformed, err := source.DecodeFile(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", name, err)
		}

		stats.Institutions++
		stats.RecordsRead += len(records) + malformed
		stats.RecordsMalformed += malformed

		sources = append(sources, Sourced{
			Institution: source.Institution(name, suffix),
			SourceFile:  name,
			Records:     records,
		})
	}

	return sources, nil
}

// NormalizeSource projects one institution's raw records into canonical
// records. The adapter is detected once per file from the first record.
func NormalizeSource(src Sourced, registry *source.Registry, stats *Stats) []*record.Record {
	if len(src.Records) == 0 {
		return nil
	}

	adapter, err := registry.Detect(src.Records[0])
	if err != nil {
		// No adapters registered at all; treat every record as malformed.
		slog.Warn("no adapter for source", "institution", src.Institution, "error", err)
		stats.RecordsMalformed += len(src.Records)
		return nil
	}
	slog.Debug("detected adapter", "institution", src.Institution, "adapter", adapter.Name())

	records := make([]*record.Record, 0, len(src.Records))
	for _, raw := range src.Records {
		rec := adapter.Normalize(raw)
		rec.Institution = src.Institution
		records = append(records, rec)
		stats.RecordsCleaned++
	}
	return records
}
