package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/scholardata/scholartab/pipeline"
	"github.com/scholardata/scholartab/record"
	"github.com/scholardata/scholartab/source"
)

var (
	cleanSourcesDir string
	cleanOutputFile string
	cleanSuffix     string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Normalize institution exports into canonical JSON",
	Long: `Clean runs only the normalize stage and emits the canonical records as
JSON keyed by institution, without identity or tag resolution. Useful for
inspecting what the adapters made of each source shape.

Output defaults to stdout.

Examples:
  scholartab clean --sources ./tag_data
  scholartab clean --sources ./tag_data -o cleaned_data.json`,
	RunE: runClean,
}

// cleanedSource mirrors one institution in the cleaned JSON output.
type cleanedSource struct {
	SourceFile string           `json:"source_file"`
	TotalItems int              `json:"total_items"`
	Profiles   []*record.Record `json:"profiles"`
}

func init() {
	cleanCmd.Flags().StringVarP(&cleanSourcesDir, "sources", "s", "", "Directory of per-institution JSON exports (required)")
	cleanCmd.Flags().StringVarP(&cleanOutputFile, "output", "o", "", "Output file (default: stdout)")
	cleanCmd.Flags().StringVar(&cleanSuffix, "source-suffix", pipeline.DefaultSourceSuffix, "Trailing marker stripped from source file names")
	_ = cleanCmd.MarkFlagRequired("sources")
}

func runClean(cmd *cobra.Command, args []string) (err error) {
	var stats pipeline.Stats

	sources, err := pipeline.ReadSources(cleanSourcesDir, cleanSuffix, &stats)
	if err != nil {
		return err
	}

	cleaned := make(map[string]cleanedSource, len(sources))
	for _, src := range sources {
		cleaned[src.Institution] = cleanedSource{
			SourceFile: src.SourceFile,
			TotalItems: len(src.Records),
			Profiles:   pipeline.NormalizeSource(src, source.DefaultRegistry, &stats),
		}
	}

	var output io.Writer = os.Stdout
	if cleanOutputFile != "" {
		f, err := os.Create(cleanOutputFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		output = f
	}

	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(cleaned); err != nil {
		return fmt.Errorf("writing cleaned data: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Cleaned %d records from %d institutions (%d malformed)\n",
		stats.RecordsCleaned, stats.Institutions, stats.RecordsMalformed)
	return nil
}
