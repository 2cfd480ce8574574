package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/scholardata/scholartab/pipeline"
	"github.com/scholardata/scholartab/tabular"
	"github.com/scholardata/scholartab/tagindex"
)

var (
	exportSourcesDir string
	exportIndexFile  string
	exportOutDir     string
	exportSuffix     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run the full pipeline and write the relational CSV tables",
	Long: `Export runs the full pipeline: normalize every institution export,
resolve record identity (ORCID iD, else email), resolve tags against the
vocabulary index, and write academic_products.csv and tags.csv.

Individual invalid records are skipped and counted; the run only fails when
the sources directory or the index file is missing or unreadable.

Examples:
  scholartab export --sources ./tag_data --index ./index/index_en.json --out-dir ./output
  scholartab export --sources ./tag_data --index ./index/index_en.json --out-dir ./output --source-suffix _export`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportSourcesDir, "sources", "s", "", "Directory of per-institution JSON exports (required)")
	exportCmd.Flags().StringVarP(&exportIndexFile, "index", "x", "", "Tag vocabulary index file (required)")
	exportCmd.Flags().StringVarP(&exportOutDir, "out-dir", "o", ".", "Output directory for the CSV tables")
	exportCmd.Flags().StringVar(&exportSuffix, "source-suffix", pipeline.DefaultSourceSuffix, "Trailing marker stripped from source file names")
	_ = exportCmd.MarkFlagRequired("sources")
	_ = exportCmd.MarkFlagRequired("index")
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	index, err := tagindex.Load(exportIndexFile)
	if err != nil {
		return fmt.Errorf("loading tag index: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Loaded %d categories, %d subcategories\n",
		index.CategoryCount(), index.SubcategoryCount())

	result, err := pipeline.Run(pipeline.Options{
		SourcesDir:   exportSourcesDir,
		SourceSuffix: exportSuffix,
		Index:        index,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(exportOutDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := writeCSV(filepath.Join(exportOutDir, tabular.ProfilesFile), result.Profiles, tabular.WriteProfiles); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(exportOutDir, tabular.TagsFile), result.Tags, tabular.WriteTags); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, result.Stats.Summary())
	return nil
}

// writeCSV creates path and serializes rows into it, capturing close errors.
func writeCSV[T any](path string, rows []T, write func(w io.Writer, rows []T) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	if err := write(f, rows); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
