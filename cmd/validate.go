package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scholardata/scholartab/pipeline"
	"github.com/scholardata/scholartab/record"
	"github.com/scholardata/scholartab/source"
)

var (
	validateSourcesDir string
	validateSuffix     string
	validateQuiet      bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Report per-record data-quality findings without writing output",
	Long: `Validate normalizes every institution export and reports which records
would be rejected by the pipeline and why, without writing any tables.

Exits non-zero when any record fails identity validation.

Examples:
  scholartab validate --sources ./tag_data
  scholartab validate --sources ./tag_data --quiet`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateSourcesDir, "sources", "s", "", "Directory of per-institution JSON exports (required)")
	validateCmd.Flags().StringVar(&validateSuffix, "source-suffix", pipeline.DefaultSourceSuffix, "Trailing marker stripped from source file names")
	validateCmd.Flags().BoolVarP(&validateQuiet, "quiet", "q", false, "Only print the summary line")
	_ = validateCmd.MarkFlagRequired("sources")
}

func runValidate(cmd *cobra.Command, args []string) error {
	var stats pipeline.Stats

	sources, err := pipeline.ReadSources(validateSourcesDir, validateSuffix, &stats)
	if err != nil {
		return err
	}

	errorCount := 0
	warningCount := 0

	for _, src := range sources {
		for i, rec := range pipeline.NormalizeSource(src, source.DefaultRegistry, &stats) {
			result := record.Validate(rec)
			errorCount += len(result.Errors)
			warningCount += len(result.Warnings)

			if validateQuiet {
				continue
			}
			name := rec.FullName
			if name == "" {
				name = fmt.Sprintf("record %d", i)
			}
			for _, e := range result.Errors {
				fmt.Printf("ERROR   %s: %s: %s\n", src.Institution, name, e.Error())
			}
			for _, w := range result.Warnings {
				fmt.Printf("WARNING %s: %s: %s\n", src.Institution, name, w.Error())
			}
		}
	}

	fmt.Fprintf(os.Stderr, "Validated %d records from %d institutions: %d errors, %d warnings\n",
		stats.RecordsCleaned, stats.Institutions, errorCount, warningCount)

	if errorCount > 0 {
		return fmt.Errorf("%d records failed validation", errorCount)
	}
	return nil
}
