package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/scholardata/scholartab/pipeline"
	"github.com/scholardata/scholartab/tagindex"
)

var (
	auditSourcesDir string
	auditIndexFile  string
	auditOutputFile string
	auditSuffix     string
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Write a data-quality workbook for a run",
	Long: `Audit runs the full pipeline without writing the CSV tables and produces
an XLSX workbook instead: a Summary sheet with every run counter, a
Rejections sheet listing each excluded record with its reason, and an
Unresolved Tags sheet listing every tag mention with no index entry.

Examples:
  scholartab audit --sources ./tag_data --index ./index/index_en.json -o quality.xlsx`,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVarP(&auditSourcesDir, "sources", "s", "", "Directory of per-institution JSON exports (required)")
	auditCmd.Flags().StringVarP(&auditIndexFile, "index", "x", "", "Tag vocabulary index file (required)")
	auditCmd.Flags().StringVarP(&auditOutputFile, "output", "o", "quality.xlsx", "Output workbook path")
	auditCmd.Flags().StringVar(&auditSuffix, "source-suffix", pipeline.DefaultSourceSuffix, "Trailing marker stripped from source file names")
	_ = auditCmd.MarkFlagRequired("sources")
	_ = auditCmd.MarkFlagRequired("index")
}

func runAudit(cmd *cobra.Command, args []string) error {
	index, err := tagindex.Load(auditIndexFile)
	if err != nil {
		return fmt.Errorf("loading tag index: %w", err)
	}

	result, err := pipeline.Run(pipeline.Options{
		SourcesDir:   auditSourcesDir,
		SourceSuffix: auditSuffix,
		Index:        index,
	})
	if err != nil {
		return err
	}

	if err := writeWorkbook(auditOutputFile, result); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Wrote %s: %d rejections, %d unresolved tag mentions\n",
		auditOutputFile, len(result.Findings.Rejections), len(result.Findings.Unresolved))
	return nil
}

func writeWorkbook(path string, result *pipeline.Result) error {
	f := excelize.NewFile()
	summary := f.GetSheetName(0)
	if err := f.SetSheetName(summary, "Summary"); err != nil {
		return err
	}

	stats := result.Stats
	counters := []struct {
		Name  string
		Value int
	}{
		{"Institutions processed", stats.Institutions},
		{"Records read", stats.RecordsRead},
		{"Records cleaned", stats.RecordsCleaned},
		{"Malformed records skipped", stats.RecordsMalformed},
		{"Rejected: no ORCID or email", stats.RejectedNoIdentity},
		{"Rejected: no email", stats.RejectedNoEmail},
		{"Rejected: no ORCID at export", stats.RejectedNoORCID},
		{"Rejected: duplicate ORCID", stats.RejectedDuplicate},
		{"Tag mentions resolved", stats.TagsResolved},
		{"Tag mentions unresolved", stats.TagsUnresolved},
		{"Profile rows", stats.ProfileRows},
		{"Tag rows", stats.TagRows},
	}
	for i, counter := range counters {
		setCell(f, "Summary", 1, i+1, counter.Name)
		setCell(f, "Summary", 2, i+1, counter.Value)
	}

	if _, err := f.NewSheet("Rejections"); err != nil {
		return err
	}
	headers := []string{"institution", "full_name", "email", "orcid", "reason"}
	for i, h := range headers {
		setCell(f, "Rejections", i+1, 1, h)
	}
	for i, rejection := range result.Findings.Rejections {
		r := i + 2
		setCell(f, "Rejections", 1, r, rejection.Institution)
		setCell(f, "Rejections", 2, r, rejection.FullName)
		setCell(f, "Rejections", 3, r, rejection.Email)
		setCell(f, "Rejections", 4, r, rejection.ORCID)
		setCell(f, "Rejections", 5, r, rejection.Reason)
	}

	if _, err := f.NewSheet("Unresolved Tags"); err != nil {
		return err
	}
	headers = []string{"institution", "primary_key", "category", "subcategory"}
	for i, h := range headers {
		setCell(f, "Unresolved Tags", i+1, 1, h)
	}
	for i, mention := range result.Findings.Unresolved {
		r := i + 2
		setCell(f, "Unresolved Tags", 1, r, mention.Institution)
		setCell(f, "Unresolved Tags", 2, r, mention.PrimaryKey)
		setCell(f, "Unresolved Tags", 3, r, mention.Category)
		setCell(f, "Unresolved Tags", 4, r, mention.Subcategory)
	}

	return f.SaveAs(path)
}

func setCell(f *excelize.File, sheet string, col, row int, value any) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	_ = f.SetCellValue(sheet, cell, value)
}
