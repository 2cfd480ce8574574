// Package tabular serializes the two output relations as CSV, UTF-8 with a
// header row and standard quoting.
package tabular

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Output file names expected by the bulk-load step.
const (
	ProfilesFile = "academic_products.csv"
	TagsFile     = "tags.csv"
)

// ProfileRow is one row of the academic_products table. Profiles is a
// pre-serialized JSON blob of the non-key canonical fields.
type ProfileRow struct {
	ORCID        string
	Profiles     string
	Introduction string
}

// TagRow is one row of the tags table.
type TagRow struct {
	ORCID string
	TagID int
	SubID int
}

// WriteProfiles writes the academic_products relation.
func WriteProfiles(w io.Writer, rows []ProfileRow) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"orcid", "profiles", "introduction"}); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write([]string{row.ORCID, row.Profiles, row.Introduction}); err != nil {
			return err
		}
	}

	return writer.Error()
}

// WriteTags writes the tags relation.
func WriteTags(w io.Writer, rows []TagRow) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"orcid", "tag_id", "sub_id"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{row.ORCID, strconv.Itoa(row.TagID), strconv.Itoa(row.SubID)}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}
