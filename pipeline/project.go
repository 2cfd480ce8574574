package pipeline

import (
	"encoding/json"

	"github.com/scholardata/scholartab/record"
	"github.com/scholardata/scholartab/tabular"
)

// Project splits the identified, tag-resolved record set into the two
// output relations. The profile table is keyed by ORCID, so email-keyed
// records are dropped at this boundary and counted; duplicate ORCIDs keep
// the first occurrence. Row order preserves input order.
func Project(identified []*Identified, stats *Stats, findings *Findings) ([]tabular.ProfileRow, []tabular.TagRow) {
	profiles := make([]tabular.ProfileRow, 0, len(identified))
	tags := make([]tabular.TagRow, 0)
	seen := make(map[string]bool)

	for _, ident := range identified {
		rec := ident.Record

		if !record.ValidORCID(rec.ORCID) {
			stats.RejectedNoORCID++
			findings.reject(rec.Institution, rec.FullName, rec.Email, rec.ORCID,
				"no ORCID iD at export")
			continue
		}

		if seen[rec.ORCID] {
			stats.RejectedDuplicate++
			findings.reject(rec.Institution, rec.FullName, rec.Email, rec.ORCID,
				"duplicate ORCID iD")
			continue
		}
		seen[rec.ORCID] = true

		// Profiles struct has a fixed field order, so the blob is
		// byte-identical across runs.
		blob, err := json.Marshal(rec.Profiles())
		if err != nil {
			// A map-free struct of strings cannot fail to marshal.
			blob = []byte("{}")
		}

		profiles = append(profiles, tabular.ProfileRow{
			ORCID:        rec.ORCID,
			Profiles:     string(blob),
			Introduction: rec.Introduction,
		})
		stats.ProfileRows++

		for _, tag := range ident.TagIDs {
			tags = append(tags, tabular.TagRow{
				ORCID: rec.ORCID,
				TagID: tag.TagID,
				SubID: tag.SubID,
			})
			stats.TagRows++
		}
	}

	return profiles, tags
}
