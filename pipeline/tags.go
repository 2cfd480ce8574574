package pipeline

import (
	"github.com/scholardata/scholartab/tagindex"
)

// ResolveTags maps each record's tag mentions to numeric ids. Mentions with
// no index entry are dropped and counted; a record that resolves zero of
// its mentions is kept with an empty TagIDs list.
//
// Records without an email are excluded here even when they carry a valid
// ORCID iD, matching the loader this feed replaced; see DESIGN.md before
// changing it.
func ResolveTags(identified []*Identified, idx *tagindex.Index, stats *Stats, findings *Findings) []*Identified {
	kept := make([]*Identified, 0, len(identified))

	for _, ident := range identified {
		rec := ident.Record

		if rec.Email == "" {
			stats.RejectedNoEmail++
			findings.reject(rec.Institution, rec.FullName, rec.Email, rec.ORCID,
				"empty email at tag resolution")
			continue
		}

		ident.TagIDs = make([]tagindex.ResolvedTag, 0, len(rec.Tags))
		for _, mention := range rec.Tags {
			resolved, ok := idx.Resolve(mention.Category, mention.Subcategory)
			if !ok {
				stats.TagsUnresolved++
				if findings != nil {
					findings.Unresolved = append(findings.Unresolved, UnresolvedMention{
						Institution: rec.Institution,
						PrimaryKey:  ident.PrimaryKey,
						Category:    mention.Category,
						Subcategory: mention.Subcategory,
					})
				}
				continue
			}
			ident.TagIDs = append(ident.TagIDs, resolved)
			stats.TagsResolved++
		}

		kept = append(kept, ident)
	}

	return kept
}
