package pipeline

import (
	"github.com/scholardata/scholartab/record"
)

// Identify resolves the primary key of each canonical record: a valid ORCID
// iD wins, a valid email is the fallback, and records with neither are
// rejected. No record is ever assigned a synthesized key.
func Identify(records []*record.Record, stats *Stats, findings *Findings) []*Identified {
	identified := make([]*Identified, 0, len(records))

	for _, rec := range records {
		switch {
		case record.ValidORCID(rec.ORCID):
			identified = append(identified, &Identified{Record: rec, PrimaryKey: rec.ORCID})
		case record.ValidEmail(rec.Email):
			identified = append(identified, &Identified{Record: rec, PrimaryKey: rec.Email})
		default:
			stats.RejectedNoIdentity++
			findings.reject(rec.Institution, rec.FullName, rec.Email, rec.ORCID,
				"no valid ORCID iD or email")
		}
	}

	return identified
}
