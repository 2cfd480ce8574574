package pipeline

import (
	"fmt"
	"strings"
)

// Stats accumulates per-run counters. Counters are passed explicitly
// through the stages rather than held in package state so stages stay
// independently testable.
//
// Every record read is accounted for exactly once:
//
//	RecordsRead = ProfileRows + RecordsMalformed + RejectedNoIdentity +
//	              RejectedNoEmail + RejectedNoORCID + RejectedDuplicate
type Stats struct {
	Institutions       int
	RecordsRead        int
	RecordsMalformed   int
	RecordsCleaned     int
	RejectedNoIdentity int
	RejectedNoEmail    int
	RejectedNoORCID    int
	RejectedDuplicate  int
	TagsResolved       int
	TagsUnresolved     int
	ProfileRows        int
	TagRows            int
}

// Rejections returns the sum of all record-level rejection counters.
func (s *Stats) Rejections() int {
	return s.RecordsMalformed + s.RejectedNoIdentity + s.RejectedNoEmail +
		s.RejectedNoORCID + s.RejectedDuplicate
}

// Summary renders the run summary for the operator.
func (s *Stats) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Institutions processed:       %d\n", s.Institutions)
	fmt.Fprintf(&b, "Records read:                 %d\n", s.RecordsRead)
	fmt.Fprintf(&b, "Records cleaned:              %d\n", s.RecordsCleaned)
	fmt.Fprintf(&b, "Malformed records skipped:    %d\n", s.RecordsMalformed)
	fmt.Fprintf(&b, "Rejected (no ORCID or email): %d\n", s.RejectedNoIdentity)
	fmt.Fprintf(&b, "Rejected (no email):          %d\n", s.RejectedNoEmail)
	fmt.Fprintf(&b, "Rejected (no ORCID at export):%d\n", s.RejectedNoORCID)
	fmt.Fprintf(&b, "Rejected (duplicate ORCID):   %d\n", s.RejectedDuplicate)
	fmt.Fprintf(&b, "Tag mentions resolved:        %d\n", s.TagsResolved)
	fmt.Fprintf(&b, "Tag mentions unresolved:      %d\n", s.TagsUnresolved)
	fmt.Fprintf(&b, "Profile rows written:         %d\n", s.ProfileRows)
	fmt.Fprintf(&b, "Tag rows written:             %d", s.TagRows)
	return b.String()
}

// Rejection records why one record was excluded, for the audit report.
type Rejection struct {
	Institution string
	FullName    string
	Email       string
	ORCID       string
	Reason      string
}

// UnresolvedMention records one tag mention that had no index entry.
type UnresolvedMention struct {
	Institution string
	PrimaryKey  string
	Category    string
	Subcategory string
}

// Findings collects the per-record details behind the Stats counters.
type Findings struct {
	Rejections []Rejection
	Unresolved []UnresolvedMention
}

func (f *Findings) reject(inst, name, email, orcid, reason string) {
	if f == nil {
		return
	}
	f.Rejections = append(f.Rejections, Rejection{
		Institution: inst,
		FullName:    name,
		Email:       email,
		ORCID:       orcid,
		Reason:      reason,
	})
}
