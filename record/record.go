// Package record defines the canonical researcher profile record that all
// source shapes normalize into, plus the cleaning and identifier helpers
// shared by the pipeline stages.
package record

import (
	"fmt"
	"strings"
)

// TagMention is a free-text research-area mention exactly as authored by the
// source institution: a category name and one subcategory name.
type TagMention struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

// Record is the canonical profile schema. Every field is present for every
// record regardless of which fields the source supplied; the empty string is
// the null representation.
type Record struct {
	Website      string       `json:"website"`
	FullName     string       `json:"full_name"`
	Title        string       `json:"title"`
	OrgUnit      string       `json:"org_unit"`
	Telephone    string       `json:"telephone"`
	Email        string       `json:"email"`
	Introduction string       `json:"introduction"`
	ORCID        string       `json:"orcid"`
	Tags         []TagMention `json:"tags"`
	Institution  string       `json:"source_institution"`
}

// New creates an empty Record.
func New() *Record {
	return &Record{
		Tags: make([]TagMention, 0),
	}
}

// Profiles is the subset of canonical fields that lands in the profiles JSON
// blob of the academic_products table: everything except orcid, introduction
// and tags. Field order is fixed so repeated runs serialize identically.
type Profiles struct {
	Website     string `json:"website"`
	FullName    string `json:"full_name"`
	Title       string `json:"title"`
	OrgUnit     string `json:"org_unit"`
	Telephone   string `json:"telephone"`
	Email       string `json:"email"`
	Institution string `json:"source_institution"`
}

// Profiles returns the profiles-blob projection of the record.
func (r *Record) Profiles() Profiles {
	return Profiles{
		Website:     r.Website,
		FullName:    r.FullName,
		Title:       r.Title,
		OrgUnit:     r.OrgUnit,
		Telephone:   r.Telephone,
		Email:       r.Email,
		Institution: r.Institution,
	}
}

// CleanString normalizes a raw JSON value to a trimmed string. Lists are
// joined with "; ", numbers are formatted without an exponent, nil becomes
// the empty string.
func CleanString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := CleanString(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", val))
	}
}

// CleanText normalizes free-text fields: all newline characters are removed
// and the result is trimmed. Used for the introduction field, which must fit
// in a single CSV field.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")
	return strings.TrimSpace(s)
}

// SplitSubcategories splits a comma-joined subcategory string
// ("NLP, Computer Vision") into individual trimmed names.
func SplitSubcategories(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Mentions expands a (category, comma-joined subcategories) pair into one
// TagMention per subcategory.
func Mentions(category, subcategories string) []TagMention {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil
	}
	subs := SplitSubcategories(subcategories)
	mentions := make([]TagMention, 0, len(subs))
	for _, sub := range subs {
		mentions = append(mentions, TagMention{Category: category, Subcategory: sub})
	}
	return mentions
}
