// Package portal implements the adapter for faculty-portal exports, which
// nest contact details under a "contact" object and author research areas
// as {category, subcategories} objects.
package portal

import (
	"github.com/scholardata/scholartab/record"
	"github.com/scholardata/scholartab/source"
)

func init() {
	source.Register(&Adapter{})
}

// Adapter normalizes faculty-portal records.
type Adapter struct{}

// Name returns the adapter identifier.
func (a *Adapter) Name() string {
	return "portal"
}

// Description returns a human-readable description.
func (a *Adapter) Description() string {
	return "Faculty portal export with nested contact block and research_areas objects"
}

// Detect recognizes the portal shape by its nested keys.
func (a *Adapter) Detect(sample map[string]any) bool {
	if _, ok := sample["contact"]; ok {
		return true
	}
	_, ok := sample["research_areas"]
	return ok
}

// Normalize projects one portal record into the canonical schema.
func (a *Adapter) Normalize(raw map[string]any) *record.Record {
	rec := record.New()

	rec.FullName = record.CleanString(raw["name"])
	rec.Title = record.CleanString(raw["position"])
	rec.OrgUnit = record.CleanString(raw["department"])
	rec.Introduction = record.CleanText(record.CleanString(raw["bio"]))

	rec.ORCID = record.ExtractORCID(record.CleanString(raw["orcid"]))

	if contact, ok := raw["contact"].(map[string]any); ok {
		rec.Email = record.CleanString(contact["email"])
		rec.Telephone = record.CleanString(contact["phone"])
		rec.Website = record.CleanString(contact["website"])
	}

	if areas, ok := raw["research_areas"].([]any); ok {
		for _, area := range areas {
			obj, ok := area.(map[string]any)
			if !ok {
				continue
			}
			category := record.CleanString(obj["category"])
			switch subs := obj["subcategories"].(type) {
			case []any:
				for _, sub := range subs {
					rec.Tags = append(rec.Tags, record.Mentions(category, record.CleanString(sub))...)
				}
			case string:
				rec.Tags = append(rec.Tags, record.Mentions(category, subs)...)
			}
		}
	}

	return rec
}
