// Package mapped implements a source adapter driven by a mapping profile.
// Flat export shapes differ only in key names, so one engine executes any
// alias profile; the embedded standard and legacy profiles register
// themselves on import.
package mapped

import (
	"sort"

	"github.com/scholardata/scholartab/mapping"
	"github.com/scholardata/scholartab/record"
	"github.com/scholardata/scholartab/source"
)

func init() {
	registry, err := mapping.NewProfileRegistry()
	if err != nil {
		return
	}
	for _, name := range registry.List() {
		if p, ok := registry.Get(name); ok {
			source.Register(New(p))
		}
	}
}

// Adapter normalizes flat records according to a mapping profile.
type Adapter struct {
	profile *mapping.Profile
}

// New creates an adapter for the given profile.
func New(p *mapping.Profile) *Adapter {
	return &Adapter{profile: p}
}

// Name returns the profile name.
func (a *Adapter) Name() string {
	return a.profile.Name
}

// Description returns the profile description.
func (a *Adapter) Description() string {
	return a.profile.Description
}

// Detect reports whether the sample carries any of the profile's
// fingerprint keys.
func (a *Adapter) Detect(sample map[string]any) bool {
	return a.profile.Matches(sample)
}

// Normalize projects one flat record into the canonical schema. Source keys
// are visited in sorted order and the first alias that yields a value wins,
// so records carrying multiple aliases for one field normalize
// deterministically.
func (a *Adapter) Normalize(raw map[string]any) *record.Record {
	rec := record.New()

	keys := make([]string, 0, len(a.profile.Fields))
	for key := range a.profile.Fields {
		if _, ok := raw[key]; ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		m := a.profile.Fields[key]
		value := raw[key]

		if m.Kind == "tags" {
			rec.Tags = append(rec.Tags, parseTagGroups(value)...)
			continue
		}

		s := record.CleanString(value)
		switch m.Kind {
		case "text":
			s = record.CleanText(s)
		case "orcid":
			s = record.ExtractORCID(s)
		}
		setField(rec, m.Field, s)
	}

	return rec
}

// setField assigns a canonical field by name, keeping the first non-empty
// value.
func setField(rec *record.Record, field, value string) {
	if value == "" {
		return
	}
	switch field {
	case "website":
		if rec.Website == "" {
			rec.Website = value
		}
	case "full_name":
		if rec.FullName == "" {
			rec.FullName = value
		}
	case "title":
		if rec.Title == "" {
			rec.Title = value
		}
	case "org_unit":
		if rec.OrgUnit == "" {
			rec.OrgUnit = value
		}
	case "telephone":
		if rec.Telephone == "" {
			rec.Telephone = value
		}
	case "email":
		if rec.Email == "" {
			rec.Email = value
		}
	case "introduction":
		if rec.Introduction == "" {
			rec.Introduction = value
		}
	case "orcid":
		if rec.ORCID == "" {
			rec.ORCID = value
		}
	}
}

// parseTagGroups expands a raw tag value of the form
// [[category, "sub, sub"], ...] into individual tag mentions.
func parseTagGroups(value any) []record.TagMention {
	groups, ok := value.([]any)
	if !ok {
		return nil
	}

	var mentions []record.TagMention
	for _, group := range groups {
		pair, ok := group.([]any)
		if !ok || len(pair) < 2 {
			continue
		}
		category := record.CleanString(pair[0])
		subcategories := record.CleanString(pair[1])
		mentions = append(mentions, record.Mentions(category, subcategories)...)
	}
	return mentions
}
