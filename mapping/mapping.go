// Package mapping provides field-alias profiles that describe how a flat
// institution export maps onto the canonical record schema.
package mapping

// Profile describes one flat source shape: which of its keys are the
// detection fingerprint and how each key maps onto a canonical field.
type Profile struct {
	// Name is the profile identifier
	Name string `yaml:"name" json:"name"`

	// Description is a human-readable summary of the source shape
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Fingerprint lists source keys whose presence identifies this shape.
	// A sample record matches when any fingerprint key is present.
	Fingerprint []string `yaml:"fingerprint" json:"fingerprint"`

	// Fields maps source keys to canonical fields
	Fields map[string]FieldMapping `yaml:"fields" json:"fields"`
}

// FieldMapping describes how a single source key maps to the canonical
// schema.
type FieldMapping struct {
	// Field is the canonical field name (website, full_name, title,
	// org_unit, telephone, email, introduction, orcid, tags)
	Field string `yaml:"field" json:"field"`

	// Kind selects the value handling:
	//   ""      plain string cleaning
	//   "text"  free text, newlines stripped
	//   "orcid" ORCID extraction from raw or URL values
	//   "tags"  [[category, "sub, sub"], ...] tag groups
	Kind string `yaml:"kind,omitempty" json:"kind,omitempty"`
}

// Matches reports whether the sample record carries any fingerprint key.
func (p *Profile) Matches(sample map[string]any) bool {
	for _, key := range p.Fingerprint {
		if _, ok := sample[key]; ok {
			return true
		}
	}
	return false
}
