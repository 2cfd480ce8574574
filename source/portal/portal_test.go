package portal

import (
	"encoding/json"
	"testing"

	"github.com/scholardata/scholartab/record"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("decoding raw record: %v", err)
	}
	return m
}

func TestDetect(t *testing.T) {
	adapter := &Adapter{}

	if !adapter.Detect(decode(t, `{"contact": {"email": "a@x.com"}}`)) {
		t.Error("contact key should be detected")
	}
	if !adapter.Detect(decode(t, `{"research_areas": []}`)) {
		t.Error("research_areas key should be detected")
	}
	if adapter.Detect(decode(t, `{"full_name": "Jane"}`)) {
		t.Error("flat record should not be detected")
	}
}

func TestNormalize(t *testing.T) {
	adapter := &Adapter{}

	raw := decode(t, `{
		"name": "Wei Zhang",
		"position": "Associate Professor",
		"department": "Materials Science",
		"bio": "Studies\npolymers.",
		"orcid": "https://orcid.org/0000-0002-1825-0097",
		"contact": {
			"email": "wzhang@uni.edu",
			"phone": "555-0102",
			"website": "https://uni.edu/~wzhang"
		},
		"research_areas": [
			{"category": "Materials Science", "subcategories": ["Polymers", "Composites"]},
			{"category": "AI", "subcategories": "NLP, Computer Vision"}
		]
	}`)

	rec := adapter.Normalize(raw)

	if rec.FullName != "Wei Zhang" {
		t.Errorf("FullName = %q", rec.FullName)
	}
	if rec.Title != "Associate Professor" {
		t.Errorf("Title = %q", rec.Title)
	}
	if rec.OrgUnit != "Materials Science" {
		t.Errorf("OrgUnit = %q", rec.OrgUnit)
	}
	if rec.Introduction != "Studiespolymers." {
		t.Errorf("Introduction = %q", rec.Introduction)
	}
	if rec.ORCID != "0000-0002-1825-0097" {
		t.Errorf("ORCID = %q", rec.ORCID)
	}
	if rec.Email != "wzhang@uni.edu" || rec.Telephone != "555-0102" || rec.Website != "https://uni.edu/~wzhang" {
		t.Errorf("contact block not normalized: %+v", rec)
	}

	want := []record.TagMention{
		{Category: "Materials Science", Subcategory: "Polymers"},
		{Category: "Materials Science", Subcategory: "Composites"},
		{Category: "AI", Subcategory: "NLP"},
		{Category: "AI", Subcategory: "Computer Vision"},
	}
	if len(rec.Tags) != len(want) {
		t.Fatalf("Tags = %v, want %v", rec.Tags, want)
	}
	for i := range want {
		if rec.Tags[i] != want[i] {
			t.Errorf("Tags[%d] = %v, want %v", i, rec.Tags[i], want[i])
		}
	}
}

func TestNormalizeMissingBlocks(t *testing.T) {
	adapter := &Adapter{}

	rec := adapter.Normalize(decode(t, `{"name": "Wei Zhang", "research_areas": []}`))

	if rec.FullName != "Wei Zhang" {
		t.Errorf("FullName = %q", rec.FullName)
	}
	if rec.Email != "" || rec.Telephone != "" || rec.Website != "" {
		t.Errorf("missing contact block should leave fields empty: %+v", rec)
	}
	if len(rec.Tags) != 0 {
		t.Errorf("Tags = %v, want empty", rec.Tags)
	}
}
