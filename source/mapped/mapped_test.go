package mapped

import (
	"encoding/json"
	"testing"

	"github.com/scholardata/scholartab/mapping"
	"github.com/scholardata/scholartab/record"
)

func adapterFor(t *testing.T, name string) *Adapter {
	t.Helper()
	registry, err := mapping.NewProfileRegistry()
	if err != nil {
		t.Fatalf("loading profiles: %v", err)
	}
	p, ok := registry.Get(name)
	if !ok {
		t.Fatalf("embedded profile %q not found", name)
	}
	return New(p)
}

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("decoding raw record: %v", err)
	}
	return m
}

func TestStandardNormalize(t *testing.T) {
	adapter := adapterFor(t, "standard")

	raw := decode(t, `{
		"website": " https://example.edu/jane ",
		"full_name": "Jane Doe",
		"title": "Professor",
		"org_unit": "Computer Science",
		"telephone": ["555-0100", "555-0101"],
		"email": "jane@example.edu",
		"brief_introduction": "Works on\nlanguage models.",
		"orcid": "https://orcid.org/0000-0001-2345-6789",
		"tag": [["AI", "NLP, Computer Vision"]]
	}`)

	if !adapter.Detect(raw) {
		t.Fatal("standard adapter should detect its own shape")
	}

	rec := adapter.Normalize(raw)

	if rec.Website != "https://example.edu/jane" {
		t.Errorf("Website = %q", rec.Website)
	}
	if rec.FullName != "Jane Doe" {
		t.Errorf("FullName = %q", rec.FullName)
	}
	if rec.Telephone != "555-0100; 555-0101" {
		t.Errorf("Telephone = %q", rec.Telephone)
	}
	if rec.Introduction != "Works onlanguage models." {
		t.Errorf("Introduction = %q, newline not stripped", rec.Introduction)
	}
	if rec.ORCID != "0000-0001-2345-6789" {
		t.Errorf("ORCID = %q", rec.ORCID)
	}

	want := []record.TagMention{
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

func TestStandardNormalizeMissingFields(t *testing.T) {
	adapter := adapterFor(t, "standard")

	rec := adapter.Normalize(decode(t, `{"email": "a@x.com"}`))

	if rec.Email != "a@x.com" {
		t.Errorf("Email = %q", rec.Email)
	}
	// Absent source fields become empty canonical fields, never an error.
	if rec.FullName != "" || rec.ORCID != "" || rec.Introduction != "" {
		t.Errorf("missing fields not empty: %+v", rec)
	}
	if len(rec.Tags) != 0 {
		t.Errorf("Tags = %v, want empty", rec.Tags)
	}
}

func TestLegacyNormalize(t *testing.T) {
	adapter := adapterFor(t, "legacy")

	raw := decode(t, `{
		"orcid_url": "https://orcid.org/0000-0001-2345-6789",
		"email": "a@x.com",
		"tags": [["AI", "NLP"]]
	}`)

	if !adapter.Detect(raw) {
		t.Fatal("legacy adapter should detect orcid_url shape")
	}

	rec := adapter.Normalize(raw)

	if rec.ORCID != "0000-0001-2345-6789" {
		t.Errorf("ORCID = %q", rec.ORCID)
	}
	if rec.Email != "a@x.com" {
		t.Errorf("Email = %q", rec.Email)
	}
	if len(rec.Tags) != 1 || rec.Tags[0] != (record.TagMention{Category: "AI", Subcategory: "NLP"}) {
		t.Errorf("Tags = %v", rec.Tags)
	}
}

func TestLegacyAliasPrecedenceIsDeterministic(t *testing.T) {
	adapter := adapterFor(t, "legacy")

	// Both aliases present: sorted key order means "name" loses to
	// "full_name" regardless of map iteration order.
	raw := decode(t, `{"full_name": "Jane Doe", "name": "J. Doe", "introduction": "x"}`)

	for i := 0; i < 10; i++ {
		rec := adapter.Normalize(raw)
		if rec.FullName != "Jane Doe" {
			t.Fatalf("FullName = %q, want stable %q", rec.FullName, "Jane Doe")
		}
	}
}
