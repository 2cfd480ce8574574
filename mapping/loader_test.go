package mapping

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedProfiles(t *testing.T) {
	registry, err := NewProfileRegistry()
	if err != nil {
		t.Fatalf("NewProfileRegistry: %v", err)
	}

	for _, name := range []string{"standard", "legacy"} {
		p, ok := registry.Get(name)
		if !ok {
			t.Fatalf("embedded profile %q not found (have %v)", name, registry.List())
		}
		if len(p.Fingerprint) == 0 {
			t.Errorf("profile %q has no fingerprint", name)
		}
		if len(p.Fields) == 0 {
			t.Errorf("profile %q has no field mappings", name)
		}
	}
}

func TestProfileMatches(t *testing.T) {
	p := &Profile{Fingerprint: []string{"orcid_url", "tags"}}

	if !p.Matches(map[string]any{"orcid_url": "x"}) {
		t.Error("fingerprint key should match")
	}
	if !p.Matches(map[string]any{"tags": []any{}}) {
		t.Error("any fingerprint key should match")
	}
	if p.Matches(map[string]any{"email": "a@x.com"}) {
		t.Error("record without fingerprint keys should not match")
	}
}

func TestLoadProfileFromFile(t *testing.T) {
	content := `name: custom
fingerprint:
  - staff_email
fields:
  staff_email:
    field: email
  staff_orcid:
    field: orcid
    kind: orcid
`
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing profile: %v", err)
	}

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if p.Name != "custom" {
		t.Errorf("Name = %q", p.Name)
	}
	if m, ok := p.Fields["staff_orcid"]; !ok || m.Field != "orcid" || m.Kind != "orcid" {
		t.Errorf("staff_orcid mapping = %+v", p.Fields["staff_orcid"])
	}
}

func TestLoadProfileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fields: [not a map"), 0o644); err != nil {
		t.Fatalf("writing profile: %v", err)
	}
	if _, err := LoadProfile(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
