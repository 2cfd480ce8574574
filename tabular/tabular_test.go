package tabular

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
)

func TestWriteProfiles(t *testing.T) {
	rows := []ProfileRow{
		{
			ORCID:        "0000-0001-2345-6789",
			Profiles:     `{"website":"","full_name":"Jane, Doe"}`,
			Introduction: `She said "hello" and left.`,
		},
	}

	var buf bytes.Buffer
	if err := WriteProfiles(&buf, rows); err != nil {
		t.Fatalf("WriteProfiles: %v", err)
	}

	parsed, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(parsed))
	}

	header := parsed[0]
	if header[0] != "orcid" || header[1] != "profiles" || header[2] != "introduction" {
		t.Errorf("header = %v", header)
	}

	// Embedded quotes and commas must round-trip through CSV quoting.
	got := parsed[1]
	if got[0] != rows[0].ORCID || got[1] != rows[0].Profiles || got[2] != rows[0].Introduction {
		t.Errorf("row = %v, want %+v", got, rows[0])
	}
}

func TestWriteTags(t *testing.T) {
	rows := []TagRow{
		{ORCID: "0000-0001-2345-6789", TagID: 1, SubID: 2},
		{ORCID: "0000-0002-1825-0097", TagID: 8, SubID: 2},
	}

	var buf bytes.Buffer
	if err := WriteTags(&buf, rows); err != nil {
		t.Fatalf("WriteTags: %v", err)
	}

	want := "orcid,tag_id,sub_id\n" +
		"0000-0001-2345-6789,1,2\n" +
		"0000-0002-1825-0097,8,2\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriteEmptyRelations(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteProfiles(&buf, nil); err != nil {
		t.Fatalf("WriteProfiles: %v", err)
	}
	if buf.String() != "orcid,profiles,introduction\n" {
		t.Errorf("empty profiles output = %q", buf.String())
	}

	buf.Reset()
	if err := WriteTags(&buf, nil); err != nil {
		t.Fatalf("WriteTags: %v", err)
	}
	if buf.String() != "orcid,tag_id,sub_id\n" {
		t.Errorf("empty tags output = %q", buf.String())
	}
}
