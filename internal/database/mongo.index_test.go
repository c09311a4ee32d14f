package database

import (
	"reflect"
	"testing"
)

func TestParseIndexTag_Single(t *testing.T) {
	entries := parseIndexTag("single:-1")
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0]["single"] != "-1" {
		t.Errorf("single = %q, want -1", entries[0]["single"])
	}
}

func TestParseIndexTag_UniqueSparse(t *testing.T) {
	entries := parseIndexTag("unique,sparse")
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if _, ok := entries[0]["unique"]; !ok {
		t.Error("missing unique")
	}
	if _, ok := entries[0]["sparse"]; !ok {
		t.Error("missing sparse")
	}
}

func TestParseIndexTag_MultipleDeclarations(t *testing.T) {
	entries := parseIndexTag("text;single:1")
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if _, ok := entries[0]["text"]; !ok {
		t.Error("first entry missing text")
	}
	if entries[1]["single"] != "1" {
		t.Errorf("second entry single = %q, want 1", entries[1]["single"])
	}
}

func TestParseIndexTag_Compound(t *testing.T) {
	entries := parseIndexTag("compound:status_created")
	if entries[0]["compound"] != "status_created" {
		t.Errorf("compound = %q", entries[0]["compound"])
	}
}

func TestParseOrder(t *testing.T) {
	if parseOrder("-1") != -1 {
		t.Error("parseOrder(-1) != -1")
	}
	if parseOrder("1") != 1 {
		t.Error("parseOrder(1) != 1")
	}
	// Anything unrecognized defaults to ascending.
	if parseOrder("") != 1 {
		t.Error("parseOrder(\"\") != 1")
	}
}

func TestBsonFieldName(t *testing.T) {
	type subject struct {
		Plain    string `bson:"plain"`
		Options  string `bson:"withOptions,omitempty"`
		Excluded string `bson:"-"`
		Untagged string
	}
	st := reflect.TypeOf(subject{})

	cases := []struct {
		field string
		want  string
	}{
		{"Plain", "plain"},
		{"Options", "withOptions"},
		{"Excluded", ""},
		{"Untagged", ""},
	}
	for _, c := range cases {
		field, _ := st.FieldByName(c.field)
		if got := bsonFieldName(field); got != c.want {
			t.Errorf("bsonFieldName(%s) = %q, want %q", c.field, got, c.want)
		}
	}
}
