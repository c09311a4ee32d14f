package baseservice

import (
	"testing"
)

func TestPolicyFor_SoftDeleted(t *testing.T) {
	cases := []struct {
		collection string
		flagField  string
	}{
		{"events", "isActive"},
		{"galleries", "isPublic"},
		{"teammembers", "isActive"},
	}
	for _, c := range cases {
		policy := PolicyFor(c.collection)
		if !policy.Soft {
			t.Errorf("%s: want soft delete", c.collection)
		}
		if policy.FlagField != c.flagField {
			t.Errorf("%s: FlagField = %q, want %q", c.collection, policy.FlagField, c.flagField)
		}
	}
}

func TestPolicyFor_HardDeleted(t *testing.T) {
	for _, collection := range []string{"donations", "posts", "volunteers", "settings", "documents", "admins"} {
		policy := PolicyFor(collection)
		if policy.Soft {
			t.Errorf("%s: want hard delete", collection)
		}
	}
}

func TestPolicyFor_UnknownCollectionIsHard(t *testing.T) {
	if PolicyFor("no_such_collection").Soft {
		t.Error("unknown collections must default to hard delete")
	}
}
