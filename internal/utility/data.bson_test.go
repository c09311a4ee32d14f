package utility

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToMap(t *testing.T) {
	type subject struct {
		Name     string `bson:"name"`
		Count    int    `bson:"count"`
		Optional string `bson:"optional,omitempty"`
	}

	m, err := ToMap(subject{Name: "a", Count: 3})
	if err != nil {
		t.Fatalf("ToMap: %v", err)
	}
	if m["name"] != "a" {
		t.Errorf("name = %v", m["name"])
	}
	if _, ok := m["optional"]; ok {
		t.Error("empty omitempty field must be dropped")
	}
	if _, ok := m["count"]; !ok {
		t.Error("count missing")
	}
}

func TestToMap_Nil(t *testing.T) {
	if _, err := ToMap(nil); err == nil {
		t.Error("nil input must error")
	}
}

func TestString2ObjectID(t *testing.T) {
	want := primitive.NewObjectID()
	got, err := String2ObjectID(want.Hex())
	if err != nil {
		t.Fatalf("String2ObjectID: %v", err)
	}
	if got != want {
		t.Errorf("got %s, want %s", got.Hex(), want.Hex())
	}

	if _, err := String2ObjectID("not-an-id"); err == nil {
		t.Error("invalid hex must error")
	}
}
