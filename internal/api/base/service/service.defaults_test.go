package baseservice

import (
	"testing"
)

type defaultsModel struct {
	Title    string  `bson:"title"`
	Category string  `bson:"category" default:"general"`
	IsActive bool    `bson:"isActive,omitempty" default:"true"`
	Retries  int     `bson:"retries" default:"3"`
	Weight   float64 `bson:"weight" default:"1.5"`
	Skipped  string  `bson:"-" default:"never"`
	BadBool  bool    `bson:"badBool" default:"not-a-bool"`
}

func TestInsertDefaultsForType(t *testing.T) {
	defaults := insertDefaultsForType(typeOf[defaultsModel]())

	if defaults["category"] != "general" {
		t.Errorf("category = %v, want general", defaults["category"])
	}
	if defaults["isActive"] != true {
		t.Errorf("isActive = %v, want true", defaults["isActive"])
	}
	if defaults["retries"] != int64(3) {
		t.Errorf("retries = %v, want 3", defaults["retries"])
	}
	if defaults["weight"] != 1.5 {
		t.Errorf("weight = %v, want 1.5", defaults["weight"])
	}
	if _, ok := defaults["Skipped"]; ok {
		t.Error("bson:\"-\" fields must not produce defaults")
	}
	if _, ok := defaults["badBool"]; ok {
		t.Error("unparseable default values must be dropped")
	}
}

func TestApplyInsertDefaults_FillsAbsentFields(t *testing.T) {
	doc := map[string]interface{}{"title": "hello"}
	applyInsertDefaults(doc, defaultsModel{})

	if doc["category"] != "general" {
		t.Errorf("category = %v, want general", doc["category"])
	}
	if doc["isActive"] != true {
		t.Errorf("isActive = %v, want true", doc["isActive"])
	}
}

func TestApplyInsertDefaults_KeepsExplicitValues(t *testing.T) {
	// A field present in the document, even with a falsy value, was sent
	// deliberately and must survive.
	doc := map[string]interface{}{
		"category": "health",
		"isActive": false,
		"retries":  0,
	}
	applyInsertDefaults(doc, defaultsModel{})

	if doc["category"] != "health" {
		t.Errorf("category = %v, want health", doc["category"])
	}
	if doc["isActive"] != false {
		t.Errorf("isActive = %v, want false", doc["isActive"])
	}
	if doc["retries"] != 0 {
		t.Errorf("retries = %v, want 0", doc["retries"])
	}
}

func TestApplyInsertDefaults_NilCountsAsAbsent(t *testing.T) {
	doc := map[string]interface{}{"category": nil}
	applyInsertDefaults(doc, defaultsModel{})

	if doc["category"] != "general" {
		t.Errorf("category = %v, want general", doc["category"])
	}
}
