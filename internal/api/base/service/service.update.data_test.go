package baseservice

import (
	"testing"
)

type updateDTO struct {
	Title    string `bson:"title,omitempty"`
	Category string `bson:"category,omitempty"`
	IsActive *bool  `bson:"isActive,omitempty"`
	Order    *int   `bson:"order,omitempty"`
}

func TestToUpdateData_OnlyNonEmptyFields(t *testing.T) {
	update, err := ToUpdateData(updateDTO{Title: "New title"})
	if err != nil {
		t.Fatalf("ToUpdateData: %v", err)
	}

	if update.Set["title"] != "New title" {
		t.Errorf("title = %v", update.Set["title"])
	}
	if _, ok := update.Set["category"]; ok {
		t.Error("empty category must be omitted")
	}
	if _, ok := update.Set["isActive"]; ok {
		t.Error("nil pointer fields must be omitted")
	}
}

func TestToUpdateData_PointerFalseSurvives(t *testing.T) {
	// Toggling a flag off is the whole point of the pointer fields:
	// *bool false must reach $set.
	no := false
	zero := 0
	update, err := ToUpdateData(updateDTO{IsActive: &no, Order: &zero})
	if err != nil {
		t.Fatalf("ToUpdateData: %v", err)
	}

	if update.Set["isActive"] != false {
		t.Errorf("isActive = %v, want false", update.Set["isActive"])
	}
	if _, ok := update.Set["order"]; !ok {
		t.Error("explicit zero via pointer must reach $set")
	}
}

func TestUpdateData_IsEmpty(t *testing.T) {
	update := NewUpdateData()
	if !update.IsEmpty() {
		t.Error("fresh UpdateData must be empty")
	}
	update.Set["x"] = 1
	if update.IsEmpty() {
		t.Error("UpdateData with a $set entry is not empty")
	}

	unsetOnly := &UpdateData{Unset: map[string]interface{}{"x": ""}}
	if unsetOnly.IsEmpty() {
		t.Error("UpdateData with a $unset entry is not empty")
	}
}

func TestUpdateData_Document(t *testing.T) {
	update := NewUpdateData()
	update.Set["title"] = "t"
	update.Unset = map[string]interface{}{"old": ""}

	doc := update.document()
	if _, ok := doc["$set"]; !ok {
		t.Error("document missing $set")
	}
	if _, ok := doc["$unset"]; !ok {
		t.Error("document missing $unset")
	}
	if _, ok := doc["$push"]; ok {
		t.Error("empty sections must not appear in the document")
	}
}
