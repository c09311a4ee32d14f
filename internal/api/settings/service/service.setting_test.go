package services

import (
	"testing"

	"ngo_portal/internal/api/settings/dto"
	models "ngo_portal/internal/api/settings/models"
)

func TestBuildUpsert_NewKeyDefaults(t *testing.T) {
	input := dto.SettingUpsertInput{Key: "site_name", Value: "My NGO"}
	set, setOnInsert := BuildUpsert(input, 1700000000000)

	if set["value"] != "My NGO" {
		t.Errorf("set.value = %v, want My NGO", set["value"])
	}
	if set["updatedAt"] != int64(1700000000000) {
		t.Errorf("set.updatedAt = %v", set["updatedAt"])
	}
	if _, ok := set["description"]; ok {
		t.Error("empty description must not be written")
	}
	if _, ok := set["category"]; ok {
		t.Error("empty category must not be written")
	}

	if setOnInsert["key"] != "site_name" {
		t.Errorf("setOnInsert.key = %v", setOnInsert["key"])
	}
	if setOnInsert["category"] != "general" {
		t.Errorf("setOnInsert.category = %v, want general", setOnInsert["category"])
	}
	if setOnInsert["isEditable"] != true {
		t.Errorf("setOnInsert.isEditable = %v, want true", setOnInsert["isEditable"])
	}
	if setOnInsert["createdAt"] != int64(1700000000000) {
		t.Errorf("setOnInsert.createdAt = %v", setOnInsert["createdAt"])
	}
}

func TestBuildUpsert_ExplicitCategory(t *testing.T) {
	input := dto.SettingUpsertInput{Key: "contact_email", Value: "a@b.org", Category: "contact"}
	set, setOnInsert := BuildUpsert(input, 1700000000000)

	if set["category"] != "contact" {
		t.Errorf("set.category = %v, want contact", set["category"])
	}
	// When the request carries a category, $set already covers it and the
	// insert default must not also appear (mongo rejects a field in both
	// $set and $setOnInsert).
	if _, ok := setOnInsert["category"]; ok {
		t.Error("category must not be in $setOnInsert when the request sets it")
	}
}

func TestBuildUpsert_ValueAlwaysOverwritten(t *testing.T) {
	// Value goes through $set even when falsy; only description and
	// category are conditional.
	for _, value := range []interface{}{false, 0, "", []interface{}{}} {
		set, _ := BuildUpsert(dto.SettingUpsertInput{Key: "k", Value: value}, 1)
		if _, ok := set["value"]; !ok {
			t.Fatalf("value %v missing from $set", value)
		}
	}
}

func TestBuildUpdate_PartialFields(t *testing.T) {
	update := BuildUpdate(dto.SettingUpdateInput{Value: 42.5})
	if update.Set["value"] != 42.5 {
		t.Errorf("value = %v, want 42.5", update.Set["value"])
	}
	if _, ok := update.Set["description"]; ok {
		t.Error("empty description must not be written")
	}
	if _, ok := update.Set["category"]; ok {
		t.Error("empty category must not be written")
	}

	update = BuildUpdate(dto.SettingUpdateInput{Value: "v", Description: "About the site", Category: "general"})
	if update.Set["description"] != "About the site" {
		t.Errorf("description = %v", update.Set["description"])
	}
	if update.Set["category"] != "general" {
		t.Errorf("category = %v", update.Set["category"])
	}
}

func TestBuildUpdate_NeverTouchesCreationDefaults(t *testing.T) {
	update := BuildUpdate(dto.SettingUpdateInput{Value: "v"})
	for _, field := range []string{"key", "isEditable", "createdAt"} {
		if _, ok := update.Set[field]; ok {
			t.Errorf("update must not write %s", field)
		}
	}
	if len(update.SetOnInsert) != 0 {
		t.Error("update must not carry $setOnInsert, PUT never creates")
	}
}

func TestUpsertInserted(t *testing.T) {
	now := int64(1700000000000)

	if !UpsertInserted(models.Setting{Key: "k", CreatedAt: now}, now) {
		t.Error("a document stamped with this call's now must count as created")
	}
	if UpsertInserted(models.Setting{Key: "k", CreatedAt: now - 5000}, now) {
		t.Error("a document created earlier must count as updated")
	}
}
