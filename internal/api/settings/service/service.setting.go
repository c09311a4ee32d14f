// Package services - Settings domain.
package services

import (
	"context"
	"time"

	baseservice "ngo_portal/internal/api/base/service"
	"ngo_portal/internal/api/settings/dto"
	models "ngo_portal/internal/api/settings/models"
	"ngo_portal/internal/common"
	"ngo_portal/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SettingsService manages the settings collection (one document per
// key).
type SettingsService struct {
	*baseservice.BaseServiceMongoImpl[models.Setting]
}

func NewSettingsService() *SettingsService {
	collection := global.RegistryCollections.MustGet(global.ColNames.Settings)
	return &SettingsService{BaseServiceMongoImpl: baseservice.NewBaseService[models.Setting](collection)}
}

// ListAll returns every setting grouped by category.
func (s *SettingsService) ListAll(ctx context.Context) ([]models.Setting, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "category", Value: 1},
		{Key: "key", Value: 1},
	})
	return s.Find(ctx, bson.M{}, opts)
}

// FindByKey returns one setting by key.
func (s *SettingsService) FindByKey(ctx context.Context, key string) (models.Setting, error) {
	return s.FindOne(ctx, bson.M{"key": key})
}

// BuildUpsert translates the POST body into the upsert documents.
// Value is always written; description and category only when the
// request carries a non-empty value for them. Creation defaults
// (category "general", isEditable true) ride on $setOnInsert so an
// existing document keeps whatever it has.
func BuildUpsert(input dto.SettingUpsertInput, now int64) (set map[string]interface{}, setOnInsert map[string]interface{}) {
	set = map[string]interface{}{
		"value":     input.Value,
		"updatedAt": now,
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if input.Category != "" {
		set["category"] = input.Category
	}

	setOnInsert = map[string]interface{}{
		"key":        input.Key,
		"isEditable": true,
		"createdAt":  now,
	}
	if input.Category == "" {
		setOnInsert["category"] = "general"
	}
	return set, setOnInsert
}

// UpsertInserted reports whether the document returned by the upsert
// was created on this call. A fresh insert carries the createdAt that
// $setOnInsert stamped from the same now the update was built with; an
// existing document keeps its older stamp.
func UpsertInserted(result models.Setting, now int64) bool {
	return result.CreatedAt == now
}

// UpsertByKey implements the POST semantics: create with defaults or
// partially update the existing document. The returned bool reports
// whether this call created the key.
func (s *SettingsService) UpsertByKey(ctx context.Context, input dto.SettingUpsertInput) (models.Setting, bool, error) {
	now := time.Now().UnixMilli()
	set, setOnInsert := BuildUpsert(input, now)

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var result models.Setting
	err := s.Collection().FindOneAndUpdate(ctx,
		bson.M{"key": input.Key},
		bson.M{"$set": set, "$setOnInsert": setOnInsert},
		opts,
	).Decode(&result)
	if err != nil {
		return models.Setting{}, false, common.ConvertMongoError(err)
	}
	return result, UpsertInserted(result, now), nil
}

// BuildUpdate translates the PUT body into a partial update. Same field
// rules as the upsert, without the creation defaults.
func BuildUpdate(input dto.SettingUpdateInput) *baseservice.UpdateData {
	update := baseservice.NewUpdateData()
	update.Set["value"] = input.Value
	if input.Description != "" {
		update.Set["description"] = input.Description
	}
	if input.Category != "" {
		update.Set["category"] = input.Category
	}
	return update
}

// UpdateByKey implements the PUT semantics: update-only. A missing key
// is ErrNotFound; PUT never creates (the deliberate asymmetry with the
// POST upsert).
func (s *SettingsService) UpdateByKey(ctx context.Context, key string, input dto.SettingUpdateInput) (models.Setting, error) {
	return s.UpdateOne(ctx, bson.M{"key": key}, BuildUpdate(input))
}

// DeleteByKey removes a setting. Settings are hard-deleted.
func (s *SettingsService) DeleteByKey(ctx context.Context, key string) error {
	return s.DeleteOne(ctx, bson.M{"key": key})
}
