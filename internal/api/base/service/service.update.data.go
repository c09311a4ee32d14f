package baseservice

import (
	"ngo_portal/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// UpdateData describes a partial update. Only non-empty sections end up
// in the update document sent to MongoDB.
type UpdateData struct {
	Set         map[string]interface{} `bson:"$set,omitempty"`
	SetOnInsert map[string]interface{} `bson:"$setOnInsert,omitempty"`
	Unset       map[string]interface{} `bson:"$unset,omitempty"`
	Push        map[string]interface{} `bson:"$push,omitempty"`
	AddToSet    map[string]interface{} `bson:"$addToSet,omitempty"`
}

// NewUpdateData returns an UpdateData with an initialized Set section,
// the one nearly every update uses.
func NewUpdateData() *UpdateData {
	return &UpdateData{Set: map[string]interface{}{}}
}

// IsEmpty reports whether the update would be a no-op.
func (u *UpdateData) IsEmpty() bool {
	return len(u.Set) == 0 && len(u.SetOnInsert) == 0 && len(u.Unset) == 0 &&
		len(u.Push) == 0 && len(u.AddToSet) == 0
}

// document builds the bson update document.
func (u *UpdateData) document() bson.M {
	doc := bson.M{}
	if len(u.Set) > 0 {
		doc["$set"] = u.Set
	}
	if len(u.SetOnInsert) > 0 {
		doc["$setOnInsert"] = u.SetOnInsert
	}
	if len(u.Unset) > 0 {
		doc["$unset"] = u.Unset
	}
	if len(u.Push) > 0 {
		doc["$push"] = u.Push
	}
	if len(u.AddToSet) > 0 {
		doc["$addToSet"] = u.AddToSet
	}
	return doc
}

func toMap(input interface{}) (map[string]interface{}, error) {
	return utility.ToMap(input)
}

// ToUpdateData converts a DTO struct into an UpdateData whose Set
// section contains the struct's non-zero bson fields. DTOs mark every
// field omitempty, so untouched fields never reach the database.
func ToUpdateData(input interface{}) (*UpdateData, error) {
	m, err := utility.ToMap(input)
	if err != nil {
		return nil, err
	}
	delete(m, "_id")

	update := NewUpdateData()
	for key, value := range m {
		if value == nil {
			continue
		}
		update.Set[key] = value
	}
	return update, nil
}
