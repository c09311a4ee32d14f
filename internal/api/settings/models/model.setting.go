// Package models - Settings domain.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Setting is one configuration entry of the site, addressed by Key
// (one document per key). Value holds any JSON value: string, number,
// boolean, object or array, stored as-is.
type Setting struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Key         string             `json:"key" bson:"key" index:"unique"`
	Value       interface{}        `json:"value" bson:"value"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Category    string             `json:"category" bson:"category" default:"general" index:"single:1"`
	IsEditable  bool               `json:"isEditable" bson:"isEditable,omitempty" default:"true"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}
