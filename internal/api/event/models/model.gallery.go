package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryItem is one photo or video in the public gallery, optionally
// linked to the event it was taken at. Deleting an item clears IsPublic.
type GalleryItem struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Type        string             `json:"type" bson:"type" default:"photo"`
	ImageUrl    string             `json:"imageUrl" bson:"imageUrl"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Category    string             `json:"category" bson:"category" default:"general"`
	Tags        []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	EventID     primitive.ObjectID `json:"eventId,omitempty" bson:"eventId,omitempty" index:"single:1"`
	IsPublic    bool               `json:"isPublic" bson:"isPublic,omitempty" default:"true" index:"single:1"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// Gallery media types.
const (
	GalleryTypePhoto = "photo"
	GalleryTypeVideo = "video"
)
