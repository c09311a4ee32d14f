// Package models - Event domain.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a program or campaign shown on the public site. Deleting an
// event only clears IsActive; the document stays for the admin archive.
// CurrentParticipants is never stored: it is derived from the length of
// RegisteredParticipants on every read.
type Event struct {
	ID                     primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Title                  string               `json:"title" bson:"title" index:"text"`
	Description            string               `json:"description,omitempty" bson:"description,omitempty"`
	Location               string               `json:"location,omitempty" bson:"location,omitempty"`
	Organizer              string               `json:"organizer,omitempty" bson:"organizer,omitempty"`
	EventDate              string               `json:"eventDate" bson:"eventDate" index:"single:-1"`
	EventTime              string               `json:"eventTime,omitempty" bson:"eventTime,omitempty"`
	Category               string               `json:"category" bson:"category" default:"general"`
	Status                 string               `json:"status" bson:"status" default:"upcoming" index:"single:1"`
	ImageUrl               string               `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	MaxParticipants        int                  `json:"maxParticipants" bson:"maxParticipants,omitempty"`
	RegisteredParticipants []primitive.ObjectID `json:"registeredParticipants,omitempty" bson:"registeredParticipants,omitempty"`
	CurrentParticipants    int                  `json:"currentParticipants" bson:"-"`
	IsActive               bool                 `json:"isActive" bson:"isActive,omitempty" default:"true" index:"single:1"`
	CreatedAt              int64                `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt              int64                `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// Event lifecycle statuses.
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
)
