package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamMember appears on the about page, ordered by DisplayOrder.
// Removing a member clears IsActive so they can be restored.
type TeamMember struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Role         string             `json:"role" bson:"role"`
	Bio          string             `json:"bio,omitempty" bson:"bio,omitempty"`
	ImageUrl     string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Email        string             `json:"email,omitempty" bson:"email,omitempty"`
	Socials      map[string]string  `json:"socials,omitempty" bson:"socials,omitempty"`
	DisplayOrder int                `json:"displayOrder" bson:"displayOrder,omitempty" index:"single:1"`
	IsActive     bool               `json:"isActive" bson:"isActive,omitempty" default:"true"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}
