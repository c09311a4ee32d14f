// Package models - Volunteer domain.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Volunteer is an application submitted through the public site.
// ApprovedAt and ApprovedBy are set the first time status becomes
// "approved" and are never cleared, even when the status later changes
// again.
type Volunteer struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email" index:"single:1"`
	Phone        string             `json:"phone" bson:"phone"`
	Age          int                `json:"age,omitempty" bson:"age,omitempty"`
	Address      string             `json:"address,omitempty" bson:"address,omitempty"`
	Occupation   string             `json:"occupation,omitempty" bson:"occupation,omitempty"`
	Interests    []string           `json:"interests,omitempty" bson:"interests,omitempty"`
	Availability string             `json:"availability,omitempty" bson:"availability,omitempty"`
	Experience   string             `json:"experience,omitempty" bson:"experience,omitempty"`
	Motivation   string             `json:"motivation,omitempty" bson:"motivation,omitempty"`
	Status       string             `json:"status" bson:"status" default:"pending" index:"single:1"`
	ApprovedAt   int64              `json:"approvedAt,omitempty" bson:"approvedAt,omitempty"`
	ApprovedBy   string             `json:"approvedBy,omitempty" bson:"approvedBy,omitempty"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// Volunteer statuses. Transitions are free-form; the admin moves
// applications between any of these.
const (
	VolunteerStatusPending  = "pending"
	VolunteerStatusApproved = "approved"
	VolunteerStatusRejected = "rejected"
	VolunteerStatusInactive = "inactive"
)
