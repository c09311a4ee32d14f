// Package models - Auth domain.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin is a back-office account. PasswordHash is bcrypt and never
// serialized to JSON.
type Admin struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username" index:"unique"`
	Email        string             `json:"email" bson:"email" index:"unique"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
	FullName     string             `json:"fullName,omitempty" bson:"fullName,omitempty"`
	Role         string             `json:"role" bson:"role" default:"admin"`
	Permissions  []string           `json:"permissions,omitempty" bson:"permissions,omitempty"`
	IsActive     bool               `json:"isActive" bson:"isActive,omitempty" default:"true"`
	LastLoginAt  int64              `json:"lastLoginAt,omitempty" bson:"lastLoginAt,omitempty"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// DefaultAdminPermissions is the full back-office permission set; new
// accounts start with all of it.
func DefaultAdminPermissions() []string {
	return []string{
		"content:write",
		"donations:manage",
		"volunteers:manage",
		"settings:write",
	}
}
