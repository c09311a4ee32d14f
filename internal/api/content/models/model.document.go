package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is a downloadable file reference (annual reports, statutory
// certificates). FileUrl points at external storage; this API stores
// metadata only.
type Document struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	FileUrl       string             `json:"fileUrl" bson:"fileUrl"`
	FileType      string             `json:"fileType,omitempty" bson:"fileType,omitempty"`
	Category      string             `json:"category" bson:"category" default:"general" index:"single:1"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	SizeBytes     int64              `json:"sizeBytes,omitempty" bson:"sizeBytes,omitempty"`
	DownloadCount int64              `json:"downloadCount" bson:"downloadCount,omitempty"`
	IsPublic      bool               `json:"isPublic" bson:"isPublic,omitempty" default:"true"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}
