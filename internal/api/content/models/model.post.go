// Package models - Content domain: posts, documents and team members.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a news article, notice or announcement on the public site.
// Posts are hard deleted; unpublishing is done by clearing IsPublished
// instead. Pinned posts sort ahead of everything else in the public
// feed; ViewCount is bumped on every public by-id read.
type Post struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" index:"text"`
	Content     string             `json:"content" bson:"content"`
	Excerpt     string             `json:"excerpt,omitempty" bson:"excerpt,omitempty"`
	Author      string             `json:"author" bson:"author" default:"Admin"`
	Type        string             `json:"type" bson:"type" default:"blog" index:"single:1"`
	Category    string             `json:"category" bson:"category" default:"news" index:"single:1"`
	ImageUrl    string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Tags        []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	Pinned      bool               `json:"pinned" bson:"pinned,omitempty"`
	ViewCount   int64              `json:"viewCount" bson:"viewCount,omitempty"`
	IsPublished bool               `json:"isPublished" bson:"isPublished,omitempty" default:"true" index:"single:1"`
	PublishedAt int64              `json:"publishedAt,omitempty" bson:"publishedAt,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// Post types shown in different sections of the site.
const (
	PostTypeNotice       = "notice"
	PostTypeBlog         = "blog"
	PostTypeAnnouncement = "announcement"
)
