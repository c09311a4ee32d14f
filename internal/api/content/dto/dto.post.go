// Package dto - Content domain.
package dto

// PostCreateInput is the body of POST /api/posts.
type PostCreateInput struct {
	Title       string   `json:"title" bson:"title" validate:"required,max=200,no_xss"`
	Content     string   `json:"content" bson:"content" validate:"required,no_xss"`
	Excerpt     string   `json:"excerpt" bson:"excerpt,omitempty" validate:"omitempty,max=500,no_xss"`
	Author      string   `json:"author" bson:"author,omitempty" validate:"omitempty,max=100,no_xss"`
	Type        string   `json:"type" bson:"type,omitempty" validate:"omitempty,oneof=notice blog announcement"`
	Category    string   `json:"category" bson:"category,omitempty" validate:"omitempty,max=50,no_xss"`
	ImageUrl    string   `json:"imageUrl" bson:"imageUrl,omitempty" validate:"omitempty,url,max=500"`
	Tags        []string `json:"tags" bson:"tags,omitempty" validate:"omitempty,max=20,dive,max=50"`
	Pinned      *bool    `json:"pinned" bson:"pinned,omitempty"`
	IsPublished *bool    `json:"isPublished" bson:"isPublished,omitempty"`
}

// PostUpdateInput is the body of PUT /api/posts/:id.
type PostUpdateInput struct {
	Title       string   `json:"title" bson:"title,omitempty" validate:"omitempty,max=200,no_xss"`
	Content     string   `json:"content" bson:"content,omitempty" validate:"omitempty,no_xss"`
	Excerpt     string   `json:"excerpt" bson:"excerpt,omitempty" validate:"omitempty,max=500,no_xss"`
	Author      string   `json:"author" bson:"author,omitempty" validate:"omitempty,max=100,no_xss"`
	Type        string   `json:"type" bson:"type,omitempty" validate:"omitempty,oneof=notice blog announcement"`
	Category    string   `json:"category" bson:"category,omitempty" validate:"omitempty,max=50,no_xss"`
	ImageUrl    string   `json:"imageUrl" bson:"imageUrl,omitempty" validate:"omitempty,url,max=500"`
	Tags        []string `json:"tags" bson:"tags,omitempty" validate:"omitempty,max=20,dive,max=50"`
	Pinned      *bool    `json:"pinned" bson:"pinned,omitempty"`
	IsPublished *bool    `json:"isPublished" bson:"isPublished,omitempty"`
}
