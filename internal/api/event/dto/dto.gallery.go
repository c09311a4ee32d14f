package dto

// GalleryCreateInput is the body of POST /api/gallery.
type GalleryCreateInput struct {
	Title       string   `json:"title" bson:"title" validate:"required,max=200,no_xss"`
	Type        string   `json:"type" bson:"type,omitempty" validate:"omitempty,oneof=photo video"`
	ImageUrl    string   `json:"imageUrl" bson:"imageUrl" validate:"required,url,max=500"`
	Description string   `json:"description" bson:"description,omitempty" validate:"omitempty,max=2000,no_xss"`
	Category    string   `json:"category" bson:"category,omitempty" validate:"omitempty,max=50,no_xss"`
	Tags        []string `json:"tags" bson:"tags,omitempty" validate:"omitempty,max=20,dive,max=50"`
	EventID     string   `json:"eventId" bson:"-" validate:"omitempty,len=24,hexadecimal"`
}

// GalleryUpdateInput is the body of PUT /api/gallery/:id.
type GalleryUpdateInput struct {
	Title       string   `json:"title" bson:"title,omitempty" validate:"omitempty,max=200,no_xss"`
	Type        string   `json:"type" bson:"type,omitempty" validate:"omitempty,oneof=photo video"`
	ImageUrl    string   `json:"imageUrl" bson:"imageUrl,omitempty" validate:"omitempty,url,max=500"`
	Description string   `json:"description" bson:"description,omitempty" validate:"omitempty,max=2000,no_xss"`
	Category    string   `json:"category" bson:"category,omitempty" validate:"omitempty,max=50,no_xss"`
	Tags        []string `json:"tags" bson:"tags,omitempty" validate:"omitempty,max=20,dive,max=50"`
	IsPublic    *bool    `json:"isPublic" bson:"isPublic,omitempty"`
}
