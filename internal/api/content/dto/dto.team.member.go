package dto

// TeamMemberCreateInput is the body of POST /api/team.
type TeamMemberCreateInput struct {
	Name         string            `json:"name" bson:"name" validate:"required,max=150,no_xss"`
	Role         string            `json:"role" bson:"role" validate:"required,max=150,no_xss"`
	Bio          string            `json:"bio" bson:"bio,omitempty" validate:"omitempty,max=2000,no_xss"`
	ImageUrl     string            `json:"imageUrl" bson:"imageUrl,omitempty" validate:"omitempty,url,max=500"`
	Email        string            `json:"email" bson:"email,omitempty" validate:"omitempty,email"`
	Socials      map[string]string `json:"socials" bson:"socials,omitempty" validate:"omitempty,max=10"`
	DisplayOrder int               `json:"displayOrder" bson:"displayOrder,omitempty" validate:"omitempty,gte=0"`
}

// TeamMemberUpdateInput is the body of PUT /api/team/:id.
type TeamMemberUpdateInput struct {
	Name         string            `json:"name" bson:"name,omitempty" validate:"omitempty,max=150,no_xss"`
	Role         string            `json:"role" bson:"role,omitempty" validate:"omitempty,max=150,no_xss"`
	Bio          string            `json:"bio" bson:"bio,omitempty" validate:"omitempty,max=2000,no_xss"`
	ImageUrl     string            `json:"imageUrl" bson:"imageUrl,omitempty" validate:"omitempty,url,max=500"`
	Email        string            `json:"email" bson:"email,omitempty" validate:"omitempty,email"`
	Socials      map[string]string `json:"socials" bson:"socials,omitempty" validate:"omitempty,max=10"`
	DisplayOrder *int              `json:"displayOrder" bson:"displayOrder,omitempty" validate:"omitempty"`
	IsActive     *bool             `json:"isActive" bson:"isActive,omitempty"`
}
