// Package dto - Volunteer domain.
package dto

// VolunteerCreateInput is the body of POST /api/volunteers, the public
// application form.
type VolunteerCreateInput struct {
	Name         string   `json:"name" bson:"name" validate:"required,max=150,no_xss"`
	Email        string   `json:"email" bson:"email" validate:"required,email"`
	Phone        string   `json:"phone" bson:"phone" validate:"required,max=20"`
	Age          int      `json:"age" bson:"age,omitempty" validate:"omitempty,gte=1,lte=120"`
	Address      string   `json:"address" bson:"address,omitempty" validate:"omitempty,max=500,no_xss"`
	Occupation   string   `json:"occupation" bson:"occupation,omitempty" validate:"omitempty,max=150,no_xss"`
	Interests    []string `json:"interests" bson:"interests,omitempty" validate:"omitempty,max=20,dive,max=100"`
	Availability string   `json:"availability" bson:"availability,omitempty" validate:"omitempty,max=200,no_xss"`
	Experience   string   `json:"experience" bson:"experience,omitempty" validate:"omitempty,max=2000,no_xss"`
	Motivation   string   `json:"motivation" bson:"motivation,omitempty" validate:"omitempty,max=2000,no_xss"`
}

// VolunteerUpdateInput is the body of PUT /api/volunteers/:id, used by
// the admin to move an application through its statuses.
type VolunteerUpdateInput struct {
	Status       string   `json:"status" bson:"status,omitempty" validate:"omitempty,oneof=pending approved rejected inactive"`
	Interests    []string `json:"interests" bson:"interests,omitempty" validate:"omitempty,max=20,dive,max=100"`
	Availability string   `json:"availability" bson:"availability,omitempty" validate:"omitempty,max=200,no_xss"`
}
