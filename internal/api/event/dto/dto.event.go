// Package dto - Event domain.
package dto

// EventCreateInput is the body of POST /api/events.
type EventCreateInput struct {
	Title           string `json:"title" bson:"title" validate:"required,max=200,no_xss"`
	Description     string `json:"description" bson:"description,omitempty" validate:"omitempty,max=5000,no_xss"`
	Location        string `json:"location" bson:"location,omitempty" validate:"omitempty,max=300,no_xss"`
	Organizer       string `json:"organizer" bson:"organizer,omitempty" validate:"omitempty,max=150,no_xss"`
	EventDate       string `json:"eventDate" bson:"eventDate" validate:"required,max=30"`
	EventTime       string `json:"eventTime" bson:"eventTime,omitempty" validate:"omitempty,max=30"`
	Category        string `json:"category" bson:"category,omitempty" validate:"omitempty,max=50,no_xss"`
	Status          string `json:"status" bson:"status,omitempty" validate:"omitempty,oneof=upcoming ongoing completed"`
	ImageUrl        string `json:"imageUrl" bson:"imageUrl,omitempty" validate:"omitempty,url,max=500"`
	MaxParticipants int    `json:"maxParticipants" bson:"maxParticipants,omitempty" validate:"omitempty,gte=0"`
}

// EventUpdateInput is the body of PUT /api/events/:id. Every field is
// optional; only the ones supplied are written. The participant list is
// replaced wholesale when present; its count is derived on read and
// never written directly.
type EventUpdateInput struct {
	Title                  string   `json:"title" bson:"title,omitempty" validate:"omitempty,max=200,no_xss"`
	Description            string   `json:"description" bson:"description,omitempty" validate:"omitempty,max=5000,no_xss"`
	Location               string   `json:"location" bson:"location,omitempty" validate:"omitempty,max=300,no_xss"`
	Organizer              string   `json:"organizer" bson:"organizer,omitempty" validate:"omitempty,max=150,no_xss"`
	EventDate              string   `json:"eventDate" bson:"eventDate,omitempty" validate:"omitempty,max=30"`
	EventTime              string   `json:"eventTime" bson:"eventTime,omitempty" validate:"omitempty,max=30"`
	Category               string   `json:"category" bson:"category,omitempty" validate:"omitempty,max=50,no_xss"`
	Status                 string   `json:"status" bson:"status,omitempty" validate:"omitempty,oneof=upcoming ongoing completed"`
	ImageUrl               string   `json:"imageUrl" bson:"imageUrl,omitempty" validate:"omitempty,url,max=500"`
	MaxParticipants        *int     `json:"maxParticipants" bson:"maxParticipants,omitempty" validate:"omitempty"`
	RegisteredParticipants []string `json:"registeredParticipants" bson:"-" validate:"omitempty,max=5000,dive,len=24,hexadecimal"`
	IsActive               *bool    `json:"isActive" bson:"isActive,omitempty"`
}
