// Package models - Donation domain.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation records one contribution submitted through the public site
// or entered by an admin. ReceiptNumber is assigned by the service at
// creation and never changes afterwards.
type Donation struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	DonorName     string             `json:"donorName" bson:"donorName"`
	DonorEmail    string             `json:"donorEmail" bson:"donorEmail" index:"single:1"`
	DonorPhone    string             `json:"donorPhone,omitempty" bson:"donorPhone,omitempty"`
	Amount        float64            `json:"amount" bson:"amount"`
	Currency      string             `json:"currency" bson:"currency" default:"INR"`
	Purpose       string             `json:"purpose" bson:"purpose" default:"General Donation"`
	PaymentMethod string             `json:"paymentMethod" bson:"paymentMethod" default:"UPI"`
	Status        string             `json:"status" bson:"status" default:"Completed" index:"single:1"`
	IsAnonymous   bool               `json:"isAnonymous" bson:"isAnonymous,omitempty"`
	Message       string             `json:"message,omitempty" bson:"message,omitempty"`
	PanNumber     string             `json:"panNumber,omitempty" bson:"panNumber,omitempty"`
	ReceiptNumber string             `json:"receiptNumber" bson:"receiptNumber,omitempty" index:"unique,sparse"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt,omitempty" index:"single:-1"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}
