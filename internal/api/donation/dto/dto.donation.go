// Package dto - Donation domain.
package dto

// DonationCreateInput is the body of POST /api/donations. The bson tags
// define the mapping onto the stored model; optional fields marshal
// with omitempty so declared defaults apply to whatever the donor left
// out.
type DonationCreateInput struct {
	DonorName     string  `json:"donorName" bson:"donorName" validate:"required,max=200,no_xss"`
	DonorEmail    string  `json:"donorEmail" bson:"donorEmail" validate:"required,email"`
	DonorPhone    string  `json:"donorPhone" bson:"donorPhone,omitempty" validate:"omitempty,max=20"`
	Amount        float64 `json:"amount" bson:"amount" validate:"required,gt=0"`
	Currency      string  `json:"currency" bson:"currency,omitempty" validate:"omitempty,alpha,len=3"`
	Purpose       string  `json:"purpose" bson:"purpose,omitempty" validate:"omitempty,max=200,no_xss"`
	PaymentMethod string  `json:"paymentMethod" bson:"paymentMethod,omitempty" validate:"omitempty,max=50"`
	Status        string  `json:"status" bson:"status,omitempty" validate:"omitempty,oneof=Pending Completed Failed Refunded"`
	IsAnonymous   *bool   `json:"isAnonymous" bson:"isAnonymous,omitempty"`
	Message       string  `json:"message" bson:"message,omitempty" validate:"omitempty,max=1000,no_xss"`
	PanNumber     string  `json:"panNumber" bson:"panNumber,omitempty" validate:"omitempty,alphanum,len=10"`
}

// DonationUpdateInput allows an admin to correct the status of a
// recorded donation.
type DonationUpdateInput struct {
	Status string `json:"status" bson:"status,omitempty" validate:"omitempty,oneof=Pending Completed Failed Refunded"`
}
