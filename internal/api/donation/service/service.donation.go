// Package services - Donation domain.
package services

import (
	"context"
	"fmt"
	"time"

	baseservice "ngo_portal/internal/api/base/service"
	models "ngo_portal/internal/api/donation/models"
	"ngo_portal/internal/global"

	"go.mongodb.org/mongo-driver/bson"
)

// DonationService extends the generic service with receipt numbering.
type DonationService struct {
	*baseservice.BaseServiceMongoImpl[models.Donation]
	orgCode string
}

// NewDonationService wires the service to the donations collection.
func NewDonationService() *DonationService {
	collection := global.RegistryCollections.MustGet(global.ColNames.Donations)
	return &DonationService{
		BaseServiceMongoImpl: baseservice.NewBaseService[models.Donation](collection),
		orgCode:              global.ServerConfig.OrgCode,
	}
}

// FormatReceiptNumber renders <ORG>-RCP-<YYYY>-<NNNNNN> with the
// sequence zero-padded to six digits.
func FormatReceiptNumber(orgCode string, year int, sequence int64) string {
	return fmt.Sprintf("%s-RCP-%d-%06d", orgCode, year, sequence)
}

// NextReceiptNumber derives the next receipt number from the current
// donation count. Two concurrent submissions can compute the same
// sequence; the unique index on receiptNumber rejects the second insert
// with a 409 instead of issuing a duplicate receipt.
func (s *DonationService) NextReceiptNumber(ctx context.Context) (string, error) {
	count, err := s.CountDocuments(ctx, bson.M{})
	if err != nil {
		return "", err
	}
	return FormatReceiptNumber(s.orgCode, time.Now().Year(), count+1), nil
}

// CreateDonation assigns the receipt number and stores the donation.
func (s *DonationService) CreateDonation(ctx context.Context, donation models.Donation) (models.Donation, error) {
	receiptNumber, err := s.NextReceiptNumber(ctx)
	if err != nil {
		return models.Donation{}, err
	}
	donation.ReceiptNumber = receiptNumber
	return s.InsertOne(ctx, donation)
}
