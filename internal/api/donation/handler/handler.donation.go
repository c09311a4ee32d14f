// Package handler - Donation domain.
package handler

import (
	"context"

	basehandler "ngo_portal/internal/api/base/handler"
	"ngo_portal/internal/api/donation/dto"
	models "ngo_portal/internal/api/donation/models"
	services "ngo_portal/internal/api/donation/service"
	"ngo_portal/internal/notify"

	"github.com/gofiber/fiber/v3"
)

// donationCreator is the piece of DonationService the submission
// endpoint needs.
type donationCreator interface {
	CreateDonation(ctx context.Context, donation models.Donation) (models.Donation, error)
}

// DonationHandler serves /api/donations.
type DonationHandler struct {
	basehandler.BaseHandler[models.Donation, dto.DonationCreateInput, dto.DonationUpdateInput]
	donationService donationCreator
	mailer          *notify.Mailer
}

func NewDonationHandler(mailer *notify.Mailer) *DonationHandler {
	service := services.NewDonationService()
	return &DonationHandler{
		BaseHandler:     basehandler.NewBaseHandler[models.Donation, dto.DonationCreateInput, dto.DonationUpdateInput](service),
		donationService: service,
		mailer:          mailer,
	}
}

// Create handles the public donation submission. The receipt number is
// assigned server-side and echoed at the top level of the response for
// the confirmation page, which expects a plain 200.
func (h *DonationHandler) Create(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		var input dto.DonationCreateInput
		if err := h.ParseAndValidate(c, &input); err != nil {
			return err
		}

		donation, err := h.ConvertInput(&input)
		if err != nil {
			return err
		}

		created, err := h.donationService.CreateDonation(c.Context(), donation)
		if err != nil {
			return err
		}

		h.mailer.SendDonationReceipt(created.DonorEmail, created.DonorName,
			created.ReceiptNumber, created.Amount, created.Currency)

		return basehandler.JSONResponse(c, fiber.StatusOK, fiber.Map{
			"success":       true,
			"donation":      created,
			"receiptNumber": created.ReceiptNumber,
			"message":       "Thank you for your donation",
		})
	})
}
