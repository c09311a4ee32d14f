// Package router - Donation domain.
package router

import (
	"ngo_portal/internal/api/donation/handler"
	apirouter "ngo_portal/internal/api/router"
	"ngo_portal/internal/notify"

	"github.com/gofiber/fiber/v3"
)

// donationConfig: the public site submits; listing and corrections
// (status fixes via PUT, removal) are admin-only.
var donationConfig = apirouter.CRUDConfig{
	List: true, ListAuth: true,
	Create: true,
	Update: true, UpdateAuth: true,
	Delete: true, DeleteAuth: true,
	Count: true, Paginate: true,
}

// Register mounts the donation routes under /api/donations.
func Register(mailer *notify.Mailer) apirouter.RegisterFunc {
	return func(api fiber.Router, r *apirouter.Router) error {
		h := handler.NewDonationHandler(mailer)
		r.RegisterCRUDRoutes(api, "/donations", h, donationConfig)
		return nil
	}
}
