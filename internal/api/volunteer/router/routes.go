// Package router - Volunteer domain.
package router

import (
	apirouter "ngo_portal/internal/api/router"
	"ngo_portal/internal/api/volunteer/handler"
	"ngo_portal/internal/notify"

	"github.com/gofiber/fiber/v3"
)

// Register mounts the volunteer routes under /api/volunteers.
func Register(mailer *notify.Mailer) apirouter.RegisterFunc {
	return func(api fiber.Router, r *apirouter.Router) error {
		h := handler.NewVolunteerHandler(mailer)
		r.RegisterCRUDRoutes(api, "/volunteers", h, apirouter.PublicSubmitConfig)
		return nil
	}
}
