// Package handler - Seed domain.
package handler

import (
	basehandler "ngo_portal/internal/api/base/handler"
	services "ngo_portal/internal/api/seed/service"

	"github.com/gofiber/fiber/v3"
)

// SeedHandler serves POST /api/seed.
type SeedHandler struct {
	service *services.SeedService
}

func NewSeedHandler() *SeedHandler {
	return &SeedHandler{service: services.NewSeedService()}
}

// Seed populates empty collections with demo data. Safe to call more
// than once.
func (h *SeedHandler) Seed(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		result, err := h.service.Run(c.Context())
		if err != nil {
			return err
		}

		response := fiber.Map{
			"success":  true,
			"message":  "Seed completed",
			"inserted": result.Inserted,
		}
		if result.AdminCreated {
			response["credentials"] = result.Credentials
		}
		return basehandler.JSONResponse(c, fiber.StatusOK, response)
	})
}
