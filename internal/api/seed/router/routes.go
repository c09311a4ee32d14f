// Package router - Seed domain.
package router

import (
	apirouter "ngo_portal/internal/api/router"
	"ngo_portal/internal/api/seed/handler"

	"github.com/gofiber/fiber/v3"
)

// Register mounts POST /api/seed.
func Register(api fiber.Router, r *apirouter.Router) error {
	h := handler.NewSeedHandler()
	apirouter.RegisterRouteWithMiddleware(api, "/seed", fiber.MethodPost, "", nil, h.Seed)
	return nil
}
