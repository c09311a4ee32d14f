// Package router - Event domain.
package router

import (
	"ngo_portal/internal/api/event/handler"
	apirouter "ngo_portal/internal/api/router"

	"github.com/gofiber/fiber/v3"
)

// Register mounts /api/events and /api/gallery.
func Register(api fiber.Router, r *apirouter.Router) error {
	r.RegisterCRUDRoutes(api, "/events", handler.NewEventHandler(), apirouter.PublicContentConfig)
	r.RegisterCRUDRoutes(api, "/gallery", handler.NewGalleryHandler(), apirouter.PublicContentConfig)
	return nil
}
