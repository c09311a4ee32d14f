// Package router - Content domain.
package router

import (
	"ngo_portal/internal/api/content/handler"
	apirouter "ngo_portal/internal/api/router"

	"github.com/gofiber/fiber/v3"
)

// Register mounts /api/posts, /api/documents and /api/team.
func Register(api fiber.Router, r *apirouter.Router) error {
	r.RegisterCRUDRoutes(api, "/posts", handler.NewPostHandler(), apirouter.PublicContentConfig)

	documents := handler.NewDocumentHandler()
	r.RegisterCRUDRoutes(api, "/documents", documents, apirouter.PublicContentConfig)
	apirouter.RegisterRouteWithMiddleware(api, "/documents", fiber.MethodGet, "/:id/download", nil, documents.Download)

	r.RegisterCRUDRoutes(api, "/team", handler.NewTeamMemberHandler(), apirouter.PublicContentConfig)
	return nil
}
