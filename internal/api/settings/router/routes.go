// Package router - Settings domain.
package router

import (
	apirouter "ngo_portal/internal/api/router"
	"ngo_portal/internal/api/settings/handler"

	"github.com/gofiber/fiber/v3"
)

// Register mounts the key-addressed settings routes under
// /api/settings. Reads are public (the site renders from them);
// mutations are admin-only.
func Register(api fiber.Router, r *apirouter.Router) error {
	h := handler.NewSettingsHandler()
	authMW := []fiber.Handler{r.AuthMiddleware()}

	apirouter.RegisterRouteWithMiddleware(api, "/settings", fiber.MethodGet, "", nil, h.List)
	apirouter.RegisterRouteWithMiddleware(api, "/settings", fiber.MethodGet, "/:key", nil, h.GetByKey)
	apirouter.RegisterRouteWithMiddleware(api, "/settings", fiber.MethodPost, "", authMW, h.Upsert)
	apirouter.RegisterRouteWithMiddleware(api, "/settings", fiber.MethodPut, "/:key", authMW, h.UpdateByKey)
	apirouter.RegisterRouteWithMiddleware(api, "/settings", fiber.MethodDelete, "/:key", authMW, h.DeleteByKey)
	return nil
}
