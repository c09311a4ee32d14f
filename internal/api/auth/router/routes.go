// Package router - Auth domain.
package router

import (
	"ngo_portal/internal/api/auth/handler"
	apirouter "ngo_portal/internal/api/router"

	"github.com/gofiber/fiber/v3"
)

// Register mounts /api/auth.
func Register(api fiber.Router, r *apirouter.Router) error {
	h := handler.NewAuthHandler()
	authMW := []fiber.Handler{r.AuthMiddleware()}

	apirouter.RegisterRouteWithMiddleware(api, "/auth", fiber.MethodPost, "/login", nil, h.Login)
	apirouter.RegisterRouteWithMiddleware(api, "/auth", fiber.MethodPost, "/refresh", nil, h.Refresh)
	apirouter.RegisterRouteWithMiddleware(api, "/auth", fiber.MethodGet, "/me", authMW, h.Me)
	apirouter.RegisterRouteWithMiddleware(api, "/auth", fiber.MethodPost, "/change-password", authMW, h.ChangePassword)
	return nil
}
