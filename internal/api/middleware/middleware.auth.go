// Package middleware holds the HTTP middleware of the API.
package middleware

import (
	"strings"

	basehandler "ngo_portal/internal/api/base/handler"
	"ngo_portal/internal/common"
	"ngo_portal/internal/global"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v4"
)

// AdminClaims is the JWT payload issued at admin login.
type AdminClaims struct {
	AdminID  string `json:"adminId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware authenticates requests with a Bearer access token and
// stores the admin identity in Locals for downstream handlers.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return basehandler.HandleError(c, common.ErrTokenMissing)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return basehandler.HandleError(c, common.ErrTokenInvalid)
		}

		claims := &AdminClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, common.ErrTokenInvalid
			}
			return []byte(global.ServerConfig.JwtSecret), nil
		})
		if err != nil {
			if strings.Contains(err.Error(), "expired") {
				return basehandler.HandleError(c, common.ErrTokenExpired)
			}
			return basehandler.HandleError(c, common.ErrTokenInvalid)
		}
		if !token.Valid || claims.AdminID == "" {
			return basehandler.HandleError(c, common.ErrTokenInvalid)
		}

		c.Locals("adminId", claims.AdminID)
		c.Locals("adminUsername", claims.Username)
		c.Locals("adminRole", claims.Role)
		return c.Next()
	}
}
