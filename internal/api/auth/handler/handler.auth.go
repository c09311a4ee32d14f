// Package handler - Auth domain.
package handler

import (
	"ngo_portal/internal/api/auth/dto"
	"ngo_portal/internal/api/auth/models"
	services "ngo_portal/internal/api/auth/service"
	basehandler "ngo_portal/internal/api/base/handler"
	"ngo_portal/internal/common"
	"ngo_portal/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// AuthHandler serves /api/auth.
type AuthHandler struct {
	basehandler.BaseHandler[models.Admin, dto.LoginInput, dto.ChangePasswordInput]
	authService *services.AuthService
}

func NewAuthHandler() *AuthHandler {
	service := services.NewAuthService()
	return &AuthHandler{
		BaseHandler: basehandler.NewBaseHandler[models.Admin, dto.LoginInput, dto.ChangePasswordInput](service),
		authService: service,
	}
}

// Login authenticates an admin and returns a token pair.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		var input dto.LoginInput
		if err := h.ParseAndValidate(c, &input); err != nil {
			return err
		}

		admin, err := h.authService.Authenticate(c.Context(), input.Username, input.Password)
		if err != nil {
			return err
		}

		tokens, err := h.authService.IssueTokens(admin)
		if err != nil {
			return err
		}

		logger.WithRequest(c).WithField("admin", admin.Username).Info("Admin logged in")

		return basehandler.JSONResponse(c, fiber.StatusOK, fiber.Map{
			"success":      true,
			"token":        tokens.AccessToken,
			"refreshToken": tokens.RefreshToken,
			"admin":        admin,
		})
	})
}

// Refresh exchanges a refresh token for a fresh pair.
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		var input dto.RefreshInput
		if err := h.ParseAndValidate(c, &input); err != nil {
			return err
		}

		tokens, admin, err := h.authService.Refresh(c.Context(), input.RefreshToken)
		if err != nil {
			return err
		}

		return basehandler.JSONResponse(c, fiber.StatusOK, fiber.Map{
			"success":      true,
			"token":        tokens.AccessToken,
			"refreshToken": tokens.RefreshToken,
			"admin":        admin,
		})
	})
}

// Me returns the authenticated admin's own account.
func (h *AuthHandler) Me(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		adminID, _ := c.Locals("adminId").(string)
		objID, err := h.ToObjectID(adminID)
		if err != nil {
			return common.ErrTokenInvalid
		}

		admin, err := h.authService.FindOneById(c.Context(), objID)
		if err != nil {
			return err
		}
		return basehandler.JSONResponse(c, fiber.StatusOK, admin)
	})
}

// ChangePassword replaces the authenticated admin's password.
func (h *AuthHandler) ChangePassword(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		adminID, _ := c.Locals("adminId").(string)
		objID, err := h.ToObjectID(adminID)
		if err != nil {
			return common.ErrTokenInvalid
		}

		var input dto.ChangePasswordInput
		if err := h.ParseAndValidate(c, &input); err != nil {
			return err
		}

		if err := h.authService.ChangePassword(c.Context(), objID, input.CurrentPassword, input.NewPassword); err != nil {
			return err
		}

		return basehandler.JSONResponse(c, fiber.StatusOK, fiber.Map{
			"success": true,
			"message": "Password changed successfully",
		})
	})
}
