// Package handler - Settings domain.
package handler

import (
	"context"

	basehandler "ngo_portal/internal/api/base/handler"
	"ngo_portal/internal/api/settings/dto"
	models "ngo_portal/internal/api/settings/models"
	services "ngo_portal/internal/api/settings/service"
	"ngo_portal/internal/common"

	"github.com/gofiber/fiber/v3"
)

// settingsManager is the key-addressed surface of SettingsService the
// handler depends on.
type settingsManager interface {
	ListAll(ctx context.Context) ([]models.Setting, error)
	FindByKey(ctx context.Context, key string) (models.Setting, error)
	UpsertByKey(ctx context.Context, input dto.SettingUpsertInput) (models.Setting, bool, error)
	UpdateByKey(ctx context.Context, key string, input dto.SettingUpdateInput) (models.Setting, error)
	DeleteByKey(ctx context.Context, key string) error
}

// SettingsHandler serves /api/settings. Settings are addressed by key,
// not by document id, so this handler registers its own routes instead
// of the generic CRUD set.
type SettingsHandler struct {
	basehandler.BaseHandler[models.Setting, dto.SettingUpsertInput, dto.SettingUpdateInput]
	settingsService settingsManager
}

func NewSettingsHandler() *SettingsHandler {
	service := services.NewSettingsService()
	return &SettingsHandler{
		BaseHandler:     basehandler.NewBaseHandler[models.Setting, dto.SettingUpsertInput, dto.SettingUpdateInput](service),
		settingsService: service,
	}
}

// List returns every setting.
func (h *SettingsHandler) List(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		settings, err := h.settingsService.ListAll(c.Context())
		if err != nil {
			return err
		}
		return basehandler.JSONResponse(c, fiber.StatusOK, settings)
	})
}

// GetByKey returns one setting.
func (h *SettingsHandler) GetByKey(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		setting, err := h.settingsService.FindByKey(c.Context(), c.Params("key"))
		if err != nil {
			return err
		}
		return basehandler.JSONResponse(c, fiber.StatusOK, setting)
	})
}

// Upsert handles POST: create the key with defaults or update it. The
// message tells the admin panel which of the two happened.
func (h *SettingsHandler) Upsert(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		var input dto.SettingUpsertInput
		if err := h.ParseAndValidate(c, &input); err != nil {
			return err
		}
		if input.Value == nil {
			return common.NewError(common.ErrCodeValidationInput,
				"value is required", common.StatusBadRequest, nil)
		}

		setting, created, err := h.settingsService.UpsertByKey(c.Context(), input)
		if err != nil {
			return err
		}

		message := "Setting updated successfully"
		if created {
			message = "Setting created successfully"
		}
		return basehandler.JSONResponse(c, fiber.StatusOK, fiber.Map{
			"success": true,
			"setting": setting,
			"message": message,
		})
	})
}

// UpdateByKey handles PUT: update-only, 404 for unknown keys.
func (h *SettingsHandler) UpdateByKey(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		var input dto.SettingUpdateInput
		if err := h.ParseAndValidate(c, &input); err != nil {
			return err
		}
		if input.Value == nil {
			return common.NewError(common.ErrCodeValidationInput,
				"value is required", common.StatusBadRequest, nil)
		}

		setting, err := h.settingsService.UpdateByKey(c.Context(), c.Params("key"), input)
		if err != nil {
			return err
		}

		return basehandler.JSONResponse(c, fiber.StatusOK, fiber.Map{
			"success": true,
			"setting": setting,
			"message": "Setting updated successfully",
		})
	})
}

// DeleteByKey removes a setting.
func (h *SettingsHandler) DeleteByKey(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		if err := h.settingsService.DeleteByKey(c.Context(), c.Params("key")); err != nil {
			return err
		}
		return basehandler.JSONResponse(c, fiber.StatusOK, fiber.Map{
			"success": true,
			"message": "Setting deleted successfully",
		})
	})
}
