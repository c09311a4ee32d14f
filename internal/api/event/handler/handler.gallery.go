package handler

import (
	basehandler "ngo_portal/internal/api/base/handler"
	"ngo_portal/internal/api/event/dto"
	models "ngo_portal/internal/api/event/models"
	services "ngo_portal/internal/api/event/service"

	"github.com/gofiber/fiber/v3"
)

// GalleryHandler serves /api/gallery.
type GalleryHandler struct {
	basehandler.BaseHandler[models.GalleryItem, dto.GalleryCreateInput, dto.GalleryUpdateInput]
	galleryService *services.GalleryService
}

func NewGalleryHandler() *GalleryHandler {
	service := services.NewGalleryService()
	return &GalleryHandler{
		BaseHandler:    basehandler.NewBaseHandler[models.GalleryItem, dto.GalleryCreateInput, dto.GalleryUpdateInput](service),
		galleryService: service,
	}
}

// List is the public gallery: public items only.
func (h *GalleryHandler) List(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		items, err := h.galleryService.ListPublic(c.Context())
		if err != nil {
			return err
		}
		return basehandler.JSONResponse(c, fiber.StatusOK, items)
	})
}

// Create resolves the optional eventId reference before inserting.
func (h *GalleryHandler) Create(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		var input dto.GalleryCreateInput
		if err := h.ParseAndValidate(c, &input); err != nil {
			return err
		}

		item, err := h.ConvertInput(&input)
		if err != nil {
			return err
		}
		if input.EventID != "" {
			eventID, err := h.ToObjectID(input.EventID)
			if err != nil {
				return err
			}
			item.EventID = eventID
		}

		created, err := h.Service.InsertOne(c.Context(), item)
		if err != nil {
			return err
		}

		return basehandler.JSONResponse(c, fiber.StatusCreated, fiber.Map{
			"success": true,
			"item":    created,
			"message": "Gallery item created successfully",
		})
	})
}
