package handler

import (
	basehandler "ngo_portal/internal/api/base/handler"
	"ngo_portal/internal/api/content/dto"
	models "ngo_portal/internal/api/content/models"
	services "ngo_portal/internal/api/content/service"

	"github.com/gofiber/fiber/v3"
)

// DocumentHandler serves /api/documents.
type DocumentHandler struct {
	basehandler.BaseHandler[models.Document, dto.DocumentCreateInput, dto.DocumentUpdateInput]
	documentService *services.DocumentService
}

func NewDocumentHandler() *DocumentHandler {
	service := services.NewDocumentService()
	return &DocumentHandler{
		BaseHandler:     basehandler.NewBaseHandler[models.Document, dto.DocumentCreateInput, dto.DocumentUpdateInput](service),
		documentService: service,
	}
}

// List is the public download listing: public documents only.
func (h *DocumentHandler) List(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		documents, err := h.documentService.ListPublic(c.Context())
		if err != nil {
			return err
		}
		return basehandler.JSONResponse(c, fiber.StatusOK, documents)
	})
}

// Download resolves the file URL behind a download link and counts the
// download.
func (h *DocumentHandler) Download(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		id, err := h.ParamObjectID(c, "id")
		if err != nil {
			return err
		}
		document, err := h.documentService.RegisterDownload(c.Context(), id)
		if err != nil {
			return err
		}
		return basehandler.JSONResponse(c, fiber.StatusOK, fiber.Map{
			"success":       true,
			"fileUrl":       document.FileUrl,
			"downloadCount": document.DownloadCount,
		})
	})
}
