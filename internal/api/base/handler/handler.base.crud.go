package basehandler

import (
	basemodels "ngo_portal/internal/api/base/models"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Default REST operations. Entity handlers embed BaseHandler and get
// these for free; they override the ones whose filter, defaulting or
// response shape is entity-specific.

// List responds with every document, newest first, as a plain array.
func (h *BaseHandler[T, C, U]) List(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		items, err := h.Service.Find(c.Context(), bson.M{}, opts)
		if err != nil {
			return err
		}
		return JSONResponse(c, fiber.StatusOK, items)
	})
}

// GetById responds with a single document.
func (h *BaseHandler[T, C, U]) GetById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := h.ParamObjectID(c, "id")
		if err != nil {
			return err
		}
		item, err := h.Service.FindOneById(c.Context(), id)
		if err != nil {
			return err
		}
		return JSONResponse(c, fiber.StatusOK, item)
	})
}

// Create validates the create DTO, converts it to the model and inserts.
func (h *BaseHandler[T, C, U]) Create(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var input C
		if err := h.ParseAndValidate(c, &input); err != nil {
			return err
		}

		model, err := h.ConvertInput(&input)
		if err != nil {
			return err
		}

		created, err := h.Service.InsertOne(c.Context(), model)
		if err != nil {
			return err
		}

		return JSONResponse(c, fiber.StatusCreated, fiber.Map{
			"success": true,
			"data":    created,
			"message": "Created successfully",
		})
	})
}

// UpdateById applies the non-empty DTO fields as a partial update.
func (h *BaseHandler[T, C, U]) UpdateById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := h.ParamObjectID(c, "id")
		if err != nil {
			return err
		}

		var input U
		if err := h.ParseAndValidate(c, &input); err != nil {
			return err
		}

		update, err := h.BuildUpdate(&input)
		if err != nil {
			return err
		}

		updated, err := h.Service.UpdateById(c.Context(), id, update)
		if err != nil {
			return err
		}

		return JSONResponse(c, fiber.StatusOK, fiber.Map{
			"success": true,
			"data":    updated,
			"message": "Updated successfully",
		})
	})
}

// DeleteById removes the document according to the collection's delete
// policy (soft collections keep the document and flip their flag).
func (h *BaseHandler[T, C, U]) DeleteById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := h.ParamObjectID(c, "id")
		if err != nil {
			return err
		}
		if err := h.Service.DeleteById(c.Context(), id); err != nil {
			return err
		}
		return JSONResponse(c, fiber.StatusOK, fiber.Map{
			"success": true,
			"message": "Deleted successfully",
		})
	})
}

// Count responds with the number of documents in the collection.
func (h *BaseHandler[T, C, U]) Count(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		count, err := h.Service.CountDocuments(c.Context(), bson.M{})
		if err != nil {
			return err
		}
		return JSONResponse(c, fiber.StatusOK, basemodels.CountResult{Count: count})
	})
}

// Paginate responds with one page of documents, newest first.
func (h *BaseHandler[T, C, U]) Paginate(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		result, err := h.Service.FindWithPagination(c.Context(), bson.M{}, page, limit, opts)
		if err != nil {
			return err
		}
		return JSONResponse(c, fiber.StatusOK, result)
	})
}
