// Package handler - Event domain.
package handler

import (
	basehandler "ngo_portal/internal/api/base/handler"
	"ngo_portal/internal/api/event/dto"
	models "ngo_portal/internal/api/event/models"
	services "ngo_portal/internal/api/event/service"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventHandler serves /api/events.
type EventHandler struct {
	basehandler.BaseHandler[models.Event, dto.EventCreateInput, dto.EventUpdateInput]
	eventService *services.EventService
}

func NewEventHandler() *EventHandler {
	service := services.NewEventService()
	return &EventHandler{
		BaseHandler:  basehandler.NewBaseHandler[models.Event, dto.EventCreateInput, dto.EventUpdateInput](service),
		eventService: service,
	}
}

// List is the public event listing: active events only.
func (h *EventHandler) List(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		events, err := h.eventService.ListPublic(c.Context())
		if err != nil {
			return err
		}
		return basehandler.JSONResponse(c, fiber.StatusOK, events)
	})
}

// GetById responds with a single event, participant count filled in.
func (h *EventHandler) GetById(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		id, err := h.ParamObjectID(c, "id")
		if err != nil {
			return err
		}
		event, err := h.Service.FindOneById(c.Context(), id)
		if err != nil {
			return err
		}
		return basehandler.JSONResponse(c, fiber.StatusOK, services.WithParticipantCount(event))
	})
}

// Create responds with the event under its own key, which the admin
// panel reads back into its form state.
func (h *EventHandler) Create(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		var input dto.EventCreateInput
		if err := h.ParseAndValidate(c, &input); err != nil {
			return err
		}

		event, err := h.ConvertInput(&input)
		if err != nil {
			return err
		}

		created, err := h.Service.InsertOne(c.Context(), event)
		if err != nil {
			return err
		}

		return basehandler.JSONResponse(c, fiber.StatusCreated, fiber.Map{
			"success": true,
			"event":   services.WithParticipantCount(created),
			"message": "Event created successfully",
		})
	})
}

func (h *EventHandler) UpdateById(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		id, err := h.ParamObjectID(c, "id")
		if err != nil {
			return err
		}

		var input dto.EventUpdateInput
		if err := h.ParseAndValidate(c, &input); err != nil {
			return err
		}

		update, err := h.BuildUpdate(&input)
		if err != nil {
			return err
		}

		// The participant list rides outside the bson mapping: the
		// request carries hex ids, the document stores ObjectIDs.
		if input.RegisteredParticipants != nil {
			ids := make([]primitive.ObjectID, 0, len(input.RegisteredParticipants))
			for _, raw := range input.RegisteredParticipants {
				oid, err := h.ToObjectID(raw)
				if err != nil {
					return err
				}
				ids = append(ids, oid)
			}
			update.Set["registeredParticipants"] = ids
		}

		updated, err := h.Service.UpdateById(c.Context(), id, update)
		if err != nil {
			return err
		}

		return basehandler.JSONResponse(c, fiber.StatusOK, fiber.Map{
			"success": true,
			"event":   services.WithParticipantCount(updated),
		})
	})
}

// DeleteById soft-deletes: the delete policy of the events collection
// flips isActive instead of removing the document.
func (h *EventHandler) DeleteById(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		id, err := h.ParamObjectID(c, "id")
		if err != nil {
			return err
		}
		if err := h.Service.DeleteById(c.Context(), id); err != nil {
			return err
		}
		return basehandler.JSONResponse(c, fiber.StatusOK, fiber.Map{
			"success": true,
			"message": "Event deleted successfully",
		})
	})
}
