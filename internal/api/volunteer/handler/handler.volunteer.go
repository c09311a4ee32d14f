// Package handler - Volunteer domain.
package handler

import (
	basehandler "ngo_portal/internal/api/base/handler"
	"ngo_portal/internal/api/volunteer/dto"
	models "ngo_portal/internal/api/volunteer/models"
	services "ngo_portal/internal/api/volunteer/service"
	"ngo_portal/internal/notify"

	"github.com/gofiber/fiber/v3"
)

// VolunteerHandler serves /api/volunteers.
type VolunteerHandler struct {
	basehandler.BaseHandler[models.Volunteer, dto.VolunteerCreateInput, dto.VolunteerUpdateInput]
	volunteerService *services.VolunteerService
	mailer           *notify.Mailer
}

func NewVolunteerHandler(mailer *notify.Mailer) *VolunteerHandler {
	service := services.NewVolunteerService()
	return &VolunteerHandler{
		BaseHandler:      basehandler.NewBaseHandler[models.Volunteer, dto.VolunteerCreateInput, dto.VolunteerUpdateInput](service),
		volunteerService: service,
		mailer:           mailer,
	}
}

// Create handles the public application form.
func (h *VolunteerHandler) Create(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		var input dto.VolunteerCreateInput
		if err := h.ParseAndValidate(c, &input); err != nil {
			return err
		}

		volunteer, err := h.ConvertInput(&input)
		if err != nil {
			return err
		}

		created, err := h.Service.InsertOne(c.Context(), volunteer)
		if err != nil {
			return err
		}

		return basehandler.JSONResponse(c, fiber.StatusCreated, fiber.Map{
			"success":   true,
			"volunteer": created,
			"message":   "Thank you for applying, we will get back to you soon",
		})
	})
}

// UpdateById lets the admin move an application between statuses. The
// first move to approved stamps approvedAt plus the approving admin and
// triggers the approval mail; both survive any later status change.
func (h *VolunteerHandler) UpdateById(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		id, err := h.ParamObjectID(c, "id")
		if err != nil {
			return err
		}

		var input dto.VolunteerUpdateInput
		if err := h.ParseAndValidate(c, &input); err != nil {
			return err
		}

		update, err := h.BuildUpdate(&input)
		if err != nil {
			return err
		}

		approver, _ := c.Locals("adminUsername").(string)
		updated, latchFired, err := h.volunteerService.UpdateVolunteer(c.Context(), id, update, approver)
		if err != nil {
			return err
		}

		if latchFired {
			h.mailer.SendVolunteerApproval(updated.Email, updated.Name)
		}

		return basehandler.JSONResponse(c, fiber.StatusOK, fiber.Map{
			"success":   true,
			"volunteer": updated,
		})
	})
}
