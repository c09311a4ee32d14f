package handler

import (
	basehandler "ngo_portal/internal/api/base/handler"
	"ngo_portal/internal/api/content/dto"
	models "ngo_portal/internal/api/content/models"
	services "ngo_portal/internal/api/content/service"

	"github.com/gofiber/fiber/v3"
)

// TeamMemberHandler serves /api/team.
type TeamMemberHandler struct {
	basehandler.BaseHandler[models.TeamMember, dto.TeamMemberCreateInput, dto.TeamMemberUpdateInput]
	teamService *services.TeamMemberService
}

func NewTeamMemberHandler() *TeamMemberHandler {
	service := services.NewTeamMemberService()
	return &TeamMemberHandler{
		BaseHandler: basehandler.NewBaseHandler[models.TeamMember, dto.TeamMemberCreateInput, dto.TeamMemberUpdateInput](service),
		teamService: service,
	}
}

// List is the public team page: active members in display order.
func (h *TeamMemberHandler) List(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		members, err := h.teamService.ListPublic(c.Context())
		if err != nil {
			return err
		}
		return basehandler.JSONResponse(c, fiber.StatusOK, members)
	})
}
