// Package handler - Content domain.
package handler

import (
	basehandler "ngo_portal/internal/api/base/handler"
	"ngo_portal/internal/api/content/dto"
	models "ngo_portal/internal/api/content/models"
	services "ngo_portal/internal/api/content/service"

	"github.com/gofiber/fiber/v3"
)

// PostHandler serves /api/posts.
type PostHandler struct {
	basehandler.BaseHandler[models.Post, dto.PostCreateInput, dto.PostUpdateInput]
	postService *services.PostService
}

func NewPostHandler() *PostHandler {
	service := services.NewPostService()
	return &PostHandler{
		BaseHandler: basehandler.NewBaseHandler[models.Post, dto.PostCreateInput, dto.PostUpdateInput](service),
		postService: service,
	}
}

// List is the public feed: published posts only.
func (h *PostHandler) List(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		posts, err := h.postService.ListPublic(c.Context())
		if err != nil {
			return err
		}
		return basehandler.JSONResponse(c, fiber.StatusOK, posts)
	})
}

// GetById returns one post and counts the read. The counter is
// best-effort; a failed bump never blocks the response.
func (h *PostHandler) GetById(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		id, err := h.ParamObjectID(c, "id")
		if err != nil {
			return err
		}
		post, err := h.postService.FindOneById(c.Context(), id)
		if err != nil {
			return err
		}
		if err := h.postService.IncrementViewCount(c.Context(), id); err == nil {
			post.ViewCount++
		}
		return basehandler.JSONResponse(c, fiber.StatusOK, post)
	})
}

func (h *PostHandler) Create(c fiber.Ctx) error {
	return basehandler.SafeHandler(c, func() error {
		var input dto.PostCreateInput
		if err := h.ParseAndValidate(c, &input); err != nil {
			return err
		}

		post, err := h.ConvertInput(&input)
		if err != nil {
			return err
		}

		created, err := h.postService.CreatePost(c.Context(), post)
		if err != nil {
			return err
		}

		return basehandler.JSONResponse(c, fiber.StatusCreated, fiber.Map{
			"success": true,
			"post":    created,
			"message": "Post created successfully",
		})
	})
}
