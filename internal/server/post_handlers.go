package server

import (
	"github.com/gofiber/fiber/v2"

	"lightbox/internal/models"
)

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	post, err := s.postService.GetPost(c.Context(), id, viewerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(post)
}

// LikePost handles POST /api/posts/:id/like. Liking an already-liked post is
// a no-op success.
func (s *Server) LikePost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	result, err := s.postService.LikePost(c.Context(), id, viewerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(result)
}

// CreateComment handles POST /api/posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.postService.AddComment(c.Context(), id, viewerID(c), req.Text)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}
