package server

import (
	"lightbox/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateCreator handles POST /api/admin/create-creator. The route is guarded
// by the admin secret header; it provisions an account with the creator role.
func (s *Server) CreateCreator(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.registerUser(c, req, models.RoleCreator)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user":    models.ProjectUser(user),
	})
}
