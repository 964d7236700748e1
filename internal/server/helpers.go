package server

import (
	"strconv"

	"lightbox/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseID parses the :id route parameter as a positive integer.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid id parameter")
	}
	return uint(id), nil
}

// viewerID returns the authenticated user's ID, or zero for anonymous
// requests.
func viewerID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

// queryInt parses an integer query parameter, returning zero when absent or
// malformed so the service layer applies its defaults.
func queryInt(c *fiber.Ctx, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}

// fail writes the error response with the status derived from the error's
// taxonomy code.
func fail(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}
