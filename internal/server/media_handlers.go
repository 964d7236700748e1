package server

import (
	"io"
	"strings"

	"lightbox/internal/models"
	"lightbox/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UploadMedia handles POST /api/media/upload. Expects multipart form data
// with the blob under "file" and metadata in the remaining fields. Only
// creator accounts may upload.
func (s *Server) UploadMedia(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByID(c.Context(), viewerID(c))
	if err != nil {
		return fail(c, err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("User no longer exists"))
	}
	if user.Role != models.RoleCreator {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Only creators can upload media"))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A media file is required"))
	}
	if fileHeader.Size > service.MaxUploadBytes {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("file exceeds the 10MB limit"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fail(c, models.NewInternalError(err))
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return fail(c, models.NewInternalError(err))
	}

	post, err := s.mediaService.Upload(c.Context(), service.UploadInput{
		CreatorID:   user.ID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     content,
		Title:       c.FormValue("title"),
		Caption:     c.FormValue("caption"),
		Location:    c.FormValue("location"),
		People:      splitPeople(c.FormValue("people")),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"post":    post,
	})
}

// splitPeople parses the comma-separated people form field.
func splitPeople(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	people := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			people = append(people, p)
		}
	}
	return people
}
