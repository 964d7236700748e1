package server

import (
	"lightbox/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed. All filters combine with AND; the viewer
// identity only affects the hasLiked flags.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	result, err := s.feedService.BuildFeed(c.Context(), service.FeedInput{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		Tag:      c.Query("tag"),
		Type:     c.Query("type"),
		Username: c.Query("username"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
		ViewerID: viewerID(c),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(result)
}

// GetSuggestions handles GET /api/feed/search/suggestions
func (s *Server) GetSuggestions(c *fiber.Ctx) error {
	suggestions, err := s.suggestionService.Get(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(suggestions)
}
