// Package middleware provides authentication and authorization middleware for the application.
package middleware

import (
	"crypto/subtle"
	"strconv"
	"strings"

	"lightbox/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// AuthRequired is a middleware that enforces authentication for protected routes.
func AuthRequired(c *fiber.Ctx) error {
	userID, ok := parseBearerToken(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired token",
		})
	}

	c.Locals("userID", userID)
	return c.Next()
}

// OptionalAuth resolves the viewer identity when a valid bearer token is
// present and proceeds anonymously otherwise. It never rejects a request.
func OptionalAuth(c *fiber.Ctx) error {
	if userID, ok := parseBearerToken(c); ok {
		c.Locals("userID", userID)
	}
	return c.Next()
}

// AdminSecretRequired guards provisioning routes with the configured
// X-Admin-Secret header.
func AdminSecretRequired(c *fiber.Ctx) error {
	secret := c.Get("X-Admin-Secret")
	if secret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(cfg.AdminAPISecret)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or missing admin secret",
		})
	}
	return c.Next()
}

// parseBearerToken validates the Authorization header and extracts the user
// ID from the token's subject claim.
func parseBearerToken(c *fiber.Ctx) (uint, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return 0, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, false
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil || userID == 0 {
		return 0, false
	}

	return uint(userID), true
}
