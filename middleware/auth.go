package middleware

import (
	"strings"

	"enrollapi/config"

	"github.com/gofiber/fiber/v2"
)

// AdminGuard checks the bearer token against the shared admin token. It gates
// only the mutating user and enrollment routes; reads stay open.
func AdminGuard(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
	}

	token := authHeader[len("Bearer "):]
	if token == "" || token != config.AppConfig.AdminToken {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or missing token.", nil)
	}

	return c.Next()
}
