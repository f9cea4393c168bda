package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Youssef23122003/food-app-api/internal/models"
	"github.com/Youssef23122003/food-app-api/internal/services"
)

// AuthRequired is a Fiber middleware to check for a valid JWT bearer token.
// On success the caller's id and role are stored in the request locals for
// downstream authorization decisions.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		userID, _ := claims["user_id"].(string)
		userGroup, _ := claims["user_group"].(string)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		c.Locals("user_id", userID)
		c.Locals("user_group", userGroup)

		return c.Next()
	}
}

// SuperAdminRequired rejects callers whose role is not SuperAdmin. It must
// run after AuthRequired.
func SuperAdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !CallerRole(c).IsSuperAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Access denied",
			})
		}
		return c.Next()
	}
}

// CallerID returns the authenticated user's id from the request locals.
func CallerID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

// CallerRole returns the authenticated user's role from the request locals.
func CallerRole(c *fiber.Ctx) models.Role {
	role, _ := c.Locals("user_group").(string)
	return models.Role(role)
}
