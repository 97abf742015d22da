package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shivam-khode01/Faculty-appraisalSystem/models"
)

func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("admin").(*models.Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data is corrupted"})
		}

		if claims.Role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied. Admin privileges required"})
		}

		return c.Next()
	}
}
