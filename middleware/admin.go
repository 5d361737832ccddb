package middleware

import (
	"github.com/harshrjgithub/YouTube-LMS/database"
	"github.com/harshrjgithub/YouTube-LMS/models"

	"github.com/gofiber/fiber/v2"
)

// AdminOnly requires the authenticated user to carry the admin role. The
// check is on the role attribute alone; the admin identity itself is
// provisioned from configuration at startup.
func AdminOnly(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleAdmin {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied. Administrator privileges required.", nil)
	}

	c.Locals("user", user)
	return c.Next()
}
