package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireTenant ensures the caller's tenant claim matches the :tenantId path
// parameter. Platform admins may act on any tenant.
func RequireTenant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role == "admin" {
			return c.Next()
		}

		param, err := c.ParamsInt("tenantId")
		if err != nil || param <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid tenant ID",
			})
		}

		tenantID, _ := c.Locals("tenantID").(uint)
		if tenantID == 0 || uint(param) != tenantID {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have access to this tenant",
			})
		}

		return c.Next()
	}
}
