package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/realjeremy04/Skincare-Mobile-BE/utils"
)

// requireRoles compares the token-embedded role claim against a fixed
// allow-set. No storage lookup: role changes apply at next login.
func requireRoles(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(models.Role)
		if !ok {
			return utils.Unauthorized("Missing authentication token")
		}

		for _, r := range allowed {
			if role == r {
				return c.Next()
			}
		}

		return utils.Forbidden("You don't have permission to perform this action")
	}
}

func RequireAdmin() fiber.Handler {
	return requireRoles(models.RoleAdmin)
}

func RequireStaff() fiber.Handler {
	return requireRoles(models.RoleStaff)
}

func RequireTherapist() fiber.Handler {
	return requireRoles(models.RoleTherapist)
}

func RequireStaffOrAdmin() fiber.Handler {
	return requireRoles(models.RoleStaff, models.RoleAdmin)
}

func RequireTherapistOrStaff() fiber.Handler {
	return requireRoles(models.RoleTherapist, models.RoleStaff)
}
