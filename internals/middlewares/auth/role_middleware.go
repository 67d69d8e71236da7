package auth

import (
	"github.com/gofiber/fiber/v2"

	"siggip_backend/internals/constants"
)

// RequireRoles corta la request si el rol del token no está en la lista.
func RequireRoles(feature string, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		rol, _ := c.Locals("rol").(string)
		if _, ok := allowed[rol]; !ok {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorCoordinator(feature))
		}
		return c.Next()
	}
}
