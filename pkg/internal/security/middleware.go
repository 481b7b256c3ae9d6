package security

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rcee-dev/campusvoice/pkg/internal/models"
)

// ContextMiddleware attaches the decoded claim set to the request context when
// a valid bearer token is presented. It never rejects by itself; handlers call
// EnsureAuthenticated or EnsureManagement to enforce access.
func ContextMiddleware(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		if claims, err := ReadToken(token); err == nil {
			c.Locals("user", claims)
		}
	}

	return c.Next()
}

func GetClaims(c *fiber.Ctx) (Claims, bool) {
	claims, ok := c.Locals("user").(Claims)
	return claims, ok
}

func EnsureAuthenticated(c *fiber.Ctx) error {
	if _, ok := GetClaims(c); !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
	}

	return nil
}

func EnsureManagement(c *fiber.Ctx) error {
	if err := EnsureAuthenticated(c); err != nil {
		return err
	}
	if claims, _ := GetClaims(c); claims.Role != models.RoleManagement {
		return fiber.NewError(fiber.StatusForbidden, "access denied, management only")
	}

	return nil
}
