package middleware

import (
	"github.com/authorizerdev/authorizer-go"
	"github.com/gofiber/fiber/v2"
	"github.com/vojtechokenka/nokturo/internal/models"
	"github.com/vojtechokenka/nokturo/internal/services"
	"github.com/vojtechokenka/nokturo/internal/types"
	"gorm.io/gorm"
)

// AuthAdmin validates that the request has admin role authorization
func AuthAdmin(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, db, []string{models.RoleAdmin}, "authorization.admin")
	}
}

// AuthUser validates that the request has user role authorization
func AuthUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, db, []string{models.RoleUser}, "authorization.user")
	}
}

// authorize performs the authorization check and mirrors the session user
// into the local profiles table so later handlers can join on author.
func authorize(c *fiber.Ctx, db *gorm.DB, roles []string, errorType string) error {
	session := c.Cookies("cookie_session")
	if session == "" {
		return types.NewCustomError(fiber.StatusForbidden, errorType,
			"Authorizer cookie %q not found", "cookie_session")
	}

	data, err := services.ValidateSession(session, roles)
	if err != nil {
		return types.NewCustomError(fiber.StatusForbidden, errorType,
			"Invalid session: %v", err)
	}

	if user, ok := data["user"]; ok {
		c.Locals("user", user)

		if u, ok := user.(*authorizer.User); ok {
			role := models.RoleUser
			for _, r := range roles {
				if r == models.RoleAdmin {
					role = models.RoleAdmin
				}
			}
			profile, err := services.SyncProfile(db, u, role)
			if err != nil {
				return types.NewCustomError(fiber.StatusInternalServerError, errorType,
					"Profile sync failed: %v", err)
			}
			c.Locals("profile", profile)
		}
	}

	return c.Next()
}
