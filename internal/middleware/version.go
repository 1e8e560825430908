package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const defaultAPIVersion = "1.0.0"

// VersionMiddleware resolves the X-Api-Version header into a full
// major.minor.patch string and stores it under "apiVersion" for handlers
// that need to branch on wire shape. Missing patch components are padded
// with zeros, so "1" and "1.0" both resolve to "1.0.0".
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version")
		if version == "" {
			version = defaultAPIVersion
		} else {
			for strings.Count(version, ".") < 2 {
				version += ".0"
			}
		}

		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", version)

		return c.Next()
	}
}
