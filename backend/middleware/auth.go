package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// AuthMiddleware requires a logged-in session and exposes the identity
// to handlers via locals.
func AuthMiddleware(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := sessionUser(c, sessions)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		c.Locals(localUserKey, user)
		return c.Next()
	}
}

// AdminMiddleware requires the admin role on top of a valid session.
// The check is on role, never on a magic username.
func AdminMiddleware(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := sessionUser(c, sessions)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		if user.Role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden - Admin access required",
			})
		}
		c.Locals(localUserKey, user)
		return c.Next()
	}
}

// LoadUserMiddleware exposes the identity when a session exists but
// never blocks; page handlers decide their own redirects.
func LoadUserMiddleware(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user, ok := sessionUser(c, sessions); ok {
			c.Locals(localUserKey, user)
		}
		return c.Next()
	}
}
