package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"tradeacademy/backend/config"
	"tradeacademy/backend/models"
)

const localUserKey = "sessionUser"

// NewSessionStore builds the server-side session store. The default
// memory storage matches the mock-store model: sessions, like every
// other collection, vanish on restart.
func NewSessionStore(cfg *config.Config) *session.Store {
	return session.New(session.Config{
		Expiration:     cfg.SessionExpiry,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// SaveUser writes the identity record into the session. Values are kept
// as flat strings so the memory storage needs no type registration.
func SaveUser(c *fiber.Ctx, sessions *session.Store, user models.SessionUser) error {
	sess, err := sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Set("name", user.Name)
	sess.Set("username", user.Username)
	sess.Set("email", user.Email)
	sess.Set("role", user.Role)
	return sess.Save()
}

// ClearSession destroys the session unconditionally.
func ClearSession(c *fiber.Ctx, sessions *session.Store) error {
	sess, err := sessions.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

func sessionUser(c *fiber.Ctx, sessions *session.Store) (models.SessionUser, bool) {
	sess, err := sessions.Get(c)
	if err != nil {
		return models.SessionUser{}, false
	}
	username, _ := sess.Get("username").(string)
	if username == "" {
		return models.SessionUser{}, false
	}
	name, _ := sess.Get("name").(string)
	email, _ := sess.Get("email").(string)
	role, _ := sess.Get("role").(string)
	return models.SessionUser{Name: name, Username: username, Email: email, Role: role}, true
}

// CurrentUser returns the identity placed in locals by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) (models.SessionUser, bool) {
	user, ok := c.Locals(localUserKey).(models.SessionUser)
	return user, ok
}
