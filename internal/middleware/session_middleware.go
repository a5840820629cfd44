package middleware

import (
	"log"
	"strings"

	"peninsula/internal/session"

	"github.com/gofiber/fiber/v2"
)

const sessionKey = "session"

// LoadSession is a Fiber middleware that decodes the bearer session token into
// the request context. Requests without a token get a fresh signed-out session.
func LoadSession(codec *session.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			c.Locals(sessionKey, session.New())
			return c.Next()
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		s, err := codec.Decode(parts[1])
		if err != nil {
			log.Printf("Session token rejected: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired session",
			})
		}

		c.Locals(sessionKey, s)
		return c.Next()
	}
}

// SessionFrom returns the session stored by LoadSession, or a fresh one.
func SessionFrom(c *fiber.Ctx) session.Session {
	if s, ok := c.Locals(sessionKey).(session.Session); ok {
		return s
	}
	return session.New()
}
