package serverutils

import (
	"github.com/jvalenzano/forestgpt-app/internal/constant"
	"github.com/jvalenzano/forestgpt-app/internal/repository/memory"
	"github.com/jvalenzano/forestgpt-app/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionMiddleware ensures every request has a known session: an unknown
// or missing id gets a fresh one, echoed back in the response header.
func SessionMiddleware(sessions *memory.SessionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Get(constant.SessionHeader)

		if _, found := sessions.Get(sessionID); sessionID == "" || !found {
			sessionID = uuid.NewString()
			sessions.Save(&store.Session{ID: sessionID})
			c.Set(constant.SessionHeader, sessionID)
		}

		c.Locals("session_id", sessionID)
		return c.Next()
	}
}
