package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	sessionKeyUserID   = "userId"
	sessionKeyUsername = "username"

	localUserID = "userID"
)

// requireAuth is the shared authorization gate for /api routes: without a
// session bound to a user it answers 401 uniformly and never reaches the
// handler.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(errorResponse{Error: "Unauthorized"})
	}

	userID, _ := sess.Get(sessionKeyUserID).(string)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(errorResponse{Error: "Unauthorized"})
	}

	c.Locals(localUserID, userID)
	return c.Next()
}

// requestLogger logs one line per request with method, path, status and
// duration.
func (s *Server) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		s.logger.Info(c.UserContext(), "request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start).String(),
		)
		return err
	}
}

func actingUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(localUserID).(string)
	return id
}
