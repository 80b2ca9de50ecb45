// Package httpapi exposes the HTTP/JSON surface: cookie-session auth routes
// and the task CRUD routes behind a shared authorization gate.
package httpapi

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/mkarpenko/taskdesk/internal/logging"
	"github.com/mkarpenko/taskdesk/internal/server/config"
	"github.com/mkarpenko/taskdesk/internal/server/services"
)

const sessionCookie = "sid"

type Server struct {
	address  string
	logger   logging.Logger
	users    *services.UserService
	tasks    *services.TaskService
	sessions *session.Store
	app      *fiber.App
}

func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService, ts *services.TaskService) *Server {
	s := &Server{
		address: cfg.EndpointAddr,
		logger:  l.With("module", "http_server"),
		users:   us,
		tasks:   ts,
	}

	s.sessions = session.New(session.Config{
		Expiration:     cfg.SessionTTL,
		KeyLookup:      "cookie:" + sessionCookie,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s.app.Use(helmet.New())
	s.app.Use(s.requestLogger())

	s.app.Post("/signup", s.handleSignup)
	s.app.Post("/login", s.handleLogin)
	s.app.Post("/logout", s.handleLogout)

	api := s.app.Group("/api", s.requireAuth)
	api.Get("/tasks", s.handleListTasks)
	api.Post("/tasks", s.handleCreateTask)
	api.Put("/tasks/:id", s.handleUpdateTask)
	api.Delete("/tasks/:id", s.handleDeleteTask)

	return s
}

// Run serves until ctx is cancelled, then shuts the listener down gracefully.
func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = s.app.ShutdownWithTimeout(5 * time.Second)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	return s.app.Listen(s.address)
}
