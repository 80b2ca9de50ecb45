package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mkarpenko/taskdesk/internal/common"
	"github.com/mkarpenko/taskdesk/internal/server/models"
)

// ===== auth routes =====

func (s *Server) handleSignup(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil || req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "username and password required"})
	}

	user, err := s.users.Signup(c.UserContext(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorConflict):
			return c.Status(fiber.StatusConflict).JSON(errorResponse{Error: "username already taken"})
		case errors.Is(err, common.ErrorValidation):
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "username and password required"})
		default:
			return s.internalError(c, err)
		}
	}

	if err := s.bindSession(c, user); err != nil {
		return s.internalError(c, err)
	}

	return c.JSON(authResponse{
		Message: "signup successful",
		User:    userResponse{ID: user.ID, Username: user.Username},
	})
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil || req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "username and password required"})
	}

	user, err := s.users.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(errorResponse{Error: "invalid credentials"})
		case errors.Is(err, common.ErrorValidation):
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "username and password required"})
		default:
			return s.internalError(c, err)
		}
	}

	if err := s.bindSession(c, user); err != nil {
		return s.internalError(c, err)
	}

	return c.JSON(authResponse{
		Message: "login successful",
		User:    userResponse{ID: user.ID, Username: user.Username},
	})
}

func (s *Server) handleLogout(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "could not logout"})
	}

	// Destroy wipes the server-side state and expires the cookie.
	if err := sess.Destroy(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "could not logout"})
	}

	return c.JSON(messageResponse{Message: "logout successful"})
}

// bindSession ties the authenticated user to the session cookie.
func (s *Server) bindSession(c *fiber.Ctx, user *models.User) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessionKeyUserID, user.ID)
	sess.Set(sessionKeyUsername, user.Username)
	return sess.Save()
}

// ===== task routes =====

func (s *Server) handleListTasks(c *fiber.Ctx) error {
	list, err := s.tasks.List(c.UserContext(), actingUserID(c))
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(list)
}

func (s *Server) handleCreateTask(c *fiber.Ctx) error {
	var req createTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "title is required"})
	}
	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "title is required"})
	}

	priority := models.PriorityLow
	if req.Priority != nil {
		priority = models.Priority(*req.Priority)
	}

	task, err := s.tasks.Create(c.UserContext(), actingUserID(c), req.Title, req.Description, priority)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid priority"})
		}
		return s.internalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

func (s *Server) handleUpdateTask(c *fiber.Ctx) error {
	// A bodiless PUT is a valid empty patch; it still refreshes UpdatedAt.
	var req updateTaskRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}

	patch := models.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Done:        req.Done,
	}
	if req.Priority != nil {
		p := models.Priority(*req.Priority)
		patch.Priority = &p
	}

	task, err := s.tasks.Update(c.UserContext(), actingUserID(c), c.Params("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid priority"})
		case errors.Is(err, common.ErrorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: "task not found"})
		default:
			return s.internalError(c, err)
		}
	}

	return c.JSON(task)
}

func (s *Server) handleDeleteTask(c *fiber.Ctx) error {
	task, err := s.tasks.Delete(c.UserContext(), actingUserID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: "task not found"})
		}
		return s.internalError(c, err)
	}

	return c.JSON(deleteTaskResponse{Message: "deleted", Task: *task})
}

// internalError logs the failure and answers with an opaque 500. Storage
// failures are not retried; the client decides whether to retry.
func (s *Server) internalError(c *fiber.Ctx, err error) error {
	s.logger.Error(c.UserContext(), "request failed", "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "internal error"})
}
