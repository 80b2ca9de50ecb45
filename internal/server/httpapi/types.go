package httpapi

import "github.com/mkarpenko/taskdesk/internal/server/models"

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// createTaskRequest's priority is a pointer so an absent field (defaulted to
// Low) is distinguishable from an explicit value, which must be valid.
type createTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    *string `json:"priority"`
}

// updateTaskRequest uses pointers so absent fields are distinguishable from
// zero values: only fields present in the body are applied.
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Done        *bool   `json:"done"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type authResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type deleteTaskResponse struct {
	Message string      `json:"message"`
	Task    models.Task `json:"task"`
}

type errorResponse struct {
	Error string `json:"error"`
}
