package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nikhil-s1nha/productivity/internal/task"
	"github.com/nikhil-s1nha/productivity/pkg/response"
)

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyInput),
		errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrNoIDs):
		response.Error(c, err)
	default:
		response.InternalError(c, err)
	}
}
