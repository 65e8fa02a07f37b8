package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nikhil-s1nha/productivity/internal/task"
	pkgLog "github.com/nikhil-s1nha/productivity/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Import(c *gin.Context)
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Toggle(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l pkgLog.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
