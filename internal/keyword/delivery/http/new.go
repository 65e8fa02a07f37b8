package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nikhil-s1nha/productivity/internal/keyword"
	pkgLog "github.com/nikhil-s1nha/productivity/pkg/log"
)

// Handler is the public interface for the keyword HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Set(c *gin.Context)
	Remove(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc keyword.UseCase
}

// New creates a new HTTP handler for the keyword domain.
func New(l pkgLog.Logger, uc keyword.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
