package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nikhil-s1nha/productivity/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The
// import endpoint is rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/import", mw.RateLimit(), h.Import)
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.PATCH("/:id/toggle", h.Toggle)
		tasks.DELETE("", h.Delete)
	}
}
