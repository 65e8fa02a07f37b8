package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	keywords := rg.Group("/keywords")
	{
		keywords.GET("", h.List)
		keywords.PUT("/:key", h.Set)
		keywords.DELETE("/:key", h.Remove)
	}
}
