package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	keywordHTTP "github.com/nikhil-s1nha/productivity/internal/keyword/delivery/http"
	taskHTTP "github.com/nikhil-s1nha/productivity/internal/task/delivery/http"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.mode == gin.DebugMode {
		srv.gin.Use(gin.Logger())
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	v1 := srv.gin.Group("/api/v1")
	taskHTTP.RegisterRoutes(v1, srv.taskHandler, srv.middleware)
	keywordHTTP.RegisterRoutes(v1, srv.keywordHandler)

	srv.l.Infof(ctx, "Task and keyword routes registered under /api/v1")
}
