package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	keywordHTTP "github.com/nikhil-s1nha/productivity/internal/keyword/delivery/http"
	"github.com/nikhil-s1nha/productivity/internal/middleware"
	taskHTTP "github.com/nikhil-s1nha/productivity/internal/task/delivery/http"
	pkgLog "github.com/nikhil-s1nha/productivity/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	middleware     middleware.Middleware
	taskHandler    taskHTTP.Handler
	keywordHandler keywordHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	Middleware     middleware.Middleware
	TaskHandler    taskHTTP.Handler
	KeywordHandler keywordHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		middleware:     cfg.Middleware,
		taskHandler:    cfg.TaskHandler,
		keywordHandler: cfg.KeywordHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	if srv.keywordHandler == nil {
		return errors.New("keyword handler is required")
	}
	return nil
}
