package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikhil-s1nha/productivity/config"
	_ "github.com/nikhil-s1nha/productivity/docs" // Swagger docs
	"github.com/nikhil-s1nha/productivity/internal/httpserver"
	keywordHTTP "github.com/nikhil-s1nha/productivity/internal/keyword/delivery/http"
	keywordFile "github.com/nikhil-s1nha/productivity/internal/keyword/repository/file"
	keywordUC "github.com/nikhil-s1nha/productivity/internal/keyword/usecase"
	"github.com/nikhil-s1nha/productivity/internal/middleware"
	"github.com/nikhil-s1nha/productivity/internal/parser"
	taskHTTP "github.com/nikhil-s1nha/productivity/internal/task/delivery/http"
	taskFile "github.com/nikhil-s1nha/productivity/internal/task/repository/file"
	taskUC "github.com/nikhil-s1nha/productivity/internal/task/usecase"
	"github.com/nikhil-s1nha/productivity/pkg/datemath"
	"github.com/nikhil-s1nha/productivity/pkg/gcalendar"
	"github.com/nikhil-s1nha/productivity/pkg/log"
)

// @title       Productivity API
// @description Personal task manager with a free-text natural-language task importer.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting productivity service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Data dir: %s", cfg.Storage.DataDir)

	// 3. Date resolver + parser
	dates, err := datemath.NewResolver(cfg.Parser.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to local: %v", cfg.Parser.Timezone, err)
		dates, _ = datemath.NewResolver("")
	}
	lineParser := parser.New(dates)

	// 4. Repositories
	taskRepo, err := taskFile.New(cfg.Storage.DataDir, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize task store: ", err)
		return
	}
	kwRepo, err := keywordFile.New(cfg.Storage.DataDir, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize keyword store: ", err)
		return
	}

	// 5. Google Calendar client (optional)
	var calendarClient taskUC.CalendarClient
	if cfg.Calendar.CredentialsPath != "" {
		gc, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.Calendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			logger.Info(ctx, "Google Calendar export enabled")
			calendarClient = gc
		}
	}

	// 6. UseCases + delivery
	tasksUseCase := taskUC.New(logger, taskRepo, kwRepo, lineParser, calendarClient, cfg.Calendar.CalendarID, cfg.Parser.Timezone)
	keywordsUseCase := keywordUC.New(kwRepo, logger)

	taskHandler := taskHTTP.New(logger, tasksUseCase)
	keywordHandler := keywordHTTP.New(logger, keywordsUseCase)
	mw := middleware.New(logger, cfg.Import.RateLimitPerMin)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     mw,
		TaskHandler:    taskHandler,
		KeywordHandler: keywordHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
