// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"github.com/phucnvzeud/center-x-sub000/config"
	"github.com/phucnvzeud/center-x-sub000/cron"
	"github.com/phucnvzeud/center-x-sub000/database"
	courseRepoPkg "github.com/phucnvzeud/center-x-sub000/database/repository/course"
	directoryRepoPkg "github.com/phucnvzeud/center-x-sub000/database/repository/directory"
	holidayRepoPkg "github.com/phucnvzeud/center-x-sub000/database/repository/holiday"
	kindergartenRepoPkg "github.com/phucnvzeud/center-x-sub000/database/repository/kindergarten"
	"github.com/phucnvzeud/center-x-sub000/handlers"
	"github.com/phucnvzeud/center-x-sub000/middleware"
	"github.com/phucnvzeud/center-x-sub000/routes"
	courseSvc "github.com/phucnvzeud/center-x-sub000/services/course"
	directorySvc "github.com/phucnvzeud/center-x-sub000/services/directory"
	holidaySvc "github.com/phucnvzeud/center-x-sub000/services/holidays"
	kindergartenSvc "github.com/phucnvzeud/center-x-sub000/services/kindergarten"
	"github.com/phucnvzeud/center-x-sub000/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	courseRepo := courseRepoPkg.NewMongoCourseRepo()
	kindergartenRepo := kindergartenRepoPkg.NewMongoKindergartenRepo()
	holidayRepo := holidayRepoPkg.NewMongoHolidayRepo()
	directoryRepo := directoryRepoPkg.NewMongoDirectoryRepo()

	// background queue client.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	// services.
	cacheClient := utils.GetCacheClient()
	courseService := courseSvc.NewDefaultCourseService(courseRepo, holidayRepo, cacheClient)
	kindergartenService := kindergartenSvc.NewDefaultKindergartenService(kindergartenRepo, holidayRepo, cacheClient)
	holidayService := holidaySvc.NewDefaultHolidayService(holidayRepo, courseService, kindergartenService, queueClient, cacheClient)
	directoryService := directorySvc.NewDefaultDirectoryService(directoryRepo)

	// background worker for asynchronous holiday fan-out.
	cron.InitHolidayApplyWorker(holidayService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Courses:      &handlers.CourseHandler{Service: courseService},
		Kindergarten: &handlers.KindergartenHandler{Service: kindergartenService},
		Holidays:     &handlers.HolidayHandler{Service: holidayService},
		Directory:    &handlers.DirectoryHandler{Service: directoryService},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
