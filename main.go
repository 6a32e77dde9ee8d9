// File: medibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/database"
	scheduleRepo "medibook/database/repository/schedule"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/schedule"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitScheduleCache()
	utils.StartHealthMonitor(utils.GetScheduleCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	schedRepo := scheduleRepo.NewMongoScheduleRepo()
	if err := schedRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create schedule indexes: %v", err)
	}

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		Repo:               schedRepo,
		Cache:              schedule.NewRedisConfigCache(utils.GetScheduleCacheClient()),
		CacheTTL:           utils.ScheduleCacheTTL(),
		DefaultHorizonDays: config.AppConfig.BookingHorizonDays,
	}

	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	availabilityHandler := handlers.NewAvailabilityHandler(scheduleService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Doctor schedule endpoints.
		GetScheduleHandler:  scheduleHandler.GetScheduleHandler,
		SaveScheduleHandler: scheduleHandler.SaveScheduleHandler,

		// Booking availability endpoints.
		GetTimeSlotsHandler:      availabilityHandler.GetTimeSlotsHandler,
		GetAvailableDatesHandler: availabilityHandler.GetAvailableDatesHandler,
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
