// File: roomreserve/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomreserve/config"
	"roomreserve/cron"
	"roomreserve/database"
	"roomreserve/database/store"
	"roomreserve/handlers"
	"roomreserve/routes"
	"roomreserve/services/booking"
	"roomreserve/services/notification"
	"roomreserve/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Booking store backend.
	var bookingStore store.BookingStore
	switch config.AppConfig.StorageBackend {
	case "memory":
		bookingStore = store.NewMemoryStore()
	case "file":
		bookingStore = store.NewFileStore(config.AppConfig.StorageFile)
	case "redis":
		utils.InitStoreClient()
		bookingStore = store.NewRedisStore(utils.GetStoreClient())
	case "mongo":
		database.InitDB()
		bookingStore = store.NewMongoStore(database.MongoClient, config.AppConfig.MongoDatabase)
	default:
		logger.Sugar().Fatalf("main: unknown storage backend %q", config.AppConfig.StorageBackend)
	}
	logger.Sugar().Infof("main: booking store backend: %s", config.AppConfig.StorageBackend)

	utils.StartHealthMonitor(utils.StoreClient, database.MongoClient)

	// Confirmation email dispatch: inline, or queued through asynq with
	// the worker draining the queue.
	emailDispatcher := notification.NewEmailDispatcher(config.AppConfig.EmailFrom)
	var dispatcher notification.Dispatcher = emailDispatcher
	if config.AppConfig.NotifyAsync {
		cron.InitEmailWorker(emailDispatcher)
		dispatcher = notification.NewQueueDispatcher(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		})
	}

	bookingService := booking.NewBookingService(bookingStore, dispatcher)
	bookingHandler := handlers.NewBookingHandler(bookingService, emailDispatcher, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	routes.RegisterRoutes(router, bookingHandler)

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
