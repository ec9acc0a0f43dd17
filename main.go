package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/rkritzar39/calebsportfolio-sub000/config"
	"github.com/rkritzar39/calebsportfolio-sub000/cron"
	"github.com/rkritzar39/calebsportfolio-sub000/database"
	contentRepoPkg "github.com/rkritzar39/calebsportfolio-sub000/database/repository/content"
	scheduleRepoPkg "github.com/rkritzar39/calebsportfolio-sub000/database/repository/schedule"
	"github.com/rkritzar39/calebsportfolio-sub000/handlers"
	"github.com/rkritzar39/calebsportfolio-sub000/routes"
	"github.com/rkritzar39/calebsportfolio-sub000/services/chat"
	"github.com/rkritzar39/calebsportfolio-sub000/services/content"
	"github.com/rkritzar39/calebsportfolio-sub000/services/notification"
	"github.com/rkritzar39/calebsportfolio-sub000/services/settings"
	"github.com/rkritzar39/calebsportfolio-sub000/services/status"
	"github.com/rkritzar39/calebsportfolio-sub000/services/storage"
	"github.com/rkritzar39/calebsportfolio-sub000/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.InitPubSub()
	utils.FirebaseInit()

	cld, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary: %v", err)
	}
	storageService := storage.NewStorageService(cld)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	contentRepo := contentRepoPkg.NewMongoContentRepo()

	// services.
	statusService := &status.DefaultStatusService{
		Repo:  scheduleRepo,
		Cache: utils.GetCacheClient(),
	}
	contentService := &content.DefaultContentService{
		Repo: contentRepo,
	}
	settingsService := settings.NewDefaultSettingsService(contentRepo, utils.GetPubSubClient())
	notificationService := &notification.DefaultNotificationService{
		Client: utils.FCMClient,
	}
	chatService, err := chat.NewGeminiChatService(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize chat service: %v", err)
	}

	// handlers.
	handlerBundle := &handlers.HandlerBundle{
		Status:   handlers.NewStatusHandler(statusService),
		Schedule: handlers.NewScheduleHandler(scheduleRepo, statusService),
		Content:  handlers.NewContentHandler(contentService),
		Settings: handlers.NewSettingsHandler(settingsService),
		Chat:     handlers.NewChatHandler(chatService),
		Storage:  handlers.NewStorageHandler(storageService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background refresh worker and health monitor.
	cron.InitStatusWorker(statusService, notificationService)
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetPubSubClient()}, database.MongoClient)

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
