// File: hotelbot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelbot/config"
	"hotelbot/cron"
	"hotelbot/database"
	bookingRepoPkg "hotelbot/database/repository/booking"
	hotelRepoPkg "hotelbot/database/repository/hotel"
	userRepoPkg "hotelbot/database/repository/user"
	"hotelbot/database/seed"
	"hotelbot/handlers"
	"hotelbot/middleware"
	"hotelbot/routes"
	"hotelbot/services/booking"
	"hotelbot/services/chat"
	"hotelbot/services/hotel"
	"hotelbot/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// repositories.
	hotelRepo := hotelRepoPkg.NewMongoHotelRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	seed.Run(hotelRepo, userRepo)

	// services.
	catalogService := &hotel.DefaultCatalogService{
		Repo: hotelRepo,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:   bookingRepo,
		Hotels: hotelRepo,
		Refs:   booking.NewReferenceGenerator(bookingRepo),
	}

	tools := chat.NewBookingTools(catalogService, bookingService)
	engine, err := chat.NewGeminiEngine(
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
		chat.SystemPrompt,
		tools,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize chat engine: %v", err)
	}

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionStore := chat.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)
	chatService := &chat.DefaultChatService{
		Engine:   engine,
		Sessions: sessionStore,
	}

	cron.InitSessionSweeper(engine)
	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	chatHandler := handlers.NewChatHandler(chatService)
	routes.RegisterRoutes(router, chatHandler)

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
