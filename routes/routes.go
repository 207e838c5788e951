package routes

import (
	"time"

	"hotelbot/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversational assistant endpoints.
func RegisterChatRoutes(r *gin.Engine, ch *handlers.ChatHandler) {
	api := r.Group("/api/chat")
	{
		api.POST("", ch.Chat)
		api.DELETE("/session/:sessionId", ch.ClearSession)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, ch *handlers.ChatHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, ch)
	RegisterHealthRoute(r)
}
