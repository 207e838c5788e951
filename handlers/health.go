package handlers

import (
	"net/http"
	"time"

	"hotelbot/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness plus dependency state.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	c.JSON(http.StatusOK, gin.H{
		"service":   "HotelBot",
		"status":    "UP",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"mongo":     status.Mongo,
		"redis":     status.Redis,
	})
}
