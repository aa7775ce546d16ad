package routes

import (
	"net/http"
	"time"

	"roomreserve/config"
	"roomreserve/handlers"
	"roomreserve/middleware"
	"roomreserve/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the HTTP surface: the room catalogue, the
// availability resolver, booking admission, the bookings overview and
// the sent-email journal.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	r.Use(cors.New(corsConfig()))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)

	api := r.Group("/api")
	{
		api.GET("/rooms", bh.ListRooms)
		api.GET("/rooms/:room/availability", bh.GetAvailability)
		api.POST("/bookings", bh.SubmitBooking)
		api.GET("/bookings", bh.ListBookings)
		api.GET("/notifications/emails", bh.ListSentEmails)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"backends": utils.GetHealthStatus(),
		})
	})
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	origin := config.AppConfig.CORSOrigin
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{origin}
	}
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}
