package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hotel-reservation/controllers"
	"hotel-reservation/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers onto the gin engine.
func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	amc *controllers.AmenityController,
	rsc *controllers.ReservationController,
	log *logrus.Logger,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", ac.Signup)
			auth.POST("/signin", ac.Signin)
		}

		// Everything below requires a Bearer token.
		authed := api.Group("")
		authed.Use(middleware.RequireAuth(jwtSecret))
		{
			profile := authed.Group("/profile")
			{
				profile.GET("", ac.GetProfile)
				profile.PUT("", ac.UpdateProfile)
			}

			rooms := authed.Group("/rooms")
			{
				rooms.GET("", rc.GetRooms)
				rooms.GET("/:id", rc.GetRoom)
				rooms.POST("", rc.CreateRoom)
				rooms.PUT("/:id", rc.UpdateRoom)
				rooms.PUT("/:id/amenities", rc.SetRoomAmenities)
				rooms.DELETE("/:id", rc.DeleteRoom)
			}

			amenities := authed.Group("/amenities")
			{
				amenities.GET("", amc.GetAmenities)
				amenities.GET("/:id", amc.GetAmenity)
				amenities.POST("", amc.CreateAmenity)
				amenities.PUT("/:id", amc.UpdateAmenity)
				amenities.DELETE("/:id", amc.DeleteAmenity)
			}

			reservations := authed.Group("/reservations")
			{
				reservations.GET("", rsc.GetReservations)
				reservations.POST("", rsc.CreateReservation)
				reservations.GET("/:id", rsc.GetReservation)
				reservations.PUT("/:id", rsc.UpdateReservation)
				reservations.DELETE("/:id", rsc.DeleteReservation)
				reservations.POST("/:id/checkin", rsc.CheckIn)
				reservations.POST("/:id/checkout", rsc.CheckOut)
			}
		}
	}

	return r
}
