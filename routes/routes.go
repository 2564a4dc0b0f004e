package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-pms/controllers"
	"hotel-pms/middleware"
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

// SetupRouter wires controller instances onto the API routes.
func SetupRouter(
	rc *controllers.ReservationController,
	ac *controllers.AvailabilityController,
	rtc *controllers.RateController,
	roomc *controllers.RoomController,
	rtype *controllers.RoomTypeController,
	pc *controllers.PropertyController,
	gc *controllers.GuestController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

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
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		reservations := api.Group("/reservations")
		{
			reservations.GET("", rc.GetReservations)
			reservations.POST("", rc.CreateReservation)
			reservations.GET("/:id", rc.GetReservation)
			reservations.POST("/:id/cancel", rc.CancelReservation)
			reservations.POST("/:id/checkin", rc.CheckInReservation)
			reservations.POST("/:id/checkout", rc.CheckOutReservation)
			reservations.POST("/:id/no-show", rc.MarkNoShow)
		}

		availability := api.Group("/availability")
		{
			availability.GET("", ac.CheckAvailability)
			availability.GET("/calendar", ac.GetCalendar)
		}

		rates := api.Group("/rates")
		{
			rates.GET("/best", rtc.GetBestRate)
		}

		ratePlans := api.Group("/rate-plans")
		{
			ratePlans.GET("", rtc.GetRatePlans)
			ratePlans.POST("", rtc.CreateRatePlan)
			ratePlans.PATCH("/:id", rtc.UpdateRatePlan)
			ratePlans.DELETE("/:id", rtc.DeleteRatePlan)
		}

		dailyRates := api.Group("/daily-rates")
		{
			dailyRates.GET("", rtc.GetDailyRates)
			dailyRates.POST("/bulk", rtc.SetDailyRates)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", roomc.GetRooms)
			rooms.POST("", roomc.CreateRoom)
			rooms.PATCH("/:id", roomc.UpdateRoom)
			rooms.PUT("/:id", roomc.UpdateRoom)
			rooms.POST("/:id/deactivate", roomc.DeactivateRoom)
			rooms.DELETE("/:id", roomc.DeleteRoom)
		}

		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", rtype.GetRoomTypes)
			roomTypes.POST("", rtype.CreateRoomType)
			roomTypes.PATCH("/:id", rtype.UpdateRoomType)
			roomTypes.DELETE("/:id", rtype.DeleteRoomType)
		}

		properties := api.Group("/properties")
		{
			properties.GET("", pc.GetProperties)
			properties.GET("/:id", pc.GetPropertyByID)
			properties.POST("", pc.CreateProperty)
			properties.PATCH("/:id", pc.UpdateProperty)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.GET("/:id", gc.GetGuestByID)
			guests.POST("", gc.CreateGuest)
			guests.PUT("/:id", gc.UpdateGuest)
			guests.DELETE("/:id", gc.DeleteGuest)
		}
	}

	return r
}
