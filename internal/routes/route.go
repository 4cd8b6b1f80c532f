package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/skyfare/api/internal/container"
	"github.com/skyfare/api/internal/handlers"
	"github.com/skyfare/api/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container, clientOrigin string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{clientOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck(container.MongoDBClient))

		api.GET("/flights", handlers.GetFlights(container.FlightService))
		api.GET("/flights/:id", handlers.GetFlightByID(container.FlightService))
		api.GET("/airlines", handlers.ListAirlines(container.FlightService))
		api.GET("/cities", handlers.ListCities(container.FlightService))

		api.POST("/bookings", handlers.CreateBooking(container.BookingService))
		api.GET("/bookings", handlers.ListBookings(container.BookingService))

		api.GET("/seed/flights", handlers.SeedFlights(container.FlightService))
	}

	return r
}
