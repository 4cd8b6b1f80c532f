package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skyfare/api/internal/models"
	"github.com/skyfare/api/internal/services"
)

// GetFlights handles GET /api/flights. All parameters are optional; supplying
// none returns the full catalogue. The passengers parameter is echoed back in
// the filters block but never filters results.
func GetFlights(svc services.FlightUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		passengers, err := strconv.Atoi(c.DefaultQuery("passengers", "1"))
		if err != nil || passengers < 1 {
			passengers = 1
		}

		query := models.FlightQuery{
			From:       c.Query("from"),
			To:         c.Query("to"),
			Date:       c.Query("date"),
			Passengers: passengers,
		}

		flights, err := svc.Search(c.Request.Context(), query)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"flights": flights,
			"total":   len(flights),
			"filters": gin.H{
				"from":       query.From,
				"to":         query.To,
				"date":       query.Date,
				"passengers": query.Passengers,
			},
		})
	}
}

// GetFlightByID handles GET /api/flights/:id. A malformed id is reported as
// not found, consistently with an unknown one.
func GetFlightByID(svc services.FlightUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		flight, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"flight": flight})
	}
}

func ListAirlines(svc services.FlightUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		airlines, err := svc.Airlines(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"airlines": airlines})
	}
}

func ListCities(svc services.FlightUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		cities, err := svc.Cities(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cities": cities})
	}
}

// SeedFlights handles GET /api/seed/flights: an idempotent upsert of the
// supplementary sample data set.
func SeedFlights(svc services.FlightUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		updated, total, err := svc.SeedExtra(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Extra flights seeded",
			"updated": updated,
			"total":   total,
		})
	}
}
