package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyfare/api/internal/services"
)

// CreateBooking handles POST /api/bookings. The service owns all validation;
// only a body that fails to parse is rejected here.
func CreateBooking(svc services.BookingUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.CreateBookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		booking, err := svc.Create(c.Request.Context(), input)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":          "Booking confirmed!",
			"booking":          booking,
			"bookingReference": booking.BookingReference,
		})
	}
}

// ListBookings handles GET /api/bookings; each booking carries its flight
// document.
func ListBookings(svc services.BookingUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
	}
}
