package services

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/skyfare/api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingUseCase interface {
	Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	List(ctx context.Context) ([]*models.Booking, error)
}

type CreateBookingInput struct {
	FlightID    string             `json:"flightId"`
	Passengers  []models.Passenger `json:"passengers"`
	UserDetails models.UserDetails `json:"userDetails"`
}

type BookingService struct {
	bookings models.BookingsRepo
	flights  models.FlightsRepo
}

func NewBookingService(bookings models.BookingsRepo, flights models.FlightsRepo) *BookingService {
	return &BookingService{bookings: bookings, flights: flights}
}

// Create validates the request, resolves the flight, computes the total and
// persists the booking as a single write. The flight read is advisory: there
// is no transaction spanning the existence check and the insert, and seat
// counts are never decremented. Nothing is written when any check fails.
func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	if input.FlightID == "" {
		return nil, &models.ValidationError{Field: "flightId"}
	}
	if len(input.Passengers) == 0 {
		return nil, &models.ValidationError{Field: "passengers"}
	}
	if input.UserDetails == (models.UserDetails{}) {
		return nil, &models.ValidationError{Field: "userDetails"}
	}

	flightID, err := primitive.ObjectIDFromHex(input.FlightID)
	if err != nil {
		return nil, &models.NotFoundError{Entity: "flight"}
	}
	flight, err := s.flights.GetFlightByID(ctx, flightID)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		FlightID:    flight.ID,
		Passengers:  input.Passengers,
		UserDetails: input.UserDetails,
		TotalAmount: flight.Price * float64(len(input.Passengers)),
	}
	if err := booking.BeforeCreate(); err != nil {
		return nil, asValidationError(err)
	}

	return s.bookings.InsertBooking(ctx, booking)
}

func (s *BookingService) List(ctx context.Context) ([]*models.Booking, error) {
	return s.bookings.ListBookings(ctx)
}

// asValidationError names the offending field category when the struct
// validation fails.
func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &models.ValidationError{Field: verrs[0].Namespace()}
	}
	return &models.ValidationError{Field: "booking"}
}

var _ BookingUseCase = (*BookingService)(nil)
