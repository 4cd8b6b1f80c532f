package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/skyfare/api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockFlightsRepo struct {
	mock.Mock
}

func (m *MockFlightsRepo) SearchFlights(ctx context.Context, q models.FlightQuery) ([]*models.Flight, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Flight), args.Error(1)
}

func (m *MockFlightsRepo) GetFlightByID(ctx context.Context, id primitive.ObjectID) (*models.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

func (m *MockFlightsRepo) DistinctAirlines(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFlightsRepo) DistinctCities(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFlightsRepo) CountFlights(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFlightsRepo) InsertFlights(ctx context.Context, flights []*models.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func (m *MockFlightsRepo) UpsertFlightByNumber(ctx context.Context, flight *models.Flight) (bool, error) {
	args := m.Called(ctx, flight)
	return args.Bool(0), args.Error(1)
}

func (m *MockFlightsRepo) EnsureFlightIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockBookingsRepo struct {
	mock.Mock
}

func (m *MockBookingsRepo) InsertBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingsRepo) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Booking), args.Error(1)
}

func (m *MockBookingsRepo) EnsureBookingIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func sampleFlight(price float64) *models.Flight {
	return &models.Flight{
		ID:           primitive.NewObjectID(),
		FlightNumber: "AI101",
		Airline:      "Air India",
		Departure:    models.Segment{City: "Mumbai", Airport: "BOM", Time: "10:00 AM", Date: "2024-01-15"},
		Arrival:      models.Segment{City: "Delhi", Airport: "DEL", Time: "12:00 PM", Date: "2024-01-15"},
		Price:        price,
		Duration:     "2h",
		Aircraft:     "Boeing 787",
		Status:       models.FlightOnTime,
	}
}

func validInput(flightID string) CreateBookingInput {
	return CreateBookingInput{
		FlightID: flightID,
		Passengers: []models.Passenger{
			{FirstName: "Asha", LastName: "Patel", Passport: "P1234567"},
			{FirstName: "Ravi", LastName: "Patel", Passport: "P7654321"},
		},
		UserDetails: models.UserDetails{
			Email:   "asha@example.com",
			Phone:   "+91-9876543210",
			Address: "12 MG Road, Mumbai",
		},
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	flightsRepo := &MockFlightsRepo{}
	bookingsRepo := &MockBookingsRepo{}
	service := NewBookingService(bookingsRepo, flightsRepo)

	ctx := context.Background()
	flight := sampleFlight(5000)

	flightsRepo.On("GetFlightByID", ctx, flight.ID).Return(flight, nil).Once()
	bookingsRepo.On("InsertBooking", ctx, mock.AnythingOfType("*models.Booking")).
		Return(&models.Booking{}, nil).Once().
		Run(func(args mock.Arguments) {
			b := args.Get(1).(*models.Booking)
			assert.Equal(t, float64(10000), b.TotalAmount)
			assert.Equal(t, models.BookingConfirmed, b.Status)
			assert.Regexp(t, regexp.MustCompile(`^BK[A-Z0-9]{8}$`), b.BookingReference)
			assert.Equal(t, models.SeatEconomy, b.Passengers[0].SeatClass)
		})

	_, err := service.Create(ctx, validInput(flight.ID.Hex()))

	assert.NoError(t, err)
	flightsRepo.AssertExpectations(t)
	bookingsRepo.AssertExpectations(t)
}

func TestBookingService_Create_TotalScalesWithPassengers(t *testing.T) {
	for passengers := 1; passengers <= 9; passengers++ {
		flightsRepo := &MockFlightsRepo{}
		bookingsRepo := &MockBookingsRepo{}
		service := NewBookingService(bookingsRepo, flightsRepo)

		ctx := context.Background()
		flight := sampleFlight(3200)

		input := validInput(flight.ID.Hex())
		input.Passengers = nil
		for i := 0; i < passengers; i++ {
			input.Passengers = append(input.Passengers, models.Passenger{
				FirstName: "P", LastName: "Q", Passport: "X",
			})
		}

		flightsRepo.On("GetFlightByID", ctx, flight.ID).Return(flight, nil).Once()
		bookingsRepo.On("InsertBooking", ctx, mock.AnythingOfType("*models.Booking")).
			Return(&models.Booking{}, nil).Once().
			Run(func(args mock.Arguments) {
				b := args.Get(1).(*models.Booking)
				assert.Equal(t, 3200*float64(passengers), b.TotalAmount)
			})

		_, err := service.Create(ctx, input)
		assert.NoError(t, err)
	}
}

func TestBookingService_Create_MissingFlightID(t *testing.T) {
	service := NewBookingService(&MockBookingsRepo{}, &MockFlightsRepo{})

	input := validInput("")
	_, err := service.Create(context.Background(), input)

	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "flightId", validationErr.Field)
}

func TestBookingService_Create_NoPassengers(t *testing.T) {
	bookingsRepo := &MockBookingsRepo{}
	service := NewBookingService(bookingsRepo, &MockFlightsRepo{})

	input := validInput(primitive.NewObjectID().Hex())
	input.Passengers = nil
	_, err := service.Create(context.Background(), input)

	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "passengers", validationErr.Field)
	bookingsRepo.AssertNotCalled(t, "InsertBooking")
}

func TestBookingService_Create_MissingUserDetails(t *testing.T) {
	bookingsRepo := &MockBookingsRepo{}
	service := NewBookingService(bookingsRepo, &MockFlightsRepo{})

	input := validInput(primitive.NewObjectID().Hex())
	input.UserDetails = models.UserDetails{}
	_, err := service.Create(context.Background(), input)

	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "userDetails", validationErr.Field)
	bookingsRepo.AssertNotCalled(t, "InsertBooking")
}

func TestBookingService_Create_TenPassengers(t *testing.T) {
	flightsRepo := &MockFlightsRepo{}
	bookingsRepo := &MockBookingsRepo{}
	service := NewBookingService(bookingsRepo, flightsRepo)

	ctx := context.Background()
	flight := sampleFlight(5000)
	flightsRepo.On("GetFlightByID", ctx, flight.ID).Return(flight, nil).Once()

	input := validInput(flight.ID.Hex())
	input.Passengers = nil
	for i := 0; i < 10; i++ {
		input.Passengers = append(input.Passengers, models.Passenger{
			FirstName: "P", LastName: "Q", Passport: "X",
		})
	}

	_, err := service.Create(ctx, input)

	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	bookingsRepo.AssertNotCalled(t, "InsertBooking")
}

func TestBookingService_Create_UnknownFlight(t *testing.T) {
	flightsRepo := &MockFlightsRepo{}
	bookingsRepo := &MockBookingsRepo{}
	service := NewBookingService(bookingsRepo, flightsRepo)

	ctx := context.Background()
	flightID := primitive.NewObjectID()
	flightsRepo.On("GetFlightByID", ctx, flightID).
		Return(nil, &models.NotFoundError{Entity: "flight"}).Once()

	_, err := service.Create(ctx, validInput(flightID.Hex()))

	assert.True(t, models.IsNotFound(err))
	bookingsRepo.AssertNotCalled(t, "InsertBooking")
}

func TestBookingService_Create_MalformedFlightID(t *testing.T) {
	bookingsRepo := &MockBookingsRepo{}
	service := NewBookingService(bookingsRepo, &MockFlightsRepo{})

	_, err := service.Create(context.Background(), validInput("not-a-hex-id"))

	assert.True(t, models.IsNotFound(err))
	bookingsRepo.AssertNotCalled(t, "InsertBooking")
}

func TestBookingService_Create_PersistenceFailure(t *testing.T) {
	flightsRepo := &MockFlightsRepo{}
	bookingsRepo := &MockBookingsRepo{}
	service := NewBookingService(bookingsRepo, flightsRepo)

	ctx := context.Background()
	flight := sampleFlight(5000)
	storeErr := &models.PersistenceError{Op: "creating booking", Err: errors.New("duplicate key")}

	flightsRepo.On("GetFlightByID", ctx, flight.ID).Return(flight, nil).Once()
	bookingsRepo.On("InsertBooking", ctx, mock.AnythingOfType("*models.Booking")).
		Return(nil, storeErr).Once()

	_, err := service.Create(ctx, validInput(flight.ID.Hex()))

	var persistenceErr *models.PersistenceError
	assert.ErrorAs(t, err, &persistenceErr)
	assert.Equal(t, "creating booking", persistenceErr.Op)
}

func TestBookingService_List(t *testing.T) {
	bookingsRepo := &MockBookingsRepo{}
	service := NewBookingService(bookingsRepo, &MockFlightsRepo{})

	ctx := context.Background()
	bookings := []*models.Booking{{BookingReference: "BKAAAA1111"}}
	bookingsRepo.On("ListBookings", ctx).Return(bookings, nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, bookings, result)
	bookingsRepo.AssertExpectations(t)
}
