package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skyfare/api/internal/models"
	"github.com/skyfare/api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) Create(ctx context.Context, input services.CreateBookingInput) (*models.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingUseCase) List(ctx context.Context) ([]*models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Booking), args.Error(1)
}

func postBooking(t *testing.T, svc services.BookingUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	payload, err := json.Marshal(body)
	assert.NoError(t, err)
	c.Request = httptest.NewRequest("POST", "/api/bookings", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	CreateBooking(svc)(c)
	return w
}

func TestCreateBooking_Created(t *testing.T) {
	mockService := &MockBookingUseCase{}

	input := services.CreateBookingInput{
		FlightID: primitive.NewObjectID().Hex(),
		Passengers: []models.Passenger{
			{FirstName: "Asha", LastName: "Patel", Passport: "P1234567", SeatClass: models.SeatEconomy},
		},
		UserDetails: models.UserDetails{
			Email:   "asha@example.com",
			Phone:   "+91-9876543210",
			Address: "12 MG Road, Mumbai",
		},
	}

	booking := &models.Booking{
		ID:               primitive.NewObjectID(),
		Passengers:       input.Passengers,
		UserDetails:      input.UserDetails,
		TotalAmount:      5000,
		Status:           models.BookingConfirmed,
		BookingReference: "BKX7Q2M9PA",
	}

	mockService.On("Create", mock.Anything, input).Return(booking, nil).Once()

	w := postBooking(t, mockService, input)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Message          string         `json:"message"`
		Booking          models.Booking `json:"booking"`
		BookingReference string         `json:"bookingReference"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Booking confirmed!", response.Message)
	assert.Equal(t, "BKX7Q2M9PA", response.BookingReference)
	assert.Equal(t, float64(5000), response.Booking.TotalAmount)

	mockService.AssertExpectations(t)
}

func TestCreateBooking_ValidationError(t *testing.T) {
	mockService := &MockBookingUseCase{}
	mockService.On("Create", mock.Anything, mock.Anything).
		Return(nil, &models.ValidationError{Field: "passengers"}).Once()

	w := postBooking(t, mockService, services.CreateBookingInput{FlightID: "abc"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "passengers")
}

func TestCreateBooking_FlightNotFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	mockService.On("Create", mock.Anything, mock.Anything).
		Return(nil, &models.NotFoundError{Entity: "flight"}).Once()

	w := postBooking(t, mockService, services.CreateBookingInput{FlightID: primitive.NewObjectID().Hex()})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "flight not found")
}

func TestCreateBooking_PersistenceError(t *testing.T) {
	mockService := &MockBookingUseCase{}
	mockService.On("Create", mock.Anything, mock.Anything).
		Return(nil, &models.PersistenceError{Op: "creating booking", Err: assert.AnError}).Once()

	w := postBooking(t, mockService, services.CreateBookingInput{FlightID: primitive.NewObjectID().Hex()})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Error creating booking", response.Error)
	assert.NotEmpty(t, response.Details)
}

func TestCreateBooking_MalformedBody(t *testing.T) {
	mockService := &MockBookingUseCase{}

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/bookings", bytes.NewReader([]byte("{not json")))
	c.Request.Header.Set("Content-Type", "application/json")

	CreateBooking(mockService)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestListBookings_OK(t *testing.T) {
	mockService := &MockBookingUseCase{}

	flight := &models.Flight{ID: primitive.NewObjectID(), FlightNumber: "AI101"}
	bookings := []*models.Booking{
		{ID: primitive.NewObjectID(), FlightID: flight.ID, BookingReference: "BKAAAA1111", Flight: flight},
	}
	mockService.On("List", mock.Anything).Return(bookings, nil).Once()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/bookings", nil)

	ListBookings(mockService)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "BKAAAA1111")
	assert.Contains(t, w.Body.String(), "AI101")
}
