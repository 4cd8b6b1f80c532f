package container

import (
	"log/slog"

	"github.com/skyfare/api/internal/models"
	"github.com/skyfare/api/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	MongoDBClient *mongo.Client
	FlightsRepo   models.FlightsRepo
	BookingsRepo  models.BookingsRepo

	FlightService  *services.FlightService
	BookingService *services.BookingService
}

// NewContainer creates a new dependency injection container. The cache may
// be nil, in which case flight searches always hit the store.
func NewContainer(logger *slog.Logger, mongoDBClient *mongo.Client, flightCache services.FlightCache) *Container {
	repo := models.MongodbNewRepo(mongoDBClient)

	flightService := services.NewFlightService(repo, flightCache)
	bookingService := services.NewBookingService(repo, repo)

	return &Container{
		Logger:         logger,
		MongoDBClient:  mongoDBClient,
		FlightsRepo:    repo,
		BookingsRepo:   repo,
		FlightService:  flightService,
		BookingService: bookingService,
	}
}
