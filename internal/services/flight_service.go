package services

import (
	"context"

	"github.com/skyfare/api/internal/models"
	"github.com/skyfare/api/internal/seed"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FlightUseCase interface {
	Search(ctx context.Context, q models.FlightQuery) ([]*models.Flight, error)
	GetByID(ctx context.Context, id string) (*models.Flight, error)
	Airlines(ctx context.Context) ([]string, error)
	Cities(ctx context.Context) ([]string, error)
	SeedExtra(ctx context.Context) (int, int64, error)
}

// FlightCache is the optional read cache for the unfiltered flight list.
// A nil cache means every search goes to the store.
type FlightCache interface {
	GetFlights(ctx context.Context) ([]*models.Flight, error)
	SetFlights(ctx context.Context, flights []*models.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	repo  models.FlightsRepo
	cache FlightCache
}

func NewFlightService(repo models.FlightsRepo, cache FlightCache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

// Search returns every flight satisfying all supplied filters; an empty query
// returns the full catalogue and is the only case served from cache. Cache
// failures fall through to the store.
func (s *FlightService) Search(ctx context.Context, q models.FlightQuery) ([]*models.Flight, error) {
	cacheable := q.IsEmpty() && s.cache != nil

	if cacheable {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.SearchFlights(ctx, q)
	if err != nil {
		return nil, err
	}
	if cacheable {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

// GetByID resolves a hex document id. A malformed id can never name an
// existing flight, so it is reported as not found rather than as a distinct
// error kind.
func (s *FlightService) GetByID(ctx context.Context, id string) (*models.Flight, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &models.NotFoundError{Entity: "flight"}
	}
	return s.repo.GetFlightByID(ctx, oid)
}

func (s *FlightService) Airlines(ctx context.Context) ([]string, error) {
	return s.repo.DistinctAirlines(ctx)
}

func (s *FlightService) Cities(ctx context.Context) ([]string, error) {
	return s.repo.DistinctCities(ctx)
}

// SeedExtra upserts the supplementary sample flights, keyed by flight number,
// and reports how many documents changed along with the new catalogue size.
func (s *FlightService) SeedExtra(ctx context.Context) (int, int64, error) {
	updated := 0
	for _, f := range seed.ExtraFlights() {
		changed, err := s.repo.UpsertFlightByNumber(ctx, f)
		if err != nil {
			return 0, 0, err
		}
		if changed {
			updated++
		}
	}

	total, err := s.repo.CountFlights(ctx)
	if err != nil {
		return 0, 0, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	return updated, total, nil
}

var _ FlightUseCase = (*FlightService)(nil)
