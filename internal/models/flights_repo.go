package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	FlightDbName  = "skyfare"
	FlightColName = "flights"
)

// FlightQuery carries the loose search parameters from the flights endpoint.
// Passengers is informational only: it is echoed back to the client and
// neither filters results nor reserves capacity.
type FlightQuery struct {
	From       string
	To         string
	Date       string
	Passengers int
}

func (q FlightQuery) IsEmpty() bool {
	return q.From == "" && q.To == "" && q.Date == ""
}

// Filter builds the mongo filter: an AND across the supplied parameters,
// where from/to each match as a case-insensitive substring against the city
// or the airport code of their leg, and date matches exactly.
func (q FlightQuery) Filter() bson.M {
	var conditions []bson.M

	if q.From != "" {
		conditions = append(conditions, bson.M{"$or": []bson.M{
			{"departure.city": bson.M{"$regex": q.From, "$options": "i"}},
			{"departure.airport": bson.M{"$regex": q.From, "$options": "i"}},
		}})
	}
	if q.To != "" {
		conditions = append(conditions, bson.M{"$or": []bson.M{
			{"arrival.city": bson.M{"$regex": q.To, "$options": "i"}},
			{"arrival.airport": bson.M{"$regex": q.To, "$options": "i"}},
		}})
	}
	if q.Date != "" {
		conditions = append(conditions, bson.M{"departure.date": q.Date})
	}

	if len(conditions) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": conditions}
}

type FlightsRepo interface {
	SearchFlights(ctx context.Context, q FlightQuery) ([]*Flight, error)
	GetFlightByID(ctx context.Context, id primitive.ObjectID) (*Flight, error)
	DistinctAirlines(ctx context.Context) ([]string, error)
	DistinctCities(ctx context.Context) ([]string, error)
	CountFlights(ctx context.Context) (int64, error)
	InsertFlights(ctx context.Context, flights []*Flight) error
	UpsertFlightByNumber(ctx context.Context, flight *Flight) (bool, error)
	EnsureFlightIndexes(ctx context.Context) error
}

func (mdb *MongodbRepo) SearchFlights(ctx context.Context, q FlightQuery) ([]*Flight, error) {
	col, err := mdb.GetCollection(ctx, FlightDbName, FlightColName)
	if err != nil {
		return nil, &PersistenceError{Op: "fetching flights", Err: err}
	}

	cursor, err := col.Find(ctx, q.Filter())
	if err != nil {
		return nil, &PersistenceError{Op: "fetching flights", Err: err}
	}
	defer cursor.Close(ctx)

	flights := make([]*Flight, 0)
	for cursor.Next(ctx) {
		var f Flight
		if err := cursor.Decode(&f); err != nil {
			return nil, &PersistenceError{Op: "fetching flights", Err: err}
		}
		flights = append(flights, &f)
	}
	if err := cursor.Err(); err != nil {
		return nil, &PersistenceError{Op: "fetching flights", Err: err}
	}
	return flights, nil
}

func (mdb *MongodbRepo) GetFlightByID(ctx context.Context, id primitive.ObjectID) (*Flight, error) {
	col, err := mdb.GetCollection(ctx, FlightDbName, FlightColName)
	if err != nil {
		return nil, &PersistenceError{Op: "fetching flight", Err: err}
	}

	var flight Flight
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&flight); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Entity: "flight"}
		}
		return nil, &PersistenceError{Op: "fetching flight", Err: err}
	}
	return &flight, nil
}

func (mdb *MongodbRepo) DistinctAirlines(ctx context.Context) ([]string, error) {
	col, err := mdb.GetCollection(ctx, FlightDbName, FlightColName)
	if err != nil {
		return nil, &PersistenceError{Op: "fetching airlines", Err: err}
	}

	values, err := col.Distinct(ctx, "airline", bson.M{})
	if err != nil {
		return nil, &PersistenceError{Op: "fetching airlines", Err: err}
	}
	return toStrings(values), nil
}

// DistinctCities returns the de-duplicated union of departure and arrival
// cities, departure cities first.
func (mdb *MongodbRepo) DistinctCities(ctx context.Context) ([]string, error) {
	col, err := mdb.GetCollection(ctx, FlightDbName, FlightColName)
	if err != nil {
		return nil, &PersistenceError{Op: "fetching cities", Err: err}
	}

	departures, err := col.Distinct(ctx, "departure.city", bson.M{})
	if err != nil {
		return nil, &PersistenceError{Op: "fetching cities", Err: err}
	}
	arrivals, err := col.Distinct(ctx, "arrival.city", bson.M{})
	if err != nil {
		return nil, &PersistenceError{Op: "fetching cities", Err: err}
	}

	seen := make(map[string]bool)
	cities := make([]string, 0, len(departures)+len(arrivals))
	for _, city := range append(toStrings(departures), toStrings(arrivals)...) {
		if !seen[city] {
			seen[city] = true
			cities = append(cities, city)
		}
	}
	return cities, nil
}

func (mdb *MongodbRepo) CountFlights(ctx context.Context) (int64, error) {
	col, err := mdb.GetCollection(ctx, FlightDbName, FlightColName)
	if err != nil {
		return 0, &PersistenceError{Op: "counting flights", Err: err}
	}

	count, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, &PersistenceError{Op: "counting flights", Err: err}
	}
	return count, nil
}

func (mdb *MongodbRepo) InsertFlights(ctx context.Context, flights []*Flight) error {
	col, err := mdb.GetCollection(ctx, FlightDbName, FlightColName)
	if err != nil {
		return &PersistenceError{Op: "seeding flights", Err: err}
	}

	docs := make([]interface{}, 0, len(flights))
	for _, f := range flights {
		if err := f.BeforeCreate(); err != nil {
			return &PersistenceError{Op: "seeding flights", Err: err}
		}
		now := time.Now()
		f.CreatedAt = now
		f.UpdatedAt = now
		docs = append(docs, f)
	}

	if _, err := col.InsertMany(ctx, docs); err != nil {
		return &PersistenceError{Op: "seeding flights", Err: err}
	}
	return nil
}

// UpsertFlightByNumber inserts the flight or replaces the document carrying
// the same flight number. Returns true when a document was created or
// changed.
func (mdb *MongodbRepo) UpsertFlightByNumber(ctx context.Context, flight *Flight) (bool, error) {
	col, err := mdb.GetCollection(ctx, FlightDbName, FlightColName)
	if err != nil {
		return false, &PersistenceError{Op: "seeding flights", Err: err}
	}

	if flight.Status == "" {
		flight.Status = FlightOnTime
	}
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"airline":   flight.Airline,
			"departure": flight.Departure,
			"arrival":   flight.Arrival,
			"price":     flight.Price,
			"duration":  flight.Duration,
			"seats":     flight.Seats,
			"aircraft":  flight.Aircraft,
			"status":    flight.Status,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"flightNumber": flight.FlightNumber,
			"createdAt":    now,
		},
	}

	res, err := col.UpdateOne(ctx, bson.M{"flightNumber": flight.FlightNumber}, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, &PersistenceError{Op: "seeding flights", Err: err}
	}
	return res.UpsertedCount > 0 || res.ModifiedCount > 0, nil
}

func (mdb *MongodbRepo) EnsureFlightIndexes(ctx context.Context) error {
	col, err := mdb.GetCollection(ctx, FlightDbName, FlightColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	_, err = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "flightNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func toStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

var _ FlightsRepo = (*MongodbRepo)(nil)
