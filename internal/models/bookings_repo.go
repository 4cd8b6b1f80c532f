package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	BookingDbName  = "skyfare"
	BookingColName = "bookings"
)

type BookingsRepo interface {
	InsertBooking(ctx context.Context, booking *Booking) (*Booking, error)
	ListBookings(ctx context.Context) ([]*Booking, error)
	EnsureBookingIndexes(ctx context.Context) error
}

// InsertBooking persists the booking as a single document write. BeforeCreate
// has already run by the time this is called, so the reference and defaults
// are in place.
func (mdb *MongodbRepo) InsertBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, BookingDbName, BookingColName)
	if err != nil {
		return nil, &PersistenceError{Op: "creating booking", Err: err}
	}

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := col.InsertOne(ctx, booking); err != nil {
		return nil, &PersistenceError{Op: "creating booking", Err: err}
	}
	return booking, nil
}

// ListBookings returns every booking with its flight document attached. The
// flights are batch-loaded in one query; a booking whose flight has since
// disappeared keeps a nil Flight.
func (mdb *MongodbRepo) ListBookings(ctx context.Context) ([]*Booking, error) {
	col, err := mdb.GetCollection(ctx, BookingDbName, BookingColName)
	if err != nil {
		return nil, &PersistenceError{Op: "fetching bookings", Err: err}
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, &PersistenceError{Op: "fetching bookings", Err: err}
	}
	defer cursor.Close(ctx)

	bookings := make([]*Booking, 0)
	flightIDs := make([]primitive.ObjectID, 0)
	seen := make(map[primitive.ObjectID]bool)
	for cursor.Next(ctx) {
		var b Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, &PersistenceError{Op: "fetching bookings", Err: err}
		}
		bookings = append(bookings, &b)
		if !seen[b.FlightID] {
			seen[b.FlightID] = true
			flightIDs = append(flightIDs, b.FlightID)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, &PersistenceError{Op: "fetching bookings", Err: err}
	}

	if len(flightIDs) == 0 {
		return bookings, nil
	}

	flights, err := mdb.flightsByIDs(ctx, flightIDs)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		b.Flight = flights[b.FlightID]
	}
	return bookings, nil
}

func (mdb *MongodbRepo) flightsByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*Flight, error) {
	col, err := mdb.GetCollection(ctx, FlightDbName, FlightColName)
	if err != nil {
		return nil, &PersistenceError{Op: "fetching bookings", Err: err}
	}

	cursor, err := col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, &PersistenceError{Op: "fetching bookings", Err: err}
	}
	defer cursor.Close(ctx)

	flights := make(map[primitive.ObjectID]*Flight, len(ids))
	for cursor.Next(ctx) {
		var f Flight
		if err := cursor.Decode(&f); err != nil {
			return nil, &PersistenceError{Op: "fetching bookings", Err: err}
		}
		flights[f.ID] = &f
	}
	if err := cursor.Err(); err != nil {
		return nil, &PersistenceError{Op: "fetching bookings", Err: err}
	}
	return flights, nil
}

func (mdb *MongodbRepo) EnsureBookingIndexes(ctx context.Context) error {
	col, err := mdb.GetCollection(ctx, BookingDbName, BookingColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	_, err = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "bookingReference", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

var _ BookingsRepo = (*MongodbRepo)(nil)
