package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FlightStatus string

const (
	FlightOnTime    FlightStatus = "On Time"
	FlightDelayed   FlightStatus = "Delayed"
	FlightCancelled FlightStatus = "Cancelled"
)

// Segment is one end of a flight (departure or arrival). Time and Date are
// display strings, stored exactly as seeded ("10:00 AM", "2024-01-15").
type Segment struct {
	City    string `bson:"city" json:"city" validate:"required"`
	Airport string `bson:"airport" json:"airport" validate:"required"`
	Time    string `bson:"time" json:"time" validate:"required"`
	Date    string `bson:"date" json:"date" validate:"required"`
}

// SeatCounts holds per-class seat capacity. Counts are informational for the
// booking flow: nothing decrements them and no endpoint checks them against
// the passenger count.
type SeatCounts struct {
	Economy  int `bson:"economy" json:"economy" validate:"min=0"`
	Business int `bson:"business" json:"business" validate:"min=0"`
	First    int `bson:"first" json:"first" validate:"min=0"`
}

type Flight struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FlightNumber string             `bson:"flightNumber" json:"flightNumber" validate:"required"`
	Airline      string             `bson:"airline" json:"airline" validate:"required"`
	Departure    Segment            `bson:"departure" json:"departure"`
	Arrival      Segment            `bson:"arrival" json:"arrival"`
	Price        float64            `bson:"price" json:"price" validate:"required,gt=0"`
	Duration     string             `bson:"duration" json:"duration" validate:"required"`
	Seats        SeatCounts         `bson:"seats" json:"seats"`
	Aircraft     string             `bson:"aircraft" json:"aircraft" validate:"required"`
	Status       FlightStatus       `bson:"status" json:"status" validate:"omitempty,oneof='On Time' Delayed Cancelled"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func (f *Flight) BeforeCreate() error {
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	if f.Status == "" {
		f.Status = FlightOnTime
	}
	return Validate.Struct(f)
}
