package models

import (
	"crypto/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SeatClass string

const (
	SeatEconomy  SeatClass = "economy"
	SeatBusiness SeatClass = "business"
	SeatFirst    SeatClass = "first"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
	BookingCompleted BookingStatus = "Completed"
)

type Passenger struct {
	FirstName string    `bson:"firstName" json:"firstName" validate:"required"`
	LastName  string    `bson:"lastName" json:"lastName" validate:"required"`
	Passport  string    `bson:"passport" json:"passport" validate:"required"`
	SeatClass SeatClass `bson:"seatClass" json:"seatClass" validate:"omitempty,oneof=economy business first"`
}

type UserDetails struct {
	Email   string `bson:"email" json:"email" validate:"required,email"`
	Phone   string `bson:"phone" json:"phone" validate:"required"`
	Address string `bson:"address" json:"address" validate:"required"`
}

// Payment is reserved for a future payment integration. No code path
// populates it; it round-trips through the store untouched.
type Payment struct {
	Status    string  `bson:"status,omitempty" json:"status,omitempty"`
	Provider  string  `bson:"provider,omitempty" json:"provider,omitempty"`
	Reference string  `bson:"reference,omitempty" json:"reference,omitempty"`
	Amount    float64 `bson:"amount,omitempty" json:"amount,omitempty"`
}

type Booking struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FlightID         primitive.ObjectID `bson:"flightId" json:"flightId"`
	Passengers       []Passenger        `bson:"passengers" json:"passengers" validate:"required,min=1,max=9,dive"`
	UserDetails      UserDetails        `bson:"userDetails" json:"userDetails"`
	TotalAmount      float64            `bson:"totalAmount" json:"totalAmount" validate:"required"`
	Status           BookingStatus      `bson:"status" json:"status" validate:"omitempty,oneof=Confirmed Cancelled Completed"`
	BookingReference string             `bson:"bookingReference" json:"bookingReference"`
	Payment          *Payment           `bson:"payment,omitempty" json:"payment,omitempty"`
	// Flight is attached when listing bookings; it is never stored on the
	// booking document itself.
	Flight    *Flight   `bson:"-" json:"flight,omitempty"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// BeforeCreate fills in identity, defaults and the booking reference ahead
// of the insert. The reference is only generated when the caller did not
// already supply one.
func (b *Booking) BeforeCreate() error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	if b.Status == "" {
		b.Status = BookingConfirmed
	}
	if b.BookingReference == "" {
		b.BookingReference = NewBookingReference()
	}
	for i := range b.Passengers {
		if b.Passengers[i].SeatClass == "" {
			b.Passengers[i].SeatClass = SeatEconomy
		}
	}
	return Validate.Struct(b)
}

const referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewBookingReference returns a human-shareable reference: "BK" followed by
// 8 random uppercase alphanumerics. Uniqueness is probabilistic, not
// verified against the store; the unique index on bookingReference turns a
// collision into an insert failure rather than a silent duplicate.
func NewBookingReference() string {
	buf := make([]byte, 8)
	// rand.Read on crypto/rand does not fail on supported platforms
	_, _ = rand.Read(buf)
	for i, c := range buf {
		buf[i] = referenceCharset[int(c)%len(referenceCharset)]
	}
	return "BK" + string(buf)
}
