package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking holds the passenger details for one seat on one flight. The
// BookingReference is the public six-character identifier, distinct from the
// internal id; once assigned it never changes.
type Booking struct {
	ID                   int64         `json:"id"`
	BookingReference     string        `json:"bookingReference"`
	FlightID             int64         `json:"flightId"`
	PassengerFirstName   string        `json:"passengerFirstName"`
	PassengerLastName    string        `json:"passengerLastName"`
	PassengerEmail       string        `json:"passengerEmail"`
	PassengerPhone       string        `json:"passengerPhone"`
	PassengerDateOfBirth string        `json:"passengerDateOfBirth"`
	PassengerGender      string        `json:"passengerGender"`
	PassengerPassport    string        `json:"passengerPassport,omitempty"`
	PassengerNationality string        `json:"passengerNationality,omitempty"`
	SeatNumber           string        `json:"seatNumber,omitempty"`
	ClassType            CabinClass    `json:"classType"`
	TotalPrice           string        `json:"totalPrice"`
	BookingStatus        BookingStatus `json:"bookingStatus"`
	CreatedAt            time.Time     `json:"createdAt"`
}

// EnrichedBooking carries the booking's flight, itself enriched. Flight stays
// nil when the referenced flight no longer resolves; the wire shape keeps the
// key and emits null.
type EnrichedBooking struct {
	Booking
	Flight *EnrichedFlight `json:"flight"`
}
