package domain

import "time"

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "scheduled"
	FlightStatusDelayed   FlightStatus = "delayed"
	FlightStatusCancelled FlightStatus = "cancelled"
)

type CabinClass string

const (
	CabinEconomy  CabinClass = "economy"
	CabinPremium  CabinClass = "premium"
	CabinBusiness CabinClass = "business"
	CabinFirst    CabinClass = "first"
)

// Multiplier returns the fare multiplier for the cabin class. Unrecognized
// classes price as economy.
func (c CabinClass) Multiplier() float64 {
	switch c {
	case CabinPremium:
		return 1.5
	case CabinBusiness:
		return 2.5
	case CabinFirst:
		return 4
	default:
		return 1
	}
}

// Flight references its airline, aircraft and airports by id. BasePrice is a
// decimal string with two fraction digits ("299.00"). Duration is minutes.
type Flight struct {
	ID                 int64        `json:"id"`
	FlightNumber       string       `json:"flightNumber"`
	AirlineID          int64        `json:"airlineId"`
	AircraftID         int64        `json:"aircraftId"`
	DepartureAirportID int64        `json:"departureAirportId"`
	ArrivalAirportID   int64        `json:"arrivalAirportId"`
	DepartureTime      time.Time    `json:"departureTime"`
	ArrivalTime        time.Time    `json:"arrivalTime"`
	BasePrice          string       `json:"basePrice"`
	Status             FlightStatus `json:"status"`
	Duration           int          `json:"duration"`
	Stops              int          `json:"stops"`
}

// EnrichedFlight is a flight with its foreign keys resolved for display.
// A reference that cannot be resolved stays nil and is omitted from JSON.
type EnrichedFlight struct {
	Flight
	Airline          *Airline  `json:"airline,omitempty"`
	Aircraft         *Aircraft `json:"aircraft,omitempty"`
	DepartureAirport *Airport  `json:"departureAirport,omitempty"`
	ArrivalAirport   *Airport  `json:"arrivalAirport,omitempty"`
}
