// Package seed populates the store with the fixed demo catalog: three
// airlines, eight airports, three aircraft and three JFK-LAX flights departing
// tomorrow relative to process start. The process cannot serve without this
// baseline, so callers treat a failure here as fatal.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/repository"
)

func Load(ctx context.Context, airlines repository.AirlineRepository, airports repository.AirportRepository, aircraft repository.AircraftRepository, flights repository.FlightRepository) error {
	for _, a := range sampleAirlines() {
		if _, err := airlines.Create(ctx, a); err != nil {
			return fmt.Errorf("seed airline %s: %w", a.Code, err)
		}
	}
	for _, a := range sampleAirports() {
		if _, err := airports.Create(ctx, a); err != nil {
			return fmt.Errorf("seed airport %s: %w", a.Code, err)
		}
	}
	for _, a := range sampleAircraft() {
		if _, err := aircraft.Create(ctx, a); err != nil {
			return fmt.Errorf("seed aircraft %s: %w", a.Model, err)
		}
	}
	for _, f := range sampleFlights(time.Now()) {
		if _, err := flights.Create(ctx, f); err != nil {
			return fmt.Errorf("seed flight %s: %w", f.FlightNumber, err)
		}
	}
	return nil
}

func sampleAirlines() []domain.Airline {
	return []domain.Airline{
		{Code: "SW", Name: "SkyWings", Logo: "https://via.placeholder.com/40x40/1e40af/ffffff?text=SW"},
		{Code: "AG", Name: "AirGlobal", Logo: "https://via.placeholder.com/40x40/059669/ffffff?text=AG"},
		{Code: "CJ", Name: "CloudJet", Logo: "https://via.placeholder.com/40x40/d97706/ffffff?text=CJ"},
	}
}

func sampleAirports() []domain.Airport {
	return []domain.Airport{
		{Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "United States"},
		{Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "United States"},
		{Code: "LHR", Name: "London Heathrow Airport", City: "London", Country: "United Kingdom"},
		{Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France"},
		{Code: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan"},
		{Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "United Arab Emirates"},
		{Code: "SYD", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "Australia"},
		{Code: "ORD", Name: "O'Hare International Airport", City: "Chicago", Country: "United States"},
	}
}

func sampleAircraft() []domain.Aircraft {
	return []domain.Aircraft{
		{
			Model:             "Boeing 737",
			Manufacturer:      "Boeing",
			Capacity:          189,
			SeatConfiguration: map[domain.CabinClass]int{domain.CabinEconomy: 189},
		},
		{
			Model:             "Airbus A320",
			Manufacturer:      "Airbus",
			Capacity:          180,
			SeatConfiguration: map[domain.CabinClass]int{domain.CabinEconomy: 150, domain.CabinPremium: 30},
		},
		{
			Model:             "Boeing 777",
			Manufacturer:      "Boeing",
			Capacity:          396,
			SeatConfiguration: map[domain.CabinClass]int{domain.CabinEconomy: 296, domain.CabinPremium: 60, domain.CabinBusiness: 40},
		},
	}
}

// sampleFlights dates all flights to the day after now. Airline, aircraft and
// airport ids match the insertion order above (JFK=1, LAX=2).
func sampleFlights(now time.Time) []domain.Flight {
	tomorrow := now.AddDate(0, 0, 1)
	at := func(hour, min int) time.Time {
		return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), hour, min, 0, 0, now.Location())
	}

	return []domain.Flight{
		{
			FlightNumber:       "SW1234",
			AirlineID:          1,
			AircraftID:         1,
			DepartureAirportID: 1,
			ArrivalAirportID:   2,
			DepartureTime:      at(8, 0),
			ArrivalTime:        at(11, 15),
			BasePrice:          "299.00",
			Duration:           375,
			Stops:              0,
		},
		{
			FlightNumber:       "AG5678",
			AirlineID:          2,
			AircraftID:         2,
			DepartureAirportID: 1,
			ArrivalAirportID:   2,
			DepartureTime:      at(10, 30),
			ArrivalTime:        at(16, 15),
			BasePrice:          "349.00",
			Duration:           525,
			Stops:              1,
		},
		{
			FlightNumber:       "CJ9012",
			AirlineID:          3,
			AircraftID:         1,
			DepartureAirportID: 1,
			ArrivalAirportID:   2,
			DepartureTime:      at(14, 20),
			ArrivalTime:        at(17, 50),
			BasePrice:          "279.00",
			Duration:           390,
			Stops:              0,
		},
	}
}
