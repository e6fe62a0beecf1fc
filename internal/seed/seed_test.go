package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Domenick1991/skybooking/internal/repository"
)

func TestLoad_BaselineData(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore()
	airlines := repository.NewAirlineRepository(store)
	airports := repository.NewAirportRepository(store)
	aircraft := repository.NewAircraftRepository(store)
	flights := repository.NewFlightRepository(store)

	require.NoError(t, Load(ctx, airlines, airports, aircraft, flights))

	airlineList, err := airlines.List(ctx)
	require.NoError(t, err)
	assert.Len(t, airlineList, 3)

	airportList, err := airports.List(ctx)
	require.NoError(t, err)
	assert.Len(t, airportList, 8)

	aircraftList, err := aircraft.List(ctx)
	require.NoError(t, err)
	assert.Len(t, aircraftList, 3)

	flightList, err := flights.List(ctx)
	require.NoError(t, err)
	assert.Len(t, flightList, 3)
}

func TestLoad_CodesAreUnique(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore()
	airlines := repository.NewAirlineRepository(store)
	airports := repository.NewAirportRepository(store)

	require.NoError(t, Load(ctx, airlines, airports, repository.NewAircraftRepository(store), repository.NewFlightRepository(store)))

	airlineList, _ := airlines.List(ctx)
	seen := map[string]bool{}
	for _, a := range airlineList {
		assert.False(t, seen[a.Code], "duplicate airline code %s", a.Code)
		seen[a.Code] = true
	}

	airportList, _ := airports.List(ctx)
	seen = map[string]bool{}
	for _, a := range airportList {
		assert.False(t, seen[a.Code], "duplicate airport code %s", a.Code)
		seen[a.Code] = true
	}
}

func TestLoad_FlightsDepartTomorrowFromJFK(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore()
	airports := repository.NewAirportRepository(store)
	flights := repository.NewFlightRepository(store)

	require.NoError(t, Load(ctx, repository.NewAirlineRepository(store), airports, repository.NewAircraftRepository(store), flights))

	jfk, err := airports.GetByCode(ctx, "JFK")
	require.NoError(t, err)
	lax, err := airports.GetByCode(ctx, "LAX")
	require.NoError(t, err)

	tomorrow := time.Now().AddDate(0, 0, 1)
	flightList, _ := flights.List(ctx)
	for _, f := range flightList {
		assert.Equal(t, jfk.ID, f.DepartureAirportID)
		assert.Equal(t, lax.ID, f.ArrivalAirportID)

		y, m, d := f.DepartureTime.Date()
		ty, tm, td := tomorrow.Date()
		assert.Equal(t, ty, y)
		assert.Equal(t, tm, m)
		assert.Equal(t, td, d)
	}
}
