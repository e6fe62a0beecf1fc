package flights

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/repository"
	"github.com/Domenick1991/skybooking/internal/seed"
)

func newSeededService(t *testing.T) (*FlightService, *repository.Store) {
	t.Helper()

	store := repository.NewStore()
	airlines := repository.NewAirlineRepository(store)
	airports := repository.NewAirportRepository(store)
	aircraft := repository.NewAircraftRepository(store)
	flights := repository.NewFlightRepository(store)

	require.NoError(t, seed.Load(context.Background(), airlines, airports, aircraft, flights))

	return NewFlightService(flights, airlines, airports, aircraft, nil, zap.NewNop()), store
}

func tomorrowDate() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}

func TestSearch_SeededRoute(t *testing.T) {
	svc, _ := newSeededService(t)

	results, err := svc.Search(context.Background(), SearchInput{
		From:          "JFK",
		To:            "LAX",
		DepartureDate: tomorrowDate(),
		Passengers:    1,
		ClassType:     domain.CabinEconomy,
		TripType:      "one-way",
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Insertion order, no implicit sorting.
	assert.Equal(t, "SW1234", results[0].FlightNumber)
	assert.Equal(t, "AG5678", results[1].FlightNumber)
	assert.Equal(t, "CJ9012", results[2].FlightNumber)

	for _, f := range results {
		require.NotNil(t, f.Airline)
		require.NotNil(t, f.Aircraft)
		require.NotNil(t, f.DepartureAirport)
		require.NotNil(t, f.ArrivalAirport)
		assert.Equal(t, "JFK", f.DepartureAirport.Code)
		assert.Equal(t, "LAX", f.ArrivalAirport.Code)
	}
}

func TestSearch_MatchesByCityCaseInsensitive(t *testing.T) {
	svc, _ := newSeededService(t)

	results, err := svc.Search(context.Background(), SearchInput{
		From:          "new york",
		To:            "los angeles",
		DepartureDate: tomorrowDate(),
	})
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

// Queries are matched as sent, without trimming surrounding whitespace.
func TestSearch_PaddedQueryYieldsNoMatches(t *testing.T) {
	svc, _ := newSeededService(t)

	results, err := svc.Search(context.Background(), SearchInput{
		From:          " JFK ",
		To:            " LAX ",
		DepartureDate: tomorrowDate(),
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

// Route matching is an inclusive OR between the origin and destination
// conditions: a destination hit alone is enough. Deliberate; see DESIGN.md.
func TestSearch_DestinationAloneMatches(t *testing.T) {
	svc, _ := newSeededService(t)

	results, err := svc.Search(context.Background(), SearchInput{
		From:          "zzz",
		To:            "LAX",
		DepartureDate: tomorrowDate(),
	})
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSearch_DateWithNoFlights(t *testing.T) {
	svc, _ := newSeededService(t)

	results, err := svc.Search(context.Background(), SearchInput{
		From:          "JFK",
		To:            "LAX",
		DepartureDate: "1999-01-01",
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_MalformedDateYieldsEmptyResult(t *testing.T) {
	svc, _ := newSeededService(t)

	results, err := svc.Search(context.Background(), SearchInput{
		From:          "JFK",
		To:            "LAX",
		DepartureDate: "not-a-date",
	})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearch_NoRouteMatch(t *testing.T) {
	svc, _ := newSeededService(t)

	results, err := svc.Search(context.Background(), SearchInput{
		From:          "Tokyo",
		To:            "Sydney",
		DepartureDate: tomorrowDate(),
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGetByID_Enriched(t *testing.T) {
	svc, _ := newSeededService(t)

	flight, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, flight.Airline)
	assert.Equal(t, "SW", flight.Airline.Code)
	require.NotNil(t, flight.Aircraft)
	assert.Equal(t, "Boeing 737", flight.Aircraft.Model)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newSeededService(t)

	_, err := svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEnrich_Idempotent(t *testing.T) {
	svc, _ := newSeededService(t)

	first, err := svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	second, err := svc.GetByID(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEnrich_MissingReferenceLeavesFieldAbsent(t *testing.T) {
	svc, store := newSeededService(t)

	dangling, err := repository.NewFlightRepository(store).Create(context.Background(), domain.Flight{
		FlightNumber:       "XX0001",
		AirlineID:          99,
		AircraftID:         1,
		DepartureAirportID: 1,
		ArrivalAirportID:   2,
		DepartureTime:      time.Now().AddDate(0, 0, 1),
		BasePrice:          "100.00",
	})
	require.NoError(t, err)

	enriched, err := svc.GetByID(context.Background(), dangling.ID)
	require.NoError(t, err)
	assert.Nil(t, enriched.Airline)
	assert.NotNil(t, enriched.Aircraft)
	assert.NotNil(t, enriched.DepartureAirport)
	assert.NotNil(t, enriched.ArrivalAirport)
}
