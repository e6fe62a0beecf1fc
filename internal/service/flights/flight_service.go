package flights

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/repository"
)

const dateLayout = "2006-01-02"

type FlightUseCase interface {
	Search(ctx context.Context, input SearchInput) ([]domain.EnrichedFlight, error)
	GetByID(ctx context.Context, id int64) (*domain.EnrichedFlight, error)
}

// SearchCache is optional; a nil cache disables caching.
type SearchCache interface {
	GetSearch(ctx context.Context, key string) ([]domain.EnrichedFlight, error)
	SetSearch(ctx context.Context, key string, flights []domain.EnrichedFlight) error
}

// SearchInput carries the full search form. Passengers, ClassType and
// TripType travel with the request but do not filter results.
type SearchInput struct {
	From          string            `json:"from"`
	To            string            `json:"to"`
	DepartureDate string            `json:"departureDate"`
	ReturnDate    string            `json:"returnDate,omitempty"`
	Passengers    int               `json:"passengers"`
	ClassType     domain.CabinClass `json:"classType"`
	TripType      string            `json:"tripType"`
}

type FlightService struct {
	flights  repository.FlightRepository
	airlines repository.AirlineRepository
	airports repository.AirportRepository
	aircraft repository.AircraftRepository
	cache    SearchCache
	log      *zap.Logger
}

func NewFlightService(
	flights repository.FlightRepository,
	airlines repository.AirlineRepository,
	airports repository.AirportRepository,
	aircraft repository.AircraftRepository,
	cache SearchCache,
	log *zap.Logger,
) *FlightService {
	return &FlightService{
		flights:  flights,
		airlines: airlines,
		airports: airports,
		aircraft: aircraft,
		cache:    cache,
		log:      log,
	}
}

// Search filters flights by route and calendar date and returns them
// enriched, preserving insertion order. A route matches when the origin text
// appears in the departure airport's city or code OR the destination text
// appears in the arrival airport's city or code. The inclusive OR mirrors the
// long-standing site behavior and is pinned by tests; do not tighten it to an
// AND without a product decision.
func (s *FlightService) Search(ctx context.Context, input SearchInput) ([]domain.EnrichedFlight, error) {
	searchDate, err := time.Parse(dateLayout, input.DepartureDate)
	if err != nil {
		// An unparseable date can never equal a flight's date: no matches.
		s.log.Debug("unparseable departure date", zap.String("departureDate", input.DepartureDate))
		return []domain.EnrichedFlight{}, nil
	}

	key := searchCacheKey(input)
	if s.cache != nil {
		if cached, err := s.cache.GetSearch(ctx, key); err == nil && cached != nil {
			return cached, nil
		}
	}

	all, err := s.flights.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}

	// Queries are lowercased but otherwise taken as sent; padded input like
	// " JFK " does not match.
	from := strings.ToLower(input.From)
	to := strings.ToLower(input.To)

	results := make([]domain.EnrichedFlight, 0)
	for _, flight := range all {
		departure := s.airport(ctx, flight.DepartureAirportID)
		arrival := s.airport(ctx, flight.ArrivalAirportID)

		if !matchesRoute(departure, arrival, from, to) {
			continue
		}
		if !sameDate(flight.DepartureTime, searchDate) {
			continue
		}
		results = append(results, s.enrich(ctx, flight))
	}

	if s.cache != nil && len(results) > 0 {
		_ = s.cache.SetSearch(ctx, key, results)
	}
	return results, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.EnrichedFlight, error) {
	flight, err := s.flights.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	enriched := s.enrich(ctx, *flight)
	return &enriched, nil
}

// Enrich resolves the flight's references. Each lookup is independent; a
// dangling id leaves the field nil instead of failing the whole flight.
func (s *FlightService) Enrich(ctx context.Context, flight domain.Flight) domain.EnrichedFlight {
	return s.enrich(ctx, flight)
}

func (s *FlightService) enrich(ctx context.Context, flight domain.Flight) domain.EnrichedFlight {
	enriched := domain.EnrichedFlight{Flight: flight}

	if airline, err := s.airlines.GetByID(ctx, flight.AirlineID); err == nil {
		enriched.Airline = airline
	}
	if craft, err := s.aircraft.GetByID(ctx, flight.AircraftID); err == nil {
		enriched.Aircraft = craft
	}
	enriched.DepartureAirport = s.airport(ctx, flight.DepartureAirportID)
	enriched.ArrivalAirport = s.airport(ctx, flight.ArrivalAirportID)
	return enriched
}

func (s *FlightService) airport(ctx context.Context, id int64) *domain.Airport {
	airport, err := s.airports.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Warn("airport lookup failed", zap.Int64("id", id), zap.Error(err))
		}
		return nil
	}
	return airport
}

func matchesRoute(departure, arrival *domain.Airport, from, to string) bool {
	if departure != nil && (strings.Contains(strings.ToLower(departure.City), from) || strings.Contains(strings.ToLower(departure.Code), from)) {
		return true
	}
	if arrival != nil && (strings.Contains(strings.ToLower(arrival.City), to) || strings.Contains(strings.ToLower(arrival.Code), to)) {
		return true
	}
	return false
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func searchCacheKey(input SearchInput) string {
	return fmt.Sprintf("%s|%s|%s",
		strings.ToLower(input.From),
		strings.ToLower(input.To),
		input.DepartureDate,
	)
}

var _ FlightUseCase = (*FlightService)(nil)
