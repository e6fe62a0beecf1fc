package repository

import (
	"context"
	"strings"

	"github.com/Domenick1991/skybooking/internal/domain"
)

type AirlineRepository interface {
	Create(ctx context.Context, draft domain.Airline) (domain.Airline, error)
	GetByID(ctx context.Context, id int64) (*domain.Airline, error)
	GetByCode(ctx context.Context, code string) (*domain.Airline, error)
	List(ctx context.Context) ([]domain.Airline, error)
}

type AirportRepository interface {
	Create(ctx context.Context, draft domain.Airport) (domain.Airport, error)
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	GetByCode(ctx context.Context, code string) (*domain.Airport, error)
	List(ctx context.Context) ([]domain.Airport, error)
}

type AircraftRepository interface {
	Create(ctx context.Context, draft domain.Aircraft) (domain.Aircraft, error)
	GetByID(ctx context.Context, id int64) (*domain.Aircraft, error)
	List(ctx context.Context) ([]domain.Aircraft, error)
}

type MemAirlineRepository struct {
	store *Store
}

func NewAirlineRepository(store *Store) AirlineRepository {
	return &MemAirlineRepository{store: store}
}

func (r *MemAirlineRepository) Create(_ context.Context, draft domain.Airline) (domain.Airline, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	draft.ID = r.store.nextAirlineID
	r.store.nextAirlineID++
	r.store.airlines[draft.ID] = draft
	return draft, nil
}

func (r *MemAirlineRepository) GetByID(_ context.Context, id int64) (*domain.Airline, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	airline, ok := r.store.airlines[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &airline, nil
}

func (r *MemAirlineRepository) GetByCode(_ context.Context, code string) (*domain.Airline, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id := int64(1); id < r.store.nextAirlineID; id++ {
		if airline, ok := r.store.airlines[id]; ok && strings.EqualFold(airline.Code, code) {
			return &airline, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemAirlineRepository) List(_ context.Context) ([]domain.Airline, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	airlines := make([]domain.Airline, 0, len(r.store.airlines))
	for id := int64(1); id < r.store.nextAirlineID; id++ {
		if airline, ok := r.store.airlines[id]; ok {
			airlines = append(airlines, airline)
		}
	}
	return airlines, nil
}

type MemAirportRepository struct {
	store *Store
}

func NewAirportRepository(store *Store) AirportRepository {
	return &MemAirportRepository{store: store}
}

func (r *MemAirportRepository) Create(_ context.Context, draft domain.Airport) (domain.Airport, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	draft.ID = r.store.nextAirportID
	r.store.nextAirportID++
	r.store.airports[draft.ID] = draft
	return draft, nil
}

func (r *MemAirportRepository) GetByID(_ context.Context, id int64) (*domain.Airport, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	airport, ok := r.store.airports[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &airport, nil
}

func (r *MemAirportRepository) GetByCode(_ context.Context, code string) (*domain.Airport, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id := int64(1); id < r.store.nextAirportID; id++ {
		if airport, ok := r.store.airports[id]; ok && strings.EqualFold(airport.Code, code) {
			return &airport, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemAirportRepository) List(_ context.Context) ([]domain.Airport, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	airports := make([]domain.Airport, 0, len(r.store.airports))
	for id := int64(1); id < r.store.nextAirportID; id++ {
		if airport, ok := r.store.airports[id]; ok {
			airports = append(airports, airport)
		}
	}
	return airports, nil
}

type MemAircraftRepository struct {
	store *Store
}

func NewAircraftRepository(store *Store) AircraftRepository {
	return &MemAircraftRepository{store: store}
}

func (r *MemAircraftRepository) Create(_ context.Context, draft domain.Aircraft) (domain.Aircraft, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	draft.ID = r.store.nextAircraftID
	r.store.nextAircraftID++
	r.store.aircraft[draft.ID] = draft
	return draft, nil
}

func (r *MemAircraftRepository) GetByID(_ context.Context, id int64) (*domain.Aircraft, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	craft, ok := r.store.aircraft[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &craft, nil
}

func (r *MemAircraftRepository) List(_ context.Context) ([]domain.Aircraft, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	craft := make([]domain.Aircraft, 0, len(r.store.aircraft))
	for id := int64(1); id < r.store.nextAircraftID; id++ {
		if a, ok := r.store.aircraft[id]; ok {
			craft = append(craft, a)
		}
	}
	return craft, nil
}

var (
	_ AirlineRepository  = (*MemAirlineRepository)(nil)
	_ AirportRepository  = (*MemAirportRepository)(nil)
	_ AircraftRepository = (*MemAircraftRepository)(nil)
)
