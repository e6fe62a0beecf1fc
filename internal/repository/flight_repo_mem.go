package repository

import (
	"context"

	"github.com/Domenick1991/skybooking/internal/domain"
)

type FlightRepository interface {
	Create(ctx context.Context, draft domain.Flight) (domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	List(ctx context.Context) ([]domain.Flight, error)
}

type MemFlightRepository struct {
	store *Store
}

func NewFlightRepository(store *Store) FlightRepository {
	return &MemFlightRepository{store: store}
}

func (r *MemFlightRepository) Create(_ context.Context, draft domain.Flight) (domain.Flight, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if draft.Status == "" {
		draft.Status = domain.FlightStatusScheduled
	}
	draft.ID = r.store.nextFlightID
	r.store.nextFlightID++
	r.store.flights[draft.ID] = draft
	return draft, nil
}

func (r *MemFlightRepository) GetByID(_ context.Context, id int64) (*domain.Flight, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	flight, ok := r.store.flights[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &flight, nil
}

// List returns flights in insertion order. Search does not sort; ordering by
// price or duration is a client concern.
func (r *MemFlightRepository) List(_ context.Context) ([]domain.Flight, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	flights := make([]domain.Flight, 0, len(r.store.flights))
	for id := int64(1); id < r.store.nextFlightID; id++ {
		if flight, ok := r.store.flights[id]; ok {
			flights = append(flights, flight)
		}
	}
	return flights, nil
}

var _ FlightRepository = (*MemFlightRepository)(nil)
