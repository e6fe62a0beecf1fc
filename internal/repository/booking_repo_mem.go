package repository

import (
	"context"

	"github.com/Domenick1991/skybooking/internal/domain"
)

type BookingRepository interface {
	// Create assigns the next booking id and inserts the record. It fails
	// with ErrDuplicateReference if the draft's reference is already taken;
	// the check and the insert happen under one lock.
	Create(ctx context.Context, draft domain.Booking) (domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
}

type MemBookingRepository struct {
	store *Store
}

func NewBookingRepository(store *Store) BookingRepository {
	return &MemBookingRepository{store: store}
}

func (r *MemBookingRepository) Create(_ context.Context, draft domain.Booking) (domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.bookings {
		if existing.BookingReference == draft.BookingReference {
			return domain.Booking{}, ErrDuplicateReference
		}
	}

	draft.ID = r.store.nextBookingID
	r.store.nextBookingID++
	r.store.bookings[draft.ID] = draft
	return draft, nil
}

func (r *MemBookingRepository) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	booking, ok := r.store.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &booking, nil
}

func (r *MemBookingRepository) GetByReference(_ context.Context, reference string) (*domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id := int64(1); id < r.store.nextBookingID; id++ {
		if booking, ok := r.store.bookings[id]; ok && booking.BookingReference == reference {
			return &booking, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemBookingRepository) List(_ context.Context) ([]domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	bookings := make([]domain.Booking, 0, len(r.store.bookings))
	for id := int64(1); id < r.store.nextBookingID; id++ {
		if booking, ok := r.store.bookings[id]; ok {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

var _ BookingRepository = (*MemBookingRepository)(nil)
