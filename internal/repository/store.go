package repository

import (
	"errors"
	"sync"

	"github.com/Domenick1991/skybooking/internal/domain"
)

// ErrDuplicateReference is returned when a booking insert would reuse an
// existing booking reference. Callers regenerate and retry.
var ErrDuplicateReference = errors.New("booking reference already exists")

// Store holds every entity collection in memory. Each kind owns a monotonic
// id counter starting at 1; id assignment and insertion happen under the same
// lock, so ids are unique and never reused for the process lifetime even when
// handlers run concurrently. State is volatile: nothing survives a restart.
type Store struct {
	mu sync.Mutex

	airlines map[int64]domain.Airline
	airports map[int64]domain.Airport
	aircraft map[int64]domain.Aircraft
	flights  map[int64]domain.Flight
	bookings map[int64]domain.Booking
	users    map[int64]domain.User

	nextAirlineID  int64
	nextAirportID  int64
	nextAircraftID int64
	nextFlightID   int64
	nextBookingID  int64
	nextUserID     int64
}

func NewStore() *Store {
	return &Store{
		airlines: make(map[int64]domain.Airline),
		airports: make(map[int64]domain.Airport),
		aircraft: make(map[int64]domain.Aircraft),
		flights:  make(map[int64]domain.Flight),
		bookings: make(map[int64]domain.Booking),
		users:    make(map[int64]domain.User),

		nextAirlineID:  1,
		nextAirportID:  1,
		nextAircraftID: 1,
		nextFlightID:   1,
		nextBookingID:  1,
		nextUserID:     1,
	}
}
