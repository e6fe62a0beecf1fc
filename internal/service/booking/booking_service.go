package booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/kafka"
	"github.com/Domenick1991/skybooking/internal/pricing"
	"github.com/Domenick1991/skybooking/internal/repository"
	"github.com/Domenick1991/skybooking/internal/service/flights"
	"github.com/Domenick1991/skybooking/internal/validate"
)

const (
	referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referenceLength   = 6

	// maxReferenceAttempts bounds the regenerate-on-collision loop. With 36^6
	// possible references a demo-scale store never exhausts it.
	maxReferenceAttempts = 8
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.EnrichedBooking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// CreateBookingInput is the booking draft. TotalPrice is optional: the minter
// recomputes it from the flight whenever the flight resolves.
type CreateBookingInput struct {
	FlightID             int64             `json:"flightId" validate:"required"`
	PassengerFirstName   string            `json:"passengerFirstName" validate:"required"`
	PassengerLastName    string            `json:"passengerLastName" validate:"required"`
	PassengerEmail       string            `json:"passengerEmail" validate:"required,email"`
	PassengerPhone       string            `json:"passengerPhone" validate:"required,min=10"`
	PassengerDateOfBirth string            `json:"passengerDateOfBirth" validate:"required"`
	PassengerGender      string            `json:"passengerGender" validate:"required"`
	PassengerPassport    string            `json:"passengerPassport,omitempty"`
	PassengerNationality string            `json:"passengerNationality,omitempty"`
	SeatNumber           string            `json:"seatNumber,omitempty"`
	ClassType            domain.CabinClass `json:"classType" validate:"omitempty,oneof=economy premium business first"`
	TotalPrice           string            `json:"totalPrice,omitempty"`
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            flights.FlightUseCase
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	validate           *validator.Validate
	newReference       func() string
	log                *zap.Logger
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithReferenceGenerator replaces the random reference source, used by tests
// to force collisions.
func WithReferenceGenerator(gen func() string) BookingServiceOption {
	return func(s *BookingService) {
		s.newReference = gen
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flightSvc flights.FlightUseCase,
	producer Producer,
	bookingTopic string,
	log *zap.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		flights:      flightSvc,
		producer:     producer,
		bookingTopic: bookingTopic,
		validate:     validate.New(),
		newReference: randomReference,
		log:          log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking validates the draft, prices it, mints a unique reference and
// persists the booking with status "confirmed".
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if err := validate.Wrap(s.validate.Struct(input)); err != nil {
		return nil, err
	}
	if input.ClassType == "" {
		input.ClassType = domain.CabinEconomy
	}

	totalPrice, err := s.totalPrice(ctx, input)
	if err != nil {
		return nil, err
	}

	draft := domain.Booking{
		FlightID:             input.FlightID,
		PassengerFirstName:   input.PassengerFirstName,
		PassengerLastName:    input.PassengerLastName,
		PassengerEmail:       input.PassengerEmail,
		PassengerPhone:       input.PassengerPhone,
		PassengerDateOfBirth: input.PassengerDateOfBirth,
		PassengerGender:      input.PassengerGender,
		PassengerPassport:    input.PassengerPassport,
		PassengerNationality: input.PassengerNationality,
		SeatNumber:           input.SeatNumber,
		ClassType:            input.ClassType,
		TotalPrice:           totalPrice,
		BookingStatus:        domain.BookingStatusConfirmed,
		CreatedAt:            time.Now(),
	}

	booking, err := s.mint(ctx, draft)
	if err != nil {
		return nil, err
	}

	s.publishCreated(ctx, booking)
	return booking, nil
}

// GetByReference returns the booking with its flight enriched. A booking
// whose flight no longer resolves still returns, flight left nil.
func (s *BookingService) GetByReference(ctx context.Context, reference string) (*domain.EnrichedBooking, error) {
	booking, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	enriched := &domain.EnrichedBooking{Booking: *booking}
	flight, err := s.flights.GetByID(ctx, booking.FlightID)
	if err == nil {
		enriched.Flight = flight
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("enrich booking flight: %w", err)
	}
	return enriched, nil
}

// mint retries reference generation until the store accepts the insert.
func (s *BookingService) mint(ctx context.Context, draft domain.Booking) (*domain.Booking, error) {
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		draft.BookingReference = s.newReference()
		booking, err := s.bookings.Create(ctx, draft)
		if err == nil {
			return &booking, nil
		}
		if !errors.Is(err, repository.ErrDuplicateReference) {
			return nil, err
		}
		s.log.Warn("booking reference collision, regenerating", zap.String("reference", draft.BookingReference))
	}
	return nil, fmt.Errorf("could not mint a unique booking reference after %d attempts", maxReferenceAttempts)
}

// totalPrice recomputes the total from the flight, seat and class. The
// original site trusted the client-computed total; keep it only as a fallback
// for drafts pointing at a flight that does not resolve.
func (s *BookingService) totalPrice(ctx context.Context, input CreateBookingInput) (string, error) {
	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			if input.TotalPrice != "" {
				return input.TotalPrice, nil
			}
			return "0.00", nil
		}
		return "", fmt.Errorf("resolve flight for pricing: %w", err)
	}
	return pricing.Total(&flight.Flight, input.SeatNumber, input.ClassType)
}

func (s *BookingService) publishCreated(ctx context.Context, booking *domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:             kafka.EventTypeBookingCreated,
		BookingReference: booking.BookingReference,
		FlightID:         booking.FlightID,
		Passenger:        booking.PassengerFirstName + " " + booking.PassengerLastName,
		Email:            booking.PassengerEmail,
		SeatNumber:       booking.SeatNumber,
		ClassType:        string(booking.ClassType),
		TotalPrice:       booking.TotalPrice,
		Status:           string(booking.BookingStatus),
		CreatedAt:        booking.CreatedAt,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.BookingReference, event); err != nil {
		s.log.Warn("failed to publish booking_created event", zap.String("reference", booking.BookingReference), zap.Error(err))
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.BookingReference, event); err != nil {
			s.log.Warn("failed to publish booking notification", zap.String("reference", booking.BookingReference), zap.Error(err))
		}
	}
}

func randomReference() string {
	ref := make([]byte, referenceLength)
	for i := range ref {
		ref[i] = referenceAlphabet[rand.Intn(len(referenceAlphabet))]
	}
	return string(ref)
}

var _ BookingUseCase = (*BookingService)(nil)
