// Package email is the demo notification sink: it logs what a real mailer
// would send.
package email

import (
	"context"

	"go.uber.org/zap"

	"github.com/Domenick1991/skybooking/internal/kafka"
)

type Sender struct {
	log *zap.Logger
}

func NewSender(log *zap.Logger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) SendBookingConfirmation(_ context.Context, event kafka.BookingEvent) error {
	s.log.Info("sending booking confirmation email",
		zap.String("to", event.Email),
		zap.String("bookingReference", event.BookingReference),
		zap.Int64("flightId", event.FlightID),
		zap.String("seatNumber", event.SeatNumber),
		zap.String("totalPrice", event.TotalPrice),
	)
	return nil
}

func (s *Sender) SendContactReceipt(_ context.Context, event kafka.ContactEvent) error {
	s.log.Info("sending contact receipt email",
		zap.String("to", event.Email),
		zap.String("messageId", event.MessageID),
		zap.String("subject", event.Subject),
	)
	return nil
}
