package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// Event types carried in the payload's "type" field; the consumer routes on
// them.
const (
	EventTypeBookingCreated  = "booking_created"
	EventTypeContactReceived = "contact_received"
)

// BookingEvent is published when a booking is minted and consumed by the
// notification worker.
type BookingEvent struct {
	Type             string    `json:"type"`
	BookingReference string    `json:"bookingReference"`
	FlightID         int64     `json:"flightId"`
	Passenger        string    `json:"passenger"`
	Email            string    `json:"email"`
	SeatNumber       string    `json:"seatNumber,omitempty"`
	ClassType        string    `json:"classType"`
	TotalPrice       string    `json:"totalPrice"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ContactEvent is published when a contact-form message is accepted.
type ContactEvent struct {
	Type      string `json:"type"`
	MessageID string `json:"messageId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
