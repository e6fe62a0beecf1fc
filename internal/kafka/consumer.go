package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Notifier receives decoded notification events. The email sender is the
// production implementation.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, event BookingEvent) error
	SendContactReceipt(ctx context.Context, event ContactEvent) error
}

// Consumer reads the notifications topic and routes each event to a Notifier
// by its type field. Undecodable and unknown events are logged and skipped so
// one bad message cannot wedge the stream.
type Consumer struct {
	reader *kafka.Reader
	log    *zap.Logger
}

func NewConsumer(brokers []string, groupID, topic string, log *zap.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		log: log,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume blocks reading messages until ctx is cancelled, the reader fails,
// or the notifier returns an error.
func (c *Consumer) Consume(ctx context.Context, notifier Notifier) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}
		if err := c.route(ctx, msg.Value, notifier); err != nil {
			return err
		}
	}
}

func (c *Consumer) route(ctx context.Context, payload []byte, notifier Notifier) error {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(payload, &head); err != nil {
		c.log.Warn("skipping undecodable event", zap.Error(err))
		return nil
	}

	switch head.Type {
	case EventTypeBookingCreated:
		var event BookingEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			c.log.Warn("skipping malformed booking event", zap.Error(err))
			return nil
		}
		return notifier.SendBookingConfirmation(ctx, event)
	case EventTypeContactReceived:
		var event ContactEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			c.log.Warn("skipping malformed contact event", zap.Error(err))
			return nil
		}
		return notifier.SendContactReceipt(ctx, event)
	default:
		c.log.Warn("skipping event of unknown type", zap.String("type", head.Type))
		return nil
	}
}
