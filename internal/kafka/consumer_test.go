package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingNotifier struct {
	bookings []BookingEvent
	contacts []ContactEvent
	err      error
}

func (n *recordingNotifier) SendBookingConfirmation(_ context.Context, event BookingEvent) error {
	n.bookings = append(n.bookings, event)
	return n.err
}

func (n *recordingNotifier) SendContactReceipt(_ context.Context, event ContactEvent) error {
	n.contacts = append(n.contacts, event)
	return n.err
}

func newRoutingConsumer() *Consumer {
	return &Consumer{log: zap.NewNop()}
}

func TestConsumer_route_bookingCreated(t *testing.T) {
	consumer := newRoutingConsumer()
	notifier := &recordingNotifier{}

	payload, err := json.Marshal(BookingEvent{
		Type:             EventTypeBookingCreated,
		BookingReference: "AB12CD",
		FlightID:         1,
		Email:            "ada@example.com",
		TotalPrice:       "389.00",
	})
	require.NoError(t, err)

	require.NoError(t, consumer.route(context.Background(), payload, notifier))

	require.Len(t, notifier.bookings, 1)
	assert.Equal(t, "AB12CD", notifier.bookings[0].BookingReference)
	assert.Equal(t, "ada@example.com", notifier.bookings[0].Email)
	assert.Empty(t, notifier.contacts)
}

func TestConsumer_route_contactReceived(t *testing.T) {
	consumer := newRoutingConsumer()
	notifier := &recordingNotifier{}

	payload, err := json.Marshal(ContactEvent{
		Type:      EventTypeContactReceived,
		MessageID: "b2b9e7e0",
		Email:     "grace@example.com",
		Subject:   "Baggage allowance",
	})
	require.NoError(t, err)

	require.NoError(t, consumer.route(context.Background(), payload, notifier))

	require.Len(t, notifier.contacts, 1)
	assert.Equal(t, "b2b9e7e0", notifier.contacts[0].MessageID)
	assert.Empty(t, notifier.bookings)
}

func TestConsumer_route_skipsUnknownAndUndecodable(t *testing.T) {
	consumer := newRoutingConsumer()
	notifier := &recordingNotifier{}

	assert.NoError(t, consumer.route(context.Background(), []byte(`{"type":"price_changed"}`), notifier))
	assert.NoError(t, consumer.route(context.Background(), []byte(`not json`), notifier))

	assert.Empty(t, notifier.bookings)
	assert.Empty(t, notifier.contacts)
}

func TestConsumer_route_notifierErrorStopsConsumption(t *testing.T) {
	consumer := newRoutingConsumer()
	sendErr := errors.New("smtp down")
	notifier := &recordingNotifier{err: sendErr}

	payload, err := json.Marshal(ContactEvent{Type: EventTypeContactReceived, MessageID: "b2b9e7e0"})
	require.NoError(t, err)

	assert.ErrorIs(t, consumer.route(context.Background(), payload, notifier), sendErr)
}
