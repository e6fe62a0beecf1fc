package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/kafka"
)

type capturingProducer struct {
	published []interface{}
}

func (p *capturingProducer) Publish(_ context.Context, _, _ string, value interface{}) error {
	p.published = append(p.published, value)
	return nil
}

func validInput() SubmitInput {
	return SubmitInput{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Subject:   "Baggage allowance",
		Message:   "How many bags can I check in?",
	}
}

func TestSubmit_ReturnsReceipt(t *testing.T) {
	svc := NewContactService(nil, "", zap.NewNop())

	receipt, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.MessageID)
	assert.Equal(t, "received", receipt.Status)
}

func TestSubmit_PublishesNotification(t *testing.T) {
	producer := &capturingProducer{}
	svc := NewContactService(producer, "notifications", zap.NewNop())

	receipt, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)

	require.Len(t, producer.published, 1)
	event, ok := producer.published[0].(kafka.ContactEvent)
	require.True(t, ok)
	assert.Equal(t, "contact_received", event.Type)
	assert.Equal(t, receipt.MessageID, event.MessageID)
}

func TestSubmit_InvalidEmailNamesField(t *testing.T) {
	svc := NewContactService(nil, "", zap.NewNop())

	input := validInput()
	input.Email = "nope"

	_, err := svc.Submit(context.Background(), input)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "email", verr.Violations[0].Field)
}

func TestSubmit_MissingSubject(t *testing.T) {
	svc := NewContactService(nil, "", zap.NewNop())

	input := validInput()
	input.Subject = ""

	_, err := svc.Submit(context.Background(), input)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "subject", verr.Violations[0].Field)
}
