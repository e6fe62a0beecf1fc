package contact

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Domenick1991/skybooking/internal/kafka"
	"github.com/Domenick1991/skybooking/internal/validate"
)

type ContactUseCase interface {
	Submit(ctx context.Context, input SubmitInput) (*Receipt, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type SubmitInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,min=10"`
	Subject   string `json:"subject" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type Receipt struct {
	MessageID string `json:"messageId"`
	Status    string `json:"status"`
}

// ContactService accepts contact-form messages. Nothing is stored; the
// message is logged and handed to the notifications topic when a producer is
// wired.
type ContactService struct {
	producer           Producer
	notificationsTopic string
	validate           *validator.Validate
	log                *zap.Logger
}

func NewContactService(producer Producer, notificationsTopic string, log *zap.Logger) *ContactService {
	return &ContactService{
		producer:           producer,
		notificationsTopic: notificationsTopic,
		validate:           validate.New(),
		log:                log,
	}
}

func (s *ContactService) Submit(ctx context.Context, input SubmitInput) (*Receipt, error) {
	if err := validate.Wrap(s.validate.Struct(input)); err != nil {
		return nil, err
	}

	messageID := uuid.NewString()
	s.log.Info("contact form submission",
		zap.String("messageId", messageID),
		zap.String("name", input.FirstName+" "+input.LastName),
		zap.String("email", input.Email),
		zap.String("subject", input.Subject),
	)

	if s.producer != nil && s.notificationsTopic != "" {
		event := kafka.ContactEvent{
			Type:      kafka.EventTypeContactReceived,
			MessageID: messageID,
			Name:      input.FirstName + " " + input.LastName,
			Email:     input.Email,
			Subject:   input.Subject,
		}
		if err := s.producer.Publish(ctx, s.notificationsTopic, messageID, event); err != nil {
			s.log.Warn("failed to publish contact event", zap.String("messageId", messageID), zap.Error(err))
		}
	}

	return &Receipt{MessageID: messageID, Status: "received"}, nil
}

var _ ContactUseCase = (*ContactService)(nil)
