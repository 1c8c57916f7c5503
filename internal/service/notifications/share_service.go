package notifications

import (
	"context"
	"net/mail"
	"strings"

	"github.com/Domenick1991/airreserve/internal/domain"
)

const (
	maxSubjectLength = 200
	maxBodyLength    = 10000
)

type ShareUseCase interface {
	ShareTrip(ctx context.Context, principal domain.Principal, input ShareTripInput) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type ShareTripInput struct {
	ToEmail string
	Subject string
	Text    string
}

// ShareService queues trip details for delivery to someone the user picks.
type ShareService struct {
	producer Producer
	topic    string
}

func NewShareService(producer Producer, topic string) *ShareService {
	return &ShareService{producer: producer, topic: topic}
}

func (s *ShareService) ShareTrip(ctx context.Context, principal domain.Principal, input ShareTripInput) error {
	if principal.UserID <= 0 {
		return domain.ErrUnauthenticated
	}

	to := strings.TrimSpace(input.ToEmail)
	if addr, err := mail.ParseAddress(to); err != nil || addr.Address != to {
		return domain.Validation("invalid recipient %q", input.ToEmail)
	}
	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		subject = "A trip was shared with you"
	}
	if len(subject) > maxSubjectLength {
		return domain.Validation("subject longer than %d characters", maxSubjectLength)
	}
	if strings.TrimSpace(input.Text) == "" {
		return domain.Validation("text is required")
	}
	if len(input.Text) > maxBodyLength {
		return domain.Validation("text longer than %d characters", maxBodyLength)
	}

	n := domain.Notification{
		Kind:    "share_trip",
		To:      to,
		Subject: subject,
		Body:    input.Text + "\n\nShared by " + principal.Email,
	}
	if err := s.producer.Publish(ctx, s.topic, to, n); err != nil {
		return domain.Infrastructure("queue shared trip", err)
	}
	return nil
}

var _ ShareUseCase = (*ShareService)(nil)
