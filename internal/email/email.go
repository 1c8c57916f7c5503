package email

import (
	"context"

	"github.com/Domenick1991/airreserve/internal/domain"
	"go.uber.org/zap"
)

// Sender hands notifications to the mail relay. Delivery itself lives outside
// this service, so it only records what would be sent.
type Sender struct {
	logger *zap.Logger
}

func NewSender(logger *zap.Logger) *Sender {
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, n domain.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Info("send email",
		zap.String("kind", n.Kind),
		zap.String("to", n.To),
		zap.String("subject", n.Subject),
	)
	return nil
}
