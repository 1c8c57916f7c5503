package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Consumer struct {
	reader *kafka.Reader
	logger *zap.Logger
}

func NewConsumer(brokers []string, groupID, topic string, logger *zap.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		logger: logger,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, kafka.Message) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		if err := handler(ctx, msg); err != nil {
			return err
		}
	}
}

// NotificationHandler decodes notification messages and passes them to send.
// Undecodable messages are logged and skipped so they do not block the group.
func NotificationHandler(logger *zap.Logger, send func(context.Context, domain.Notification) error) func(context.Context, kafka.Message) error {
	return func(ctx context.Context, msg kafka.Message) error {
		var n domain.Notification
		if err := json.Unmarshal(msg.Value, &n); err != nil {
			logger.Warn("skip undecodable notification", zap.Int64("offset", msg.Offset), zap.Error(err))
			return nil
		}
		return send(ctx, n)
	}
}
