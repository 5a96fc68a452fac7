// Package stream consumes marketplace push notifications from Kafka and
// forwards them to the reconciliation layer. Malformed messages are logged
// and skipped, never retried: the notification stream is best-effort and a
// periodic pull covers any gap.
package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"fleetops/internal/core/ports"

	"github.com/IBM/sarama"
)

// notificationPayload is the wire format of one push notification.
type notificationPayload struct {
	Kind       string `json:"kind"`
	DeliveryID string `json:"delivery_id"`
	Message    string `json:"message"`
}

// Consumer wraps a Sarama consumer group and dispatches decoded
// notifications to a ports.NotificationHandler.
type Consumer struct {
	group   sarama.ConsumerGroup
	topic   string
	handler ports.NotificationHandler
	logger  *slog.Logger
}

// NewConsumer creates a Kafka notification consumer. Returns nil when the
// broker configuration is empty, so the stream adapter is optional.
func NewConsumer(brokers []string, groupID, topic string, handler ports.NotificationHandler, logger *slog.Logger) (*Consumer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := sarama.NewConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:   group,
		topic:   topic,
		handler: handler,
		logger:  logger.With("component", "stream-consumer"),
	}, nil
}

// Run consumes until the context is canceled. Rebalances and transient
// consume errors are logged and retried.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	h := &groupHandler{c: c}

	for {
		if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Warn("consume error, retrying", "error", err)
			time.Sleep(time.Second)
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Close shuts down the consumer group.
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

type groupHandler struct{ c *Consumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		n, ok := decodeNotification(msg.Value, h.c.logger)
		if ok {
			h.c.handler.Handle(n)
		}
		sess.MarkMessage(msg, "")
	}
	return nil
}

// decodeNotification parses one message. Unknown kinds pass through: the
// handler owns that decision and logs it.
func decodeNotification(raw []byte, logger *slog.Logger) (ports.Notification, bool) {
	var payload notificationPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		logger.Warn("skipping malformed notification", "error", err)
		return ports.Notification{}, false
	}

	if strings.TrimSpace(payload.Kind) == "" {
		logger.Warn("skipping notification without kind")
		return ports.Notification{}, false
	}

	return ports.Notification{
		Kind:       ports.NotificationKind(payload.Kind),
		DeliveryID: payload.DeliveryID,
		Message:    payload.Message,
	}, true
}
