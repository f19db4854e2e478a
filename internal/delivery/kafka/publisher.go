package kafka

import (
	"context"
	"encoding/json"

	kafka "github.com/segmentio/kafka-go"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/models"
)

type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Publisher{writer: w}
}

// PublishEvent writes a notification event keyed by order id so events for
// one order stay in partition order.
func (p *Publisher) PublishEvent(ctx context.Context, ev models.NotificationEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.Order.OrderID),
		Value: payload,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
