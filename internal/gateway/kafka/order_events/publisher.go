package order_events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"dashboard/internal/entities"
	"github.com/IBM/sarama"
)

const eventOrderStatusChanged = "order.status.changed"

type orderStatusChangedMessage struct {
	Event          string  `json:"event"`
	OrderID        int64   `json:"order_id"`
	PreviousStatus *string `json:"previous_status"`
	Status         string  `json:"status"`
	ChangedAt      string  `json:"changed_at"`
}

type Publisher struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

// PublishOrderStatusChanged отправляет событие с ключом order_id, чтобы
// события одного заказа попадали в одну партицию.
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, event entities.OrderStatusChanged) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := orderStatusChangedMessage{
		Event:     eventOrderStatusChanged,
		OrderID:   event.OrderID,
		Status:    event.Status.String(),
		ChangedAt: event.ChangedAt.UTC().Format(time.RFC3339Nano),
	}
	if event.PreviousStatus != nil {
		previous := event.PreviousStatus.String()
		msg.PreviousStatus = &previous
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", eventOrderStatusChanged, err)
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event"), Value: []byte(eventOrderStatusChanged)},
		},
		Timestamp: event.ChangedAt,
	})
	if err != nil {
		PublishedTotal.WithLabelValues(eventOrderStatusChanged, "error").Inc()
		return fmt.Errorf("send %s for order %d: %w", eventOrderStatusChanged, event.OrderID, err)
	}

	PublishedTotal.WithLabelValues(eventOrderStatusChanged, "success").Inc()
	return nil
}

// Nop используется, когда Kafka выключена.
type Nop struct{}

func (Nop) PublishOrderStatusChanged(context.Context, entities.OrderStatusChanged) error {
	return nil
}
