package compensation

import (
	"context"
	"encoding/json"
	"go-directory/internal/events"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=compensation_event_publisher.go -destination=mock/compensation_event_publisher_mock.go -package=mock
type EventPublisher interface {
	PublishCompensationEvent(ctx context.Context, event events.CompensationSubmittedEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishCompensationEvent(context.Context, events.CompensationSubmittedEvent) error {
	return nil
}

type kafkaEventPublisher struct {
	writer *kafka.Writer
}

func NewKafkaEventPublisher(writer *kafka.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishCompensationEvent(
	ctx context.Context,
	event events.CompensationSubmittedEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.CompensationLifecycleTopic,
		Key:   []byte(event.EmployeeID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	})
}
