package employee

import (
	"context"
	"encoding/json"
	"go-directory/internal/events"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=employee_event_publisher.go -destination=mock/employee_event_publisher_mock.go -package=mock
type EventPublisher interface {
	PublishEmployeeEvent(ctx context.Context, event events.EmployeeLifecycleEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishEmployeeEvent(context.Context, events.EmployeeLifecycleEvent) error {
	return nil
}

type kafkaEventPublisher struct {
	writer *kafka.Writer
}

func NewKafkaEventPublisher(writer *kafka.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishEmployeeEvent(
	ctx context.Context,
	event events.EmployeeLifecycleEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.EmployeeLifecycleTopic,
		Key:   []byte(event.EmployeeID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	})
}
