package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"menu-admin/menu-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// Publish keys messages by entity so events for one record stay ordered
// within a partition.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.MenuEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(fmt.Sprintf("%s:%d", event.Entity, event.EntityID)),
		Value: payload,
	})
}
