package events

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher пишет события в один топик; ключ - ID команды,
// чтобы события одной команды читались по порядку
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event StandupEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.TeamID)),
		Value: payload,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
