package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/careerforge/api/internal/config"
)

const (
	TopicProfileEvents = "profile.events"
	TopicDeployEvents  = "deploy.events"
)

const (
	ProfileEventTypeSaved    = "profile.saved"
	DeployEventTypeRequested = "deploy.requested"
	DeployEventTypeCompleted = "deploy.completed"
)

type ProfileEventPayload struct {
	EventType string    `json:"event_type"`
	OwnerID   uuid.UUID `json:"owner_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DeployEventPayload struct {
	EventType string    `json:"event_type"`
	OwnerID   uuid.UUID `json:"owner_id"`
	URL       string    `json:"url"`
}

type KafkaProducerClient struct {
	ProfileEventsWriter *kafka.Writer
	DeployEventsWriter  *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	profileWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicProfileEvents,
		Balancer: &kafka.LeastBytes{},
	}

	deployWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicDeployEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		ProfileEventsWriter: profileWriter,
		DeployEventsWriter:  deployWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishProfileEvent(ctx context.Context, payload ProfileEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal profile event: %w", err)
	}
	return c.ProfileEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.OwnerID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) PublishDeployEvent(ctx context.Context, payload DeployEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal deploy event: %w", err)
	}
	return c.DeployEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.OwnerID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ProfileEventsWriter != nil {
		c.ProfileEventsWriter.Close()
	}
	if c.DeployEventsWriter != nil {
		c.DeployEventsWriter.Close()
	}
}
