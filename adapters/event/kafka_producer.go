package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/sourabh020820033/learning-path/internal/config"
	"github.com/sourabh020820033/learning-path/internal/domain/analysis"
	"github.com/sourabh020820033/learning-path/pkg/logger"
)

const TopicAnalysisEvents = "analysis.events"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	AnalysisEventsWriter messageWriter
	logger               logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicAnalysisEvents,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka producer successfully.", zap.Strings("brokers", brokers), zap.String("topic", TopicAnalysisEvents))

	return &KafkaProducerClient{AnalysisEventsWriter: writer, logger: log}, nil
}

// PublishAnalysisCompleted keys messages by analysis id so one analysis stays on one partition.
func (c *KafkaProducerClient) PublishAnalysisCompleted(ctx context.Context, evt analysis.CompletedEvent) error {
	value, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal analysis event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(evt.AnalysisID.String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(evt.EventType)},
		},
	}
	if err := c.AnalysisEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write analysis event: %w", err)
	}

	c.logger.Debug("Published analysis event", zap.String("event_id", evt.EventID.String()))
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.AnalysisEventsWriter != nil {
		if err := c.AnalysisEventsWriter.Close(); err != nil {
			c.logger.Warn("Failed to close Kafka writer", zap.Error(err))
		}
	}
	c.logger.Info("Closed Kafka producer")
}

// DecodeAnalysisEvent parses a message written by PublishAnalysisCompleted.
func DecodeAnalysisEvent(msg kafka.Message) (analysis.CompletedEvent, error) {
	var evt analysis.CompletedEvent
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		return evt, fmt.Errorf("decode analysis event: %w", err)
	}
	if evt.EventType != analysis.EventTypeCompleted {
		return evt, fmt.Errorf("unexpected event type %q", evt.EventType)
	}
	return evt, nil
}
