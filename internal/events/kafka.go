package events

//go:generate mockgen -source=kafka.go -destination=kafka_mock.go -package=events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/iati-rates/internal/logger"
	"github.com/sbilibin2017/iati-rates/internal/models"
)

// RatesImportedTopic carries RatesImported events.
const RatesImportedTopic = "exchange-rates.imported"

// ErrMalformedEvent is returned for a message that does not hold a RatesImported event.
var ErrMalformedEvent = errors.New("malformed rates imported event")

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaReader defines a Kafka consumer group reader abstraction.
type KafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaConfig holds Kafka connection configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// NewKafkaWriter creates a synchronous writer for cfg.Topic.
func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}
}

// NewKafkaReader creates a consumer group reader. Every replica must use its
// own group so that each one sees every event.
func NewKafkaReader(cfg KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          cfg.Topic,
		GroupID:        cfg.GroupID,
		MinBytes:       1,
		MaxBytes:       1e6,
		MaxWait:        time.Second,
		CommitInterval: 0,
		StartOffset:    kafka.LastOffset,
	})
}

// EncodeRatesImported builds the Kafka message for event, keyed by its ID.
func EncodeRatesImported(event models.RatesImported) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(event.ID.String()),
		Value: data,
		Time:  event.ImportedAt,
	}, nil
}

// DecodeRatesImported parses a message produced by EncodeRatesImported.
func DecodeRatesImported(msg kafka.Message) (models.RatesImported, error) {
	var event models.RatesImported
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return models.RatesImported{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	return event, nil
}

// KafkaPublisher publishes import events.
type KafkaPublisher struct {
	writer KafkaWriter
}

// NewKafkaPublisher creates a new publisher.
func NewKafkaPublisher(writer KafkaWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// PublishRatesImported writes event to the topic.
func (p *KafkaPublisher) PublishRatesImported(ctx context.Context, event models.RatesImported) error {
	msg, err := EncodeRatesImported(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal rates imported event", "event_id", event.ID, "error", err)
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish rates imported event", "event_id", event.ID, "error", err)
		return err
	}

	logger.Log.Infow("rates imported event published", "event_id", event.ID, "added", event.Added)
	return nil
}

// Close closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// RatesImportedHandler reacts to an import made by any replica.
type RatesImportedHandler func(ctx context.Context, event models.RatesImported) error

// KafkaListener consumes import events.
type KafkaListener struct {
	reader KafkaReader
}

// NewKafkaListener creates a new listener.
func NewKafkaListener(reader KafkaReader) *KafkaListener {
	return &KafkaListener{reader: reader}
}

// Listen feeds every event to handle until ctx is cancelled. Messages are
// committed after handling, including malformed ones and those the handler
// failed on, so a single bad event cannot stall the group.
func (l *KafkaListener) Listen(ctx context.Context, handle RatesImportedHandler) error {
	for {
		msg, err := l.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Log.Errorw("failed to fetch rates imported event", "error", err)
			return err
		}

		event, err := DecodeRatesImported(msg)
		switch {
		case err != nil:
			logger.Log.Warnw("skipping malformed event", "partition", msg.Partition, "offset", msg.Offset, "error", err)
		default:
			if err := handle(ctx, event); err != nil {
				logger.Log.Errorw("failed to handle rates imported event", "event_id", event.ID, "error", err)
			} else {
				logger.Log.Debugw("rates imported event handled", "event_id", event.ID, "added", event.Added)
			}
		}

		if err := l.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Log.Errorw("failed to commit event", "partition", msg.Partition, "offset", msg.Offset, "error", err)
		}
	}
}

// Close closes the underlying reader.
func (l *KafkaListener) Close() error {
	return l.reader.Close()
}
