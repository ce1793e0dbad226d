package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/stylediscover/server/pkg/logger"
)

// Publisher wraps a Kafka producer. A nil Publisher is valid and disables
// event publishing; all publishes are best-effort and never fail a request.
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{
		producer: producer,
		brokers:  brokers,
	}, nil
}

// PublishQuizCompleted publishes a quiz completed event with tracing
func (p *Publisher) PublishQuizCompleted(ctx context.Context, event QuizCompletedEvent) error {
	if p == nil {
		return nil
	}

	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish.quiz_completed",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicQuizCompleted),
			attribute.String("event.type", EventTypeQuizCompleted),
			attribute.Int64("user.id", int64(event.UserID)),
			attribute.String("quiz.style_type", event.StyleType),
		),
	)
	defer span.End()

	event.EventID = uuid.NewString()
	event.EventType = EventTypeQuizCompleted
	event.Timestamp = time.Now()

	key := fmt.Sprintf("user_%d", event.UserID)
	return p.send(ctx, span, TopicQuizCompleted, key, event, event.EventID, event.EventType)
}

// PublishOutfitFavorited publishes an outfit favorited event with tracing
func (p *Publisher) PublishOutfitFavorited(ctx context.Context, event OutfitFavoritedEvent) error {
	if p == nil {
		return nil
	}

	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish.outfit_favorited",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicOutfitFavorited),
			attribute.String("event.type", EventTypeOutfitFavorited),
			attribute.Int64("user.id", int64(event.UserID)),
			attribute.Int64("outfit.id", int64(event.OutfitID)),
			attribute.Bool("outfit.favorited", event.Favorited),
		),
	)
	defer span.End()

	event.EventID = uuid.NewString()
	event.EventType = EventTypeOutfitFavorited
	event.Timestamp = time.Now()

	key := fmt.Sprintf("outfit_%d", event.OutfitID)
	return p.send(ctx, span, TopicOutfitFavorited, key, event, event.EventID, event.EventType)
}

// send marshals the event, injects trace context into the message headers,
// and produces it.
func (p *Publisher) send(ctx context.Context, span trace.Span, topic, key string, event interface{}, eventID, eventType string) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(eventID)},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(k),
			Value: []byte(v),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Logger.Error().
			Err(err).
			Str("topic", topic).
			Str("event_id", eventID).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	logger.Logger.Info().
		Str("event_id", eventID).
		Str("event_type", eventType).
		Str("topic", topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Event published")

	return nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
