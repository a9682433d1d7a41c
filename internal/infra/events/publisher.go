package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/planbeau/booking-service/internal/domain"
)

// ErrPublish возвращается при ошибке публикации события
var ErrPublish = errors.New("events: failed to publish")

// MessageWriter часть *kafka.Writer, которая нужна издателю
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Metrics счетчик опубликованных событий
type Metrics interface {
	RecordEvent(eventType string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewKafkaWriter создает writer для топика событий
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

// KafkaPublisher публикует доменные события в Kafka.
// Ключ сообщения - ID вендора, чтобы события вендора шли в одну партицию.
type KafkaPublisher struct {
	Writer  MessageWriter
	metrics Metrics
	logger  Logger
	now     func() time.Time
}

// NewKafkaPublisher создает издателя событий
func NewKafkaPublisher(writer MessageWriter, metrics Metrics, logger Logger) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer, metrics: metrics, logger: logger, now: time.Now}
}

// Publish сериализует событие в JSON и пишет его в топик
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = p.now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.metrics.RecordEvent(string(event.Type), err)
		return fmt.Errorf("%w: marshal %s: %v", ErrPublish, event.Type, err)
	}

	err = p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.VendorID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	})
	p.metrics.RecordEvent(string(event.Type), err)
	if err != nil {
		p.logger.Error("Publish: failed to publish %s for vendor=%d: %v", event.Type, event.VendorID, err)
		return fmt.Errorf("%w: %s: %v", ErrPublish, event.Type, err)
	}

	p.logger.Info("Publish: published %s for vendor=%d", event.Type, event.VendorID)
	return nil
}

// LogPublisher пишет события только в лог, когда Kafka выключена
type LogPublisher struct {
	logger Logger
}

// NewLogPublisher создает издателя без брокера
func NewLogPublisher(logger Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish логирует событие
func (p *LogPublisher) Publish(_ context.Context, event domain.Event) error {
	p.logger.Info("Publish: kafka disabled, event %s vendor=%d booking=%d payment=%s",
		event.Type, event.VendorID, event.BookingID, event.PaymentIntentID)
	return nil
}
