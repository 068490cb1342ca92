package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/review-catalog/internal/logger"
)

// Writer is the subset of kafka.Writer the publisher uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Publisher emits domain events to Kafka on a best-effort basis. Publishing
// never fails the calling request; errors are logged and dropped. A nil
// Publisher is a no-op, so event delivery can be disabled by configuration.
type Publisher struct {
	writer Writer
}

// New creates a Publisher writing to the given brokers and topic.
func New(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			WriteTimeout: 5 * time.Second,
		},
	}
}

// NewWithWriter creates a Publisher with a custom writer.
func NewWithWriter(writer Writer) *Publisher {
	return &Publisher{writer: writer}
}

type envelope struct {
	Event   string    `json:"event"`
	Time    time.Time `json:"time"`
	Payload any       `json:"payload"`
}

// Publish emits one event keyed by its name.
func (p *Publisher) Publish(ctx context.Context, event string, payload any) {
	if p == nil || p.writer == nil {
		return
	}

	value, err := json.Marshal(envelope{
		Event:   event,
		Time:    time.Now().UTC(),
		Payload: payload,
	})
	if err != nil {
		logger.Log.Errorw("failed to marshal event", "event", event, "err", err)
		return
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event),
		Value: value,
	}); err != nil {
		logger.Log.Errorw("failed to publish event", "event", event, "err", err)
	}
}

// Close releases the underlying writer when it is closeable.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	if closer, ok := p.writer.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
