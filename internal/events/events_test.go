package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureWriter struct {
	messages []kafka.Message
	err      error
}

func (w *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return w.err
}

func TestPublisher_Publish(t *testing.T) {
	writer := &captureWriter{}
	publisher := NewWithWriter(writer)

	publisher.Publish(context.Background(), "review.created", map[string]any{"review_id": int64(7)})

	require.Len(t, writer.messages, 1)
	assert.Equal(t, []byte("review.created"), writer.messages[0].Key)

	var env struct {
		Event   string         `json:"event"`
		Payload map[string]any `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &env))
	assert.Equal(t, "review.created", env.Event)
	assert.Equal(t, float64(7), env.Payload["review_id"])
}

func TestPublisher_WriteFailureIsSwallowed(t *testing.T) {
	writer := &captureWriter{err: assert.AnError}
	publisher := NewWithWriter(writer)

	assert.NotPanics(t, func() {
		publisher.Publish(context.Background(), "title.deleted", map[string]any{"title_id": int64(1)})
	})
}

func TestPublisher_NilIsNoop(t *testing.T) {
	var publisher *Publisher

	assert.NotPanics(t, func() {
		publisher.Publish(context.Background(), "comment.created", nil)
	})
	assert.NoError(t, publisher.Close())
}
