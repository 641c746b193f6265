package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	failures int
	calls    int
	written  []kafka.Message
}

func (w *fakeWriter) WriteMessages(msgs ...kafka.Message) (int, error) {
	w.calls++
	if w.calls <= w.failures {
		return 0, errors.New("leader not available")
	}
	w.written = append(w.written, msgs...)
	return len(msgs), nil
}

func TestPublish_WritesEnvelope(t *testing.T) {
	w := &fakeWriter{}
	p := CreatePublisher(w)

	err := p.Publish(context.Background(), dto.EventProductDeleted, "p1", dto.ProductDeletedEvent{ID: "p1"})
	require.NoError(t, err)
	require.Len(t, w.written, 1)

	assert.Equal(t, []byte("p1"), w.written[0].Key)

	var msg struct {
		EventType string                  `json:"event_type"`
		Data      dto.ProductDeletedEvent `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.written[0].Value, &msg))
	assert.Equal(t, dto.EventProductDeleted, msg.EventType)
	assert.Equal(t, "p1", msg.Data.ID)
}

func TestPublish_RetriesThenSucceeds(t *testing.T) {
	w := &fakeWriter{failures: 2}
	p := CreatePublisher(w)
	p.backoff = 0

	require.NoError(t, p.Publish(context.Background(), dto.EventOrderCreated, "", nil))
	assert.Equal(t, 3, w.calls)
	assert.Nil(t, w.written[0].Key)
}

func TestPublish_GivesUpAfterMaxRetries(t *testing.T) {
	w := &fakeWriter{failures: 10}
	p := CreatePublisher(w)
	p.backoff = 0

	err := p.Publish(context.Background(), dto.EventOrderCreated, "", nil)
	require.ErrorContains(t, err, "after 3 attempts")
	assert.Equal(t, maxRetries, w.calls)
}
