package kafka

import (
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// --- Event tests ---

func TestNewEvent_Fields(t *testing.T) {
	type ProductData struct {
		ID    string  `json:"id"`
		Price float64 `json:"price"`
	}

	data := ProductData{ID: "prod-123", Price: 25.5}
	event, err := NewEvent("catalog.product.created", "prod-123", "product", "catalog-service", data)
	require.NoError(t, err)

	assert.NotEmpty(t, event.EventID, "EventID should be a non-empty UUID")
	assert.Equal(t, "catalog.product.created", event.EventType)
	assert.Equal(t, "prod-123", event.AggregateID)
	assert.Equal(t, "product", event.AggregateType)
	assert.Equal(t, "catalog-service", event.Source)
	assert.Equal(t, 1, event.Version)
	assert.WithinDuration(t, time.Now().UTC(), event.Timestamp, 2*time.Second)
	assert.NotNil(t, event.Metadata)
	assert.NotNil(t, event.Data)

	var roundTripped ProductData
	require.NoError(t, event.UnmarshalData(&roundTripped))
	assert.Equal(t, data, roundTripped)
}

func TestNewEvent_InvalidData(t *testing.T) {
	// Channels are not serializable to JSON.
	_, err := NewEvent("test.event", "agg-1", "test", "test-service", make(chan int))
	require.Error(t, err)
}

func TestEvent_WithCorrelationID(t *testing.T) {
	event, err := NewEvent("catalog.product.deleted", "prod-1", "product", "catalog-service", map[string]string{"id": "prod-1"})
	require.NoError(t, err)

	event.WithCorrelationID("corr-abc")
	assert.Equal(t, "corr-abc", event.CorrelationID)
}

func TestEvent_Marshal(t *testing.T) {
	event, err := NewEvent("catalog.product.updated", "prod-456", "product", "catalog-service", map[string]string{"name": "Chair"})
	require.NoError(t, err)
	event.CorrelationID = "corr-abc"

	data, err := event.Marshal()
	require.NoError(t, err)

	var restored Event
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, event.EventID, restored.EventID)
	assert.Equal(t, event.EventType, restored.EventType)
	assert.Equal(t, event.CorrelationID, restored.CorrelationID)
	assert.JSONEq(t, string(event.Data), string(restored.Data))
}

// --- Producer tests ---

func TestDefaultProducerConfig(t *testing.T) {
	cfg := DefaultProducerConfig([]string{"kafka-1:9092"})
	assert.Equal(t, []string{"kafka-1:9092"}, cfg.Brokers)
	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, 10*time.Millisecond, cfg.BatchTimeout)
	assert.False(t, cfg.Async)
}

func TestNewProducer_Close(t *testing.T) {
	cfg := DefaultProducerConfig([]string{"localhost:9092"})
	p := NewProducer(cfg, testLogger())
	require.NotNil(t, p)
	assert.NoError(t, p.Close())
}
