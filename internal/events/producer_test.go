package events

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublish_NeverBlocks(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := NewKafkaPublisher(log, []string{"localhost:0"}, "test", 1)

	// loop not started: first message buffers, the rest are dropped
	p.Publish(EventOrderCreated, 1, OrderCreatedPayload{OrderID: 1})
	p.Publish(EventOrderCreated, 2, OrderCreatedPayload{OrderID: 2})
	p.Publish(EventOrderCreated, 3, OrderCreatedPayload{OrderID: 3})

	require.Len(t, p.inbox, 1)
}
