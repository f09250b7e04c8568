package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -destination=eventsmock/mock_publisher.go -package=eventsmock demo/bookorders/internal/events Publisher

// Publisher emits order lifecycle notifications. Publishing is best-effort:
// a lost event never fails the request that produced it.
type Publisher interface {
	Publish(eventType string, orderID int64, payload any)
}

type KafkaPublisher struct {
	log      *slog.Logger
	producer string
	w        *kafka.Writer
	inbox    chan kafka.Message
	closeCh  chan struct{}
}

func NewKafkaPublisher(log *slog.Logger, brokers []string, producer string, buf int) *KafkaPublisher {
	return &KafkaPublisher{
		log:      log,
		producer: producer,
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        TopicOrderEvents,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
		inbox:   make(chan kafka.Message, buf),
		closeCh: make(chan struct{}),
	}
}

func (p *KafkaPublisher) Start(ctx context.Context) {
	go func() {
		defer close(p.closeCh)
		for {
			select {
			case <-ctx.Done():
				p.drain()
				return
			case m, ok := <-p.inbox:
				if !ok {
					_ = p.w.Close()
					return
				}
				if err := p.w.WriteMessages(context.Background(), m); err != nil {
					p.log.Warn("event publish failed", "err", err)
				}
			}
		}
	}()
}

func (p *KafkaPublisher) drain() {
	for {
		select {
		case m, ok := <-p.inbox:
			if !ok {
				_ = p.w.Close()
				return
			}
			_ = p.w.WriteMessages(context.Background(), m)
		default:
			_ = p.w.Close()
			return
		}
	}
}

func (p *KafkaPublisher) Publish(eventType string, orderID int64, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		p.log.Warn("event payload marshal failed", "event_type", eventType, "err", err)
		return
	}
	ev := Envelope{
		EventID:      uuid.NewString(),
		EventType:    eventType,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     p.producer,
		Payload:      raw,
	}
	value, err := json.Marshal(ev)
	if err != nil {
		p.log.Warn("event marshal failed", "event_type", eventType, "err", err)
		return
	}
	m := kafka.Message{
		// partition key = order id, so one order's events stay ordered
		Key:   []byte(strconv.FormatInt(orderID, 10)),
		Value: value,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "x-event-type", Value: []byte(eventType)},
			{Key: "x-event-version", Value: []byte("1")},
		},
	}
	select {
	case p.inbox <- m:
	default:
		p.log.Warn("event inbox full, dropping", "event_type", eventType, "order_id", orderID)
	}
}

// Close stops accepting events; the loop flushes what is buffered and exits.
func (p *KafkaPublisher) Close() { close(p.inbox) }

// WaitClosed blocks until the publish loop has exited.
func (p *KafkaPublisher) WaitClosed() { <-p.closeCh }
