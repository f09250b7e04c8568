package events

import (
	"encoding/json"
	"time"
)

const (
	TopicOrderEvents = "order.events"

	EventOrderCreated    = "OrderCreated"
	EventOrderRolledBack = "OrderRolledBack"
	EventOrderDeleted    = "OrderDeleted"
)

type Envelope struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	EventVersion int             `json:"event_version"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Producer     string          `json:"producer"`
	Payload      json.RawMessage `json:"payload"`
}

type OrderCreatedPayload struct {
	OrderID   int64  `json:"order_id"`
	UserID    int64  `json:"user_id"`
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
}

type OrderRolledBackPayload struct {
	OrderID   int64  `json:"order_id"`
	ProductID int64  `json:"product_id"`
	Reason    string `json:"reason"`
}

type OrderDeletedPayload struct {
	OrderID int64 `json:"order_id"`
}
