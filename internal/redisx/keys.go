package redisx

import "time"

const (
	// Cached GET /orders/{id} body: order:{order_id} -> order JSON
	KeyOrder = "order:%d"
)

// Short TTL on purpose: the cache is only a read accelerator, the store stays
// the source of truth.
var TTLOrder = 5 * time.Minute
