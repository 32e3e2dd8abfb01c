package catalog

import (
	"encoding/json"
	"time"
)

const (
	TopicOrderCreated = "order.created"
	EventOrderCreated = "OrderCreated"
)

type Envelope struct {
	EventID      string          `json:"event_id"` // uuid
	EventType    string          `json:"event_type"`
	EventVersion int             `json:"event_version"` // 1
	OccurredAt   time.Time       `json:"occurred_at"`   // RFC3339
	Producer     string          `json:"producer"`      // nama service
	TraceID      string          `json:"trace_id,omitempty"`
	Payload      json.RawMessage `json:"payload"`
}

type OrderCreatedPayload struct {
	OrderID      string `json:"order_id"`
	CustomerName string `json:"customer_name"`
	ItemCount    int    `json:"item_count"`
	StorageKey   string `json:"storage_key"`
}

// Partition key = order_id, supaya event satu order terjaga urutannya.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
