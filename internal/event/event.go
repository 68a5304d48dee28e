// Package event publishes compare and saved-comparison activity for downstream consumers.
package event

import (
	"context"
	"time"
)

const (
	TypeProductAdded      = "compare.product_added"
	TypeProductRemoved    = "compare.product_removed"
	TypeListDeleted       = "compare.list_deleted"
	TypeComparisonSaved   = "comparison.saved"
	TypeComparisonDeleted = "comparison.deleted"
)

type Event struct {
	Type        string                 `json:"type"`
	Shop        string                 `json:"shop"`
	VisitorType string                 `json:"visitorType,omitempty"`
	OccurredAt  time.Time              `json:"occurredAt"`
	Payload     map[string]interface{} `json:"payload,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) error
	Close() error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
func (NoopPublisher) Close() error                         { return nil }
