package service

import (
	"context"
	"time"
)

// CatalogEventType names a catalog change that downstream consumers may care about.
type CatalogEventType string

const (
	EventCafeSubmitted CatalogEventType = "cafe.submitted"
	EventCafeVerified  CatalogEventType = "cafe.verified"
	EventCafeDeleted   CatalogEventType = "cafe.deleted"
	EventReviewCreated CatalogEventType = "review.created"
)

// CatalogEvent represents a change in the catalog, published after the change is durable.
type CatalogEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	EventID    string           `json:"event_id"`
	Type       CatalogEventType `json:"type"`
	CafeID     string           `json:"cafe_id"`
	CafeSlug   string           `json:"cafe_slug,omitempty"`
	CafeName   string           `json:"cafe_name,omitempty"`
	ReviewID   string           `json:"review_id,omitempty"`
	Rating     int              `json:"rating,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCatalogEvent publishes a catalog event for async consumers
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
