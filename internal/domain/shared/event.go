package shared

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is implemented by the records aggregates emit as their state
// changes. Events are collected in memory for logging and assertions; there
// is no outbox or broker behind them.
type DomainEvent interface {
	EventType() string
	OccurredAt() time.Time
	AggregateID() uuid.UUID
}

// BaseDomainEvent is embedded by concrete events to satisfy DomainEvent.
type BaseDomainEvent struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	AggID     uuid.UUID `json:"aggregate_id"`
	AggType   string    `json:"aggregate_type"`
}

// NewBaseDomainEvent stamps an event with its type, the aggregate that
// produced it, and the current time.
func NewBaseDomainEvent(eventType, aggType string, aggID uuid.UUID) BaseDomainEvent {
	return BaseDomainEvent{
		Type:      eventType,
		Timestamp: time.Now(),
		AggID:     aggID,
		AggType:   aggType,
	}
}

// EventType names the event, e.g. "payable.payment_recorded".
func (e *BaseDomainEvent) EventType() string {
	return e.Type
}

// OccurredAt returns when the event was recorded.
func (e *BaseDomainEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID identifies the aggregate the event belongs to.
func (e *BaseDomainEvent) AggregateID() uuid.UUID {
	return e.AggID
}
