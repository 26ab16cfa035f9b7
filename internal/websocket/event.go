package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents what happened to the entity
type EventType string

const (
	EventTypeCreated     EventType = "created"
	EventTypeUpdated     EventType = "updated"
	EventTypeDeleted     EventType = "deleted"
	EventTypeReloaded    EventType = "reloaded"
	EventTypeBulkDeleted EventType = "bulk_deleted"
	EventTypeImported    EventType = "imported"
	EventTypeShown       EventType = "shown"
	EventTypeDismissed   EventType = "dismissed"
	EventTypeArchived    EventType = "archived"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeTransaction EntityType = "transaction"
	EntityTypeLedger      EntityType = "ledger"
	EntityTypeNotice      EntityType = "notice"
	EntityTypeReport      EntityType = "report"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "transaction.created"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "transaction"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// TransactionCreated creates a transaction.created event
func TransactionCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeTransaction, payload)
}

// TransactionUpdated creates a transaction.updated event
func TransactionUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeTransaction, payload)
}

// TransactionDeleted creates a transaction.deleted event
func TransactionDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeTransaction, payload)
}

// LedgerReloaded creates a ledger.reloaded event
func LedgerReloaded(payload interface{}) Event {
	return NewEvent(EventTypeReloaded, EntityTypeLedger, payload)
}

// LedgerBulkDeleted creates a ledger.bulk_deleted event
func LedgerBulkDeleted(payload interface{}) Event {
	return NewEvent(EventTypeBulkDeleted, EntityTypeLedger, payload)
}

// LedgerImported creates a ledger.imported event
func LedgerImported(payload interface{}) Event {
	return NewEvent(EventTypeImported, EntityTypeLedger, payload)
}

// NoticeShown creates a notice.shown event
func NoticeShown(payload interface{}) Event {
	return NewEvent(EventTypeShown, EntityTypeNotice, payload)
}

// NoticeDismissed creates a notice.dismissed event
func NoticeDismissed(payload interface{}) Event {
	return NewEvent(EventTypeDismissed, EntityTypeNotice, payload)
}

// ReportArchived creates a report.archived event
func ReportArchived(payload interface{}) Event {
	return NewEvent(EventTypeArchived, EntityTypeReport, payload)
}
