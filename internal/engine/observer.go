package engine

import "time"

// EventType represents the store operations observers are told about
type EventType string

const (
	EventTableCreated    EventType = "table_created"
	EventTableRecreated  EventType = "table_recreated"
	EventRecordInserted  EventType = "record_inserted"
	EventTableDisplayed  EventType = "table_displayed"
	EventOperationFailed EventType = "operation_failed"
)

// Event represents a lifecycle event of a store operation
type Event struct {
	Type      EventType   // Type of event
	OpID      string      // Operation ID for tracing
	Table     string      // Table the operation targeted
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Operation-specific data (e.g. row count, rejected fields)
	Err       error       // Set for EventOperationFailed
}

// Observer interface for event subscribers
type Observer interface {
	OnEvent(event Event)
}
