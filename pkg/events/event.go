package events

import "time"

// Event type codes published on the bus.
const (
	TypeVisitorLogin      = "VISITOR_LOGIN"
	TypeVisitorLogout     = "VISITOR_LOGOUT"
	TypeSearchStarted     = "SEARCH_STARTED"
	TypeSearchCompleted   = "SEARCH_COMPLETED"
	TypeSearchFailed      = "SEARCH_FAILED"
	TypeCartUpdated       = "CART_UPDATED"
	TypeCheckoutRequested = "CHECKOUT_REQUESTED"
	TypeNotificationAdded = "NOTIFICATION_ADDED"
	TypeContactSubmitted  = "CONTACT_SUBMITTED"
)

// Event is the contract for everything published on the bus.
type Event interface {
	// EventType returns the unique code for this event (e.g. "VISITOR_LOGIN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a ready-made Event implementation for ad-hoc publishing.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func NewBaseEvent(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
