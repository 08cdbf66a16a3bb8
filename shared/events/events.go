package events

import "time"

// Event types
const (
	AccountCreated = "account.created"
	AccountUpdated = "account.updated"
	AccountDeleted = "account.deleted"
)

// Stream names
const (
	AccountEventsStream = "account.events"
)

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// Account events
type AccountCreatedEvent struct {
	AccountID int64  `json:"accountId"`
	Name      string `json:"name"`
}

type AccountUpdatedEvent struct {
	AccountID int64  `json:"accountId"`
	Name      string `json:"name"`
}

type AccountDeletedEvent struct {
	AccountID int64 `json:"accountId"`
}
