package events

import (
	"time"

	"github.com/Rashi006/aws-capstone-blood-bridge/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered    EventType = "user_registered"
	EventRequestSubmitted  EventType = "request_submitted"
	EventInventoryAdjusted EventType = "inventory_adjusted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string      `json:"user_id"`
	Name   string      `json:"name"`
	Role   domain.Role `json:"role"`
}

// RequestSubmittedPayload payload.
type RequestSubmittedPayload struct {
	RequestID   string         `json:"request_id"`
	BloodType   string         `json:"blood_type"`
	Quantity    int            `json:"quantity"`
	Urgency     domain.Urgency `json:"urgency"`
	RequestedBy string         `json:"requested_by"`
	SubmittedAt time.Time      `json:"submitted_at"`
}

// InventoryAdjustedPayload payload.
type InventoryAdjustedPayload struct {
	BloodType   string              `json:"blood_type"`
	Action      domain.AdjustAction `json:"action"`
	Quantity    int                 `json:"quantity"`
	NewQuantity int                 `json:"new_quantity"`
	ActorName   string              `json:"actor_name"`
}
