package domain

import "time"

// Urgency is the ordinal priority of a blood request.
type Urgency string

const (
	UrgencyLow      Urgency = "Low"
	UrgencyMedium   Urgency = "Medium"
	UrgencyHigh     Urgency = "High"
	UrgencyCritical Urgency = "Critical"
)

// ParseUrgency validates an urgency submitted from a form.
func ParseUrgency(value string) (Urgency, bool) {
	switch Urgency(value) {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return Urgency(value), true
	}
	return "", false
}

// IsEmergency reports whether the urgency triggers an outbound alert.
func (u Urgency) IsEmergency() bool {
	return u == UrgencyHigh || u == UrgencyCritical
}

// RequestStatus enumerates lifecycle states for blood requests.
// Only Pending is assigned today; fulfillment/cancellation transitions are
// an extension point.
type RequestStatus string

const (
	RequestStatusPending RequestStatus = "Pending"
)

// BloodRequest is the aggregate for submitted blood requests. Requests are
// append-only and never deleted; the referenced blood type may have no
// corresponding inventory entry.
type BloodRequest struct {
	ID            string
	BloodType     string
	Quantity      int
	Urgency       Urgency
	RequestedBy   string
	RequesterRole Role
	Status        RequestStatus
	CreatedAt     time.Time
}
