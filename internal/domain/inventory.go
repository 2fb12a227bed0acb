package domain

import "time"

// AdjustAction enumerates supported inventory mutations.
type AdjustAction string

const (
	AdjustActionAdd    AdjustAction = "add"
	AdjustActionRemove AdjustAction = "remove"
)

// ParseAdjustAction validates an action submitted from a form.
func ParseAdjustAction(value string) (AdjustAction, bool) {
	switch AdjustAction(value) {
	case AdjustActionAdd, AdjustActionRemove:
		return AdjustAction(value), true
	}
	return "", false
}

// InventoryEntry tracks the stocked unit count for a single blood type.
// Quantity never drops below zero; a remove that would do so is rejected
// with no state change.
type InventoryEntry struct {
	BloodType   string
	Quantity    int
	LastUpdated time.Time
}
