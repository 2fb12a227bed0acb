package dto

import (
	"time"

	"github.com/Rashi006/aws-capstone-blood-bridge/internal/domain"
)

// AdjustInventoryRequest payload.
type AdjustInventoryRequest struct {
	BloodType string `json:"blood_type"`
	Quantity  int    `json:"quantity"`
	Action    string `json:"action"`
}

// InventoryEntryResponse projection.
type InventoryEntryResponse struct {
	BloodType   string    `json:"blood_type"`
	Quantity    int       `json:"quantity"`
	LastUpdated time.Time `json:"last_updated"`
}

// NewInventoryEntryResponse maps a domain entry.
func NewInventoryEntryResponse(entry domain.InventoryEntry) InventoryEntryResponse {
	return InventoryEntryResponse{
		BloodType:   entry.BloodType,
		Quantity:    entry.Quantity,
		LastUpdated: entry.LastUpdated,
	}
}

// NewInventoryEntryResponses maps a slice of domain entries.
func NewInventoryEntryResponses(entries []domain.InventoryEntry) []InventoryEntryResponse {
	result := make([]InventoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, NewInventoryEntryResponse(entry))
	}
	return result
}
