package dto

import (
	"time"

	"github.com/Rashi006/aws-capstone-blood-bridge/internal/domain"
)

// SubmitRequestRequest payload.
type SubmitRequestRequest struct {
	BloodType string `json:"blood_type"`
	Quantity  int    `json:"quantity"`
	Urgency   string `json:"urgency"`
}

// BloodRequestResponse projection.
type BloodRequestResponse struct {
	ID            string               `json:"id"`
	BloodType     string               `json:"blood_type"`
	Quantity      int                  `json:"quantity"`
	Urgency       domain.Urgency       `json:"urgency"`
	RequestedBy   string               `json:"requested_by"`
	RequesterRole domain.Role          `json:"requester_role"`
	Status        domain.RequestStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

// NewBloodRequestResponse maps a domain request.
func NewBloodRequestResponse(request domain.BloodRequest) BloodRequestResponse {
	return BloodRequestResponse{
		ID:            request.ID,
		BloodType:     request.BloodType,
		Quantity:      request.Quantity,
		Urgency:       request.Urgency,
		RequestedBy:   request.RequestedBy,
		RequesterRole: request.RequesterRole,
		Status:        request.Status,
		CreatedAt:     request.CreatedAt,
	}
}

// NewBloodRequestResponses maps a slice of domain requests.
func NewBloodRequestResponses(requests []domain.BloodRequest) []BloodRequestResponse {
	result := make([]BloodRequestResponse, 0, len(requests))
	for _, request := range requests {
		result = append(result, NewBloodRequestResponse(request))
	}
	return result
}
