package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Rashi006/aws-capstone-blood-bridge/internal/domain"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/events"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/repository"
	apperrors "github.com/Rashi006/aws-capstone-blood-bridge/pkg/util"
)

// RequestService owns the append-only blood request queue.
type RequestService struct {
	requests   repository.RequestRepository
	dispatcher events.Dispatcher
}

// NewRequestService builds the service.
func NewRequestService(requests repository.RequestRepository, dispatcher events.Dispatcher) *RequestService {
	return &RequestService{requests: requests, dispatcher: dispatcher}
}

// Submit records a new blood request on behalf of the session user. High and
// Critical urgencies publish an emergency event; the notification path is
// best-effort and never fails the submission.
func (s *RequestService) Submit(ctx context.Context, actor Actor, bloodType string, quantity int, urgencyStr string) (*domain.BloodRequest, error) {
	bloodType = strings.TrimSpace(bloodType)
	if bloodType == "" || urgencyStr == "" {
		return nil, apperrors.NewValidationError("all fields are required", nil)
	}
	if quantity <= 0 {
		return nil, apperrors.NewValidationError("quantity must be positive", map[string]any{"quantity": quantity})
	}
	urgency, ok := domain.ParseUrgency(urgencyStr)
	if !ok {
		return nil, apperrors.NewValidationError("unknown urgency", map[string]any{"urgency": urgencyStr})
	}

	request := &domain.BloodRequest{
		ID:            uuid.NewString(),
		BloodType:     bloodType,
		Quantity:      quantity,
		Urgency:       urgency,
		RequestedBy:   actor.Name,
		RequesterRole: actor.Role,
		Status:        domain.RequestStatusPending,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}

	if urgency.IsEmergency() && s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventRequestSubmitted,
			Timestamp: time.Now(),
			Payload: events.RequestSubmittedPayload{
				RequestID:   request.ID,
				BloodType:   request.BloodType,
				Quantity:    request.Quantity,
				Urgency:     request.Urgency,
				RequestedBy: request.RequestedBy,
				SubmittedAt: request.CreatedAt,
			},
		})
	}

	return request, nil
}

// ListAll returns every request, newest first.
func (s *RequestService) ListAll(ctx context.Context) ([]domain.BloodRequest, error) {
	requests, err := s.requests.ListAll(ctx)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return requests, nil
}
