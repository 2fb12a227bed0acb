package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Rashi006/aws-capstone-blood-bridge/internal/domain"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/events"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/repository"
	apperrors "github.com/Rashi006/aws-capstone-blood-bridge/pkg/util"
)

// Actor identifies the session user performing a guarded operation.
type Actor struct {
	Name string
	Role domain.Role
}

// InventoryService applies stock adjustments under the non-negative
// invariant and lists current stock.
type InventoryService struct {
	inventory  repository.InventoryRepository
	dispatcher events.Dispatcher
}

// NewInventoryService builds the service.
func NewInventoryService(inventory repository.InventoryRepository, dispatcher events.Dispatcher) *InventoryService {
	return &InventoryService{inventory: inventory, dispatcher: dispatcher}
}

// List returns all inventory entries.
func (s *InventoryService) List(ctx context.Context) ([]domain.InventoryEntry, error) {
	entries, err := s.inventory.List(ctx)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return entries, nil
}

// Adjust applies an add or remove action for one blood type. Only the
// blood_bank role may mutate stock; a remove exceeding the current quantity
// is rejected with no state change.
func (s *InventoryService) Adjust(ctx context.Context, actor Actor, bloodType string, quantity int, actionStr string) (*domain.InventoryEntry, error) {
	if actor.Role != domain.RoleBloodBank {
		return nil, apperrors.NewForbidden("only blood banks may adjust inventory")
	}

	bloodType = strings.TrimSpace(bloodType)
	if bloodType == "" {
		return nil, apperrors.NewValidationError("blood type required", nil)
	}
	if quantity <= 0 {
		return nil, apperrors.NewValidationError("quantity must be positive", map[string]any{"quantity": quantity})
	}
	action, ok := domain.ParseAdjustAction(actionStr)
	if !ok {
		return nil, apperrors.NewValidationError("unknown action", map[string]any{"action": actionStr})
	}

	var (
		entry *domain.InventoryEntry
		err   error
	)
	switch action {
	case domain.AdjustActionAdd:
		entry, err = s.inventory.Add(ctx, bloodType, quantity)
	case domain.AdjustActionRemove:
		entry, err = s.inventory.Remove(ctx, bloodType, quantity)
	}
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, apperrors.NewInsufficientStock(bloodType)
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventInventoryAdjusted,
			Timestamp: time.Now(),
			Payload: events.InventoryAdjustedPayload{
				BloodType:   entry.BloodType,
				Action:      action,
				Quantity:    quantity,
				NewQuantity: entry.Quantity,
				ActorName:   actor.Name,
			},
		})
	}

	return entry, nil
}
