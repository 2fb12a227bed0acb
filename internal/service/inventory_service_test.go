package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rashi006/aws-capstone-blood-bridge/internal/domain"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/events"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/repository"
)

var (
	bloodBankActor = Actor{Name: "Central Blood Bank", Role: domain.RoleBloodBank}
	donorActor     = Actor{Name: "Jane Donor", Role: domain.RoleDonor}
)

func newInventoryService() (*InventoryService, repository.InventoryRepository) {
	repo := repository.NewMemoryInventoryRepository()
	return NewInventoryService(repo, events.NewInMemoryDispatcher()), repo
}

func TestAdjustScenario(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInventoryService()

	entry, err := svc.Adjust(ctx, bloodBankActor, "O-", 5, "add")
	require.NoError(t, err)
	assert.Equal(t, 5, entry.Quantity)

	entry, err = svc.Adjust(ctx, bloodBankActor, "O-", 3, "remove")
	require.NoError(t, err)
	assert.Equal(t, 2, entry.Quantity)

	_, err = svc.Adjust(ctx, bloodBankActor, "O-", 10, "remove")
	assertDomainErrorCode(t, err, "INSUFFICIENT_STOCK")

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Quantity)
}

func TestAdjustUnauthorizedRole(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInventoryService()

	_, err := svc.Adjust(ctx, donorActor, "A+", 1, "add")
	assertDomainErrorCode(t, err, "FORBIDDEN")

	hospitalActor := Actor{Name: "City Hospital", Role: domain.RoleHospital}
	_, err = svc.Adjust(ctx, hospitalActor, "A+", 1, "add")
	assertDomainErrorCode(t, err, "FORBIDDEN")

	// inventory unchanged
	entries, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAdjustValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInventoryService()

	_, err := svc.Adjust(ctx, bloodBankActor, "", 1, "add")
	assertDomainErrorCode(t, err, "VALIDATION_FAILED")

	_, err = svc.Adjust(ctx, bloodBankActor, "A+", 0, "add")
	assertDomainErrorCode(t, err, "VALIDATION_FAILED")

	_, err = svc.Adjust(ctx, bloodBankActor, "A+", -5, "remove")
	assertDomainErrorCode(t, err, "VALIDATION_FAILED")

	_, err = svc.Adjust(ctx, bloodBankActor, "A+", 1, "donate")
	assertDomainErrorCode(t, err, "VALIDATION_FAILED")
}

func TestAdjustQuantityNeverNegative(t *testing.T) {
	ctx := context.Background()
	svc, repo := newInventoryService()

	steps := []struct {
		quantity int
		action   string
	}{
		{3, "add"}, {5, "remove"}, {2, "add"}, {4, "remove"}, {1, "remove"},
		{7, "add"}, {7, "remove"}, {1, "remove"},
	}
	for _, step := range steps {
		_, _ = svc.Adjust(ctx, bloodBankActor, "B-", step.quantity, step.action)

		entry, err := repo.Get(ctx, "B-")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, entry.Quantity, 0)
	}
}

func TestAdjustPublishesEvent(t *testing.T) {
	ctx := context.Background()
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewInventoryService(repository.NewMemoryInventoryRepository(), dispatcher)

	var received []events.Event
	dispatcher.Subscribe(events.EventInventoryAdjusted, func(_ context.Context, event events.Event) error {
		received = append(received, event)
		return nil
	})

	_, err := svc.Adjust(ctx, bloodBankActor, "AB-", 2, "add")
	require.NoError(t, err)

	require.Len(t, received, 1)
	payload, ok := received[0].Payload.(events.InventoryAdjustedPayload)
	require.True(t, ok)
	assert.Equal(t, "AB-", payload.BloodType)
	assert.Equal(t, domain.AdjustActionAdd, payload.Action)
	assert.Equal(t, 2, payload.NewQuantity)
}
