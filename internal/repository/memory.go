package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Rashi006/aws-capstone-blood-bridge/internal/domain"
)

// In-memory stores back the service when no POSTGRES_DSN is configured and
// keep the unit tests free of external dependencies. One lock per collection
// is enough for the access patterns here.

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User // keyed by id
}

// NewMemoryUserRepository returns a map-backed implementation.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]*domain.User)}
}

func (r *memoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if user, ok := r.users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

type memoryInventoryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.InventoryEntry // keyed by blood type
}

// NewMemoryInventoryRepository returns a map-backed implementation.
func NewMemoryInventoryRepository() InventoryRepository {
	return &memoryInventoryRepository{entries: make(map[string]*domain.InventoryEntry)}
}

func (r *memoryInventoryRepository) List(_ context.Context) ([]domain.InventoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.InventoryEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].BloodType < result[j].BloodType
	})
	return result, nil
}

func (r *memoryInventoryRepository) Get(_ context.Context, bloodType string) (*domain.InventoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if entry, ok := r.entries[bloodType]; ok {
		clone := *entry
		return &clone, nil
	}
	return nil, ErrNotFound
}

func (r *memoryInventoryRepository) Add(_ context.Context, bloodType string, quantity int) (*domain.InventoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[bloodType]
	if !ok {
		entry = &domain.InventoryEntry{BloodType: bloodType}
		r.entries[bloodType] = entry
	}
	entry.Quantity += quantity
	entry.LastUpdated = time.Now()

	clone := *entry
	return &clone, nil
}

func (r *memoryInventoryRepository) Remove(_ context.Context, bloodType string, quantity int) (*domain.InventoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[bloodType]
	if !ok || entry.Quantity < quantity {
		return nil, ErrInsufficientStock
	}
	entry.Quantity -= quantity
	entry.LastUpdated = time.Now()

	clone := *entry
	return &clone, nil
}

type memoryRequestRepository struct {
	mu       sync.RWMutex
	requests []domain.BloodRequest
}

// NewMemoryRequestRepository returns a slice-backed implementation.
func NewMemoryRequestRepository() RequestRepository {
	return &memoryRequestRepository{}
}

func (r *memoryRequestRepository) Create(_ context.Context, request *domain.BloodRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}
	r.requests = append(r.requests, *request)
	return nil
}

func (r *memoryRequestRepository) ListAll(_ context.Context) ([]domain.BloodRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.BloodRequest, len(r.requests))
	// newest first
	for i, request := range r.requests {
		result[len(r.requests)-1-i] = request
	}
	return result, nil
}
