package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rashi006/aws-capstone-blood-bridge/internal/domain"
)

// InventoryRepository encapsulates blood stock persistence. Add and Remove
// are atomic with respect to the single entry they touch; Remove returns
// ErrInsufficientStock and leaves the entry unchanged when the decrement
// would drop the quantity below zero.
type InventoryRepository interface {
	List(ctx context.Context) ([]domain.InventoryEntry, error)
	Get(ctx context.Context, bloodType string) (*domain.InventoryEntry, error)
	Add(ctx context.Context, bloodType string, quantity int) (*domain.InventoryEntry, error)
	Remove(ctx context.Context, bloodType string, quantity int) (*domain.InventoryEntry, error)
}

type inventoryRepository struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository returns a Postgres-backed implementation.
func NewInventoryRepository(pool *pgxpool.Pool) InventoryRepository {
	return &inventoryRepository{pool: pool}
}

func (r *inventoryRepository) List(ctx context.Context) ([]domain.InventoryEntry, error) {
	const query = `
        SELECT blood_type, quantity, last_updated
        FROM blood_inventory ORDER BY blood_type`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.InventoryEntry
	for rows.Next() {
		var entry domain.InventoryEntry
		if err := rows.Scan(&entry.BloodType, &entry.Quantity, &entry.LastUpdated); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

func (r *inventoryRepository) Get(ctx context.Context, bloodType string) (*domain.InventoryEntry, error) {
	const query = `
        SELECT blood_type, quantity, last_updated
        FROM blood_inventory WHERE blood_type=$1`

	var entry domain.InventoryEntry
	if err := r.pool.QueryRow(ctx, query, bloodType).Scan(
		&entry.BloodType,
		&entry.Quantity,
		&entry.LastUpdated,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// Add upserts in a single statement so concurrent adjustments never lose an
// increment.
func (r *inventoryRepository) Add(ctx context.Context, bloodType string, quantity int) (*domain.InventoryEntry, error) {
	const query = `
        INSERT INTO blood_inventory (blood_type, quantity, last_updated)
        VALUES ($1, $2, NOW())
        ON CONFLICT (blood_type) DO UPDATE
            SET quantity = blood_inventory.quantity + EXCLUDED.quantity,
                last_updated = NOW()
        RETURNING blood_type, quantity, last_updated`

	var entry domain.InventoryEntry
	if err := r.pool.QueryRow(ctx, query, bloodType, quantity).Scan(
		&entry.BloodType,
		&entry.Quantity,
		&entry.LastUpdated,
	); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Remove decrements conditionally; the WHERE guard enforces the non-negative
// invariant inside the database.
func (r *inventoryRepository) Remove(ctx context.Context, bloodType string, quantity int) (*domain.InventoryEntry, error) {
	const query = `
        UPDATE blood_inventory
        SET quantity = quantity - $2, last_updated = NOW()
        WHERE blood_type=$1 AND quantity >= $2
        RETURNING blood_type, quantity, last_updated`

	var entry domain.InventoryEntry
	if err := r.pool.QueryRow(ctx, query, bloodType, quantity).Scan(
		&entry.BloodType,
		&entry.Quantity,
		&entry.LastUpdated,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInsufficientStock
		}
		return nil, err
	}
	return &entry, nil
}
