package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rashi006/aws-capstone-blood-bridge/internal/domain"
)

// RequestRepository encapsulates blood request persistence. The collection is
// append-only; no update or delete operations exist.
type RequestRepository interface {
	Create(ctx context.Context, request *domain.BloodRequest) error
	ListAll(ctx context.Context) ([]domain.BloodRequest, error)
}

type requestRepository struct {
	pool *pgxpool.Pool
}

// NewRequestRepository returns a Postgres-backed implementation.
func NewRequestRepository(pool *pgxpool.Pool) RequestRepository {
	return &requestRepository{pool: pool}
}

func (r *requestRepository) Create(ctx context.Context, request *domain.BloodRequest) error {
	const query = `
        INSERT INTO blood_requests (id, blood_type, quantity, urgency, requested_by, requester_role, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		request.ID,
		request.BloodType,
		request.Quantity,
		request.Urgency,
		request.RequestedBy,
		request.RequesterRole,
		request.Status,
	).Scan(&request.CreatedAt)
}

func (r *requestRepository) ListAll(ctx context.Context) ([]domain.BloodRequest, error) {
	const query = `
        SELECT id, blood_type, quantity, urgency, requested_by, requester_role, status, created_at
        FROM blood_requests ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

func scanRequests(rows pgx.Rows) ([]domain.BloodRequest, error) {
	var result []domain.BloodRequest
	for rows.Next() {
		var request domain.BloodRequest
		if err := rows.Scan(
			&request.ID,
			&request.BloodType,
			&request.Quantity,
			&request.Urgency,
			&request.RequestedBy,
			&request.RequesterRole,
			&request.Status,
			&request.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, request)
	}
	return result, rows.Err()
}
