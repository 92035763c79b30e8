package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/trip"
)

// Querier abstracts the subset of pgxpool.Pool used by Repository.
// This allows injection of a mock in tests.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// StoredPlan is a persisted travel plan row. One row is kept per
// destination: regenerating a plan replaces the previous one.
type StoredPlan struct {
	ID          int
	Destination string
	Origin      string
	Plan        trip.TravelPlan
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Repository provides database access for travel plan records.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

// GetPlan retrieves the stored plan for a destination.
// Returns nil, nil when no plan has been generated for it.
func (r *Repository) GetPlan(ctx context.Context, destination string) (*StoredPlan, error) {
	const q = `
		SELECT id, destination, origin, plan, created_at, updated_at
		FROM plans
		WHERE LOWER(destination) = LOWER($1)
	`

	var sp StoredPlan
	var planJSON []byte

	err := r.q.QueryRow(ctx, q, destination).Scan(
		&sp.ID,
		&sp.Destination,
		&sp.Origin,
		&planJSON,
		&sp.CreatedAt,
		&sp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying plan for destination %s: %w", destination, err)
	}

	if err := json.Unmarshal(planJSON, &sp.Plan); err != nil {
		return nil, fmt.Errorf("unmarshaling plan for destination %s: %w", destination, err)
	}

	return &sp, nil
}

// UpsertPlan inserts or replaces the plan for a destination.
func (r *Repository) UpsertPlan(ctx context.Context, plan *trip.TravelPlan) error {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshaling plan for destination %s: %w", plan.Destination, err)
	}

	const q = `
		INSERT INTO plans (destination, origin, plan, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (destination) DO UPDATE
		SET origin     = EXCLUDED.origin,
		    plan       = EXCLUDED.plan,
		    updated_at = EXCLUDED.updated_at
	`

	if _, err := r.q.Exec(ctx, q, plan.Destination, plan.Origin, planJSON); err != nil {
		return fmt.Errorf("upserting plan for destination %s: %w", plan.Destination, err)
	}

	return nil
}

// GetPlansByTravelMonth returns stored plans for a given travel month name.
// Uses the JSONB @> containment operator.
func (r *Repository) GetPlansByTravelMonth(ctx context.Context, monthName string) ([]*StoredPlan, error) {
	filter, err := json.Marshal(map[string]any{"travel_month": monthName})
	if err != nil {
		return nil, fmt.Errorf("marshaling JSONB filter: %w", err)
	}

	const q = `
		SELECT id, destination, origin, plan, created_at, updated_at
		FROM plans
		WHERE plan @> $1::jsonb
	`

	rows, err := r.q.Query(ctx, q, string(filter))
	if err != nil {
		return nil, fmt.Errorf("querying plans by travel month: %w", err)
	}
	defer rows.Close()

	var results []*StoredPlan
	for rows.Next() {
		var sp StoredPlan
		var planJSON []byte

		if err := rows.Scan(
			&sp.ID,
			&sp.Destination,
			&sp.Origin,
			&planJSON,
			&sp.CreatedAt,
			&sp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning plan row: %w", err)
		}

		if err := json.Unmarshal(planJSON, &sp.Plan); err != nil {
			return nil, fmt.Errorf("unmarshaling plan data: %w", err)
		}

		results = append(results, &sp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan rows: %w", err)
	}

	return results, nil
}
