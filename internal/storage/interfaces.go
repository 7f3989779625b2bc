package storage

import (
	"context"

	"renewal-ab-lab/internal/domain"
)

// ObservationStore provides access to experiment observations.
type ObservationStore interface {
	// Insert adds a new observation. Returns ErrDuplicateKey if
	// customer_id exists.
	Insert(ctx context.Context, o *domain.Observation) error

	// InsertBulk adds multiple observations atomically. Fails the entire
	// batch on any duplicate.
	InsertBulk(ctx context.Context, observations []*domain.Observation) error

	// GetAll retrieves all observations, ordered by customer_id ASC.
	GetAll(ctx context.Context) ([]*domain.Observation, error)

	// GetByGroup retrieves all observations with the given group label,
	// ordered by customer_id ASC.
	GetByGroup(ctx context.Context, group string) ([]*domain.Observation, error)

	// CountByGroup returns observation counts keyed by group label.
	CountByGroup(ctx context.Context) (map[string]int, error)
}

// AnalysisResultStore provides access to the analysis run history.
type AnalysisResultStore interface {
	// Insert adds a new result row. Returns ErrDuplicateKey if run_id
	// exists.
	Insert(ctx context.Context, r *domain.AnalysisResult) error

	// GetByRunID retrieves a result by its run ID. Returns ErrNotFound
	// if not exists.
	GetByRunID(ctx context.Context, runID string) (*domain.AnalysisResult, error)

	// GetAll retrieves all results, ordered by generated_at ASC.
	GetAll(ctx context.Context) ([]*domain.AnalysisResult, error)
}
