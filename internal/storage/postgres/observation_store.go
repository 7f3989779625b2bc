package postgres

import (
	"context"
	"fmt"

	"renewal-ab-lab/internal/domain"
	"renewal-ab-lab/internal/storage"
)

// ObservationStore implements storage.ObservationStore using PostgreSQL.
type ObservationStore struct {
	pool *Pool
}

// NewObservationStore creates a new ObservationStore.
func NewObservationStore(pool *Pool) *ObservationStore {
	return &ObservationStore{pool: pool}
}

// Compile-time interface check.
var _ storage.ObservationStore = (*ObservationStore)(nil)

// Insert adds a new observation. Returns ErrDuplicateKey if customer_id exists.
func (s *ObservationStore) Insert(ctx context.Context, o *domain.Observation) error {
	if o == nil || o.CustomerID == "" {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO observations (customer_id, group_label, renewed, discounted_arr)
		VALUES ($1, $2, $3, $4)
	`

	_, err := s.pool.Exec(ctx, query, o.CustomerID, o.Group, o.Renewed, o.DiscountedARR)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert observation: %w", err)
	}
	return nil
}

// InsertBulk adds multiple observations atomically. Fails entire batch on any duplicate.
func (s *ObservationStore) InsertBulk(ctx context.Context, observations []*domain.Observation) error {
	if len(observations) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO observations (customer_id, group_label, renewed, discounted_arr)
		VALUES ($1, $2, $3, $4)
	`

	for _, o := range observations {
		if o == nil || o.CustomerID == "" {
			return storage.ErrInvalidInput
		}
		if _, err := tx.Exec(ctx, query, o.CustomerID, o.Group, o.Renewed, o.DiscountedARR); err != nil {
			if isDuplicateKeyError(err) {
				return storage.ErrDuplicateKey
			}
			return fmt.Errorf("insert observation in bulk: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// GetAll retrieves all observations, ordered by customer_id ASC.
func (s *ObservationStore) GetAll(ctx context.Context) ([]*domain.Observation, error) {
	query := `
		SELECT customer_id, group_label, renewed, discounted_arr
		FROM observations
		ORDER BY customer_id ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query observations: %w", err)
	}
	defer rows.Close()

	return scanObservations(rows)
}

// GetByGroup retrieves all observations with the given group label, ordered by customer_id ASC.
func (s *ObservationStore) GetByGroup(ctx context.Context, group string) ([]*domain.Observation, error) {
	query := `
		SELECT customer_id, group_label, renewed, discounted_arr
		FROM observations
		WHERE group_label = $1
		ORDER BY customer_id ASC
	`

	rows, err := s.pool.Query(ctx, query, group)
	if err != nil {
		return nil, fmt.Errorf("query observations by group: %w", err)
	}
	defer rows.Close()

	return scanObservations(rows)
}

// CountByGroup returns observation counts keyed by group label.
func (s *ObservationStore) CountByGroup(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT group_label, COUNT(*)
		FROM observations
		GROUP BY group_label
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count observations by group: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var group string
		var count int
		if err := rows.Scan(&group, &count); err != nil {
			return nil, fmt.Errorf("scan group count: %w", err)
		}
		counts[group] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate group counts: %w", err)
	}

	return counts, nil
}

// rowScanner abstracts pgx.Rows for scanning helpers.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanObservations(rows rowScanner) ([]*domain.Observation, error) {
	var result []*domain.Observation
	for rows.Next() {
		var o domain.Observation
		if err := rows.Scan(&o.CustomerID, &o.Group, &o.Renewed, &o.DiscountedARR); err != nil {
			return nil, fmt.Errorf("scan observation: %w", err)
		}
		result = append(result, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate observations: %w", err)
	}
	return result, nil
}
