package clickhouse

import (
	"context"
	"fmt"

	"renewal-ab-lab/internal/domain"
	"renewal-ab-lab/internal/storage"
)

// AnalysisResultStore implements storage.AnalysisResultStore using
// ClickHouse. Runs accumulate as an append-only history table.
type AnalysisResultStore struct {
	conn *Conn
}

// NewAnalysisResultStore creates a new AnalysisResultStore.
func NewAnalysisResultStore(conn *Conn) *AnalysisResultStore {
	return &AnalysisResultStore{conn: conn}
}

// Compile-time interface check.
var _ storage.AnalysisResultStore = (*AnalysisResultStore)(nil)

const resultColumns = `
	run_id, generated_at, alpha, balance_tolerance,
	control_group, treatment_group, control_count, treatment_count, excluded_count, balanced,
	control_renewal_rate, treatment_renewal_rate,
	control_arr_mean, treatment_arr_mean, control_arr_stddev, treatment_arr_stddev,
	rate_z, rate_p_value, arr_t, arr_p_value, arr_df,
	rate_significant, arr_significant, rate_winner, arr_winner, recommendation
`

// Insert adds a new result row. Returns ErrDuplicateKey if run_id exists.
// MergeTree does not enforce uniqueness, so existence is checked first.
func (s *AnalysisResultStore) Insert(ctx context.Context, r *domain.AnalysisResult) error {
	if r == nil || r.RunID == "" {
		return storage.ErrInvalidInput
	}

	exists, err := s.exists(ctx, r.RunID)
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}
	if exists {
		return storage.ErrDuplicateKey
	}

	query := `
		INSERT INTO analysis_results (` + resultColumns + `) VALUES (
			?, ?, ?, ?,
			?, ?, ?, ?, ?, ?,
			?, ?,
			?, ?, ?, ?,
			?, ?, ?, ?, ?,
			?, ?, ?, ?, ?
		)
	`

	err = s.conn.Exec(ctx, query,
		r.RunID, r.GeneratedAt, r.Alpha, r.BalanceTolerance,
		r.ControlGroup, r.TreatmentGroup, int32(r.ControlCount), int32(r.TreatmentCount), int32(r.ExcludedCount), r.Balanced,
		r.ControlRenewalRate, r.TreatmentRenewalRate,
		r.ControlARRMean, r.TreatmentARRMean, r.ControlARRStddev, r.TreatmentARRStddev,
		r.RateZ, r.RatePValue, r.ARRT, r.ARRPValue, r.ARRDf,
		r.RateSignificant, r.ARRSignificant, r.RateWinner, r.ARRWinner, r.Recommendation,
	)
	if err != nil {
		return fmt.Errorf("insert analysis result: %w", err)
	}
	return nil
}

// GetByRunID retrieves a result by its run ID. Returns ErrNotFound if not exists.
func (s *AnalysisResultStore) GetByRunID(ctx context.Context, runID string) (*domain.AnalysisResult, error) {
	query := `SELECT ` + resultColumns + ` FROM analysis_results WHERE run_id = ? LIMIT 1`

	rows, err := s.conn.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("query analysis result: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, storage.ErrNotFound
	}

	return scanResult(rows)
}

// GetAll retrieves all results, ordered by generated_at ASC.
func (s *AnalysisResultStore) GetAll(ctx context.Context) ([]*domain.AnalysisResult, error) {
	query := `SELECT ` + resultColumns + ` FROM analysis_results ORDER BY generated_at ASC, run_id ASC`

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query analysis results: %w", err)
	}
	defer rows.Close()

	var results []*domain.AnalysisResult
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analysis results: %w", err)
	}

	return results, nil
}

func (s *AnalysisResultStore) exists(ctx context.Context, runID string) (bool, error) {
	rows, err := s.conn.Query(ctx, `SELECT 1 FROM analysis_results WHERE run_id = ? LIMIT 1`, runID)
	if err != nil {
		return false, err
	}
	defer rows.Close()
	return rows.Next(), nil
}

// resultScanner abstracts driver.Rows for scanning.
type resultScanner interface {
	Scan(dest ...any) error
}

func scanResult(rows resultScanner) (*domain.AnalysisResult, error) {
	var r domain.AnalysisResult
	var controlCount, treatmentCount, excludedCount int32
	err := rows.Scan(
		&r.RunID, &r.GeneratedAt, &r.Alpha, &r.BalanceTolerance,
		&r.ControlGroup, &r.TreatmentGroup, &controlCount, &treatmentCount, &excludedCount, &r.Balanced,
		&r.ControlRenewalRate, &r.TreatmentRenewalRate,
		&r.ControlARRMean, &r.TreatmentARRMean, &r.ControlARRStddev, &r.TreatmentARRStddev,
		&r.RateZ, &r.RatePValue, &r.ARRT, &r.ARRPValue, &r.ARRDf,
		&r.RateSignificant, &r.ARRSignificant, &r.RateWinner, &r.ARRWinner, &r.Recommendation,
	)
	if err != nil {
		return nil, fmt.Errorf("scan analysis result: %w", err)
	}
	r.ControlCount = int(controlCount)
	r.TreatmentCount = int(treatmentCount)
	r.ExcludedCount = int(excludedCount)
	return &r, nil
}
