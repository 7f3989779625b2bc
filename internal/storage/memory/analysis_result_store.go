package memory

import (
	"context"
	"sort"
	"sync"

	"renewal-ab-lab/internal/domain"
	"renewal-ab-lab/internal/storage"
)

// AnalysisResultStore is an in-memory implementation of
// storage.AnalysisResultStore.
type AnalysisResultStore struct {
	mu   sync.RWMutex
	data map[string]*domain.AnalysisResult // keyed by run_id
}

// NewAnalysisResultStore creates a new in-memory analysis result store.
func NewAnalysisResultStore() *AnalysisResultStore {
	return &AnalysisResultStore{
		data: make(map[string]*domain.AnalysisResult),
	}
}

// Insert adds a new result row. Returns ErrDuplicateKey if run_id exists.
func (s *AnalysisResultStore) Insert(_ context.Context, r *domain.AnalysisResult) error {
	if r == nil || r.RunID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[r.RunID]; exists {
		return storage.ErrDuplicateKey
	}

	copy := *r
	s.data[r.RunID] = &copy
	return nil
}

// GetByRunID retrieves a result by its run ID. Returns ErrNotFound if not exists.
func (s *AnalysisResultStore) GetByRunID(_ context.Context, runID string) (*domain.AnalysisResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, exists := s.data[runID]
	if !exists {
		return nil, storage.ErrNotFound
	}

	copy := *r
	return &copy, nil
}

// GetAll retrieves all results, ordered by generated_at ASC.
func (s *AnalysisResultStore) GetAll(_ context.Context) ([]*domain.AnalysisResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.AnalysisResult, 0, len(s.data))
	for _, r := range s.data {
		copy := *r
		result = append(result, &copy)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].GeneratedAt != result[j].GeneratedAt {
			return result[i].GeneratedAt < result[j].GeneratedAt
		}
		return result[i].RunID < result[j].RunID
	})

	return result, nil
}

var _ storage.AnalysisResultStore = (*AnalysisResultStore)(nil)
