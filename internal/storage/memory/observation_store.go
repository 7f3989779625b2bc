package memory

import (
	"context"
	"sort"
	"sync"

	"renewal-ab-lab/internal/domain"
	"renewal-ab-lab/internal/storage"
)

// ObservationStore is an in-memory implementation of
// storage.ObservationStore.
type ObservationStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Observation // keyed by customer_id
}

// NewObservationStore creates a new in-memory observation store.
func NewObservationStore() *ObservationStore {
	return &ObservationStore{
		data: make(map[string]*domain.Observation),
	}
}

// Insert adds a new observation. Returns ErrDuplicateKey if customer_id exists.
func (s *ObservationStore) Insert(_ context.Context, o *domain.Observation) error {
	if o == nil || o.CustomerID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[o.CustomerID]; exists {
		return storage.ErrDuplicateKey
	}

	copy := *o
	s.data[o.CustomerID] = &copy
	return nil
}

// InsertBulk adds multiple observations atomically. Fails entire batch on any duplicate.
func (s *ObservationStore) InsertBulk(_ context.Context, observations []*domain.Observation) error {
	if len(observations) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Track keys in this batch to detect intra-batch duplicates
	batchKeys := make(map[string]struct{}, len(observations))

	for _, o := range observations {
		if o == nil || o.CustomerID == "" {
			return storage.ErrInvalidInput
		}
		if _, exists := s.data[o.CustomerID]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batchKeys[o.CustomerID]; exists {
			return storage.ErrDuplicateKey
		}
		batchKeys[o.CustomerID] = struct{}{}
	}

	for _, o := range observations {
		copy := *o
		s.data[o.CustomerID] = &copy
	}

	return nil
}

// GetAll retrieves all observations, ordered by customer_id ASC.
func (s *ObservationStore) GetAll(_ context.Context) ([]*domain.Observation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Observation, 0, len(s.data))
	for _, o := range s.data {
		copy := *o
		result = append(result, &copy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CustomerID < result[j].CustomerID
	})

	return result, nil
}

// GetByGroup retrieves all observations with the given group label.
func (s *ObservationStore) GetByGroup(_ context.Context, group string) ([]*domain.Observation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Observation
	for _, o := range s.data {
		if o.Group == group {
			copy := *o
			result = append(result, &copy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CustomerID < result[j].CustomerID
	})

	return result, nil
}

// CountByGroup returns observation counts keyed by group label.
func (s *ObservationStore) CountByGroup(_ context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, o := range s.data {
		counts[o.Group]++
	}
	return counts, nil
}

var _ storage.ObservationStore = (*ObservationStore)(nil)
