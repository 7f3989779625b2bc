package memory

import (
	"context"
	"errors"
	"testing"

	"renewal-ab-lab/internal/domain"
	"renewal-ab-lab/internal/storage"
)

func obs(id, group string, renewed int, arr float64) *domain.Observation {
	return &domain.Observation{
		CustomerID:    id,
		Group:         group,
		Renewed:       renewed,
		DiscountedARR: arr,
	}
}

func TestObservationStore_InsertAndGetAll(t *testing.T) {
	ctx := context.Background()
	store := NewObservationStore()

	if err := store.Insert(ctx, obs("C002", "B", 0, 10800)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := store.Insert(ctx, obs("C001", "A", 1, 9500)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	all, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(all))
	}
	if all[0].CustomerID != "C001" || all[1].CustomerID != "C002" {
		t.Errorf("expected customer_id order, got %s, %s", all[0].CustomerID, all[1].CustomerID)
	}
}

func TestObservationStore_DuplicateInsert(t *testing.T) {
	ctx := context.Background()
	store := NewObservationStore()

	if err := store.Insert(ctx, obs("C001", "A", 1, 9500)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	err := store.Insert(ctx, obs("C001", "B", 0, 10800))
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestObservationStore_InvalidInput(t *testing.T) {
	ctx := context.Background()
	store := NewObservationStore()

	if err := store.Insert(ctx, nil); !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("nil observation: expected ErrInvalidInput, got %v", err)
	}
	if err := store.Insert(ctx, obs("", "A", 1, 9500)); !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("empty customer_id: expected ErrInvalidInput, got %v", err)
	}
}

func TestObservationStore_InsertBulkAtomic(t *testing.T) {
	ctx := context.Background()
	store := NewObservationStore()

	if err := store.Insert(ctx, obs("C001", "A", 1, 9500)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	batch := []*domain.Observation{
		obs("C002", "B", 0, 10800),
		obs("C001", "A", 1, 9500), // collides with existing row
	}
	if err := store.InsertBulk(ctx, batch); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	// Nothing from the failed batch may land.
	all, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("failed batch leaked rows: got %d observations", len(all))
	}
}

func TestObservationStore_InsertBulkIntraBatchDuplicate(t *testing.T) {
	ctx := context.Background()
	store := NewObservationStore()

	batch := []*domain.Observation{
		obs("C001", "A", 1, 9500),
		obs("C001", "B", 0, 10800),
	}
	if err := store.InsertBulk(ctx, batch); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestObservationStore_GetByGroup(t *testing.T) {
	ctx := context.Background()
	store := NewObservationStore()

	batch := []*domain.Observation{
		obs("C001", "A", 1, 9500),
		obs("C002", "B", 0, 10800),
		obs("C003", "A", 0, 9200),
	}
	if err := store.InsertBulk(ctx, batch); err != nil {
		t.Fatalf("bulk insert: %v", err)
	}

	groupA, err := store.GetByGroup(ctx, "A")
	if err != nil {
		t.Fatalf("get by group: %v", err)
	}
	if len(groupA) != 2 {
		t.Fatalf("expected 2 group A observations, got %d", len(groupA))
	}
	if groupA[0].CustomerID != "C001" || groupA[1].CustomerID != "C003" {
		t.Errorf("unexpected group A order: %s, %s", groupA[0].CustomerID, groupA[1].CustomerID)
	}
}

func TestObservationStore_CountByGroup(t *testing.T) {
	ctx := context.Background()
	store := NewObservationStore()

	batch := []*domain.Observation{
		obs("C001", "A", 1, 9500),
		obs("C002", "B", 0, 10800),
		obs("C003", "A", 0, 9200),
	}
	if err := store.InsertBulk(ctx, batch); err != nil {
		t.Fatalf("bulk insert: %v", err)
	}

	counts, err := store.CountByGroup(ctx)
	if err != nil {
		t.Fatalf("count by group: %v", err)
	}
	if counts["A"] != 2 || counts["B"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestObservationStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewObservationStore()

	original := obs("C001", "A", 1, 9500)
	if err := store.Insert(ctx, original); err != nil {
		t.Fatalf("insert: %v", err)
	}

	// Mutating the inserted pointer must not affect the store.
	original.Renewed = 0

	all, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if all[0].Renewed != 1 {
		t.Error("store shares memory with caller-owned observation")
	}

	// Mutating a read result must not affect the store either.
	all[0].Group = "Z"
	again, _ := store.GetAll(ctx)
	if again[0].Group != "A" {
		t.Error("store shares memory with returned observation")
	}
}
