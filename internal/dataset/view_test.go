package dataset

import (
	"errors"
	"testing"

	"renewal-ab-lab/internal/domain"
)

func obs(id, group string, renewed int, arr float64) *domain.Observation {
	return &domain.Observation{
		CustomerID:    id,
		Group:         group,
		Renewed:       renewed,
		DiscountedARR: arr,
	}
}

func TestNewView_Partitions(t *testing.T) {
	observations := []*domain.Observation{
		obs("c1", "A", 1, 1000),
		obs("c2", "B", 0, 1200),
		obs("c3", "A", 0, 900),
		obs("c4", "B", 1, 1100),
		obs("c5", "A", 1, 950),
	}

	v, err := NewView(observations, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Control.Count() != 3 {
		t.Errorf("expected 3 control records, got %d", v.Control.Count())
	}
	if v.Treatment.Count() != 2 {
		t.Errorf("expected 2 treatment records, got %d", v.Treatment.Count())
	}
	if len(v.Excluded) != 0 {
		t.Errorf("expected no exclusions, got %d", len(v.Excluded))
	}

	// Input order preserved within each arm.
	wantControl := []int{1, 0, 1}
	for i, r := range wantControl {
		if v.Control.Renewed[i] != r {
			t.Errorf("control renewed[%d]: expected %d, got %d", i, r, v.Control.Renewed[i])
		}
	}
	if v.Control.ARR[0] != 1000 || v.Treatment.ARR[1] != 1100 {
		t.Errorf("ARR sequences out of order: %v / %v", v.Control.ARR, v.Treatment.ARR)
	}
}

func TestNewView_EmptyDataset(t *testing.T) {
	_, err := NewView(nil, Options{})
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestNewView_MissingGroup(t *testing.T) {
	observations := []*domain.Observation{
		obs("c1", "A", 1, 1000),
		obs("c2", "A", 0, 900),
	}

	_, err := NewView(observations, Options{})
	if !errors.Is(err, ErrMissingGroup) {
		t.Fatalf("expected ErrMissingGroup, got %v", err)
	}
}

func TestNewView_LenientExcludes(t *testing.T) {
	observations := []*domain.Observation{
		obs("c1", "A", 1, 1000),
		obs("c2", "C", 1, 1200),
		obs("c3", "B", 2, 1100),
		obs("c4", "B", 0, 1050),
	}

	v, err := NewView(observations, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(v.Excluded) != 2 {
		t.Fatalf("expected 2 exclusions, got %d", len(v.Excluded))
	}
	if v.Excluded[0].Field != "Group" || v.Excluded[0].CustomerID != "c2" {
		t.Errorf("unexpected first exclusion: %+v", v.Excluded[0])
	}
	if v.Excluded[1].Field != "Renewed" || v.Excluded[1].CustomerID != "c3" {
		t.Errorf("unexpected second exclusion: %+v", v.Excluded[1])
	}
	if v.Control.Count() != 1 || v.Treatment.Count() != 1 {
		t.Errorf("excluded records leaked into arms: %d / %d", v.Control.Count(), v.Treatment.Count())
	}
}

func TestNewView_StrictAborts(t *testing.T) {
	observations := []*domain.Observation{
		obs("c1", "A", 1, 1000),
		obs("c2", "B", 3, 1200),
	}

	_, err := NewView(observations, Options{Strict: true})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.CustomerID != "c2" || verr.Field != "Renewed" {
		t.Errorf("unexpected validation error: %+v", verr)
	}
}

func TestNewView_CustomLabels(t *testing.T) {
	observations := []*domain.Observation{
		obs("c1", "control", 1, 1000),
		obs("c2", "variant", 0, 1200),
	}

	v, err := NewView(observations, Options{ControlLabel: "control", TreatmentLabel: "variant"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Control.Label != "control" || v.Treatment.Label != "variant" {
		t.Errorf("labels not applied: %s / %s", v.Control.Label, v.Treatment.Label)
	}
	if v.Control.Count() != 1 || v.Treatment.Count() != 1 {
		t.Errorf("custom labels not recognized: %d / %d", v.Control.Count(), v.Treatment.Count())
	}
}

func TestCheckBalance(t *testing.T) {
	balanced := &View{
		Control:   GroupData{Label: "A", Renewed: make([]int, 52)},
		Treatment: GroupData{Label: "B", Renewed: make([]int, 48)},
	}
	check := balanced.CheckBalance(0.05)
	if !check.Pass {
		t.Errorf("52 vs 48 (4%% difference) should pass a 5%% tolerance: %+v", check)
	}

	skewed := &View{
		Control:   GroupData{Label: "A", Renewed: make([]int, 53)},
		Treatment: GroupData{Label: "B", Renewed: make([]int, 47)},
	}
	check = skewed.CheckBalance(0.05)
	if check.Pass {
		t.Errorf("53 vs 47 (6%% difference) should fail a 5%% tolerance: %+v", check)
	}
}
