package stats

import (
	"errors"
	"math"
	"testing"

	"renewal-ab-lab/internal/domain"
)

func TestTwoProportionZTest_KnownCase(t *testing.T) {
	// 8/10 vs 5/10: pooled p = 0.65, SE = sqrt(0.65*0.35*0.2).
	result, err := TwoProportionZTest(8, 10, 5, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Test != domain.TestProportionZ {
		t.Errorf("expected test %s, got %s", domain.TestProportionZ, result.Test)
	}
	if math.Abs(result.Statistic-1.40642) > 1e-4 {
		t.Errorf("expected z ~ 1.40642, got %f", result.Statistic)
	}
	if math.Abs(result.PValue-0.15956) > 1e-4 {
		t.Errorf("expected p ~ 0.15956, got %f", result.PValue)
	}
}

func TestTwoProportionZTest_SignFlip(t *testing.T) {
	ab, err := TwoProportionZTest(8, 10, 5, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ba, err := TwoProportionZTest(5, 10, 8, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(ab.Statistic+ba.Statistic) > 1e-12 {
		t.Errorf("swapping groups should negate z: %f vs %f", ab.Statistic, ba.Statistic)
	}
	if math.Abs(ab.PValue-ba.PValue) > 1e-12 {
		t.Errorf("swapping groups should preserve p: %f vs %f", ab.PValue, ba.PValue)
	}
}

func TestTwoProportionZTest_EqualRates(t *testing.T) {
	result, err := TwoProportionZTest(5, 10, 50, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Statistic != 0 {
		t.Errorf("expected z = 0 for equal rates, got %f", result.Statistic)
	}
	if math.Abs(result.PValue-1) > 1e-12 {
		t.Errorf("expected p = 1 for equal rates, got %f", result.PValue)
	}
}

func TestTwoProportionZTest_InvalidCounts(t *testing.T) {
	cases := []struct {
		name   string
		kA, nA int
		kB, nB int
	}{
		{"zero size A", 0, 0, 5, 10},
		{"zero size B", 5, 10, 0, 0},
		{"negative successes", -1, 10, 5, 10},
		{"successes exceed size", 11, 10, 5, 10},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := TwoProportionZTest(c.kA, c.nA, c.kB, c.nB)
			if !errors.Is(err, ErrInvalidCounts) {
				t.Errorf("expected ErrInvalidCounts, got %v", err)
			}
		})
	}
}

func TestTwoProportionZTest_DegenerateProportions(t *testing.T) {
	// All successes pools to 1, all failures pools to 0. Either way the
	// standard error collapses to zero.
	if _, err := TwoProportionZTest(10, 10, 10, 10); !errors.Is(err, ErrZeroStandardError) {
		t.Errorf("all successes: expected ErrZeroStandardError, got %v", err)
	}
	if _, err := TwoProportionZTest(0, 10, 0, 10); !errors.Is(err, ErrZeroStandardError) {
		t.Errorf("all failures: expected ErrZeroStandardError, got %v", err)
	}
}
