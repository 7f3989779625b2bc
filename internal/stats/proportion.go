package stats

import (
	"math"

	"renewal-ab-lab/internal/domain"
)

// TwoProportionZTest performs a pooled two-sample z-test for the
// difference between two binomial proportions.
//
// The null-hypothesis standard error uses the pooled proportion across
// both groups. The p-value is two-sided: 2*(1 - Phi(|z|)).
//
// Returns ErrInvalidCounts unless 0 <= successes <= size and size > 0
// for both groups. Returns ErrZeroStandardError when the pooled
// proportion is 0 or 1 and the statistic is undefined.
func TwoProportionZTest(successesA, sizeA, successesB, sizeB int) (*domain.TestResult, error) {
	if sizeA <= 0 || sizeB <= 0 ||
		successesA < 0 || successesA > sizeA ||
		successesB < 0 || successesB > sizeB {
		return nil, ErrInvalidCounts
	}

	nA := float64(sizeA)
	nB := float64(sizeB)
	pA := float64(successesA) / nA
	pB := float64(successesB) / nB

	pooled := float64(successesA+successesB) / (nA + nB)
	se := math.Sqrt(pooled * (1 - pooled) * (1/nA + 1/nB))
	if se == 0 {
		return nil, ErrZeroStandardError
	}

	z := (pA - pB) / se
	p := 2 * (1 - NormalCDF(math.Abs(z)))

	return &domain.TestResult{
		Test:      domain.TestProportionZ,
		Statistic: z,
		PValue:    p,
	}, nil
}
