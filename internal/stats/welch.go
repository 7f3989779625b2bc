package stats

import (
	"math"

	"renewal-ab-lab/internal/domain"
)

// WelchTTest performs Welch's two-sample t-test for the difference
// between two means, without assuming equal population variances.
// Degrees of freedom use the Welch-Satterthwaite approximation and stay
// real-valued. The p-value is two-sided.
//
// Returns ErrInsufficientSamples if either group has fewer than 2
// observations, and ErrZeroStandardError when both groups have zero
// variance.
func WelchTTest(a, b []float64) (*domain.TestResult, error) {
	if len(a) < 2 || len(b) < 2 {
		return nil, ErrInsufficientSamples
	}

	meanA := Mean(a)
	meanB := Mean(b)
	varA := SampleVariance(a, meanA)
	varB := SampleVariance(b, meanB)

	nA := float64(len(a))
	nB := float64(len(b))

	seSq := varA/nA + varB/nB
	se := math.Sqrt(seSq)
	if se == 0 {
		return nil, ErrZeroStandardError
	}

	t := (meanA - meanB) / se

	// Welch-Satterthwaite equation
	denom := (varA/nA)*(varA/nA)/(nA-1) + (varB/nB)*(varB/nB)/(nB-1)
	df := seSq * seSq / denom

	p := 2 * (1 - StudentTCDF(math.Abs(t), df))
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	return &domain.TestResult{
		Test:             domain.TestWelchT,
		Statistic:        t,
		PValue:           p,
		DegreesOfFreedom: df,
	}, nil
}
