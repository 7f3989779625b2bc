package stats

import (
	"math"

	"renewal-ab-lab/internal/domain"
)

// Mean calculates the arithmetic mean. Returns 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SampleVariance calculates the unbiased sample variance (n-1
// denominator). Returns NaN for fewer than 2 values, where the
// estimator is undefined.
func SampleVariance(values []float64, mean float64) float64 {
	n := len(values)
	if n < 2 {
		return math.NaN()
	}
	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(n-1)
}

// SampleStddev calculates the sample standard deviation (n-1
// denominator). NaN for fewer than 2 values.
func SampleStddev(values []float64, mean float64) float64 {
	return math.Sqrt(SampleVariance(values, mean))
}

// Summarize computes descriptive statistics for one experiment arm.
// The renewal rate is the mean of the 0/1 outcome, which doubles as the
// arm's success proportion. Stddev is reported as NaN for a single
// observation rather than raised: the only consumer that needs it
// (Welch's test) already requires n >= 2.
func Summarize(group string, renewed []int, arr []float64) *domain.GroupSummary {
	n := len(renewed)
	renewals := 0
	for _, r := range renewed {
		if r != 0 {
			renewals++
		}
	}

	rate := 0.0
	if n > 0 {
		rate = float64(renewals) / float64(n)
	}

	mean := Mean(arr)
	return &domain.GroupSummary{
		Group:       group,
		Count:       n,
		Renewals:    renewals,
		RenewalRate: rate,
		ARRMean:     mean,
		ARRStddev:   SampleStddev(arr, mean),
	}
}
