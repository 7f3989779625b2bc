package stats

import "errors"

// Degenerate statistical inputs. These are surfaced instead of letting
// NaN propagate silently into downstream p-values.
var (
	// ErrInsufficientSamples indicates a group has fewer observations
	// than the test requires.
	ErrInsufficientSamples = errors.New("insufficient samples for statistical test")

	// ErrZeroStandardError indicates the standard error of the test
	// statistic is zero, so the statistic is undefined.
	ErrZeroStandardError = errors.New("zero standard error: test statistic undefined")

	// ErrInvalidCounts indicates success counts or sizes violate
	// 0 <= k <= n, n > 0.
	ErrInvalidCounts = errors.New("invalid counts: require 0 <= successes <= size and size > 0")
)
