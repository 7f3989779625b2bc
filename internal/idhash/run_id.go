package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"renewal-ab-lab/internal/domain"
)

// ComputeRunID computes a deterministic run_id using SHA256 over the
// dataset content and the analysis configuration. Observations are
// hashed in customer_id order so input ordering does not change the ID.
// Returns hex-encoded hash (64 characters).
func ComputeRunID(observations []*domain.Observation, alpha, balanceTolerance float64) string {
	sorted := make([]*domain.Observation, len(observations))
	copy(sorted, observations)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CustomerID < sorted[j].CustomerID
	})

	h := sha256.New()
	fmt.Fprintf(h, "alpha=%.6f|tolerance=%.6f", alpha, balanceTolerance)
	for _, o := range sorted {
		fmt.Fprintf(h, "|%s|%s|%d|%.6f", o.CustomerID, o.Group, o.Renewed, o.DiscountedARR)
	}

	return hex.EncodeToString(h.Sum(nil))
}
