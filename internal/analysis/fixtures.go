package analysis

import (
	"context"
	"fmt"

	"renewal-ab-lab/internal/domain"
	"renewal-ab-lab/internal/storage"
)

// LoadFixtures populates the observation store with a deterministic
// synthetic experiment for demonstration: 50 customers per arm, the
// control arm renewing more often, the treatment arm carrying a higher
// discounted ARR. The values are generated, not random, so every run
// produces identical statistics.
func LoadFixtures(ctx context.Context, store storage.ObservationStore) error {
	observations := FixtureObservations()
	if err := store.InsertBulk(ctx, observations); err != nil {
		return fmt.Errorf("load fixture observations: %w", err)
	}
	return nil
}

// FixtureObservations returns the synthetic dataset used by fixture
// mode and the pipeline tests.
func FixtureObservations() []*domain.Observation {
	var observations []*domain.Observation

	// Control arm: 40 of 50 renew, ARR centered on $9,500
	for i := 0; i < 50; i++ {
		renewed := 0
		if i < 40 {
			renewed = 1
		}
		observations = append(observations, &domain.Observation{
			CustomerID:    fmt.Sprintf("CUST-A-%03d", i+1),
			Group:         domain.GroupControl,
			Renewed:       renewed,
			DiscountedARR: 9500 + float64(i%11)*40 - 200,
		})
	}

	// Treatment arm: 25 of 50 renew, ARR centered on $10,800
	for i := 0; i < 50; i++ {
		renewed := 0
		if i < 25 {
			renewed = 1
		}
		observations = append(observations, &domain.Observation{
			CustomerID:    fmt.Sprintf("CUST-B-%03d", i+1),
			Group:         domain.GroupTreatment,
			Renewed:       renewed,
			DiscountedARR: 10800 + float64(i%13)*35 - 210,
		})
	}

	return observations
}
