package domain

// Group label constants for the canonical two-arm setup.
// "A" is the control arm (lower discount), "B" the treatment arm
// (higher discount). Labels are caller-configurable; these are defaults.
const (
	GroupControl   = "A"
	GroupTreatment = "B"
)

// Observation represents one customer record from the experiment.
type Observation struct {
	CustomerID    string  // unique identifier
	Group         string  // experiment arm label
	Renewed       int     // binary renewal outcome, 0 or 1
	DiscountedARR float64 // annual recurring revenue after discount, USD
}
