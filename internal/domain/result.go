package domain

// AnalysisResult is the flattened outcome of one analysis run, persisted
// to the result store as an append-only history row. RunID is a
// deterministic hash of the dataset content and configuration, so
// re-running identical input produces the same row key.
type AnalysisResult struct {
	RunID       string
	GeneratedAt int64 // Unix ms

	// Configuration
	Alpha            float64
	BalanceTolerance float64

	// Group labels and counts
	ControlGroup   string
	TreatmentGroup string
	ControlCount   int
	TreatmentCount int
	ExcludedCount  int // records rejected by validation in lenient mode
	Balanced       bool

	// Descriptive statistics
	ControlRenewalRate   float64
	TreatmentRenewalRate float64
	ControlARRMean       float64
	TreatmentARRMean     float64
	ControlARRStddev     float64
	TreatmentARRStddev   float64

	// Test outcomes
	RateZ      float64
	RatePValue float64
	ARRT       float64
	ARRPValue  float64
	ARRDf      float64

	// Verdict
	RateSignificant bool
	ARRSignificant  bool
	RateWinner      string
	ARRWinner       string
	Recommendation  string
}
