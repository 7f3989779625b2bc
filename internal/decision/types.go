package decision

// Recommendation is the overall verdict category.
type Recommendation string

const (
	// RecommendationAdoptWinner: both tests significant and the same arm
	// wins both metrics. Adopt that arm's discount strategy.
	RecommendationAdoptWinner Recommendation = "ADOPT_WINNER"

	// RecommendationMetricTiebreak: both tests significant but the
	// metrics disagree on the winner. Stakeholders must decide between
	// renewal volume and revenue per customer.
	RecommendationMetricTiebreak Recommendation = "METRIC_TIEBREAK"

	// RecommendationRateOnly: only the renewal-rate test is significant.
	RecommendationRateOnly Recommendation = "RATE_ONLY"

	// RecommendationRevenueOnly: only the ARR means test is significant.
	RecommendationRevenueOnly Recommendation = "REVENUE_ONLY"

	// RecommendationKeepBaseline: neither test is significant. Stay with
	// the control strategy or design a new experiment.
	RecommendationKeepBaseline Recommendation = "KEEP_BASELINE"
)

// Winner identifies which arm has the higher raw value for a metric.
// It is a group label, or WinnerTie when the raw values are exactly
// equal. A tie is reported rather than arbitrarily picking a side.
type Winner string

// WinnerTie means neither arm leads on the metric.
const WinnerTie Winner = "TIE"

// SignificanceCheck is one test's contribution to the verdict,
// row-shaped for the report.
type SignificanceCheck struct {
	Metric      string  // "Renewal rate" or "Avg discounted ARR"
	Test        string  // domain test identifier
	PValue      float64
	Alpha       float64
	Significant bool
	Winner      Winner // higher raw value, regardless of significance
}

// Verdict is the immutable final artifact of the analysis.
type Verdict struct {
	Recommendation Recommendation
	Action         string // human-readable action line

	RateCheck SignificanceCheck
	ARRCheck  SignificanceCheck

	// Supporting raw values, formatted for reading ("80.00% vs 50.00%").
	RateComparison string
	ARRComparison  string
}
